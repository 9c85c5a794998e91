// Package view describes what a card screen shows, independent of how it
// is drawn. Applications build a Screen, hand it to a presenter, and get a
// Result back once the user acts.
package view

import "github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"

// GroupStyle controls how the items of a Group are laid out.
type GroupStyle int

const (
	GroupNavigation GroupStyle = iota // One card per item, each selectable
	GroupRows                         // All items in one card, each row selectable
	GroupInfo                         // Key/value rows in one card, not selectable
)

// ButtonStyle controls how a Button is drawn.
type ButtonStyle int

const (
	ButtonPrimary     ButtonStyle = iota // Filled with the button colour
	ButtonSecondary                      // Neutral grey fill
	ButtonDestructive                    // Red tint with red label
)

// Item is a single card or row.
type Item struct {
	ID       string         // Returned in Result.ID when activated
	Icon     constants.Icon // Leading icon, optional
	Color    uint32         // Icon badge colour as 0xRRGGBB
	Title    string
	Subtitle string
	Value    string // Trailing value, used by GroupInfo rows
	Chevron  bool   // Draw a trailing chevron
}

// Group is a run of items drawn with the same style.
type Group struct {
	Style GroupStyle
	Items []Item
}

// Button is a full-width action button below the groups.
type Button struct {
	ID    string
	Title string
	Icon  constants.Icon
	Style ButtonStyle
	Color uint32 // Fill colour for ButtonPrimary as 0xRRGGBB
}

// Header is the centred block at the top of a screen.
type Header struct {
	Avatar   constants.Icon // Large icon above the title, optional
	Title    string
	Subtitle string
	Centered bool
}

// FooterHelpItem describes a button hint shown in the footer.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// Screen is everything a card screen needs to render.
type Screen struct {
	NavTitle   string // Small title in the top bar
	Breadcrumb string // Shown under the top bar, optional
	Header     Header
	Groups     []Group
	Buttons    []Button
	Footer     []FooterHelpItem
	Focus      int // Index into Selectables to focus first
}

// Selectable identifies one focusable element of a Screen.
type Selectable struct {
	ID     string
	Group  int // Index into Groups, or -1 for a button
	Index  int // Item index within the group, or button index
	Button bool
}

// Selectables lists the focusable elements in the order focus moves
// through them: navigation and row items first, then buttons.
func (s Screen) Selectables() []Selectable {
	var out []Selectable
	for gi, g := range s.Groups {
		if g.Style == GroupInfo {
			continue
		}
		for ii, item := range g.Items {
			out = append(out, Selectable{ID: item.ID, Group: gi, Index: ii})
		}
	}
	for bi, b := range s.Buttons {
		out = append(out, Selectable{ID: b.ID, Group: -1, Index: bi, Button: true})
	}
	return out
}

// ClampFocus returns focus limited to the valid selectable range.
// It returns -1 when nothing on the screen can be focused.
func (s Screen) ClampFocus(focus int) int {
	n := len(s.Selectables())
	if n == 0 {
		return -1
	}
	if focus < 0 {
		return 0
	}
	if focus >= n {
		return n - 1
	}
	return focus
}

// Action is what the user did to leave a screen.
type Action int

const (
	ActionActivated Action = iota // Confirmed the focused element
	ActionBack                    // Pressed back
	ActionHome                    // Pressed the home shortcut
	ActionQuit                    // Closed the window or quit the app
)

func (a Action) String() string {
	switch a {
	case ActionActivated:
		return "activated"
	case ActionBack:
		return "back"
	case ActionHome:
		return "home"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is returned when a screen closes.
type Result struct {
	Action Action
	ID     string // ID of the activated element, empty otherwise
	Focus  int    // Focused selectable index when the screen closed
}
