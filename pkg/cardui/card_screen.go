package cardui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/internal"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// metrics holds the scale factor and font line heights used for layout.
type metrics struct {
	scale  float64
	large  int32
	medium int32
	small  int32
	tiny   int32
}

func (m metrics) px(v int32) int32 {
	return int32(math.Round(float64(v) * m.scale))
}

func currentMetrics(windowHeight int32) metrics {
	return metrics{
		scale:  float64(windowHeight) / 480.0,
		large:  int32(internal.Fonts.LargeFont.Height()),
		medium: int32(internal.Fonts.MediumFont.Height()),
		small:  int32(internal.Fonts.SmallFont.Height()),
		tiny:   int32(internal.Fonts.TinyFont.Height()),
	}
}

type groupLayout struct {
	card  sdl.Rect // Shared background for rows and info groups
	items []sdl.Rect
}

// cardLayout positions every element in content coordinates, where y=0
// is the top of the scrollable area.
type cardLayout struct {
	avatar    sdl.Rect
	titleY    int32
	subtitleY int32
	groups    []groupLayout
	buttons   []sdl.Rect
	height    int32
}

func layoutScreen(screen view.Screen, width int32, m metrics) cardLayout {
	margin := m.px(constants.DefaultScreenMargin)
	section := m.px(24)
	cardGap := m.px(constants.DefaultCardSpacing)
	inner := width - 2*margin

	var l cardLayout
	y := margin

	if screen.Header.Avatar != constants.IconNone {
		size := m.px(96)
		l.avatar = sdl.Rect{X: (width - size) / 2, Y: y, W: size, H: size}
		y += size + m.px(12)
	}
	if screen.Header.Title != "" {
		l.titleY = y
		y += m.large
	}
	if screen.Header.Subtitle != "" {
		y += m.px(4)
		l.subtitleY = y
		y += m.small
	}
	y += section

	for _, g := range screen.Groups {
		var gl groupLayout
		switch g.Style {
		case view.GroupNavigation:
			h := m.px(56) + 2*m.px(16)
			for range g.Items {
				gl.items = append(gl.items, sdl.Rect{X: margin, Y: y, W: inner, H: h})
				y += h + cardGap
			}
			y += section - cardGap
		default:
			rowH := m.px(36) + 2*m.px(12)
			if g.Style == view.GroupInfo {
				rowH = m.medium + 2*m.px(12)
			}
			top := y
			for range g.Items {
				gl.items = append(gl.items, sdl.Rect{X: margin, Y: y, W: inner, H: rowH})
				y += rowH
			}
			gl.card = sdl.Rect{X: margin, Y: top, W: inner, H: y - top}
			y += section
		}
		l.groups = append(l.groups, gl)
	}

	buttonH := m.medium + 2*m.px(14)
	for range screen.Buttons {
		l.buttons = append(l.buttons, sdl.Rect{X: margin, Y: y, W: inner, H: buttonH})
		y += buttonH + cardGap
	}

	l.height = y + m.px(40)
	return l
}

// selectableRect returns the layout rect for a selectable element.
func (l cardLayout) selectableRect(s view.Selectable) sdl.Rect {
	if s.Button {
		return l.buttons[s.Index]
	}
	return l.groups[s.Group].items[s.Index]
}

// scrollToShow returns a scroll offset that keeps rect inside a viewport
// of the given height, moving as little as possible.
func scrollToShow(scroll int32, rect sdl.Rect, viewport, contentHeight, margin int32) int32 {
	if rect.Y-margin < scroll {
		scroll = rect.Y - margin
	}
	if bottom := rect.Y + rect.H + margin; bottom > scroll+viewport {
		scroll = bottom - viewport
	}

	maxScroll := contentHeight - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// moveFocus moves focus by delta without wrapping.
func moveFocus(focus, delta, count int) int {
	if count == 0 {
		return -1
	}
	focus += delta
	if focus < 0 {
		return 0
	}
	if focus >= count {
		return count - 1
	}
	return focus
}

type cardScreenController struct {
	screen        view.Screen
	selectables   []view.Selectable
	focus         int
	scroll        int32
	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time
	result        view.Result
	done          bool
}

// ShowCardScreen draws screen and blocks until the user activates an
// element, presses back or home, quits, or ctx is done.
// A done ctx returns an error matching both ErrCancelled and ctx.Err().
func ShowCardScreen(ctx context.Context, screen view.Screen) (*view.Result, error) {
	if err := screenCancelled(ctx); err != nil {
		return nil, err
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("card_screen", ErrNotInitialized)
	}

	c := &cardScreenController{
		screen:        screen,
		selectables:   screen.Selectables(),
		focus:         screen.ClampFocus(screen.Focus),
		directional:   internal.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	for !c.done {
		if err := screenCancelled(ctx); err != nil {
			return nil, err
		}

		c.handleEvents()
		if dir := c.directional.Update(time.Now()); dir != internal.DirectionNone {
			c.focus = moveFocus(c.focus, dir.Delta(), len(c.selectables))
		}

		c.render(window)
		window.Present()
	}

	c.result.Focus = c.focus
	internal.GetInternalLogger().Debug("Card screen closed",
		"title", screen.NavTitle, "action", c.result.Action.String(), "id", c.result.ID)
	return &c.result, nil
}

func screenCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return nil
}

func (c *cardScreenController) finish(action view.Action, id string) {
	c.result = view.Result{Action: action, ID: id}
	c.done = true
}

func (c *cardScreenController) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			c.finish(view.ActionQuit, "")
			return
		}

		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			continue
		}

		if inputEvent.Repeat {
			continue
		}

		now := time.Now()
		if c.directional.SetHeld(inputEvent.Button, inputEvent.Pressed, now) {
			if inputEvent.Pressed {
				c.focus = moveFocus(c.focus, directionDelta(inputEvent.Button), len(c.selectables))
			}
			continue
		}

		if !inputEvent.Pressed {
			continue
		}
		if now.Sub(c.lastInputTime) < c.inputDelay {
			continue
		}
		c.lastInputTime = now

		switch inputEvent.Button {
		case constants.VirtualButtonA:
			if c.focus >= 0 {
				c.finish(view.ActionActivated, c.selectables[c.focus].ID)
				return
			}
		case constants.VirtualButtonB:
			c.finish(view.ActionBack, "")
			return
		case constants.VirtualButtonMenu:
			c.finish(view.ActionHome, "")
			return
		}
	}
}

func directionDelta(button constants.VirtualButton) int {
	if button == constants.VirtualButtonUp {
		return -1
	}
	return 1
}

func (c *cardScreenController) render(window *internal.Window) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()
	m := currentMetrics(height)
	margin := m.px(constants.DefaultScreenMargin)

	window.Clear()

	// Top bar
	barY := m.px(10)
	internal.RenderText(renderer, internal.Fonts.MediumFont, c.screen.NavTitle, width/2, barY, theme.TextColor, constants.TextAlignCenter)
	top := barY + m.medium
	if c.screen.Breadcrumb != "" {
		crumb := internal.TruncateText(internal.Fonts.TinyFont, c.screen.Breadcrumb, width-2*margin)
		internal.RenderText(renderer, internal.Fonts.TinyFont, crumb, width/2, top+m.px(2), theme.SecondaryTextColor, constants.TextAlignCenter)
		top += m.tiny + m.px(2)
	}
	top += m.px(8)
	internal.DrawDivider(renderer, 0, width, top-1, internal.WithAlpha(theme.SecondaryTextColor, 60))

	bottom := height - footerHeight(internal.Fonts.TinyFont, margin)
	viewport := bottom - top

	layout := layoutScreen(c.screen, width, m)
	if c.focus >= 0 {
		c.scroll = scrollToShow(c.scroll, layout.selectableRect(c.selectables[c.focus]), viewport, layout.height, margin)
	}

	renderer.SetClipRect(&sdl.Rect{X: 0, Y: top, W: width, H: viewport})
	offset := top - c.scroll
	c.renderHeader(renderer, layout, width, offset, theme)
	c.renderGroups(renderer, layout, m, offset, theme)
	c.renderButtons(renderer, layout, m, offset, theme)
	renderer.SetClipRect(nil)

	renderFooter(renderer, internal.Fonts.TinyFont, c.screen.Footer, margin)
}

func shift(r sdl.Rect, dy int32) sdl.Rect {
	r.Y += dy
	return r
}

func (c *cardScreenController) isFocused(group, index int, button bool) bool {
	if c.focus < 0 {
		return false
	}
	s := c.selectables[c.focus]
	return s.Button == button && s.Group == group && s.Index == index
}

func (c *cardScreenController) renderHeader(renderer *sdl.Renderer, l cardLayout, width, offset int32, theme internal.Theme) {
	h := c.screen.Header
	left := l.textLeft(width)

	if h.Avatar != constants.IconNone {
		internal.RenderIcon(renderer, h.Avatar, shift(l.avatar, offset), theme.AccentColor)
	}

	x, align := left, constants.TextAlignLeft
	if h.Centered || h.Avatar != constants.IconNone {
		x, align = width/2, constants.TextAlignCenter
	}
	internal.RenderText(renderer, internal.Fonts.LargeFont, h.Title, x, l.titleY+offset, theme.TextColor, align)
	internal.RenderText(renderer, internal.Fonts.SmallFont, h.Subtitle, x, l.subtitleY+offset, theme.SecondaryTextColor, align)
}

// textLeft returns the left edge used for left aligned header text.
func (l cardLayout) textLeft(width int32) int32 {
	for _, g := range l.groups {
		if len(g.items) > 0 {
			return g.items[0].X
		}
	}
	if len(l.buttons) > 0 {
		return l.buttons[0].X
	}
	return width / 20
}

func (c *cardScreenController) renderGroups(renderer *sdl.Renderer, l cardLayout, m metrics, offset int32, theme internal.Theme) {
	radius := m.px(constants.DefaultCardRadius)
	ring := m.px(3)
	if ring < 2 {
		ring = 2
	}

	for gi, g := range c.screen.Groups {
		gl := l.groups[gi]

		if g.Style != view.GroupNavigation {
			internal.DrawCard(renderer, shift(gl.card, offset), radius, theme.CardColor, theme.ShadowColor)
		}

		for ii, item := range g.Items {
			rect := shift(gl.items[ii], offset)

			switch g.Style {
			case view.GroupNavigation:
				internal.DrawCard(renderer, rect, radius, theme.CardColor, theme.ShadowColor)
				c.renderItem(renderer, rect, item, m.px(56), m.px(14), internal.Fonts.MediumFont, internal.Fonts.SmallFont, m, theme)
			case view.GroupRows:
				c.renderItem(renderer, rect, item, m.px(36), m.px(10), internal.Fonts.MediumFont, internal.Fonts.TinyFont, m, theme)
			case view.GroupInfo:
				c.renderInfoRow(renderer, rect, item, m, theme)
			}

			if ii > 0 && g.Style != view.GroupNavigation {
				pad := m.px(16)
				internal.DrawDivider(renderer, rect.X+pad, rect.X+rect.W-pad, rect.Y, internal.WithAlpha(theme.SecondaryTextColor, 50))
			}

			if g.Style != view.GroupInfo && c.isFocused(gi, ii, false) {
				internal.DrawFocusRing(renderer, rect, radius, ring, theme.AccentColor)
			}
		}
	}
}

func (c *cardScreenController) renderItem(renderer *sdl.Renderer, rect sdl.Rect, item view.Item, badge, badgeRadius int32, titleFont, subtitleFont *ttf.Font, m metrics, theme internal.Theme) {
	pad := m.px(16)
	x := rect.X + pad

	if item.Icon != constants.IconNone {
		badgeRect := sdl.Rect{X: x, Y: rect.Y + (rect.H-badge)/2, W: badge, H: badge}
		internal.FillRoundedRect(renderer, badgeRect, badgeRadius, internal.HexToColor(item.Color))
		glyph := badge * 5 / 8
		internal.RenderIcon(renderer, item.Icon, sdl.Rect{X: badgeRect.X + (badge-glyph)/2, Y: badgeRect.Y + (badge-glyph)/2, W: glyph, H: glyph}, theme.IconColor)
		x += badge + pad
	}

	chevron := int32(0)
	if item.Chevron {
		chevron = m.px(20)
		internal.RenderIcon(renderer, constants.IconChevronRight,
			sdl.Rect{X: rect.X + rect.W - pad - chevron, Y: rect.Y + (rect.H-chevron)/2, W: chevron, H: chevron},
			theme.SecondaryTextColor)
	}

	maxText := rect.X + rect.W - pad - chevron - x
	titleH := int32(titleFont.Height())
	subH := int32(0)
	if item.Subtitle != "" {
		subH = int32(subtitleFont.Height()) + m.px(2)
	}
	ty := rect.Y + (rect.H-titleH-subH)/2

	internal.RenderText(renderer, titleFont, internal.TruncateText(titleFont, item.Title, maxText), x, ty, theme.TextColor, constants.TextAlignLeft)
	if item.Subtitle != "" {
		internal.RenderText(renderer, subtitleFont, internal.TruncateText(subtitleFont, item.Subtitle, maxText), x, ty+titleH+m.px(2), theme.SecondaryTextColor, constants.TextAlignLeft)
	}
}

func (c *cardScreenController) renderInfoRow(renderer *sdl.Renderer, rect sdl.Rect, item view.Item, m metrics, theme internal.Theme) {
	pad := m.px(16)
	font := internal.Fonts.MediumFont
	y := rect.Y + (rect.H-m.medium)/2
	internal.RenderText(renderer, font, item.Title, rect.X+pad, y, theme.SecondaryTextColor, constants.TextAlignLeft)
	internal.RenderText(renderer, font, item.Value, rect.X+rect.W-pad, y, theme.TextColor, constants.TextAlignRight)
}

func (c *cardScreenController) renderButtons(renderer *sdl.Renderer, l cardLayout, m metrics, offset int32, theme internal.Theme) {
	radius := m.px(14)
	ring := m.px(3)
	if ring < 2 {
		ring = 2
	}
	font := internal.Fonts.MediumFont

	for bi, b := range c.screen.Buttons {
		rect := shift(l.buttons[bi], offset)

		fill, label := theme.NeutralColor, theme.TextColor
		switch b.Style {
		case view.ButtonPrimary:
			fill, label = internal.HexToColor(b.Color), theme.IconColor
			if b.Color == 0 {
				fill = theme.AccentColor
			}
		case view.ButtonDestructive:
			fill, label = internal.WithAlpha(theme.DestructiveColor, 40), theme.DestructiveColor
		}

		internal.FillRoundedRect(renderer, rect, radius, fill)

		textW, _ := internal.MeasureText(font, b.Title)
		icon := int32(0)
		if b.Icon != constants.IconNone {
			icon = m.medium
		}
		gap := m.px(8)
		total := textW
		if icon > 0 {
			total += icon + gap
		}
		x := rect.X + (rect.W-total)/2
		y := rect.Y + (rect.H-m.medium)/2
		if icon > 0 {
			internal.RenderIcon(renderer, b.Icon, sdl.Rect{X: x, Y: y, W: icon, H: icon}, label)
			x += icon + gap
		}
		internal.RenderText(renderer, font, b.Title, x, y, label, constants.TextAlignLeft)

		if c.isFocused(-1, bi, true) {
			internal.DrawFocusRing(renderer, rect, radius, ring, theme.AccentColor)
		}
	}
}
