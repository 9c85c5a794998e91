// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/internal"
)

// DefaultFontPath is where Cannoli keeps its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a dark card theme with Cannoli's teal accent and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor:    internal.HexToColor(0x101414),
		CardColor:          internal.HexToColor(0x1F2626),
		ShadowColor:        internal.WithAlpha(internal.HexToColor(0x000000), 90),
		TextColor:          internal.HexToColor(0xFFFFFF),
		SecondaryTextColor: internal.HexToColor(0x9AA5A5),
		AccentColor:        internal.HexToColor(0x008080),
		IconColor:          internal.HexToColor(0xFFFFFF),
		NeutralColor:       internal.HexToColor(0x2E3838),
		DestructiveColor:   internal.HexToColor(0xFF5A4F),
		FontPath:           fontPath,
	}
}
