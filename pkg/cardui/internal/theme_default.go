package internal

// DefaultFontPath is used when no platform theme supplies a font.
const DefaultFontPath = "assets/fonts/Inter-SemiBold.ttf"

// DefaultTheme is a light card theme in the style of system settings screens.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:    HexToColor(0xF2F2F7),
		CardColor:          HexToColor(0xFFFFFF),
		ShadowColor:        WithAlpha(HexToColor(0x000000), 20),
		TextColor:          HexToColor(0x000000),
		SecondaryTextColor: HexToColor(0x8E8E93),
		AccentColor:        HexToColor(0x007AFF),
		IconColor:          HexToColor(0xFFFFFF),
		NeutralColor:       HexToColor(0xE5E5EA),
		DestructiveColor:   HexToColor(0xFF3B30),
		FontPath:           DefaultFontPath,
	}
}
