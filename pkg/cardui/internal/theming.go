package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of card screens.
type Theme struct {
	BackgroundColor     sdl.Color // Screen background
	CardColor           sdl.Color // Card and row backgrounds
	ShadowColor         sdl.Color // Drop shadow under cards
	TextColor           sdl.Color // Titles and primary text
	SecondaryTextColor  sdl.Color // Subtitles, values, chevrons
	AccentColor         sdl.Color // Focus ring, avatar tint
	IconColor           sdl.Color // Glyph colour inside icon badges
	NeutralColor        sdl.Color // Secondary button fill
	DestructiveColor    sdl.Color // Destructive button label and tint
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Optional background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c sdl.Color, alpha uint8) sdl.Color {
	c.A = alpha
	return c
}
