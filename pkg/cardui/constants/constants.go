// Package constants defines shared constants, types, and configuration values
// used throughout the cardui framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the framework and the demo application.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"       // DEV enables windowed mode and debug logging
	BackgroundPathEnvVar  = "BACKGROUND_PATH"   // Custom background image path
	WindowWidthEnvVar     = "WINDOW_WIDTH"      // Window width in dev mode
	WindowHeightEnvVar    = "WINDOW_HEIGHT"     // Window height in dev mode
	FlipFaceButtonsEnvVar = "FLIP_FACE_BUTTONS" // Use direct A/B mapping
	LanguageEnvVar        = "ROUTERDEMO_LANG"   // BCP 47 tag for screen text
	ConfigPathEnvVar      = "ROUTERDEMO_CONFIG" // Path to the TOML config file
	LogLevelEnvVar        = "ROUTERDEMO_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction lets the same screens work with a keyboard or a controller.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// ParseVirtualButton returns the button whose String matches name.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb := VirtualButtonUp; vb <= VirtualButtonMenu; vb++ {
		if vb.String() == name {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultFrameDelay         = 16 * time.Millisecond // ~60fps when VSync is unavailable
	DefaultCardRadius   int32 = 16
	DefaultCardSpacing  int32 = 16
	DefaultScreenMargin int32 = 20
)
