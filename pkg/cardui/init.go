// Package cardui provides a small card based UI framework for SDL2
// applications on handheld Linux devices and desktops.
//
// The package handles SDL initialization, input mapping, theming and
// logging, and draws card screens described by the view package.
package cardui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/internal"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/platform/cannoli"
)

// WindowOptions selects SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures the framework initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	ShowBackground       bool          // Whether to render the theme background image
	WindowOptions        WindowOptions // SDL window flags
	PrimaryThemeColorHex uint32        // Custom accent color as 0xRRGGBB, 0 keeps the theme's
	IsCannoli            bool          // Use the Cannoli theme and font
	FontPath             string        // Overrides the theme font
	ControllerConfigFile string        // Path to a TOML controller mapping file
	LogPath              string        // Full path for the log file including filename
	FlipFaceButtons      bool          // Use direct face button mapping (A=A, B=B)
	PowerButtonDevice    string        // evdev node for the power key, empty disables it
}

// Init initializes SDL, theming and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	if options.ControllerConfigFile != "" {
		data, err := os.ReadFile(options.ControllerConfigFile)
		if err != nil {
			return NewInfrastructureError("load_controller_config", err)
		}
		if err := internal.SetInputMappingBytes(data); err != nil {
			return NewInfrastructureError("load_controller_config", err)
		}
	}

	theme := internal.DefaultTheme()
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme(cannoli.DefaultFontPath)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.PowerButtonDevice != "" {
		pbc = internal.DefaultPowerButtonConfig(options.PowerButtonDevice)
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc); err != nil {
		return NewInfrastructureError("init", err)
	}

	internal.GetInternalLogger().Debug("cardui initialized", "title", options.WindowTitle, "font", theme.FontPath)
	return nil
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init or GetLogger to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) error {
	if _, ok := internal.ParseLogLevel(level); !ok {
		internal.SetRawLogLevel(level)
		return fmt.Errorf("unknown log level %q, using info", level)
	}
	internal.SetRawLogLevel(level)
	return nil
}
