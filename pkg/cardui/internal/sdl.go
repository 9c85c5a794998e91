package internal

import (
	"fmt"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts, input and, on devices, the
// power button watcher. The returned error names the step that failed.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Fullscreen: true}
		}
	}

	var err error
	window, err = initWindow(title, showBackground, winOpts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	initIconCache()

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		startPowerButtonHandler(pbc)
	}

	return nil
}

func SDLCleanup() {
	stopPowerButtonHandler()
	closeIconCache()
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
