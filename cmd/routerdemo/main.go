// Command routerdemo is a three screen demo of stack based navigation on
// an SDL window, driven by keyboard or game controller.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaushalbhalara/routerdemo/internal/app"
	"github.com/kaushalbhalara/routerdemo/internal/config"
	"github.com/kaushalbhalara/routerdemo/internal/locale"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "routerdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	cardui.SetLogPath(cfg.LogPath)
	logger := cardui.GetLogger()
	if err := cardui.SetRawLogLevel(cfg.LogLevel); err != nil {
		logger.Warn("Invalid log level", "error", err)
	}

	accent, err := cfg.AccentHex()
	if err != nil {
		return err
	}

	if err := cardui.Init(cardui.Options{
		WindowTitle:          cfg.WindowTitle,
		ShowBackground:       cfg.ShowBackground,
		PrimaryThemeColorHex: accent,
		IsCannoli:            cfg.Cannoli,
		FontPath:             cfg.FontPath,
		ControllerConfigFile: cfg.ControllerMapping,
		LogPath:              cfg.LogPath,
		FlipFaceButtons:      cfg.FlipFaceButtons,
		PowerButtonDevice:    cfg.PowerButtonDevice,
	}); err != nil {
		return err
	}
	defer cardui.Close()

	text, err := locale.New(cfg.Language, logger)
	if err != nil {
		return err
	}
	logger.Info("Locale loaded", "requested", cfg.Language, "language", text.Language().String())

	demo := app.New(cardui.NewPresenter(), text, app.Options{
		ProfileUserID: cfg.ProfileUserID,
		Logger:        logger,
	})
	defer demo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = demo.Run(ctx)
	switch {
	case err == nil:
		logger.Info("Exit requested", "breadcrumb", demo.Breadcrumb())
		return nil
	case cardui.IsCancelled(err):
		logger.Info("Interrupted on screen", "breadcrumb", demo.Breadcrumb())
		return nil
	case errors.Is(err, context.Canceled):
		logger.Info("Interrupted", "breadcrumb", demo.Breadcrumb())
		return nil
	default:
		logger.Error("Navigation stopped", "error", err)
		return err
	}
}
