package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for a 480 pixel tall screen.
// They are scaled to the actual window height when fonts are loaded.
type FontSizes struct {
	Large  int // Screen titles
	Medium int // Card titles, buttons
	Small  int // Subtitles, row values
	Tiny   int // Footer and breadcrumb
}

var DefaultFontSizes = FontSizes{
	Large:  30,
	Medium: 21,
	Small:  16,
	Tiny:   13,
}

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

var Fonts fontsManager

func scaledSize(size int, windowHeight int32) int {
	if windowHeight <= 0 {
		return size
	}
	scaled := int(float64(size) * float64(windowHeight) / 480.0)
	if scaled < 8 {
		return 8
	}
	return scaled
}

func initFonts(path string, sizes FontSizes) error {
	height := int32(480)
	if window != nil {
		height = window.GetHeight()
	}

	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, scaledSize(size, height))
		if err != nil {
			return nil, fmt.Errorf("open %s at %dpt: %w", path, size, err)
		}
		return f, nil
	}

	var err error
	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	if Fonts.TinyFont, err = open(sizes.Tiny); err != nil {
		return err
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "window_height", height)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
