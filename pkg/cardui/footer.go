package cardui

import (
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/internal"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// footerHeight is the space reserved at the bottom of the window for help items.
func footerHeight(font *ttf.Font, margin int32) int32 {
	return int32(font.Height()) + margin
}

// renderFooter draws button hints as "[A] Select  [B] Back" along the
// bottom edge, right aligned.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []view.FooterHelpItem, margin int32) {
	if len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	window := internal.GetWindow()
	height := int32(font.Height())
	y := window.GetHeight() - height - margin/2
	pillPad := height / 3
	gap := height

	x := window.GetWidth() - margin
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		textW, _ := internal.MeasureText(font, item.HelpText)
		x -= textW
		internal.RenderText(renderer, font, item.HelpText, x, y, theme.SecondaryTextColor, constants.TextAlignLeft)

		labelW, _ := internal.MeasureText(font, item.ButtonName)
		pillW := labelW + 2*pillPad
		if pillW < height {
			pillW = height
		}
		x -= pillW + pillPad
		pill := sdl.Rect{X: x, Y: y, W: pillW, H: height}
		internal.FillRoundedRect(renderer, pill, height/2, theme.AccentColor)
		internal.RenderText(renderer, font, item.ButtonName, x+pillW/2, y, theme.IconColor, constants.TextAlignCenter)

		x -= gap
	}
}
