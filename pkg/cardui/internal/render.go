package internal

import (
	"math"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MeasureText returns the rendered size of text in font.
func MeasureText(font *ttf.Font, text string) (int32, int32) {
	if text == "" {
		return 0, int32(font.Height())
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, int32(font.Height())
	}
	return int32(w), int32(h)
}

// TruncateText shortens text with an ellipsis until it fits maxWidth.
func TruncateText(font *ttf.Font, text string, maxWidth int32) string {
	if w, _ := MeasureText(font, text); w <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if w, _ := MeasureText(font, candidate); w <= maxWidth {
			return candidate
		}
	}
	return ""
}

// RenderText draws text with its top edge at y. x is the left edge, the
// centre or the right edge depending on align. It returns the drawn size.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Warn("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	switch align {
	case constants.TextAlignCenter:
		x -= surface.W / 2
	case constants.TextAlignRight:
		x -= surface.W
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// FillRoundedRect fills rect with rounded corners of the given radius.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if limit := min(rect.W, rect.H) / 2; radius > limit {
		radius = limit
	}

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius <= 0 {
		renderer.FillRect(&rect)
		return
	}

	body := sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius}
	renderer.FillRect(&body)

	for dy := int32(0); dy < radius; dy++ {
		inset := CornerInset(radius, dy)
		top := rect.Y + dy
		bottom := rect.Y + rect.H - 1 - dy
		left := rect.X + inset
		right := rect.X + rect.W - 1 - inset
		renderer.DrawLine(left, top, right, top)
		renderer.DrawLine(left, bottom, right, bottom)
	}
}

// CornerInset is how far row dy of a rounded corner is pushed in from the
// straight edge.
func CornerInset(radius, dy int32) int32 {
	y := float64(radius) - float64(dy) - 0.5
	x := math.Sqrt(float64(radius*radius) - y*y)
	return radius - int32(math.Round(x))
}

// DrawCard draws a rounded card with a soft shadow offset downwards.
func DrawCard(renderer *sdl.Renderer, rect sdl.Rect, radius int32, fill, shadow sdl.Color) {
	if shadow.A > 0 {
		shadowRect := rect
		shadowRect.Y += 4
		FillRoundedRect(renderer, shadowRect, radius, shadow)
	}
	FillRoundedRect(renderer, rect, radius, fill)
}

// DrawFocusRing outlines rect with a rounded border of the given width.
func DrawFocusRing(renderer *sdl.Renderer, rect sdl.Rect, radius, width int32, color sdl.Color) {
	for i := int32(0); i < width; i++ {
		r := sdl.Rect{X: rect.X - i - 1, Y: rect.Y - i - 1, W: rect.W + 2*(i+1), H: rect.H + 2*(i+1)}
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		inner := radius + i + 1
		renderer.DrawLine(r.X+inner, r.Y, r.X+r.W-1-inner, r.Y)
		renderer.DrawLine(r.X+inner, r.Y+r.H-1, r.X+r.W-1-inner, r.Y+r.H-1)
		renderer.DrawLine(r.X, r.Y+inner, r.X, r.Y+r.H-1-inner)
		renderer.DrawLine(r.X+r.W-1, r.Y+inner, r.X+r.W-1, r.Y+r.H-1-inner)
		for dy := int32(0); dy < inner; dy++ {
			inset := CornerInset(inner, dy)
			renderer.DrawPoint(r.X+inset, r.Y+dy)
			renderer.DrawPoint(r.X+r.W-1-inset, r.Y+dy)
			renderer.DrawPoint(r.X+inset, r.Y+r.H-1-dy)
			renderer.DrawPoint(r.X+r.W-1-inset, r.Y+r.H-1-dy)
		}
	}
}

// DrawDivider draws a one pixel horizontal line.
func DrawDivider(renderer *sdl.Renderer, x1, x2, y int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.DrawLine(x1, y, x2, y)
}
