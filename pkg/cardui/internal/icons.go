package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFS embed.FS

const iconCacheSize = 24

var iconCache *TextureCache

func initIconCache() {
	iconCache = NewTextureCacheWithSize(iconCacheSize)
}

func closeIconCache() {
	if iconCache != nil {
		iconCache.Destroy()
		iconCache = nil
	}
}

// RasterizeIcon draws the named icon into a size×size RGBA image.
// Icons are white on transparent so they can be tinted with a colour mod.
func RasterizeIcon(icon constants.Icon, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %s: invalid size %d", icon, size)
	}

	data, err := iconFS.ReadFile("icons/" + string(icon) + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", icon, err)
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icon %s: parse: %w", icon, err)
	}

	svg.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return rgba, nil
}

// IconTexture returns a cached texture for icon at size pixels.
// The caller must not destroy the texture; the cache owns it.
func IconTexture(renderer *sdl.Renderer, icon constants.Icon, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", icon, size)
	if iconCache != nil {
		if tex := iconCache.Get(key); tex != nil {
			return tex, nil
		}
	}

	rgba, err := RasterizeIcon(icon, int(size))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("icon %s: surface: %w", icon, err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(rgba)
	if err != nil {
		return nil, fmt.Errorf("icon %s: texture: %w", icon, err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	if iconCache != nil {
		iconCache.Set(key, tex)
	}
	return tex, nil
}

// RenderIcon draws icon tinted with color inside rect.
func RenderIcon(renderer *sdl.Renderer, icon constants.Icon, rect sdl.Rect, color sdl.Color) {
	if icon == constants.IconNone {
		return
	}
	size := rect.W
	if rect.H < size {
		size = rect.H
	}
	tex, err := IconTexture(renderer, icon, size)
	if err != nil {
		GetInternalLogger().Warn("Failed to render icon", "icon", string(icon), "error", err)
		return
	}
	tex.SetColorMod(color.R, color.G, color.B)
	tex.SetAlphaMod(color.A)
	dst := sdl.Rect{X: rect.X + (rect.W-size)/2, Y: rect.Y + (rect.H-size)/2, W: size, H: size}
	renderer.Copy(tex, nil, &dst)
}
