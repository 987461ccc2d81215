// Command rasterdemo renders a handful of anti-aliased shapes into an
// RGBA surface and shows it in an SDL2 window. It doubles as a smoke
// test for the whole pipeline: paths, curves, transforms, rasterizer
// and blend surface.
package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/fenwick-labs/raster2d"
)

const (
	winWidth  = 640
	winHeight = 480
)

func drawScene(s *raster2d.Surface) error {
	ctx := raster2d.NewContext(s)

	// Background.
	ctx.AddRect(0, 0, winWidth, winHeight)
	if err := ctx.Fill(raster2d.Color{R: 245, G: 245, B: 240, A: 255}); err != nil {
		return err
	}

	// Even-odd donut.
	ctx.BeginPath()
	ctx.SetFillRule(raster2d.EvenOdd)
	ctx.AddEllipse(180, 200, 120, 120, 0)
	ctx.AddEllipse(180, 200, 60, 60, 0)
	if err := ctx.Fill(raster2d.Color{R: 200, G: 60, B: 40, A: 255}); err != nil {
		return err
	}

	// Rounded rectangle with translucent fill.
	ctx.BeginPath()
	ctx.SetFillRule(raster2d.NonZero)
	ctx.AddRoundedRect(120, 140, 520, 340, 28)
	if err := ctx.Fill(raster2d.Color{R: 40, G: 90, B: 180, A: 128}); err != nil {
		return err
	}

	// A cubic leaf, rotated.
	ctx.BeginPath()
	ctx.Translate(430, 240)
	ctx.Rotate(0.5)
	ctx.MoveTo(0, 0)
	ctx.Curve4(60, -90, 140, -90, 170, 0)
	ctx.Curve4(140, 90, 60, 90, 0, 0)
	ctx.ClosePolygon()
	if err := ctx.Fill(raster2d.Color{R: 40, G: 140, B: 60, A: 255}); err != nil {
		return err
	}
	ctx.ResetTransform()
	return nil
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init SDL2: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"raster2d demo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winWidth, winHeight,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING,
		winWidth, winHeight)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	surf := raster2d.NewSurface(raster2d.LayoutRGBA32, winWidth, winHeight)
	if err := drawScene(surf); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	pixels := surf.Bytes()
	if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), winWidth*4); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}

	for {
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		event := sdl.WaitEvent()
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return nil
			}
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
