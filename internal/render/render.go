// Package render drives coverage from a rasterizer through a scanline
// container into a pixel format. Only solid fills live here; the color
// type is opaque and flows straight through to the format.
package render

import (
	"github.com/fenwick-labs/raster2d/internal/pathstore"
	"github.com/fenwick-labs/raster2d/internal/raster"
	"github.com/fenwick-labs/raster2d/internal/scanlines"
)

// PixelFormat is the outbound blend contract. C is the format's color
// type; the renderer never inspects it.
type PixelFormat[C any] interface {
	Width() int
	Height() int
	BlendHline(x, y, length int, c C, cover uint8)
	BlendSolidHspan(x, y, length int, c C, covers []uint8)
	CopyHline(x, y, length int, c C)
}

// Scanline is the container contract the renderer drains: the
// rasterizer-facing half plus span iteration.
type Scanline interface {
	raster.Scanline
	Reset(minX, maxX int)
	Y() int
	Spans() []scanlines.Span
}

// errored is implemented by containers that track bounds violations.
type errored interface {
	Err() error
}

// Scanlines sweeps every row of ras through sl and blends it into pf
// with the solid color c. A hard error from the rasterizer or the
// container aborts the render and is returned.
func Scanlines[C any](ras *raster.Rasterizer, sl Scanline, pf PixelFormat[C], c C) error {
	if !ras.RewindScanlines() {
		return ras.Err()
	}
	sl.Reset(ras.MinX(), ras.MaxX())
	for ras.SweepScanline(sl) {
		y := sl.Y()
		for _, sp := range sl.Spans() {
			if sp.Covers != nil {
				pf.BlendSolidHspan(int(sp.X), y, int(sp.Len), c, sp.Covers[:sp.Len])
			} else {
				pf.BlendHline(int(sp.X), y, int(sp.Len), c, sp.Cover)
			}
		}
	}
	if err := ras.Err(); err != nil {
		return err
	}
	if e, ok := sl.(errored); ok {
		return e.Err()
	}
	return nil
}

// FillPath rasterizes vs and renders it in one call.
func FillPath[C any](ras *raster.Rasterizer, sl Scanline, pf PixelFormat[C], vs pathstore.VertexSource, pathID uint32, c C) error {
	ras.Reset()
	ras.AddPath(vs, pathID)
	return Scanlines(ras, sl, pf, c)
}
