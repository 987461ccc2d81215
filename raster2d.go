// Package raster2d is a 2D anti-aliased vector rasterization library:
// a path model, adaptive curve flattening, affine transforms, an exact
// subpixel-coverage polygon rasterizer and pixel-format blend surfaces.
//
// The Context ties the pipeline together for the common case of
// filling paths with solid colors:
//
//	s := raster2d.NewSurface(raster2d.LayoutRGBA32, 256, 256)
//	ctx := raster2d.NewContext(s)
//	ctx.AddEllipse(128, 128, 100, 100, 0)
//	ctx.Fill(raster2d.Color{R: 255, A: 255})
package raster2d

import (
	"github.com/fenwick-labs/raster2d/internal/affine"
	"github.com/fenwick-labs/raster2d/internal/flatten"
	"github.com/fenwick-labs/raster2d/internal/pathstore"
	"github.com/fenwick-labs/raster2d/internal/primitives"
	"github.com/fenwick-labs/raster2d/internal/raster"
	"github.com/fenwick-labs/raster2d/internal/render"
	"github.com/fenwick-labs/raster2d/internal/scanlines"
	"github.com/fenwick-labs/raster2d/internal/surface"
)

// Color is a straight-alpha sRGBA color.
type Color struct {
	R, G, B, A uint8
}

// FillRule selects the winding rule for Fill.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// PixelLayout names the supported surface pixel layouts.
type PixelLayout int

const (
	LayoutGray8 PixelLayout = iota
	LayoutRGB24
	LayoutBGR24
	LayoutRGBA32
	LayoutBGRA32
	LayoutARGB32
	LayoutABGR32
)

// PixWidth returns the layout's bytes per pixel.
func (l PixelLayout) PixWidth() int {
	switch l {
	case LayoutGray8:
		return 1
	case LayoutRGB24, LayoutBGR24:
		return 3
	default:
		return 4
	}
}

// Surface is pixel memory plus its layout. The memory is owned by the
// caller when attached, by the surface when allocated with NewSurface.
type Surface struct {
	rb     *surface.RenderingBuffer
	layout PixelLayout
}

// NewSurface allocates a zeroed surface.
func NewSurface(layout PixelLayout, width, height int) *Surface {
	stride := width * layout.PixWidth()
	buf := make([]byte, stride*height)
	return AttachSurface(layout, buf, width, height, stride)
}

// AttachSurface wraps caller-owned memory. stride is in bytes and may
// be negative for bottom-up buffers.
func AttachSurface(layout PixelLayout, buf []byte, width, height, stride int) *Surface {
	return &Surface{
		rb:     surface.NewRenderingBuffer(buf, width, height, stride),
		layout: layout,
	}
}

// Bytes returns the underlying pixel memory.
func (s *Surface) Bytes() []byte { return s.rb.Buf() }

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.rb.Width() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.rb.Height() }

// Layout returns the pixel layout.
func (s *Surface) Layout() PixelLayout { return s.layout }

// Context accumulates a path and fills it into a surface. A Context is
// single-goroutine; independent renders want independent contexts.
type Context struct {
	surf *Surface
	path *pathstore.Store
	flat *flatten.Flattener
	ras  *raster.Rasterizer
	sl   *scanlines.Unpacked
	mtx  affine.Matrix
}

// NewContext builds a pipeline rendering into s.
func NewContext(s *Surface) *Context {
	c := &Context{
		surf: s,
		path: pathstore.New(),
		ras:  raster.NewRasterizer(),
		sl:   scanlines.NewUnpacked(),
		mtx:  affine.Identity(),
	}
	c.flat = flatten.NewFlattener(c.path)
	return c
}

// BeginPath discards the accumulated path.
func (c *Context) BeginPath() { c.path.RemoveAll() }

// MoveTo starts a new contour.
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo extends the contour with a straight segment.
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// Curve3 extends the contour with a quadratic Bezier.
func (c *Context) Curve3(xCtrl, yCtrl, xTo, yTo float64) {
	c.path.Curve3(xCtrl, yCtrl, xTo, yTo)
}

// Curve4 extends the contour with a cubic Bezier.
func (c *Context) Curve4(xCtrl1, yCtrl1, xCtrl2, yCtrl2, xTo, yTo float64) {
	c.path.Curve4(xCtrl1, yCtrl1, xCtrl2, yCtrl2, xTo, yTo)
}

// ArcTo extends the contour with an SVG-style elliptical arc.
func (c *Context) ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) {
	c.path.ArcTo(rx, ry, angle, largeArc, sweep, x, y)
}

// ClosePolygon closes the current contour.
func (c *Context) ClosePolygon() { c.path.ClosePolygon(primitives.FlagNone) }

// AddRect appends a rectangle contour.
func (c *Context) AddRect(x1, y1, x2, y2 float64) { c.path.AddRect(x1, y1, x2, y2) }

// AddEllipse appends an ellipse contour; steps <= 0 picks automatically.
func (c *Context) AddEllipse(cx, cy, rx, ry float64, steps int) {
	c.path.AddEllipse(cx, cy, rx, ry, steps)
}

// AddRoundedRect appends a rounded rectangle contour.
func (c *Context) AddRoundedRect(x1, y1, x2, y2, r float64) {
	c.path.AddRoundedRect(x1, y1, x2, y2, r)
}

// ResetTransform restores the identity transform.
func (c *Context) ResetTransform() { c.mtx = affine.Identity() }

// Transform operations compose canvas-style: the most recent call
// applies to path coordinates first, so Translate-then-Rotate places a
// locally rotated shape at the translated position.

// Translate prepends a translation to the transform.
func (c *Context) Translate(x, y float64) { c.mtx.Premultiply(affine.Translation(x, y)) }

// Rotate prepends a rotation to the transform.
func (c *Context) Rotate(angle float64) { c.mtx.Premultiply(affine.Rotation(angle)) }

// Scale prepends a scale to the transform.
func (c *Context) Scale(sx, sy float64) { c.mtx.Premultiply(affine.Scaling(sx, sy)) }

// SetFillRule selects the winding rule.
func (c *Context) SetFillRule(rule FillRule) {
	if rule == EvenOdd {
		c.ras.SetFillingRule(primitives.FillEvenOdd)
	} else {
		c.ras.SetFillingRule(primitives.FillNonZero)
	}
}

// SetGamma installs a power-curve coverage response.
func (c *Context) SetGamma(g float64) {
	if g == 1 {
		c.ras.SetGamma(raster.GammaNone)
		return
	}
	c.ras.SetGamma(raster.GammaPower(g))
}

// SetClipBox clips rendering to the box in user coordinates.
func (c *Context) SetClipBox(x1, y1, x2, y2 float64) {
	c.ras.SetClipBox(x1, y1, x2, y2)
}

// transformed maps a vertex source through an affine matrix.
type transformed struct {
	src pathstore.VertexSource
	m   affine.Matrix
}

func (t *transformed) Rewind(pathID uint32) { t.src.Rewind(pathID) }

func (t *transformed) NextVertex() (x, y float64, cmd primitives.Cmd) {
	x, y, cmd = t.src.NextVertex()
	if cmd.IsVertex() {
		x, y = t.m.Transform(x, y)
	}
	return
}

// source returns the path wrapped in flattening and, when needed, the
// transform. Flattening tolerance follows the transform scale.
func (c *Context) source() pathstore.VertexSource {
	c.flat.Attach(c.path)
	c.flat.SetApproximationScale(c.mtx.ScaleFactor())
	if c.mtx.IsIdentity(primitives.AffineEpsilon) {
		return c.flat
	}
	return &transformed{src: c.flat, m: c.mtx}
}

// Fill renders the accumulated path with a solid color and keeps the
// path for further fills.
func (c *Context) Fill(col Color) error {
	c.ras.Reset()
	c.ras.AddPath(c.source(), 0)

	rgba := surface.RGBA8{R: col.R, G: col.G, B: col.B, A: col.A}
	switch c.surf.layout {
	case LayoutGray8:
		pf := surface.NewPixFmtGray8(c.surf.rb)
		return render.Scanlines(c.ras, c.sl, pf, surface.GrayFromRGBA8(rgba))
	case LayoutRGB24:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtRGB24(c.surf.rb), rgba)
	case LayoutBGR24:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtBGR24(c.surf.rb), rgba)
	case LayoutBGRA32:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtRGBA32(c.surf.rb, surface.OrderBGRA), rgba)
	case LayoutARGB32:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtRGBA32(c.surf.rb, surface.OrderARGB), rgba)
	case LayoutABGR32:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtRGBA32(c.surf.rb, surface.OrderABGR), rgba)
	default:
		return render.Scanlines(c.ras, c.sl, surface.NewPixFmtRGBA32(c.surf.rb, surface.OrderRGBA), rgba)
	}
}

// HitTest reports whether the accumulated path covers pixel (x, y)
// under the current transform and fill rule.
func (c *Context) HitTest(x, y int) bool {
	c.ras.Reset()
	c.ras.AddPath(c.source(), 0)
	return c.ras.HitTest(x, y)
}
