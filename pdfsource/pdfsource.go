// Package pdfsource resolves already-parsed pdfcpu objects into the
// values the rasterization pipeline consumes: fill colors from
// device-colorspace component arrays, affine matrices from /Matrix
// entries, and the graphics-state parameters a content-stream
// interpreter tracks. It does not tokenize content streams.
package pdfsource

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/fenwick-labs/raster2d"
)

// GraphicsState carries the subset of the PDF graphics state the
// pipeline needs to fill a path.
type GraphicsState struct {
	FillColor   raster2d.Color
	FillRule    raster2d.FillRule
	CTM         [6]float64
	LineWidth   float64
	FillAlpha   float64
	StrokeAlpha float64
}

// NewGraphicsState returns the PDF default state: black fill, non-zero
// winding, identity CTM, one-unit lines, opaque.
func NewGraphicsState() GraphicsState {
	return GraphicsState{
		FillColor:   raster2d.Color{A: 255},
		CTM:         [6]float64{1, 0, 0, 1, 0, 0},
		LineWidth:   1,
		FillAlpha:   1,
		StrokeAlpha: 1,
	}
}

// Number unwraps a pdfcpu numeric object.
func Number(obj types.Object) (float64, bool) {
	switch v := obj.(type) {
	case types.Float:
		return float64(v), true
	case types.Integer:
		return float64(v), true
	}
	return 0, false
}

// Matrix unwraps a six-element pdfcpu array into affine coefficients in
// PDF order (a b c d e f).
func Matrix(arr types.Array) ([6]float64, error) {
	var m [6]float64
	if len(arr) != 6 {
		return m, fmt.Errorf("pdfsource: matrix needs 6 elements, got %d", len(arr))
	}
	for i, obj := range arr {
		v, ok := Number(obj)
		if !ok {
			return m, fmt.Errorf("pdfsource: matrix element %d is not numeric", i)
		}
		m[i] = v
	}
	return m, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// DeviceColor converts device-colorspace components (1 = gray, 3 = RGB,
// 4 = CMYK, all in 0..1) to an opaque color.
func DeviceColor(comps []float64) (raster2d.Color, error) {
	switch len(comps) {
	case 1:
		g := to8(comps[0])
		return raster2d.Color{R: g, G: g, B: g, A: 255}, nil
	case 3:
		return raster2d.Color{
			R: to8(comps[0]), G: to8(comps[1]), B: to8(comps[2]), A: 255,
		}, nil
	case 4:
		c, m, y, k := clamp01(comps[0]), clamp01(comps[1]), clamp01(comps[2]), clamp01(comps[3])
		return raster2d.Color{
			R: to8((1 - c) * (1 - k)),
			G: to8((1 - m) * (1 - k)),
			B: to8((1 - y) * (1 - k)),
			A: 255,
		}, nil
	}
	return raster2d.Color{}, fmt.Errorf("pdfsource: unsupported component count %d", len(comps))
}

// ColorArray converts a pdfcpu array of color components.
func ColorArray(arr types.Array) (raster2d.Color, error) {
	comps := make([]float64, 0, len(arr))
	for i, obj := range arr {
		v, ok := Number(obj)
		if !ok {
			return raster2d.Color{}, fmt.Errorf("pdfsource: color component %d is not numeric", i)
		}
		comps = append(comps, v)
	}
	return DeviceColor(comps)
}

// ApplyExtGState folds an /ExtGState dictionary's relevant entries into
// the state: /LW (line width), /ca (fill alpha), /CA (stroke alpha).
// Unknown entries are ignored, as an interpreter would.
func (gs *GraphicsState) ApplyExtGState(d types.Dict) {
	if obj, found := d.Find("LW"); found {
		if v, ok := Number(obj); ok {
			gs.LineWidth = v
		}
	}
	if obj, found := d.Find("ca"); found {
		if v, ok := Number(obj); ok {
			gs.FillAlpha = clamp01(v)
			gs.FillColor.A = to8(gs.FillAlpha)
		}
	}
	if obj, found := d.Find("CA"); found {
		if v, ok := Number(obj); ok {
			gs.StrokeAlpha = clamp01(v)
		}
	}
}

// ApplyMatrix resolves a /Matrix entry of d, when present, into the CTM
// (premultiplied, as PDF's cm operator composes).
func (gs *GraphicsState) ApplyMatrix(d types.Dict) error {
	obj, found := d.Find("Matrix")
	if !found {
		return nil
	}
	arr, ok := obj.(types.Array)
	if !ok {
		return fmt.Errorf("pdfsource: /Matrix is not an array")
	}
	m, err := Matrix(arr)
	if err != nil {
		return err
	}
	gs.CTM = concat(m, gs.CTM)
	return nil
}

// concat returns a*b in PDF matrix convention.
func concat(a, b [6]float64) [6]float64 {
	return [6]float64{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}
