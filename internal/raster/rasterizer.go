package raster

import (
	"github.com/fenwick-labs/raster2d/internal/pathstore"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// Scanline is the container contract the sweep fills row by row.
type Scanline interface {
	ResetSpans()
	AddCell(x int, cover uint)
	AddSpan(x, length int, cover uint)
	Finalize(y int)
	NumSpans() int
}

// status tracks the contour state machine.
type status uint8

const (
	statusInitial status = iota
	statusMoveTo
	statusLineTo
	statusClosed
)

// Rasterizer converts vertex sources into coverage scanlines. Feed it
// geometry with MoveToD/LineToD or AddPath, then pull rows with
// RewindScanlines and SweepScanline. A Rasterizer holds per-path state
// only; Reset clears it for the next path.
type Rasterizer struct {
	cells   *CellStore
	clip    clipper
	gamma   [primitives.AAScale]uint8
	rule    primitives.FillingRule
	auto    bool
	startX  int
	startY  int
	status  status
	scanY   int
	lastErr error
}

// NewRasterizer returns a rasterizer with a linear gamma, non-zero
// filling rule and automatic contour closing.
func NewRasterizer() *Rasterizer {
	r := &Rasterizer{
		cells: NewCellStore(0),
		rule:  primitives.FillNonZero,
		auto:  true,
	}
	for i := range r.gamma {
		r.gamma[i] = uint8(i)
	}
	return r
}

// Reset drops all accumulated cells and contour state.
func (r *Rasterizer) Reset() {
	r.cells.Reset()
	r.status = statusInitial
	r.lastErr = nil
}

// Err returns the first hard error hit since the last Reset.
func (r *Rasterizer) Err() error { return r.lastErr }

// ResetClipping removes the clip box.
func (r *Rasterizer) ResetClipping() {
	r.Reset()
	r.clip.reset()
}

// SetClipBox clips subsequent geometry to the box, in user units.
func (r *Rasterizer) SetClipBox(x1, y1, x2, y2 float64) {
	r.Reset()
	r.clip.clipBox(
		primitives.UpscaleD(x1), primitives.UpscaleD(y1),
		primitives.UpscaleD(x2), primitives.UpscaleD(y2))
}

// SetFillingRule selects non-zero or even-odd winding.
func (r *Rasterizer) SetFillingRule(rule primitives.FillingRule) { r.rule = rule }

// FillingRule returns the active winding rule.
func (r *Rasterizer) FillingRule() primitives.FillingRule { return r.rule }

// SetAutoClose controls whether MoveTo implicitly closes the previous
// contour.
func (r *Rasterizer) SetAutoClose(flag bool) { r.auto = flag }

// SetGamma samples fn into the coverage LUT. The LUT applies after the
// filling rule has folded the winding into 0..AAMask.
func (r *Rasterizer) SetGamma(fn GammaFunc) {
	for i := range r.gamma {
		v := fn(float64(i)/primitives.AAMask) * primitives.AAMask
		if v < 0 {
			v = 0
		}
		if v > primitives.AAMask {
			v = primitives.AAMask
		}
		r.gamma[i] = uint8(v)
	}
}

// ApplyGamma passes one coverage value through the LUT.
func (r *Rasterizer) ApplyGamma(cover int) uint8 {
	if cover > primitives.AAMask {
		cover = primitives.AAMask
	}
	return r.gamma[cover]
}

// MoveTo starts a contour at integer pixel coordinates.
func (r *Rasterizer) MoveTo(x, y int) {
	r.startContour(primitives.Upscale(x), primitives.Upscale(y))
}

// LineTo extends the contour to integer pixel coordinates.
func (r *Rasterizer) LineTo(x, y int) {
	r.clip.lineTo(r.cells, primitives.Upscale(x), primitives.Upscale(y))
	r.status = statusLineTo
}

// MoveToD starts a contour at float coordinates.
func (r *Rasterizer) MoveToD(x, y float64) {
	r.startContour(primitives.UpscaleD(x), primitives.UpscaleD(y))
}

// LineToD extends the contour to float coordinates.
func (r *Rasterizer) LineToD(x, y float64) {
	r.clip.lineTo(r.cells, primitives.UpscaleD(x), primitives.UpscaleD(y))
	r.status = statusLineTo
}

func (r *Rasterizer) startContour(x, y int) {
	if r.cells.Sorted() {
		r.Reset()
	}
	if r.auto {
		r.ClosePolygon()
	}
	r.startX = x
	r.startY = y
	r.clip.moveTo(x, y)
	r.status = statusMoveTo
}

// ClosePolygon draws the closing segment of the current contour.
func (r *Rasterizer) ClosePolygon() {
	if r.status == statusLineTo || r.status == statusMoveTo {
		r.clip.lineTo(r.cells, r.startX, r.startY)
		r.status = statusClosed
	}
}

// AddVertex feeds one (x, y, cmd) triple through the state machine.
func (r *Rasterizer) AddVertex(x, y float64, cmd primitives.Cmd) {
	switch {
	case cmd.IsMoveTo():
		r.MoveToD(x, y)
	case cmd.IsVertex():
		r.LineToD(x, y)
	case cmd.IsClose():
		r.ClosePolygon()
	}
}

// Edge rasterizes one detached segment with float coordinates.
func (r *Rasterizer) Edge(x1, y1, x2, y2 float64) {
	if r.cells.Sorted() {
		r.Reset()
	}
	r.clip.moveTo(primitives.UpscaleD(x1), primitives.UpscaleD(y1))
	r.clip.lineTo(r.cells, primitives.UpscaleD(x2), primitives.UpscaleD(y2))
	r.status = statusLineTo
}

// AddPath consumes an entire vertex source.
func (r *Rasterizer) AddPath(vs pathstore.VertexSource, pathID uint32) {
	vs.Rewind(pathID)
	if r.cells.Sorted() {
		r.Reset()
	}
	for {
		x, y, cmd := vs.NextVertex()
		if cmd.IsStop() {
			break
		}
		r.AddVertex(x, y, cmd)
	}
}

// MinX returns the smallest pixel column touched.
func (r *Rasterizer) MinX() int { return r.cells.MinX() }

// MinY returns the smallest pixel row touched.
func (r *Rasterizer) MinY() int { return r.cells.MinY() }

// MaxX returns the largest pixel column touched.
func (r *Rasterizer) MaxX() int { return r.cells.MaxX() }

// MaxY returns the largest pixel row touched.
func (r *Rasterizer) MaxY() int { return r.cells.MaxY() }

// Sort closes the contour and sorts the cell store.
func (r *Rasterizer) Sort() {
	if r.auto {
		r.ClosePolygon()
	}
	r.cells.SortCells()
}

// RewindScanlines sorts the cells and positions the sweep at the first
// row. It reports false when there is nothing to sweep.
func (r *Rasterizer) RewindScanlines() bool {
	if r.auto {
		r.ClosePolygon()
	}
	r.cells.SortCells()
	if r.cells.TotalCells() == 0 {
		return false
	}
	r.scanY = r.cells.MinY()
	return true
}

// NavigateScanline positions the sweep at an arbitrary row.
func (r *Rasterizer) NavigateScanline(y int) bool {
	if r.auto {
		r.ClosePolygon()
	}
	r.cells.SortCells()
	if r.cells.TotalCells() == 0 || y < r.cells.MinY() || y > r.cells.MaxY() {
		return false
	}
	r.scanY = y
	return true
}

// CalculateAlpha folds the winding accumulator into a coverage value:
// shift to the AA scale, absolute value, filling-rule fold, clamp,
// gamma.
func (r *Rasterizer) CalculateAlpha(area int) uint8 {
	cover := area >> (primitives.SubpixShift*2 + 1 - primitives.AAShift)
	if cover < 0 {
		cover = -cover
	}
	if r.rule == primitives.FillEvenOdd {
		cover &= primitives.AAMask2
		if cover > primitives.AAScale {
			cover = primitives.AAScale2 - cover
		}
	}
	if cover > primitives.AAMask {
		cover = primitives.AAMask
	}
	return r.gamma[cover]
}

// SweepScanline fills sl with the next non-empty row. It returns false
// past the last row or when the store was never sorted; the latter is a
// contract violation reported through Err.
func (r *Rasterizer) SweepScanline(sl Scanline) bool {
	if !r.cells.Sorted() {
		r.lastErr = primitives.Precondition("raster.SweepScanline", "cell store not sorted; call RewindScanlines first")
		return false
	}
	for {
		if r.scanY > r.cells.MaxY() {
			return false
		}

		sl.ResetSpans()
		cells := r.cells.RowCells(r.scanY)
		cover := 0

		i := 0
		for i < len(cells) {
			cur := cells[i]
			x := int(cur.X)
			area := int(cur.Area)
			cover += int(cur.Cover)

			// Merge cells sharing this x.
			for i++; i < len(cells) && int(cells[i].X) == x; i++ {
				area += int(cells[i].Area)
				cover += int(cells[i].Cover)
			}

			if area != 0 {
				alpha := r.CalculateAlpha((cover << (primitives.SubpixShift + 1)) - area)
				if alpha != 0 {
					sl.AddCell(x, uint(alpha))
				}
				x++
			}

			if i < len(cells) && int(cells[i].X) > x {
				alpha := r.CalculateAlpha(cover << (primitives.SubpixShift + 1))
				if alpha != 0 {
					sl.AddSpan(x, int(cells[i].X)-x, uint(alpha))
				}
			}
		}

		if sl.NumSpans() > 0 {
			break
		}
		r.scanY++
	}

	sl.Finalize(r.scanY)
	r.scanY++
	return true
}

// HitTest reports whether pixel (tx, ty) receives any coverage.
func (r *Rasterizer) HitTest(tx, ty int) bool {
	if !r.NavigateScanline(ty) {
		return false
	}

	cells := r.cells.RowCells(ty)
	cover := 0

	for i := 0; i < len(cells); i++ {
		cur := cells[i]
		x := int(cur.X)
		if x > tx {
			break
		}
		cover += int(cur.Cover)

		if x == tx {
			area := int(cur.Area)
			for i++; i < len(cells) && int(cells[i].X) == x; i++ {
				area += int(cells[i].Area)
				cover += int(cells[i].Cover)
			}
			return r.CalculateAlpha((cover<<(primitives.SubpixShift+1))-area) != 0
		}
	}

	return r.CalculateAlpha(cover<<(primitives.SubpixShift+1)) != 0
}
