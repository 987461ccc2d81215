// Package raster converts line segments in subpixel coordinates into
// sorted coverage cells and sweeps them into scanlines. It is the
// anti-aliasing heart of the pipeline: exact subpixel cover/area
// accounting with integer DDA stepping, a chunked cell store, and a
// winding-rule alpha computation.
package raster

import (
	"sort"

	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// Cell is one edge segment's contribution to one pixel. Cover is the
// signed vertical extent the edge crossed within the pixel, in subpixel
// units; Area is twice the signed trapezoid area swept left of the
// edge, also in subpixel units.
type Cell struct {
	X, Y  int32
	Cover int32
	Area  int32
}

// cellBlockSize is the capacity of one cell block. Blocks are never
// reallocated, so cell addresses stay valid while a path accumulates.
const (
	cellBlockShift = 12
	cellBlockSize  = 1 << cellBlockShift
	cellBlockMask  = cellBlockSize - 1
)

// rowRange locates one scanline's cells inside the sorted array.
type rowRange struct {
	start int
	num   int
}

// CellStore accumulates cells for one path, then sorts them by
// (y, x) for the scanline sweep. Reset clears it for the next path.
type CellStore struct {
	blocks     [][]Cell
	numCells   int
	blockLimit int

	curCell Cell
	hasCur  bool

	sorted      []Cell
	rows        []rowRange
	sortedReady bool

	minX, minY int
	maxX, maxY int
}

// NewCellStore returns a store that refuses to allocate more than
// blockLimit blocks; zero means no limit.
func NewCellStore(blockLimit int) *CellStore {
	s := &CellStore{blockLimit: blockLimit}
	s.Reset()
	return s
}

// Reset drops all cells and bounds, keeping allocated blocks for reuse.
func (s *CellStore) Reset() {
	s.numCells = 0
	s.sortedReady = false
	s.hasCur = false
	s.curCell = Cell{}
	s.minX, s.minY = int(^uint(0)>>1), int(^uint(0)>>1)
	s.maxX, s.maxY = -s.minX-1, -s.minY-1
}

// TotalCells returns the number of finished cells.
func (s *CellStore) TotalCells() int { return s.numCells }

// Sorted reports whether SortCells has run since the last Reset.
func (s *CellStore) Sorted() bool { return s.sortedReady }

// MinX returns the smallest pixel x touched.
func (s *CellStore) MinX() int { return s.minX }

// MinY returns the smallest pixel y touched.
func (s *CellStore) MinY() int { return s.minY }

// MaxX returns the largest pixel x touched.
func (s *CellStore) MaxX() int { return s.maxX }

// MaxY returns the largest pixel y touched.
func (s *CellStore) MaxY() int { return s.maxY }

// setCurCell flushes the working cell and retargets it at pixel (x, y).
func (s *CellStore) setCurCell(x, y int) {
	if s.hasCur && int32(x) == s.curCell.X && int32(y) == s.curCell.Y {
		return
	}
	s.flushCurCell()
	s.curCell = Cell{X: int32(x), Y: int32(y)}
	s.hasCur = true
}

func (s *CellStore) flushCurCell() {
	if !s.hasCur || (s.curCell.Cover == 0 && s.curCell.Area == 0) {
		return
	}
	block := s.numCells >> cellBlockShift
	if block >= len(s.blocks) {
		if s.blockLimit > 0 && len(s.blocks) >= s.blockLimit {
			return
		}
		s.blocks = append(s.blocks, make([]Cell, cellBlockSize))
	}
	s.blocks[block][s.numCells&cellBlockMask] = s.curCell
	s.numCells++

	x, y := int(s.curCell.X), int(s.curCell.Y)
	if x < s.minX {
		s.minX = x
	}
	if x > s.maxX {
		s.maxX = x
	}
	if y < s.minY {
		s.minY = y
	}
	if y > s.maxY {
		s.maxY = y
	}
	s.curCell.Cover = 0
	s.curCell.Area = 0
}

// dxLimit bounds the horizontal extent one Line call handles; longer
// segments split in half so the fixed-point products below cannot
// overflow.
const dxLimit = 16384 << primitives.SubpixShift

// Line rasterizes the segment (x1,y1)-(x2,y2), in subpixel units, into
// cells. Cover is signed: downward edges accumulate positive cover,
// upward edges negative, so closed contours sum to the winding number.
// Horizontal segments contribute no cover and only move the working
// cell.
func (s *CellStore) Line(x1, y1, x2, y2 int) {
	dx := x2 - x1
	if dx >= dxLimit || dx <= -dxLimit {
		cx := (x1 + x2) >> 1
		cy := (y1 + y2) >> 1
		s.Line(x1, y1, cx, cy)
		s.Line(cx, cy, x2, y2)
		return
	}

	dy := y2 - y1
	ey1 := y1 >> primitives.SubpixShift
	ey2 := y2 >> primitives.SubpixShift
	fy1 := y1 & primitives.SubpixMask
	fy2 := y2 & primitives.SubpixMask

	// Single row.
	if ey1 == ey2 {
		s.renderRowSpan(ey1, x1, fy1, x2, fy2)
		return
	}

	incr := 1

	// Pure vertical: one cell column, constant per-row contribution.
	if dx == 0 {
		ex := x1 >> primitives.SubpixShift
		twoFx := (x1 - (ex << primitives.SubpixShift)) << 1

		first := primitives.SubpixScale
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		s.setCurCell(ex, ey1)
		s.curCell.Cover += int32(delta)
		s.curCell.Area += int32(twoFx * delta)

		ey1 += incr
		s.setCurCell(ex, ey1)

		delta = first + first - primitives.SubpixScale
		area := twoFx * delta
		for ey1 != ey2 {
			s.curCell.Cover += int32(delta)
			s.curCell.Area += int32(area)
			ey1 += incr
			s.setCurCell(ex, ey1)
		}
		delta = fy2 - primitives.SubpixScale + first
		s.curCell.Cover += int32(delta)
		s.curCell.Area += int32(twoFx * delta)
		return
	}

	// Several rows: split at each row boundary. The x at every crossing
	// comes from exact integer division with a running remainder, so no
	// drift accumulates.
	p := (primitives.SubpixScale - fy1) * dx
	first := primitives.SubpixScale
	if dy < 0 {
		p = fy1 * dx
		first = 0
		incr = -1
		dy = -dy
	}

	delta := p / dy
	mod := p % dy
	if mod < 0 {
		delta--
		mod += dy
	}

	xFrom := x1 + delta
	s.renderRowSpan(ey1, x1, fy1, xFrom, first)

	ey1 += incr
	s.setCurCell(xFrom>>primitives.SubpixShift, ey1)

	if ey1 != ey2 {
		p = primitives.SubpixScale * dx
		lift := p / dy
		rem := p % dy
		if rem < 0 {
			lift--
			rem += dy
		}
		mod -= dy

		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy
				delta++
			}

			xTo := xFrom + delta
			s.renderRowSpan(ey1, xFrom, primitives.SubpixScale-first, xTo, first)
			xFrom = xTo

			ey1 += incr
			s.setCurCell(xFrom>>primitives.SubpixShift, ey1)
		}
	}

	s.renderRowSpan(ey2, xFrom, primitives.SubpixScale-first, x2, fy2)
}

// renderRowSpan accumulates cover and area for the cells a segment
// sweeps through on scanline row ey. The segment runs from fractional
// height y1 to y2 within the row; x coordinates are subpixel units.
func (s *CellStore) renderRowSpan(ey, x1, y1, x2, y2 int) {
	ex1 := x1 >> primitives.SubpixShift
	ex2 := x2 >> primitives.SubpixShift
	fx1 := x1 & primitives.SubpixMask
	fx2 := x2 & primitives.SubpixMask

	// No vertical extent inside this row.
	if y1 == y2 {
		s.setCurCell(ex2, ey)
		return
	}

	// Single cell column.
	if ex1 == ex2 {
		delta := y2 - y1
		s.setCurCell(ex1, ey)
		s.curCell.Cover += int32(delta)
		s.curCell.Area += int32((fx1 + fx2) * delta)
		return
	}

	// The segment crosses cell boundaries: step cell by cell with the
	// exact y-crossing of every vertical boundary computed by integer
	// division and remainder correction.
	dx := x2 - x1
	dy := y2 - y1
	incr := 1

	p := (primitives.SubpixScale - fx1) * dy
	first := primitives.SubpixScale
	if dx < 0 {
		p = fx1 * dy
		first = 0
		incr = -1
		dx = -dx
	}

	delta := p / dx
	mod := p % dx
	if mod < 0 {
		delta--
		mod += dx
	}

	s.setCurCell(ex1, ey)
	s.curCell.Cover += int32(delta)
	s.curCell.Area += int32((fx1 + first) * delta)

	ex1 += incr
	s.setCurCell(ex1, ey)
	y1 += delta

	if ex1 != ex2 {
		p = primitives.SubpixScale * (y2 - y1 + delta)
		lift := p / dx
		rem := p % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		mod -= dx

		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			s.curCell.Cover += int32(delta)
			s.curCell.Area += int32(primitives.SubpixScale * delta)
			y1 += delta
			ex1 += incr
			s.setCurCell(ex1, ey)
		}
	}

	delta = y2 - y1
	s.curCell.Cover += int32(delta)
	s.curCell.Area += int32((fx2 + primitives.SubpixScale - first) * delta)
}

// SortCells flushes the working cell and orders the store by y, then x.
// A single stable sort over the flat cell stream is all the sweep
// needs: equal (y, x) cells keep insertion order and merge during the
// sweep. A per-row index is built so row lookup is O(1).
func (s *CellStore) SortCells() {
	if s.sortedReady {
		return
	}
	s.flushCurCell()
	s.hasCur = false

	if s.numCells == 0 {
		s.sortedReady = true
		return
	}

	if cap(s.sorted) < s.numCells {
		s.sorted = make([]Cell, s.numCells)
	}
	s.sorted = s.sorted[:s.numCells]
	for i := 0; i < s.numCells; i++ {
		s.sorted[i] = s.blocks[i>>cellBlockShift][i&cellBlockMask]
	}

	sort.SliceStable(s.sorted, func(i, j int) bool {
		if s.sorted[i].Y != s.sorted[j].Y {
			return s.sorted[i].Y < s.sorted[j].Y
		}
		return s.sorted[i].X < s.sorted[j].X
	})

	numRows := s.maxY - s.minY + 1
	if cap(s.rows) < numRows {
		s.rows = make([]rowRange, numRows)
	}
	s.rows = s.rows[:numRows]
	for i := range s.rows {
		s.rows[i] = rowRange{}
	}
	for i := range s.sorted {
		s.rows[int(s.sorted[i].Y)-s.minY].num++
	}
	start := 0
	for i := range s.rows {
		s.rows[i].start = start
		start += s.rows[i].num
	}

	s.sortedReady = true
}

// RowCells returns the sorted cells of scanline y, nil when the row is
// empty or the store is unsorted.
func (s *CellStore) RowCells(y int) []Cell {
	if !s.sortedReady || y < s.minY || y > s.maxY {
		return nil
	}
	r := s.rows[y-s.minY]
	return s.sorted[r.start : r.start+r.num]
}
