// Package pathstore implements the vertex container at the head of the
// pipeline. A Store holds (x, y, cmd) triples, offers the usual contour
// construction verbs, and iterates as a vertex source for the
// rasterizer.
package pathstore

import (
	"math"

	"github.com/fenwick-labs/raster2d/internal/affine"
	"github.com/fenwick-labs/raster2d/internal/arena"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// VertexSource is the pull-iteration contract consumed by the
// rasterizer and the converters: Rewind seeks, NextVertex yields
// (x, y, cmd) triples until a stop command.
type VertexSource interface {
	Rewind(pathID uint32)
	NextVertex() (x, y float64, cmd primitives.Cmd)
}

// Store is an ordered sequence of vertices forming one or more paths.
// A Store is long-lived: it may be iterated many times, shared
// read-only across goroutines, and only the iterator cursor is touched
// during traversal.
type Store struct {
	vertices *arena.BlockVector[primitives.Vertex]
	iter     int
}

// New returns an empty path store.
func New() *Store {
	return &Store{vertices: arena.NewBlockVector[primitives.Vertex]()}
}

// RemoveAll empties the store but keeps its memory.
func (s *Store) RemoveAll() {
	s.vertices.RemoveAll()
	s.iter = 0
}

// FreeAll empties the store and releases its memory.
func (s *Store) FreeAll() {
	s.vertices.FreeAll()
	s.iter = 0
}

// TotalVertices returns the number of stored vertices.
func (s *Store) TotalVertices() int { return s.vertices.Size() }

func (s *Store) addVertex(x, y float64, cmd primitives.Cmd) {
	s.vertices.Add(primitives.Vertex{X: x, Y: y, Cmd: cmd})
}

// Vertex returns the triple at idx. Out-of-range access yields
// (0, 0, CmdStop).
func (s *Store) Vertex(idx int) (x, y float64, cmd primitives.Cmd) {
	if idx < 0 || idx >= s.vertices.Size() {
		return 0, 0, primitives.CmdStop
	}
	v := s.vertices.At(idx)
	return v.X, v.Y, v.Cmd
}

// Command returns the command at idx, CmdStop when out of range.
func (s *Store) Command(idx int) primitives.Cmd {
	_, _, cmd := s.Vertex(idx)
	return cmd
}

// LastVertex returns the final triple, or (0, 0, CmdStop) when empty.
func (s *Store) LastVertex() (x, y float64, cmd primitives.Cmd) {
	return s.Vertex(s.vertices.Size() - 1)
}

// PrevVertex returns the next-to-last triple.
func (s *Store) PrevVertex() (x, y float64, cmd primitives.Cmd) {
	return s.Vertex(s.vertices.Size() - 2)
}

func (s *Store) lastCommand() primitives.Cmd {
	if v, ok := s.vertices.Last(); ok {
		return v.Cmd
	}
	return primitives.CmdStop
}

// LastX returns the x coordinate of the last vertex, 0 when empty.
func (s *Store) LastX() float64 {
	x, _, _ := s.LastVertex()
	return x
}

// LastY returns the y coordinate of the last vertex, 0 when empty.
func (s *Store) LastY() float64 {
	_, y, _ := s.LastVertex()
	return y
}

// relToAbs shifts a relative coordinate by the last vertex. Relative
// verbs issued before any MoveTo start from (0,0).
func (s *Store) relToAbs(x, y *float64) {
	if s.vertices.Size() == 0 {
		return
	}
	px, py, cmd := s.LastVertex()
	if cmd.IsVertex() {
		*x += px
		*y += py
	}
}

// StartNewPath terminates the current path with a stop command and
// returns the index at which the next path begins. The index doubles
// as the path id accepted by Rewind.
func (s *Store) StartNewPath() uint32 {
	if !s.lastCommand().IsStop() {
		s.addVertex(0, 0, primitives.CmdStop)
	}
	return uint32(s.vertices.Size())
}

// MoveTo begins a new contour at (x, y).
func (s *Store) MoveTo(x, y float64) {
	s.addVertex(x, y, primitives.CmdMoveTo)
}

// MoveRel begins a new contour displaced from the last vertex.
func (s *Store) MoveRel(dx, dy float64) {
	s.relToAbs(&dx, &dy)
	s.MoveTo(dx, dy)
}

// LineTo extends the contour with a straight segment.
func (s *Store) LineTo(x, y float64) {
	s.addVertex(x, y, primitives.CmdLineTo)
}

// LineRel extends the contour by a relative displacement.
func (s *Store) LineRel(dx, dy float64) {
	s.relToAbs(&dx, &dy)
	s.LineTo(dx, dy)
}

// HLineTo draws a horizontal segment to absolute x.
func (s *Store) HLineTo(x float64) { s.LineTo(x, s.LastY()) }

// HLineRel draws a horizontal segment by dx.
func (s *Store) HLineRel(dx float64) {
	dy := 0.0
	s.relToAbs(&dx, &dy)
	s.LineTo(dx, dy)
}

// VLineTo draws a vertical segment to absolute y.
func (s *Store) VLineTo(y float64) { s.LineTo(s.LastX(), y) }

// VLineRel draws a vertical segment by dy.
func (s *Store) VLineRel(dy float64) {
	dx := 0.0
	s.relToAbs(&dx, &dy)
	s.LineTo(dx, dy)
}

// Curve3 appends a quadratic Bezier: control point then endpoint.
func (s *Store) Curve3(xCtrl, yCtrl, xTo, yTo float64) {
	s.addVertex(xCtrl, yCtrl, primitives.CmdCurve3)
	s.addVertex(xTo, yTo, primitives.CmdCurve3)
}

// Curve3Rel appends a quadratic Bezier with relative coordinates.
func (s *Store) Curve3Rel(dxCtrl, dyCtrl, dxTo, dyTo float64) {
	s.relToAbs(&dxCtrl, &dyCtrl)
	s.relToAbs(&dxTo, &dyTo)
	s.Curve3(dxCtrl, dyCtrl, dxTo, dyTo)
}

// Curve3Smooth appends a quadratic Bezier whose control point is the
// reflection of the previous control around the current endpoint. When
// the previous command was not a curve, the control collapses onto the
// current point and the segment degenerates to a line.
func (s *Store) Curve3Smooth(xTo, yTo float64) {
	x0, y0, last := s.LastVertex()
	if !last.IsVertex() {
		return
	}
	xCtrl, yCtrl, prev := s.PrevVertex()
	if prev.IsCurve() {
		xCtrl = x0 + x0 - xCtrl
		yCtrl = y0 + y0 - yCtrl
	} else {
		xCtrl = x0
		yCtrl = y0
	}
	s.Curve3(xCtrl, yCtrl, xTo, yTo)
}

// Curve3SmoothRel is Curve3Smooth with a relative endpoint.
func (s *Store) Curve3SmoothRel(dxTo, dyTo float64) {
	s.relToAbs(&dxTo, &dyTo)
	s.Curve3Smooth(dxTo, dyTo)
}

// Curve4 appends a cubic Bezier: two control points then the endpoint.
func (s *Store) Curve4(xCtrl1, yCtrl1, xCtrl2, yCtrl2, xTo, yTo float64) {
	s.addVertex(xCtrl1, yCtrl1, primitives.CmdCurve4)
	s.addVertex(xCtrl2, yCtrl2, primitives.CmdCurve4)
	s.addVertex(xTo, yTo, primitives.CmdCurve4)
}

// Curve4Rel appends a cubic Bezier with relative coordinates.
func (s *Store) Curve4Rel(dxCtrl1, dyCtrl1, dxCtrl2, dyCtrl2, dxTo, dyTo float64) {
	s.relToAbs(&dxCtrl1, &dyCtrl1)
	s.relToAbs(&dxCtrl2, &dyCtrl2)
	s.relToAbs(&dxTo, &dyTo)
	s.Curve4(dxCtrl1, dyCtrl1, dxCtrl2, dyCtrl2, dxTo, dyTo)
}

// Curve4Smooth appends a cubic Bezier reflecting the previous control
// point, in the manner of Curve3Smooth.
func (s *Store) Curve4Smooth(xCtrl2, yCtrl2, xTo, yTo float64) {
	x0, y0, last := s.LastVertex()
	if !last.IsVertex() {
		return
	}
	xCtrl1, yCtrl1, prev := s.PrevVertex()
	if prev.IsCurve() {
		xCtrl1 = x0 + x0 - xCtrl1
		yCtrl1 = y0 + y0 - yCtrl1
	} else {
		xCtrl1 = x0
		yCtrl1 = y0
	}
	s.Curve4(xCtrl1, yCtrl1, xCtrl2, yCtrl2, xTo, yTo)
}

// Curve4SmoothRel is Curve4Smooth with relative coordinates.
func (s *Store) Curve4SmoothRel(dxCtrl2, dyCtrl2, dxTo, dyTo float64) {
	s.relToAbs(&dxCtrl2, &dyCtrl2)
	s.relToAbs(&dxTo, &dyTo)
	s.Curve4Smooth(dxCtrl2, dyCtrl2, dxTo, dyTo)
}

// EndPoly annotates the previous contour with an end-poly marker. It
// emits no vertex of its own and is skipped when the contour is empty.
func (s *Store) EndPoly(flags primitives.Cmd) {
	if s.lastCommand().IsVertex() {
		s.addVertex(0, 0, primitives.CmdEndPoly|flags.Orientation()|flags.CloseFlag())
	}
}

// ClosePolygon closes the current contour.
func (s *Store) ClosePolygon(flags primitives.Cmd) {
	s.EndPoly(primitives.FlagClose | flags)
}

// ArcTo appends an elliptical arc from the current point to (x, y)
// using SVG endpoint parameterization. Degenerate radii fall back to a
// straight segment; coincident endpoints are a no-op. Without a
// current point the arc degenerates to MoveTo.
func (s *Store) ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) {
	if s.vertices.Size() == 0 || !s.lastCommand().IsVertex() {
		s.MoveTo(x, y)
		return
	}

	const epsilon = 1e-30
	x0, y0, _ := s.LastVertex()

	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < epsilon || ry < epsilon {
		s.LineTo(x, y)
		return
	}
	if primitives.CalcDistance(x0, y0, x, y) < epsilon {
		return
	}

	arc := newSVGArc(x0, y0, rx, ry, angle, largeArc, sweep, x, y)
	if !arc.radiiOK {
		s.LineTo(x, y)
		return
	}
	arc.rewind()
	for {
		ax, ay, cmd := arc.next()
		if cmd.IsStop() {
			break
		}
		if cmd.IsMoveTo() {
			// Joining onto the current contour: the arc's start point is
			// already the current point.
			cmd = primitives.CmdLineTo
		}
		s.addVertex(ax, ay, cmd)
	}
}

// ArcRel is ArcTo with a relative endpoint.
func (s *Store) ArcRel(rx, ry, angle float64, largeArc, sweep bool, dx, dy float64) {
	s.relToAbs(&dx, &dy)
	s.ArcTo(rx, ry, angle, largeArc, sweep, dx, dy)
}

// ConcatPath appends every vertex of another source verbatim.
func (s *Store) ConcatPath(vs VertexSource, pathID uint32) {
	vs.Rewind(pathID)
	for {
		x, y, cmd := vs.NextVertex()
		if cmd.IsStop() {
			break
		}
		s.addVertex(x, y, cmd)
	}
}

// Rewind seeks the iterator to the given path id (a vertex index, as
// returned by StartNewPath).
func (s *Store) Rewind(pathID uint32) {
	s.iter = int(pathID)
}

// NextVertex yields the triple under the cursor and advances. Past the
// end it returns (0, 0, CmdStop).
func (s *Store) NextVertex() (x, y float64, cmd primitives.Cmd) {
	if s.iter >= s.vertices.Size() {
		return 0, 0, primitives.CmdStop
	}
	x, y, cmd = s.Vertex(s.iter)
	s.iter++
	return
}

// ModifyVertex overwrites the coordinates at idx.
func (s *Store) ModifyVertex(idx int, x, y float64) {
	if idx < 0 || idx >= s.vertices.Size() {
		return
	}
	v := s.vertices.At(idx)
	v.X, v.Y = x, y
	s.vertices.Set(idx, v)
}

// ModifyCommand overwrites the command at idx.
func (s *Store) ModifyCommand(idx int, cmd primitives.Cmd) {
	if idx < 0 || idx >= s.vertices.Size() {
		return
	}
	v := s.vertices.At(idx)
	v.Cmd = cmd
	s.vertices.Set(idx, v)
}

// Transform maps vertex coordinates in place through m, starting at
// pathID and stopping at the path's stop command. Non-vertex commands
// are skipped.
func (s *Store) Transform(m affine.Matrix, pathID uint32) {
	total := s.vertices.Size()
	for i := int(pathID); i < total; i++ {
		v := s.vertices.At(i)
		if v.Cmd.IsStop() {
			break
		}
		if v.Cmd.IsVertex() {
			v.X, v.Y = m.Transform(v.X, v.Y)
			s.vertices.Set(i, v)
		}
	}
}

// TransformAllPaths maps every vertex in the store through m.
func (s *Store) TransformAllPaths(m affine.Matrix) {
	total := s.vertices.Size()
	for i := 0; i < total; i++ {
		v := s.vertices.At(i)
		if v.Cmd.IsVertex() {
			v.X, v.Y = m.Transform(v.X, v.Y)
			s.vertices.Set(i, v)
		}
	}
}

// Translate shifts the path starting at pathID by (dx, dy).
func (s *Store) Translate(dx, dy float64, pathID uint32) {
	s.Transform(affine.Translation(dx, dy), pathID)
}

// FlipX mirrors all vertices horizontally about the midpoint of x1..x2.
func (s *Store) FlipX(x1, x2 float64) {
	total := s.vertices.Size()
	for i := 0; i < total; i++ {
		v := s.vertices.At(i)
		if v.Cmd.IsVertex() {
			v.X = x2 - v.X + x1
			s.vertices.Set(i, v)
		}
	}
}

// FlipY mirrors all vertices vertically about the midpoint of y1..y2.
func (s *Store) FlipY(y1, y2 float64) {
	total := s.vertices.Size()
	for i := 0; i < total; i++ {
		v := s.vertices.At(i)
		if v.Cmd.IsVertex() {
			v.Y = y2 - v.Y + y1
			s.vertices.Set(i, v)
		}
	}
}

// InvertPolygon reverses the winding of the contour beginning at or
// after start. The leading move_to stays first; the command tags are
// rotated so every vertex keeps a consistent role.
func (s *Store) InvertPolygon(start int) {
	total := s.vertices.Size()

	// Skip non-vertex leading commands.
	for start < total && !s.Command(start).IsVertex() {
		start++
	}
	// Skip to the first vertex of the contour proper.
	for start+1 < total && s.Command(start).IsMoveTo() && s.Command(start+1).IsMoveTo() {
		start++
	}
	end := start + 1
	for end < total && !s.Command(end).IsNextPoly() {
		end++
	}
	s.invertPolygon(start, end)
}

func (s *Store) invertPolygon(start, end int) {
	if end-start < 2 {
		return
	}
	tmpCmd := s.Command(start)
	end--

	// Rotate the command tags back one slot so the first vertex keeps
	// its move_to after the reversal.
	for i := start; i < end; i++ {
		s.ModifyCommand(i, s.Command(i+1))
	}
	s.ModifyCommand(end, tmpCmd)

	for end > start {
		a := s.vertices.At(start)
		b := s.vertices.At(end)
		s.vertices.Set(start, b)
		s.vertices.Set(end, a)
		start++
		end--
	}
}
