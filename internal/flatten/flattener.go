package flatten

import (
	"github.com/fenwick-labs/raster2d/internal/pathstore"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// Flattener wraps a vertex source and replaces every curve3/curve4
// command with the line segments of its flattened polyline. All other
// commands pass through unchanged, so the output contains only
// move_to/line_to vertices plus the original markers.
type Flattener struct {
	source       pathstore.VertexSource
	lastX, lastY float64
	quad         *Quad
	cubic        *Cubic
}

// NewFlattener wraps source.
func NewFlattener(source pathstore.VertexSource) *Flattener {
	return &Flattener{source: source, quad: NewQuad(), cubic: NewCubic()}
}

// Attach replaces the wrapped source.
func (f *Flattener) Attach(source pathstore.VertexSource) {
	f.source = source
}

// SetMethod selects the flattening algorithm for both curve kinds.
func (f *Flattener) SetMethod(m Method) {
	f.quad.SetMethod(m)
	f.cubic.SetMethod(m)
}

// Method returns the active algorithm.
func (f *Flattener) Method() Method { return f.cubic.Method() }

// SetApproximationScale sets the tolerance scale on both curve kinds.
func (f *Flattener) SetApproximationScale(s float64) {
	f.quad.SetApproximationScale(s)
	f.cubic.SetApproximationScale(s)
}

// ApproximationScale returns the tolerance scale.
func (f *Flattener) ApproximationScale() float64 {
	return f.cubic.ApproximationScale()
}

// SetAngleTolerance sets the turn-angle tolerance on both curve kinds.
func (f *Flattener) SetAngleTolerance(a float64) {
	f.quad.SetAngleTolerance(a)
	f.cubic.SetAngleTolerance(a)
}

// AngleTolerance returns the turn-angle tolerance.
func (f *Flattener) AngleTolerance() float64 {
	return f.cubic.AngleTolerance()
}

// SetCuspLimit sets the cusp limit on the cubic flattener.
func (f *Flattener) SetCuspLimit(v float64) { f.cubic.SetCuspLimit(v) }

// CuspLimit returns the cusp limit.
func (f *Flattener) CuspLimit() float64 { return f.cubic.CuspLimit() }

// Rewind seeks the underlying source and drops any in-flight curve.
func (f *Flattener) Rewind(pathID uint32) {
	f.source.Rewind(pathID)
	f.lastX = 0
	f.lastY = 0
	f.quad.Reset()
	f.cubic.Reset()
}

// NextVertex yields the next flattened vertex.
func (f *Flattener) NextVertex() (x, y float64, cmd primitives.Cmd) {
	// Drain an in-flight curve first.
	if x, y, cmd = f.quad.Vertex(); !cmd.IsStop() {
		f.lastX, f.lastY = x, y
		return x, y, primitives.CmdLineTo
	}
	if x, y, cmd = f.cubic.Vertex(); !cmd.IsStop() {
		f.lastX, f.lastY = x, y
		return x, y, primitives.CmdLineTo
	}

	x, y, cmd = f.source.NextVertex()
	switch cmd.Kind() {
	case primitives.CmdCurve3:
		ctrlX, ctrlY := x, y
		endX, endY, _ := f.source.NextVertex()
		f.quad.Init(f.lastX, f.lastY, ctrlX, ctrlY, endX, endY)
		f.quad.Vertex() // the move_to duplicates the current point
		x, y, _ = f.quad.Vertex()
		cmd = primitives.CmdLineTo

	case primitives.CmdCurve4:
		ctrl1X, ctrl1Y := x, y
		ctrl2X, ctrl2Y, _ := f.source.NextVertex()
		endX, endY, _ := f.source.NextVertex()
		f.cubic.Init(f.lastX, f.lastY, ctrl1X, ctrl1Y, ctrl2X, ctrl2Y, endX, endY)
		f.cubic.Vertex() // the move_to duplicates the current point
		x, y, _ = f.cubic.Vertex()
		cmd = primitives.CmdLineTo
	}

	if cmd.IsVertex() {
		f.lastX, f.lastY = x, y
	}
	return x, y, cmd
}
