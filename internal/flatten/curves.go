// Package flatten approximates quadratic and cubic Bezier curves by
// polylines. Two algorithms are available: forward-difference stepping
// with a fixed step count, and adaptive recursive subdivision honoring
// distance, angle and cusp tolerances. Subdivision is the default.
package flatten

import (
	"math"

	"github.com/fenwick-labs/raster2d/internal/arena"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

const (
	collinearityEpsilon   = 1e-30
	angleToleranceEpsilon = 0.01

	// RecursionLimit caps subdivision depth; past it the current
	// midpoint is accepted as-is.
	RecursionLimit = 32
)

// Method selects the flattening algorithm.
type Method uint

const (
	// Subdivide is adaptive recursive subdivision (the default).
	Subdivide Method = iota
	// Incremental is fixed-step forward differencing.
	Incremental
)

// QuadInc flattens a quadratic Bezier by forward differencing. The step
// count derives from the control polyline length times the
// approximation scale, floored at 4; every curve yields exactly
// numSteps+1 vertices.
type QuadInc struct {
	numSteps int
	step     int
	scale    float64

	startX, startY float64
	endX, endY     float64

	fx, fy     float64
	dfx, dfy   float64
	ddfx, ddfy float64

	savedFx, savedFy   float64
	savedDfx, savedDfy float64
}

// NewQuadInc returns an uninitialized incremental quadratic flattener.
func NewQuadInc() *QuadInc {
	return &QuadInc{scale: 1}
}

// Reset discards the current curve.
func (c *QuadInc) Reset() {
	c.numSteps = 0
	c.step = -1
}

// Init loads the control points and computes the difference scheme.
func (c *QuadInc) Init(x1, y1, x2, y2, x3, y3 float64) {
	c.startX, c.startY = x1, y1
	c.endX, c.endY = x3, y3

	dx1 := x2 - x1
	dy1 := y2 - y1
	dx2 := x3 - x2
	dy2 := y3 - y2
	length := math.Sqrt(dx1*dx1+dy1*dy1) + math.Sqrt(dx2*dx2+dy2*dy2)

	c.numSteps = int(primitives.URound(length * 0.25 * c.scale))
	if c.numSteps < 4 {
		c.numSteps = 4
	}

	h := 1.0 / float64(c.numSteps)
	h2 := h * h

	tx := (x1 - 2*x2 + x3) * h2
	ty := (y1 - 2*y2 + y3) * h2

	c.savedFx, c.fx = x1, x1
	c.savedFy, c.fy = y1, y1
	c.savedDfx = tx + (x2-x1)*(2*h)
	c.savedDfy = ty + (y2-y1)*(2*h)
	c.dfx, c.dfy = c.savedDfx, c.savedDfy
	c.ddfx = tx * 2
	c.ddfy = ty * 2

	c.step = c.numSteps
}

// ApproximationScale returns the scale tolerance knob.
func (c *QuadInc) ApproximationScale() float64 { return c.scale }

// SetApproximationScale sets the scale tolerance knob.
func (c *QuadInc) SetApproximationScale(s float64) { c.scale = s }

// Rewind restarts iteration over the flattened curve.
func (c *QuadInc) Rewind(uint32) {
	if c.numSteps == 0 {
		c.step = -1
		return
	}
	c.step = c.numSteps
	c.fx, c.fy = c.savedFx, c.savedFy
	c.dfx, c.dfy = c.savedDfx, c.savedDfy
}

// Vertex yields the next polyline vertex.
func (c *QuadInc) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.step < 0 {
		return 0, 0, primitives.CmdStop
	}
	if c.step == c.numSteps {
		c.step--
		return c.startX, c.startY, primitives.CmdMoveTo
	}
	if c.step == 0 {
		c.step--
		return c.endX, c.endY, primitives.CmdLineTo
	}
	c.fx += c.dfx
	c.fy += c.dfy
	c.dfx += c.ddfx
	c.dfy += c.ddfy
	c.step--
	return c.fx, c.fy, primitives.CmdLineTo
}

// QuadDiv flattens a quadratic Bezier by adaptive subdivision.
type QuadDiv struct {
	scale          float64
	angleTolerance float64
	cursor         int
	points         *arena.BlockVector[primitives.PointD]
}

// NewQuadDiv returns a subdividing quadratic flattener.
func NewQuadDiv() *QuadDiv {
	return &QuadDiv{scale: 1, points: arena.NewBlockVector[primitives.PointD]()}
}

// Reset discards the current curve.
func (c *QuadDiv) Reset() {
	c.points.RemoveAll()
	c.cursor = 0
}

// Init subdivides the curve into the internal point list.
func (c *QuadDiv) Init(x1, y1, x2, y2, x3, y3 float64) {
	c.points.RemoveAll()
	tol := 0.5 / c.scale
	tol *= tol
	c.points.Add(primitives.PointD{X: x1, Y: y1})
	c.subdivide(x1, y1, x2, y2, x3, y3, 0, tol)
	c.points.Add(primitives.PointD{X: x3, Y: y3})
	c.cursor = 0
}

// ApproximationScale returns the scale tolerance knob.
func (c *QuadDiv) ApproximationScale() float64 { return c.scale }

// SetApproximationScale sets the scale tolerance knob.
func (c *QuadDiv) SetApproximationScale(s float64) { c.scale = s }

// AngleTolerance returns the turn-angle tolerance in radians.
func (c *QuadDiv) AngleTolerance() float64 { return c.angleTolerance }

// SetAngleTolerance sets the turn-angle tolerance in radians.
func (c *QuadDiv) SetAngleTolerance(a float64) { c.angleTolerance = a }

// Rewind restarts iteration over the flattened curve.
func (c *QuadDiv) Rewind(uint32) { c.cursor = 0 }

// Vertex yields the next polyline vertex.
func (c *QuadDiv) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.cursor >= c.points.Size() {
		return 0, 0, primitives.CmdStop
	}
	p := c.points.At(c.cursor)
	c.cursor++
	if c.cursor == 1 {
		return p.X, p.Y, primitives.CmdMoveTo
	}
	return p.X, p.Y, primitives.CmdLineTo
}

func (c *QuadDiv) subdivide(x1, y1, x2, y2, x3, y3 float64, level uint, tolSq float64) {
	if level > RecursionLimit {
		c.points.Add(primitives.PointD{X: (x1 + 2*x2 + x3) / 4, Y: (y1 + 2*y2 + y3) / 4})
		return
	}

	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2

	dx := x3 - x1
	dy := y3 - y1
	d := math.Abs((x2-x3)*dy - (y2-y3)*dx)

	if d > collinearityEpsilon {
		if d*d <= tolSq*(dx*dx+dy*dy) {
			if c.angleTolerance < angleToleranceEpsilon {
				c.points.Add(primitives.PointD{X: x123, Y: y123})
				return
			}
			da := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da >= primitives.Pi {
				da = 2*primitives.Pi - da
			}
			if da < c.angleTolerance {
				c.points.Add(primitives.PointD{X: x123, Y: y123})
				return
			}
		}
	} else {
		// Control point collinear with the endpoints: drop it when it
		// projects inside the chord, otherwise keep the closer distance.
		da := dx*dx + dy*dy
		if da == 0 {
			d = primitives.CalcSqDistance(x1, y1, x2, y2)
		} else {
			d = ((x2-x1)*dx + (y2-y1)*dy) / da
			if d > 0 && d < 1 {
				return
			}
			switch {
			case d <= 0:
				d = primitives.CalcSqDistance(x2, y2, x1, y1)
			case d >= 1:
				d = primitives.CalcSqDistance(x2, y2, x3, y3)
			default:
				d = primitives.CalcSqDistance(x2, y2, x1+d*dx, y1+d*dy)
			}
		}
		if d < tolSq {
			c.points.Add(primitives.PointD{X: x2, Y: y2})
			return
		}
	}

	c.subdivide(x1, y1, x12, y12, x123, y123, level+1, tolSq)
	c.subdivide(x123, y123, x23, y23, x3, y3, level+1, tolSq)
}

// CubicInc flattens a cubic Bezier by forward differencing.
type CubicInc struct {
	numSteps int
	step     int
	scale    float64

	startX, startY float64
	endX, endY     float64

	fx, fy       float64
	dfx, dfy     float64
	ddfx, ddfy   float64
	dddfx, dddfy float64

	savedFx, savedFy     float64
	savedDfx, savedDfy   float64
	savedDdfx, savedDdfy float64
}

// NewCubicInc returns an uninitialized incremental cubic flattener.
func NewCubicInc() *CubicInc {
	return &CubicInc{scale: 1}
}

// Reset discards the current curve.
func (c *CubicInc) Reset() {
	c.numSteps = 0
	c.step = -1
}

// Init loads the control points and computes the difference scheme.
func (c *CubicInc) Init(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	c.startX, c.startY = x1, y1
	c.endX, c.endY = x4, y4

	dx1 := x2 - x1
	dy1 := y2 - y1
	dx2 := x3 - x2
	dy2 := y3 - y2
	dx3 := x4 - x3
	dy3 := y4 - y3
	length := (math.Sqrt(dx1*dx1+dy1*dy1) +
		math.Sqrt(dx2*dx2+dy2*dy2) +
		math.Sqrt(dx3*dx3+dy3*dy3)) * 0.25 * c.scale

	c.numSteps = int(primitives.URound(length))
	if c.numSteps < 4 {
		c.numSteps = 4
	}

	h := 1.0 / float64(c.numSteps)
	h2 := h * h
	h3 := h2 * h

	pre1 := 3 * h
	pre2 := 3 * h2
	pre4 := 6 * h2
	pre5 := 6 * h3

	tmp1x := x1 - 2*x2 + x3
	tmp1y := y1 - 2*y2 + y3
	tmp2x := (x2-x3)*3 - x1 + x4
	tmp2y := (y2-y3)*3 - y1 + y4

	c.savedFx, c.fx = x1, x1
	c.savedFy, c.fy = y1, y1
	c.savedDfx = (x2-x1)*pre1 + tmp1x*pre2 + tmp2x*h3
	c.savedDfy = (y2-y1)*pre1 + tmp1y*pre2 + tmp2y*h3
	c.dfx, c.dfy = c.savedDfx, c.savedDfy
	c.savedDdfx = tmp1x*pre4 + tmp2x*pre5
	c.savedDdfy = tmp1y*pre4 + tmp2y*pre5
	c.ddfx, c.ddfy = c.savedDdfx, c.savedDdfy
	c.dddfx = tmp2x * pre5
	c.dddfy = tmp2y * pre5

	c.step = c.numSteps
}

// ApproximationScale returns the scale tolerance knob.
func (c *CubicInc) ApproximationScale() float64 { return c.scale }

// SetApproximationScale sets the scale tolerance knob.
func (c *CubicInc) SetApproximationScale(s float64) { c.scale = s }

// Rewind restarts iteration over the flattened curve.
func (c *CubicInc) Rewind(uint32) {
	if c.numSteps == 0 {
		c.step = -1
		return
	}
	c.step = c.numSteps
	c.fx, c.fy = c.savedFx, c.savedFy
	c.dfx, c.dfy = c.savedDfx, c.savedDfy
	c.ddfx, c.ddfy = c.savedDdfx, c.savedDdfy
}

// Vertex yields the next polyline vertex.
func (c *CubicInc) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.step < 0 {
		return 0, 0, primitives.CmdStop
	}
	if c.step == c.numSteps {
		c.step--
		return c.startX, c.startY, primitives.CmdMoveTo
	}
	if c.step == 0 {
		c.step--
		return c.endX, c.endY, primitives.CmdLineTo
	}
	c.fx += c.dfx
	c.fy += c.dfy
	c.dfx += c.ddfx
	c.dfy += c.ddfy
	c.ddfx += c.dddfx
	c.ddfy += c.dddfy
	c.step--
	return c.fx, c.fy, primitives.CmdLineTo
}

// CubicDiv flattens a cubic Bezier by adaptive subdivision, dispatching
// on which control points are collinear with the endpoints.
type CubicDiv struct {
	scale          float64
	angleTolerance float64
	cuspLimit      float64
	cursor         int
	points         *arena.BlockVector[primitives.PointD]
}

// NewCubicDiv returns a subdividing cubic flattener.
func NewCubicDiv() *CubicDiv {
	return &CubicDiv{scale: 1, points: arena.NewBlockVector[primitives.PointD]()}
}

// Reset discards the current curve.
func (c *CubicDiv) Reset() {
	c.points.RemoveAll()
	c.cursor = 0
}

// Init subdivides the curve into the internal point list.
func (c *CubicDiv) Init(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	c.points.RemoveAll()
	tol := 0.5 / c.scale
	tol *= tol
	c.points.Add(primitives.PointD{X: x1, Y: y1})
	c.subdivide(x1, y1, x2, y2, x3, y3, x4, y4, 0, tol)
	c.points.Add(primitives.PointD{X: x4, Y: y4})
	c.cursor = 0
}

// ApproximationScale returns the scale tolerance knob.
func (c *CubicDiv) ApproximationScale() float64 { return c.scale }

// SetApproximationScale sets the scale tolerance knob.
func (c *CubicDiv) SetApproximationScale(s float64) { c.scale = s }

// AngleTolerance returns the turn-angle tolerance in radians.
func (c *CubicDiv) AngleTolerance() float64 { return c.angleTolerance }

// SetAngleTolerance sets the turn-angle tolerance in radians.
func (c *CubicDiv) SetAngleTolerance(a float64) { c.angleTolerance = a }

// CuspLimit returns the cusp limit in the caller's convention.
func (c *CubicDiv) CuspLimit() float64 {
	if c.cuspLimit == 0 {
		return 0
	}
	return primitives.Pi - c.cuspLimit
}

// SetCuspLimit sets the sharpest turn the flattener renders faithfully;
// the value is stored as pi minus the limit.
func (c *CubicDiv) SetCuspLimit(v float64) {
	if v == 0 {
		c.cuspLimit = 0
	} else {
		c.cuspLimit = primitives.Pi - v
	}
}

// Rewind restarts iteration over the flattened curve.
func (c *CubicDiv) Rewind(uint32) { c.cursor = 0 }

// Vertex yields the next polyline vertex.
func (c *CubicDiv) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.cursor >= c.points.Size() {
		return 0, 0, primitives.CmdStop
	}
	p := c.points.At(c.cursor)
	c.cursor++
	if c.cursor == 1 {
		return p.X, p.Y, primitives.CmdMoveTo
	}
	return p.X, p.Y, primitives.CmdLineTo
}

func (c *CubicDiv) subdivide(x1, y1, x2, y2, x3, y3, x4, y4 float64, level uint, tolSq float64) {
	if level > RecursionLimit {
		c.points.Add(primitives.PointD{X: (x1 + 3*x2 + 3*x3 + x4) / 8, Y: (y1 + 3*y2 + 3*y3 + y4) / 8})
		return
	}

	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x34 := (x3 + x4) / 2
	y34 := (y3 + y4) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	dx := x4 - x1
	dy := y4 - y1
	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	var da1, da2, k float64

	sig := 0
	if d2 > collinearityEpsilon {
		sig |= 1
	}
	if d3 > collinearityEpsilon {
		sig |= 2
	}

	switch sig {
	case 0:
		// All collinear, or p1 == p4.
		k = dx*dx + dy*dy
		if k == 0 {
			d2 = primitives.CalcSqDistance(x1, y1, x2, y2)
			d3 = primitives.CalcSqDistance(x4, y4, x3, y3)
		} else {
			k = 1 / k
			da1 = x2 - x1
			da2 = y2 - y1
			d2 = k * (da1*dx + da2*dy)
			da1 = x3 - x1
			da2 = y3 - y1
			d3 = k * (da1*dx + da2*dy)
			if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
				return
			}
			switch {
			case d2 <= 0:
				d2 = primitives.CalcSqDistance(x2, y2, x1, y1)
			case d2 >= 1:
				d2 = primitives.CalcSqDistance(x2, y2, x4, y4)
			default:
				d2 = primitives.CalcSqDistance(x2, y2, x1+d2*dx, y1+d2*dy)
			}
			switch {
			case d3 <= 0:
				d3 = primitives.CalcSqDistance(x3, y3, x1, y1)
			case d3 >= 1:
				d3 = primitives.CalcSqDistance(x3, y3, x4, y4)
			default:
				d3 = primitives.CalcSqDistance(x3, y3, x1+d3*dx, y1+d3*dy)
			}
		}
		if d2 > d3 {
			if d2 < tolSq {
				c.points.Add(primitives.PointD{X: x2, Y: y2})
				return
			}
		} else {
			if d3 < tolSq {
				c.points.Add(primitives.PointD{X: x3, Y: y3})
				return
			}
		}

	case 1:
		// p1, p2, p4 collinear.
		if d3*d3 <= tolSq*(dx*dx+dy*dy) {
			if c.angleTolerance < angleToleranceEpsilon {
				c.points.Add(primitives.PointD{X: x23, Y: y23})
				return
			}
			da1 = math.Abs(math.Atan2(y4-y3, x4-x3) - math.Atan2(y3-y2, x3-x2))
			if da1 >= primitives.Pi {
				da1 = 2*primitives.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.points.Add(primitives.PointD{X: x2, Y: y2})
				c.points.Add(primitives.PointD{X: x3, Y: y3})
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.points.Add(primitives.PointD{X: x3, Y: y3})
				return
			}
		}

	case 2:
		// p1, p3, p4 collinear.
		if d2*d2 <= tolSq*(dx*dx+dy*dy) {
			if c.angleTolerance < angleToleranceEpsilon {
				c.points.Add(primitives.PointD{X: x23, Y: y23})
				return
			}
			da1 = math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da1 >= primitives.Pi {
				da1 = 2*primitives.Pi - da1
			}
			if da1 < c.angleTolerance {
				c.points.Add(primitives.PointD{X: x2, Y: y2})
				c.points.Add(primitives.PointD{X: x3, Y: y3})
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.points.Add(primitives.PointD{X: x2, Y: y2})
				return
			}
		}

	case 3:
		// Regular case.
		if (d2+d3)*(d2+d3) <= tolSq*(dx*dx+dy*dy) {
			if c.angleTolerance < angleToleranceEpsilon {
				c.points.Add(primitives.PointD{X: x23, Y: y23})
				return
			}
			k = math.Atan2(y3-y2, x3-x2)
			da1 = math.Abs(k - math.Atan2(y2-y1, x2-x1))
			da2 = math.Abs(math.Atan2(y4-y3, x4-x3) - k)
			if da1 >= primitives.Pi {
				da1 = 2*primitives.Pi - da1
			}
			if da2 >= primitives.Pi {
				da2 = 2*primitives.Pi - da2
			}
			if da1+da2 < c.angleTolerance {
				c.points.Add(primitives.PointD{X: x23, Y: y23})
				return
			}
			if c.cuspLimit != 0 {
				if da1 > c.cuspLimit {
					c.points.Add(primitives.PointD{X: x2, Y: y2})
					return
				}
				if da2 > c.cuspLimit {
					c.points.Add(primitives.PointD{X: x3, Y: y3})
					return
				}
			}
		}
	}

	c.subdivide(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1, tolSq)
	c.subdivide(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1, tolSq)
}

// Quad dispatches between the two quadratic algorithms.
type Quad struct {
	method Method
	inc    *QuadInc
	div    *QuadDiv
}

// NewQuad returns a quadratic flattener defaulting to subdivision.
func NewQuad() *Quad {
	return &Quad{method: Subdivide, inc: NewQuadInc(), div: NewQuadDiv()}
}

// Reset discards the current curve.
func (c *Quad) Reset() {
	c.inc.Reset()
	c.div.Reset()
}

// Init loads the control points into the active algorithm.
func (c *Quad) Init(x1, y1, x2, y2, x3, y3 float64) {
	if c.method == Incremental {
		c.inc.Init(x1, y1, x2, y2, x3, y3)
	} else {
		c.div.Init(x1, y1, x2, y2, x3, y3)
	}
}

// Method returns the active algorithm.
func (c *Quad) Method() Method { return c.method }

// SetMethod selects the algorithm for subsequent Init calls.
func (c *Quad) SetMethod(m Method) { c.method = m }

// ApproximationScale returns the scale tolerance knob.
func (c *Quad) ApproximationScale() float64 { return c.div.ApproximationScale() }

// SetApproximationScale sets the scale on both algorithms.
func (c *Quad) SetApproximationScale(s float64) {
	c.inc.SetApproximationScale(s)
	c.div.SetApproximationScale(s)
}

// AngleTolerance returns the turn-angle tolerance.
func (c *Quad) AngleTolerance() float64 { return c.div.AngleTolerance() }

// SetAngleTolerance sets the turn-angle tolerance.
func (c *Quad) SetAngleTolerance(a float64) { c.div.SetAngleTolerance(a) }

// Rewind restarts iteration.
func (c *Quad) Rewind(pathID uint32) {
	if c.method == Incremental {
		c.inc.Rewind(pathID)
	} else {
		c.div.Rewind(pathID)
	}
}

// Vertex yields the next polyline vertex.
func (c *Quad) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.method == Incremental {
		return c.inc.Vertex()
	}
	return c.div.Vertex()
}

// Cubic dispatches between the two cubic algorithms.
type Cubic struct {
	method Method
	inc    *CubicInc
	div    *CubicDiv
}

// NewCubic returns a cubic flattener defaulting to subdivision.
func NewCubic() *Cubic {
	return &Cubic{method: Subdivide, inc: NewCubicInc(), div: NewCubicDiv()}
}

// Reset discards the current curve.
func (c *Cubic) Reset() {
	c.inc.Reset()
	c.div.Reset()
}

// Init loads the control points into the active algorithm.
func (c *Cubic) Init(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	if c.method == Incremental {
		c.inc.Init(x1, y1, x2, y2, x3, y3, x4, y4)
	} else {
		c.div.Init(x1, y1, x2, y2, x3, y3, x4, y4)
	}
}

// Method returns the active algorithm.
func (c *Cubic) Method() Method { return c.method }

// SetMethod selects the algorithm for subsequent Init calls.
func (c *Cubic) SetMethod(m Method) { c.method = m }

// ApproximationScale returns the scale tolerance knob.
func (c *Cubic) ApproximationScale() float64 { return c.div.ApproximationScale() }

// SetApproximationScale sets the scale on both algorithms.
func (c *Cubic) SetApproximationScale(s float64) {
	c.inc.SetApproximationScale(s)
	c.div.SetApproximationScale(s)
}

// AngleTolerance returns the turn-angle tolerance.
func (c *Cubic) AngleTolerance() float64 { return c.div.AngleTolerance() }

// SetAngleTolerance sets the turn-angle tolerance.
func (c *Cubic) SetAngleTolerance(a float64) { c.div.SetAngleTolerance(a) }

// CuspLimit returns the cusp limit.
func (c *Cubic) CuspLimit() float64 { return c.div.CuspLimit() }

// SetCuspLimit sets the cusp limit.
func (c *Cubic) SetCuspLimit(v float64) { c.div.SetCuspLimit(v) }

// Rewind restarts iteration.
func (c *Cubic) Rewind(pathID uint32) {
	if c.method == Incremental {
		c.inc.Rewind(pathID)
	} else {
		c.div.Rewind(pathID)
	}
}

// Vertex yields the next polyline vertex.
func (c *Cubic) Vertex() (x, y float64, cmd primitives.Cmd) {
	if c.method == Incremental {
		return c.inc.Vertex()
	}
	return c.div.Vertex()
}
