package flatten

import (
	"math"
	"testing"

	"github.com/fenwick-labs/raster2d/internal/primitives"
)

func drain(vertex func() (float64, float64, primitives.Cmd)) []primitives.PointD {
	var out []primitives.PointD
	for {
		x, y, cmd := vertex()
		if cmd.IsStop() {
			return out
		}
		out = append(out, primitives.PointD{X: x, Y: y})
	}
}

func cubicPoint(x1, y1, x2, y2, x3, y3, x4, y4, t float64) (float64, float64) {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return a*x1 + b*x2 + c*x3 + d*x4, a*y1 + b*y2 + c*y3 + d*y4
}

func quadPoint(x1, y1, x2, y2, x3, y3, t float64) (float64, float64) {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return a*x1 + b*x2 + c*x3, a*y1 + b*y2 + c*y3
}

// distToPolyline returns the distance from p to the nearest polyline
// segment.
func distToPolyline(px, py float64, pts []primitives.PointD) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		x1, y1 := pts[i].X, pts[i].Y
		x2, y2 := pts[i+1].X, pts[i+1].Y
		dx := x2 - x1
		dy := y2 - y1
		var d float64
		if dx == 0 && dy == 0 {
			d = math.Hypot(px-x1, py-y1)
		} else {
			u := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
			switch {
			case u <= 0:
				d = math.Hypot(px-x1, py-y1)
			case u >= 1:
				d = math.Hypot(px-x2, py-y2)
			default:
				d = math.Hypot(px-(x1+u*dx), py-(y1+u*dy))
			}
		}
		if d < best {
			best = d
		}
	}
	return best
}

func TestCubicDivEndpointsExact(t *testing.T) {
	c := NewCubicDiv()
	c.Init(1.5, 2.5, 30, -10, 70, 60, 99.25, 3.75)

	pts := drain(c.Vertex)
	if len(pts) < 2 {
		t.Fatalf("only %d points", len(pts))
	}
	if pts[0] != (primitives.PointD{X: 1.5, Y: 2.5}) {
		t.Errorf("first point = %+v", pts[0])
	}
	if pts[len(pts)-1] != (primitives.PointD{X: 99.25, Y: 3.75}) {
		t.Errorf("last point = %+v", pts[len(pts)-1])
	}
}

func TestCubicDivHausdorffBound(t *testing.T) {
	curves := [][8]float64{
		{0, 0, 50, 0, 50, 50, 100, 50},
		{0, 0, 100, 0, 0, 100, 100, 100},
		{10, 10, 10, 90, 90, 90, 90, 10},
	}
	for _, scale := range []float64{0.5, 1, 4} {
		for _, cv := range curves {
			c := NewCubicDiv()
			c.SetApproximationScale(scale)
			c.Init(cv[0], cv[1], cv[2], cv[3], cv[4], cv[5], cv[6], cv[7])
			pts := drain(c.Vertex)

			bound := 0.6 / scale
			for i := 0; i <= 500; i++ {
				tt := float64(i) / 500
				px, py := cubicPoint(cv[0], cv[1], cv[2], cv[3], cv[4], cv[5], cv[6], cv[7], tt)
				if d := distToPolyline(px, py, pts); d > bound {
					t.Fatalf("scale %v curve %v: t=%v distance %v > %v", scale, cv, tt, d, bound)
				}
			}
		}
	}
}

func TestQuadDivHausdorffBound(t *testing.T) {
	c := NewQuadDiv()
	c.SetApproximationScale(1)
	c.Init(0, 0, 50, 100, 100, 0)
	pts := drain(c.Vertex)

	for i := 0; i <= 500; i++ {
		tt := float64(i) / 500
		px, py := quadPoint(0, 0, 50, 100, 100, 0, tt)
		if d := distToPolyline(px, py, pts); d > 0.6 {
			t.Fatalf("t=%v distance %v > 0.6", tt, d)
		}
	}
}

func TestQuadDivCollinearDropsControl(t *testing.T) {
	c := NewQuadDiv()
	c.Init(0, 0, 5, 0, 10, 0)
	pts := drain(c.Vertex)
	if len(pts) != 2 {
		t.Errorf("collinear quad flattened to %d points, want 2", len(pts))
	}
}

func TestIncStepCount(t *testing.T) {
	c := NewCubicInc()
	c.Init(0, 0, 1, 0, 2, 0, 3, 0)
	// Short curve floors at 4 steps: move_to plus 4 line_to.
	pts := drain(c.Vertex)
	if len(pts) != 5 {
		t.Errorf("got %d points, want 5", len(pts))
	}
	if pts[len(pts)-1] != (primitives.PointD{X: 3, Y: 0}) {
		t.Errorf("last point = %+v", pts[len(pts)-1])
	}
}

func TestIncRewindReplays(t *testing.T) {
	c := NewQuadInc()
	c.Init(0, 0, 10, 20, 20, 0)
	first := drain(c.Vertex)
	c.Rewind(0)
	second := drain(c.Vertex)
	if len(first) != len(second) {
		t.Fatalf("replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCuspLimitStored(t *testing.T) {
	c := NewCubicDiv()
	c.SetCuspLimit(1.0)
	if got := c.CuspLimit(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("CuspLimit() = %v, want 1.0", got)
	}
	c.SetCuspLimit(0)
	if got := c.CuspLimit(); got != 0 {
		t.Errorf("CuspLimit() = %v, want 0", got)
	}
}

func TestUnifiedDispatch(t *testing.T) {
	c := NewCubic()
	if c.Method() != Subdivide {
		t.Error("default method should be Subdivide")
	}
	c.SetMethod(Incremental)
	c.Init(0, 0, 10, 0, 20, 0, 30, 0)
	// Polyline length 30 * 0.25 rounds to 8 steps: move_to plus 8 line_to.
	pts := drain(c.Vertex)
	if len(pts) != 9 {
		t.Errorf("incremental dispatch yielded %d points, want 9", len(pts))
	}
}
