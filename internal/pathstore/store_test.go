package pathstore

import (
	"math"
	"testing"

	"github.com/fenwick-labs/raster2d/internal/affine"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

func collect(s *Store, pathID uint32) []primitives.Vertex {
	var out []primitives.Vertex
	s.Rewind(pathID)
	for {
		x, y, cmd := s.NextVertex()
		if cmd.IsStop() {
			return out
		}
		out = append(out, primitives.Vertex{X: x, Y: y, Cmd: cmd})
	}
}

func TestMoveLineClose(t *testing.T) {
	s := New()
	s.MoveTo(10, 10)
	s.LineTo(20, 10)
	s.LineTo(20, 15)
	s.ClosePolygon(primitives.FlagNone)

	got := collect(s, 0)
	if len(got) != 4 {
		t.Fatalf("got %d entries, want 4", len(got))
	}
	if !got[0].Cmd.IsMoveTo() || got[0].X != 10 || got[0].Y != 10 {
		t.Errorf("vertex 0 = %+v", got[0])
	}
	if !got[1].Cmd.IsLineTo() {
		t.Errorf("vertex 1 = %+v", got[1])
	}
	if !got[3].Cmd.IsEndPoly() || !got[3].Cmd.IsClose() {
		t.Errorf("entry 3 cmd = %v, want closed end_poly", got[3].Cmd)
	}
}

func TestRelativeOps(t *testing.T) {
	s := New()
	s.MoveTo(5, 5)
	s.LineRel(10, 0)
	s.HLineRel(5)
	s.VLineTo(20)

	got := collect(s, 0)
	want := [][2]float64{{5, 5}, {15, 5}, {20, 5}, {20, 20}}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, w[0], w[1])
		}
	}
}

func TestRelativeBeforeMoveTo(t *testing.T) {
	s := New()
	s.LineRel(3, 4) // starts from (0,0)
	x, y, cmd := s.Vertex(0)
	if x != 3 || y != 4 || !cmd.IsLineTo() {
		t.Errorf("vertex = (%v, %v, %v)", x, y, cmd)
	}
}

func TestLastAccessors(t *testing.T) {
	s := New()
	if s.LastX() != 0 || s.LastY() != 0 {
		t.Error("empty store last point should be (0,0)")
	}
	s.MoveTo(7, 9)
	if s.LastX() != 7 || s.LastY() != 9 {
		t.Errorf("last = (%v, %v)", s.LastX(), s.LastY())
	}
	if _, _, cmd := s.Vertex(99); !cmd.IsStop() {
		t.Errorf("out-of-range vertex cmd = %v, want stop", cmd)
	}
}

func TestCurve3SmoothReflectsControl(t *testing.T) {
	s := New()
	s.MoveTo(0, 0)
	s.Curve3(10, 10, 20, 0)
	s.Curve3Smooth(40, 0)

	got := collect(s, 0)
	// move, ctrl, end, reflected ctrl, end
	if len(got) != 5 {
		t.Fatalf("got %d vertices, want 5", len(got))
	}
	// Reflection of (10,10) around (20,0) is (30,-10).
	if got[3].X != 30 || got[3].Y != -10 {
		t.Errorf("reflected control = (%v, %v), want (30, -10)", got[3].X, got[3].Y)
	}
}

func TestCurve4SmoothWithoutPriorCurve(t *testing.T) {
	s := New()
	s.MoveTo(5, 5)
	s.Curve4Smooth(10, 10, 20, 20)

	got := collect(s, 0)
	if len(got) != 4 {
		t.Fatalf("got %d vertices, want 4", len(got))
	}
	// No previous control: first control collapses onto the current point.
	if got[1].X != 5 || got[1].Y != 5 {
		t.Errorf("control 1 = (%v, %v), want (5, 5)", got[1].X, got[1].Y)
	}
}

func TestTransformIdentityIsIdempotent(t *testing.T) {
	s := New()
	s.MoveTo(1.25, 2.5)
	s.Curve4(3.1, 4.2, 5.3, 6.4, 7.5, 8.6)
	s.ClosePolygon(primitives.FlagNone)
	before := collect(s, 0)

	s.Transform(affine.Identity(), 0)
	after := collect(s, 0)

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vertex %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestTransformSkipsNonVertex(t *testing.T) {
	s := New()
	s.MoveTo(1, 1)
	s.LineTo(2, 2)
	s.ClosePolygon(primitives.FlagNone)
	s.Transform(affine.Translation(10, 10), 0)

	x, y, cmd := s.Vertex(2)
	if !cmd.IsEndPoly() {
		t.Fatalf("vertex 2 cmd = %v", cmd)
	}
	if x != 0 || y != 0 {
		t.Errorf("end_poly coordinates moved to (%v, %v)", x, y)
	}
	if gx, gy, _ := s.Vertex(1); gx != 12 || gy != 12 {
		t.Errorf("vertex 1 = (%v, %v), want (12, 12)", gx, gy)
	}
}

func TestFlipX(t *testing.T) {
	s := New()
	s.MoveTo(2, 1)
	s.LineTo(8, 3)
	s.FlipX(0, 10)

	if x, _, _ := s.Vertex(0); x != 8 {
		t.Errorf("vertex 0 x = %v, want 8", x)
	}
	if x, _, _ := s.Vertex(1); x != 2 {
		t.Errorf("vertex 1 x = %v, want 2", x)
	}
}

func TestInvertPolygon(t *testing.T) {
	s := New()
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.LineTo(10, 10)
	s.LineTo(0, 10)
	s.ClosePolygon(primitives.FlagNone)

	s.InvertPolygon(0)

	got := collect(s, 0)
	if len(got) != 5 {
		t.Fatalf("got %d entries, want 5", len(got))
	}
	if !got[0].Cmd.IsMoveTo() {
		t.Errorf("first command after invert = %v, want move_to", got[0].Cmd)
	}
	if !got[4].Cmd.IsEndPoly() {
		t.Errorf("entry 4 cmd = %v, want end_poly", got[4].Cmd)
	}
	want := [][2]float64{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	for i, w := range want {
		if got[i].X != w[0] || got[i].Y != w[1] {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, w[0], w[1])
		}
	}
}

func TestArcToDegenerate(t *testing.T) {
	s := New()
	s.MoveTo(0, 0)
	s.ArcTo(0, 0, 0, false, true, 10, 10)
	got := collect(s, 0)
	if len(got) != 2 || !got[1].Cmd.IsLineTo() {
		t.Fatalf("zero-radius arc should degrade to line_to, got %+v", got)
	}

	s2 := New()
	s2.MoveTo(5, 5)
	s2.ArcTo(3, 3, 0, false, true, 5, 5)
	if s2.TotalVertices() != 1 {
		t.Errorf("coincident-endpoint arc should be a no-op, have %d vertices", s2.TotalVertices())
	}
}

func TestArcToEndsAtTarget(t *testing.T) {
	s := New()
	s.MoveTo(0, 0)
	s.ArcTo(50, 50, 0, false, true, 100, 0)

	x, y, _ := s.LastVertex()
	if math.Abs(x-100) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("arc ends at (%v, %v), want (100, 0)", x, y)
	}
	// The arc body must be cubic curve vertices.
	sawCurve := false
	for _, v := range collect(s, 0) {
		if v.Cmd.IsCurve4() {
			sawCurve = true
		}
	}
	if !sawCurve {
		t.Error("expected curve4 vertices in arc expansion")
	}
}

func TestStartNewPath(t *testing.T) {
	s := New()
	s.MoveTo(1, 1)
	s.LineTo(2, 2)
	id := s.StartNewPath()
	s.MoveTo(100, 100)
	s.LineTo(200, 200)

	first := collect(s, 0)
	if len(first) != 2 {
		t.Errorf("first path has %d vertices, want 2", len(first))
	}
	second := collect(s, id)
	if len(second) != 2 || second[0].X != 100 {
		t.Errorf("second path = %+v", second)
	}
}

func TestConcatPath(t *testing.T) {
	a := New()
	a.MoveTo(1, 2)
	a.LineTo(3, 4)

	b := New()
	b.MoveTo(9, 9)
	b.ConcatPath(a, 0)

	got := collect(b, 0)
	if len(got) != 3 {
		t.Fatalf("got %d vertices, want 3", len(got))
	}
	if !got[1].Cmd.IsMoveTo() {
		t.Errorf("concat should keep commands verbatim, got %v", got[1].Cmd)
	}
}
