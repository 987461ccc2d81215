package flatten

import (
	"math"
	"testing"

	"github.com/fenwick-labs/raster2d/internal/pathstore"
	"github.com/fenwick-labs/raster2d/internal/primitives"
)

func TestFlattenerReplacesCurves(t *testing.T) {
	s := pathstore.New()
	s.MoveTo(0, 0)
	s.Curve3(25, 50, 50, 0)
	s.Curve4(60, -40, 90, -40, 100, 0)
	s.LineTo(120, 5)
	s.ClosePolygon(primitives.FlagNone)

	f := NewFlattener(s)
	f.Rewind(0)

	n := 0
	sawEnd := false
	for {
		_, _, cmd := f.NextVertex()
		if cmd.IsStop() {
			break
		}
		n++
		switch {
		case cmd.IsCurve():
			t.Fatal("curve command leaked through the flattener")
		case cmd.IsEndPoly():
			sawEnd = true
		case !cmd.IsMoveTo() && !cmd.IsLineTo():
			t.Fatalf("unexpected command %v", cmd)
		}
	}
	if n < 8 {
		t.Errorf("only %d vertices; curves were not expanded", n)
	}
	if !sawEnd {
		t.Error("end_poly marker lost")
	}
}

func TestFlattenerEndpointsPreserved(t *testing.T) {
	s := pathstore.New()
	s.MoveTo(10, 10)
	s.Curve4(30, 60, 70, 60, 90, 10)

	f := NewFlattener(s)
	f.Rewind(0)

	var last [2]float64
	first := true
	for {
		x, y, cmd := f.NextVertex()
		if cmd.IsStop() {
			break
		}
		if first {
			if x != 10 || y != 10 || !cmd.IsMoveTo() {
				t.Fatalf("first vertex = (%v, %v, %v)", x, y, cmd)
			}
			first = false
		}
		last = [2]float64{x, y}
	}
	if math.Abs(last[0]-90) > 1e-9 || math.Abs(last[1]-10) > 1e-9 {
		t.Errorf("last vertex = %v, want (90, 10)", last)
	}
}

func TestFlattenerRewindResets(t *testing.T) {
	s := pathstore.New()
	s.MoveTo(0, 0)
	s.Curve3(10, 20, 20, 0)

	f := NewFlattener(s)
	f.Rewind(0)
	count1 := 0
	for {
		_, _, cmd := f.NextVertex()
		if cmd.IsStop() {
			break
		}
		count1++
	}

	f.Rewind(0)
	count2 := 0
	for {
		_, _, cmd := f.NextVertex()
		if cmd.IsStop() {
			break
		}
		count2++
	}
	if count1 != count2 {
		t.Errorf("rewind changed vertex count: %d vs %d", count1, count2)
	}
}

func TestFlattenerScaleControlsDensity(t *testing.T) {
	build := func(scale float64) int {
		s := pathstore.New()
		s.MoveTo(0, 0)
		s.Curve4(0, 100, 100, 100, 100, 0)
		f := NewFlattener(s)
		f.SetApproximationScale(scale)
		f.Rewind(0)
		n := 0
		for {
			_, _, cmd := f.NextVertex()
			if cmd.IsStop() {
				return n
			}
			n++
		}
	}
	coarse := build(0.2)
	fine := build(10)
	if fine <= coarse {
		t.Errorf("expected more vertices at finer scale: coarse=%d fine=%d", coarse, fine)
	}
}
