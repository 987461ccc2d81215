package raster

import (
	"testing"

	"github.com/fenwick-labs/raster2d/internal/primitives"
	"github.com/fenwick-labs/raster2d/internal/scanlines"
)

// rowAlphas sweeps every scanline into a map of per-pixel coverage.
func rowAlphas(r *Rasterizer) map[[2]int]uint8 {
	out := make(map[[2]int]uint8)
	if !r.RewindScanlines() {
		return out
	}
	sl := scanlines.NewUnpacked()
	sl.Reset(r.MinX(), r.MaxX())
	for r.SweepScanline(sl) {
		y := sl.Y()
		for _, sp := range sl.Spans() {
			covers := sp.Covers[:sp.Len]
			for i, c := range covers {
				out[[2]int{int(sp.X) + i, y}] = c
			}
		}
	}
	return out
}

func TestRectangleFill(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(10, 10)
	r.LineToD(20, 10)
	r.LineToD(20, 15)
	r.LineToD(10, 15)
	r.ClosePolygon()

	alphas := rowAlphas(r)

	for y := 10; y < 15; y++ {
		for x := 10; x < 20; x++ {
			if got := alphas[[2]int{x, y}]; got != 255 {
				t.Errorf("pixel (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
	if got := alphas[[2]int{9, 10}]; got != 0 {
		t.Errorf("pixel (9,10) = %d, want 0", got)
	}
	if got := alphas[[2]int{20, 10}]; got != 0 {
		t.Errorf("pixel (20,10) = %d, want 0", got)
	}
}

func TestHalfCoveredPixel(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(0, 0)
	r.LineToD(1, 0)
	r.LineToD(0, 1)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	got := int(alphas[[2]int{0, 0}])
	if got < 126 || got > 130 {
		t.Errorf("pixel (0,0) = %d, want 128 +/- 2", got)
	}
}

func TestEvenOddDonut(t *testing.T) {
	r := NewRasterizer()
	r.SetFillingRule(primitives.FillEvenOdd)
	r.MoveToD(0, 0)
	r.LineToD(10, 0)
	r.LineToD(10, 10)
	r.LineToD(0, 10)
	r.ClosePolygon()
	r.MoveToD(3, 3)
	r.LineToD(7, 3)
	r.LineToD(7, 7)
	r.LineToD(3, 7)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	if got := alphas[[2]int{5, 5}]; got != 0 {
		t.Errorf("pixel (5,5) = %d, want 0 (hole)", got)
	}
	if got := alphas[[2]int{1, 1}]; got != 255 {
		t.Errorf("pixel (1,1) = %d, want 255 (ring)", got)
	}
	if got := alphas[[2]int{4, 4}]; got != 0 {
		t.Errorf("pixel (4,4) = %d, want 0 (hole)", got)
	}
	if got := alphas[[2]int{7, 7}]; got != 255 {
		t.Errorf("pixel (7,7) = %d, want 255 (ring resumes)", got)
	}
}

func TestNonZeroNestedOppositeWindings(t *testing.T) {
	r := NewRasterizer()
	// Outer clockwise, inner counter-clockwise: non-zero rule punches a
	// hole only when the winding signs cancel.
	r.MoveToD(0, 0)
	r.LineToD(10, 0)
	r.LineToD(10, 10)
	r.LineToD(0, 10)
	r.ClosePolygon()
	r.MoveToD(3, 3)
	r.LineToD(3, 7)
	r.LineToD(7, 7)
	r.LineToD(7, 3)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	if got := alphas[[2]int{5, 5}]; got != 0 {
		t.Errorf("pixel (5,5) = %d, want 0 (cancelled winding)", got)
	}
	if got := alphas[[2]int{1, 5}]; got != 255 {
		t.Errorf("pixel (1,5) = %d, want 255", got)
	}
}

func TestAutoCloseOnMoveTo(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(0, 0)
	r.LineToD(4, 0)
	r.LineToD(4, 4)
	r.LineToD(0, 4)
	// No explicit close; the next contour (and the sweep) auto-close.
	r.MoveToD(20, 20)
	r.LineToD(24, 20)
	r.LineToD(24, 24)

	alphas := rowAlphas(r)
	if got := alphas[[2]int{2, 2}]; got != 255 {
		t.Errorf("pixel (2,2) = %d, want 255 (auto-closed)", got)
	}
}

func TestGammaThresholdBinarizes(t *testing.T) {
	r := NewRasterizer()
	r.SetGamma(GammaThreshold(0.5))
	r.MoveToD(0, 0)
	r.LineToD(1, 0)
	r.LineToD(1, 0.25)
	r.LineToD(0, 0.25)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	// Quarter coverage folds below the threshold.
	if got := alphas[[2]int{0, 0}]; got != 0 {
		t.Errorf("pixel (0,0) = %d, want 0 after threshold gamma", got)
	}
}

func TestHitTest(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(10, 10)
	r.LineToD(20, 10)
	r.LineToD(20, 20)
	r.LineToD(10, 20)
	r.ClosePolygon()

	if !r.HitTest(15, 15) {
		t.Error("expected hit inside rectangle")
	}
	if r.HitTest(5, 15) {
		t.Error("unexpected hit left of rectangle")
	}
	if r.HitTest(25, 15) {
		t.Error("unexpected hit right of rectangle")
	}
	if r.HitTest(15, 25) {
		t.Error("unexpected hit below rectangle")
	}
}

func TestSweepBeforeSortFails(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(0, 0)
	r.LineToD(4, 0)
	r.LineToD(4, 4)
	r.ClosePolygon()

	sl := scanlines.NewUnpacked()
	sl.Reset(0, 8)
	if r.SweepScanline(sl) {
		t.Fatal("sweep on unsorted store should fail")
	}
	if err := r.Err(); err == nil || !primitives.IsPrecondition(err) {
		t.Errorf("Err() = %v, want PreconditionViolated", err)
	}
	r.Reset()
	if r.Err() != nil {
		t.Error("Reset should clear the error")
	}
}

func TestClipBoxCulls(t *testing.T) {
	r := NewRasterizer()
	r.SetClipBox(0, 0, 10, 10)
	r.MoveToD(2, 2)
	r.LineToD(8, 2)
	r.LineToD(8, 8)
	r.LineToD(2, 8)
	r.ClosePolygon()

	// A second contour entirely outside the box.
	r.MoveToD(50, 50)
	r.LineToD(60, 50)
	r.LineToD(60, 60)
	r.LineToD(50, 60)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	if got := alphas[[2]int{5, 5}]; got != 255 {
		t.Errorf("pixel (5,5) = %d, want 255", got)
	}
	if got := alphas[[2]int{55, 55}]; got != 0 {
		t.Errorf("pixel (55,55) = %d, want 0 (culled)", got)
	}
}

func TestEmptyPathSweepsNothing(t *testing.T) {
	r := NewRasterizer()
	if r.RewindScanlines() {
		t.Error("empty rasterizer should have nothing to sweep")
	}
}

func TestResetBetweenPaths(t *testing.T) {
	r := NewRasterizer()
	r.MoveToD(0, 0)
	r.LineToD(4, 0)
	r.LineToD(4, 4)
	r.ClosePolygon()
	_ = rowAlphas(r)

	r.Reset()
	r.MoveToD(100, 100)
	r.LineToD(104, 100)
	r.LineToD(104, 104)
	r.ClosePolygon()

	alphas := rowAlphas(r)
	if got := alphas[[2]int{1, 1}]; got != 0 {
		t.Errorf("stale geometry survived Reset: pixel (1,1) = %d", got)
	}
	if got := alphas[[2]int{102, 101}]; got == 0 {
		t.Error("new geometry missing after Reset")
	}
}
