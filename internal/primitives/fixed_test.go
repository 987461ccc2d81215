package primitives

import "testing"

func TestSubpixelRoundTrip(t *testing.T) {
	values := []int{
		-(1 << 23), -(1 << 23) + 1, -65536, -257, -256, -255, -1, 0,
		1, 255, 256, 257, 65536, 1<<23 - 1,
	}
	for _, v := range values {
		if got := Downscale(Upscale(v)); got != v {
			t.Errorf("Downscale(Upscale(%d)) = %d", v, got)
		}
	}
}

func TestIRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0}, {0.49, 0}, {0.5, 1}, {1.5, 2},
		{-0.49, 0}, {-0.5, -1}, {-1.5, -2},
	}
	for _, tt := range tests {
		if got := IRound(tt.in); got != tt.want {
			t.Errorf("IRound(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestURound(t *testing.T) {
	if got := URound(-3.2); got != 0 {
		t.Errorf("URound(-3.2) = %d, want 0", got)
	}
	if got := URound(3.5); got != 4 {
		t.Errorf("URound(3.5) = %d, want 4", got)
	}
}

func TestUpscaleD(t *testing.T) {
	if got := UpscaleD(1.0); got != 256 {
		t.Errorf("UpscaleD(1.0) = %d, want 256", got)
	}
	if got := UpscaleD(0.5); got != 128 {
		t.Errorf("UpscaleD(0.5) = %d, want 128", got)
	}
	if got := UpscaleD(-1.0); got != -256 {
		t.Errorf("UpscaleD(-1.0) = %d, want -256", got)
	}
}

func TestSaturatedIRound(t *testing.T) {
	const limit = 100
	if got := SaturatedIRound(1e9, limit); got != limit {
		t.Errorf("SaturatedIRound high = %d, want %d", got, limit)
	}
	if got := SaturatedIRound(-1e9, limit); got != -limit {
		t.Errorf("SaturatedIRound low = %d, want %d", got, -limit)
	}
	if got := SaturatedIRound(3.7, limit); got != 4 {
		t.Errorf("SaturatedIRound(3.7) = %d, want 4", got)
	}
}
