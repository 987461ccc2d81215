package pdfsource

import (
	"math"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/fenwick-labs/raster2d"
)

func TestNumber(t *testing.T) {
	if v, ok := Number(types.Float(1.5)); !ok || v != 1.5 {
		t.Errorf("Number(Float) = %v, %v", v, ok)
	}
	if v, ok := Number(types.Integer(7)); !ok || v != 7 {
		t.Errorf("Number(Integer) = %v, %v", v, ok)
	}
	if _, ok := Number(types.Name("x")); ok {
		t.Error("Number(Name) should fail")
	}
}

func TestMatrix(t *testing.T) {
	arr := types.Array{
		types.Integer(1), types.Integer(0), types.Integer(0),
		types.Integer(1), types.Float(10.5), types.Integer(20),
	}
	m, err := Matrix(arr)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	want := [6]float64{1, 0, 0, 1, 10.5, 20}
	if m != want {
		t.Errorf("Matrix = %v, want %v", m, want)
	}

	if _, err := Matrix(types.Array{types.Integer(1)}); err == nil {
		t.Error("short matrix should fail")
	}
	bad := types.Array{
		types.Name("a"), types.Integer(0), types.Integer(0),
		types.Integer(1), types.Integer(0), types.Integer(0),
	}
	if _, err := Matrix(bad); err == nil {
		t.Error("non-numeric matrix should fail")
	}
}

func TestDeviceColor(t *testing.T) {
	tests := []struct {
		name  string
		comps []float64
		want  raster2d.Color
	}{
		{"gray", []float64{0.5}, raster2d.Color{R: 128, G: 128, B: 128, A: 255}},
		{"rgb", []float64{1, 0, 0}, raster2d.Color{R: 255, A: 255}},
		{"cmyk black", []float64{0, 0, 0, 1}, raster2d.Color{A: 255}},
		{"cmyk cyan", []float64{1, 0, 0, 0}, raster2d.Color{G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeviceColor(tt.comps)
			if err != nil {
				t.Fatalf("DeviceColor: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeviceColor = %+v, want %+v", got, tt.want)
			}
		})
	}
	if _, err := DeviceColor([]float64{1, 2}); err == nil {
		t.Error("2-component color should fail")
	}
}

func TestColorArrayClamps(t *testing.T) {
	got, err := ColorArray(types.Array{types.Float(2.0), types.Float(-1.0), types.Float(0.5)})
	if err != nil {
		t.Fatalf("ColorArray: %v", err)
	}
	if got.R != 255 || got.G != 0 || got.B != 128 {
		t.Errorf("ColorArray = %+v", got)
	}
}

func TestApplyExtGState(t *testing.T) {
	gs := NewGraphicsState()
	d := types.Dict{
		"LW": types.Float(2.5),
		"ca": types.Float(0.5),
		"CA": types.Float(0.25),
		"BM": types.Name("Normal"),
	}
	gs.ApplyExtGState(d)
	if gs.LineWidth != 2.5 {
		t.Errorf("LineWidth = %v", gs.LineWidth)
	}
	if gs.FillAlpha != 0.5 || gs.FillColor.A != 128 {
		t.Errorf("fill alpha = %v, color alpha = %d", gs.FillAlpha, gs.FillColor.A)
	}
	if gs.StrokeAlpha != 0.25 {
		t.Errorf("StrokeAlpha = %v", gs.StrokeAlpha)
	}
}

func TestApplyMatrixComposes(t *testing.T) {
	gs := NewGraphicsState()
	d := types.Dict{
		"Matrix": types.Array{
			types.Integer(2), types.Integer(0), types.Integer(0),
			types.Integer(2), types.Integer(5), types.Integer(5),
		},
	}
	if err := gs.ApplyMatrix(d); err != nil {
		t.Fatalf("ApplyMatrix: %v", err)
	}
	want := [6]float64{2, 0, 0, 2, 5, 5}
	if gs.CTM != want {
		t.Errorf("CTM = %v, want %v", gs.CTM, want)
	}

	// Composing a second translation happens in the first matrix's
	// coordinate system.
	d2 := types.Dict{
		"Matrix": types.Array{
			types.Integer(1), types.Integer(0), types.Integer(0),
			types.Integer(1), types.Integer(1), types.Integer(0),
		},
	}
	if err := gs.ApplyMatrix(d2); err != nil {
		t.Fatalf("ApplyMatrix: %v", err)
	}
	if math.Abs(gs.CTM[4]-7) > 1e-12 || math.Abs(gs.CTM[0]-2) > 1e-12 {
		t.Errorf("composed CTM = %v", gs.CTM)
	}

	// Missing /Matrix is fine.
	if err := gs.ApplyMatrix(types.Dict{}); err != nil {
		t.Errorf("missing matrix errored: %v", err)
	}
}
