package render

import (
	"testing"

	"github.com/fenwick-labs/raster2d/internal/raster"
	"github.com/fenwick-labs/raster2d/internal/scanlines"
	"github.com/fenwick-labs/raster2d/internal/surface"
)

func rect(r *raster.Rasterizer, x1, y1, x2, y2 float64) {
	r.MoveToD(x1, y1)
	r.LineToD(x2, y1)
	r.LineToD(x2, y2)
	r.LineToD(x1, y2)
	r.ClosePolygon()
}

func TestScanlinesWithUnpacked(t *testing.T) {
	rb := surface.NewRenderingBuffer(make([]byte, 32*32), 32, 32, 32)
	pf := surface.NewPixFmtGray8(rb)
	ras := raster.NewRasterizer()
	rect(ras, 4, 4, 12, 12)

	if err := Scanlines(ras, scanlines.NewUnpacked(), pf, surface.NewGray8(255)); err != nil {
		t.Fatalf("Scanlines: %v", err)
	}
	if got := rb.Buf()[8*32+8]; got != 255 {
		t.Errorf("interior pixel = %d, want 255", got)
	}
	if got := rb.Buf()[2*32+2]; got != 0 {
		t.Errorf("exterior pixel = %d, want 0", got)
	}
}

func TestScanlinesWithPacked(t *testing.T) {
	rb := surface.NewRenderingBuffer(make([]byte, 32*32), 32, 32, 32)
	pf := surface.NewPixFmtGray8(rb)
	ras := raster.NewRasterizer()
	rect(ras, 4, 4, 12, 12)

	if err := Scanlines(ras, scanlines.NewPacked(), pf, surface.NewGray8(255)); err != nil {
		t.Fatalf("Scanlines: %v", err)
	}
	if got := rb.Buf()[8*32+8]; got != 255 {
		t.Errorf("interior pixel = %d, want 255", got)
	}
}

func TestScanlinesWithBinary(t *testing.T) {
	rb := surface.NewRenderingBuffer(make([]byte, 32*32), 32, 32, 32)
	pf := surface.NewPixFmtGray8(rb)
	ras := raster.NewRasterizer()
	// A half-covered row still renders opaque through the binary
	// container.
	rect(ras, 4, 4, 12, 4.5)

	if err := Scanlines(ras, scanlines.NewBinary(), pf, surface.NewGray8(255)); err != nil {
		t.Fatalf("Scanlines: %v", err)
	}
	if got := rb.Buf()[4*32+8]; got != 255 {
		t.Errorf("binary pixel = %d, want 255", got)
	}
}

func TestScanlinesEmptyRasterizer(t *testing.T) {
	rb := surface.NewRenderingBuffer(make([]byte, 16), 4, 4, 4)
	pf := surface.NewPixFmtGray8(rb)
	ras := raster.NewRasterizer()
	if err := Scanlines(ras, scanlines.NewUnpacked(), pf, surface.NewGray8(255)); err != nil {
		t.Fatalf("empty render errored: %v", err)
	}
	for i, b := range rb.Buf() {
		if b != 0 {
			t.Errorf("byte %d = %d", i, b)
		}
	}
}
