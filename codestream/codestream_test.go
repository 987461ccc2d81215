package codestream

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/fenwick-labs/raster2d"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 100), B: 200, A: 255})
		}
	}
	return img
}

func TestDecodeBMPRoundTrip(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	s, err := ImageDecoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("surface size = %dx%d", s.Width(), s.Height())
	}
	if s.Layout() != raster2d.LayoutRGBA32 {
		t.Fatalf("layout = %v", s.Layout())
	}

	pix := s.Bytes()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			off := (y*4 + x) * 4
			want := src.RGBAAt(x, y)
			if pix[off] != want.R || pix[off+1] != want.G || pix[off+2] != want.B || pix[off+3] != 255 {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, pix[off:off+4], want)
			}
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := (ImageDecoder{}).Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for junk input")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Subimages with non-zero Min must map to surface origin.
	base := testImage()
	sub := base.SubImage(image.Rect(1, 0, 3, 2)).(*image.RGBA)
	s := FromImage(sub)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("surface size = %dx%d", s.Width(), s.Height())
	}
	want := base.RGBAAt(1, 0)
	got := s.Bytes()[:4]
	if got[0] != want.R || got[1] != want.G || got[2] != want.B {
		t.Errorf("origin pixel = %v, want %v", got, want)
	}
}

var _ Decoder = ImageDecoder{}
