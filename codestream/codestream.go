// Package codestream defines the contract through which codestream
// decoders (JPEG 2000, JPEG XL and friends) hand decoded pixel buffers
// to the blend surface, plus a reference decoder for the raster formats
// the golang.org/x/image codecs already parse.
package codestream

import (
	"fmt"
	"image"
	"io"

	// Registered raster codecs for the reference decoder.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/fenwick-labs/raster2d"
)

// Decoder turns an encoded codestream into a surface the pipeline can
// blend onto.
type Decoder interface {
	Decode(r io.Reader) (*raster2d.Surface, error)
}

// ImageDecoder is the reference Decoder: it parses any format
// registered with the standard image package (the x/image BMP and TIFF
// codecs are linked in) and converts to an RGBA32 surface.
type ImageDecoder struct{}

// Decode parses r and returns the pixels as a LayoutRGBA32 surface.
func (ImageDecoder) Decode(r io.Reader) (*raster2d.Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codestream: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage copies any image.Image into a LayoutRGBA32 surface.
func FromImage(img image.Image) *raster2d.Surface {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	s := raster2d.NewSurface(raster2d.LayoutRGBA32, w, h)
	buf := s.Bytes()

	for y := 0; y < h; y++ {
		row := buf[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x*4+0] = uint8(r16 >> 8)
			row[x*4+1] = uint8(g16 >> 8)
			row[x*4+2] = uint8(b16 >> 8)
			row[x*4+3] = uint8(a16 >> 8)
		}
	}
	return s
}
