package surface

// PixFmtRGBA32 blends RGBA8 colors into a four-byte-per-pixel buffer.
// Color channels composite with dst = dst + mul(src-dst, alpha) and the
// destination alpha accumulates as a' = a + alpha - mul(a, alpha).
type PixFmtRGBA32 struct {
	rb    *RenderingBuffer
	order RGBAOrder
}

// NewPixFmtRGBA32 wraps a rendering buffer with the given component
// order (OrderRGBA, OrderBGRA, OrderARGB or OrderABGR).
func NewPixFmtRGBA32(rb *RenderingBuffer, order RGBAOrder) *PixFmtRGBA32 {
	return &PixFmtRGBA32{rb: rb, order: order}
}

// Width returns the surface width in pixels.
func (pf *PixFmtRGBA32) Width() int { return pf.rb.Width() }

// Height returns the surface height in pixels.
func (pf *PixFmtRGBA32) Height() int { return pf.rb.Height() }

// PixWidth returns bytes per pixel.
func (pf *PixFmtRGBA32) PixWidth() int { return 4 }

func (pf *PixFmtRGBA32) inBounds(x, y int) bool {
	return x >= 0 && x < pf.rb.Width() && y >= 0 && y < pf.rb.Height()
}

// Pixel reads the color at (x, y); zero outside the buffer.
func (pf *PixFmtRGBA32) Pixel(x, y int) RGBA8 {
	if !pf.inBounds(x, y) {
		return RGBA8{}
	}
	p := pf.rb.Row(y)[x*4:]
	return RGBA8{
		R: p[pf.order.R], G: p[pf.order.G],
		B: p[pf.order.B], A: p[pf.order.A],
	}
}

func (pf *PixFmtRGBA32) setPix(p []byte, c RGBA8) {
	p[pf.order.R] = c.R
	p[pf.order.G] = c.G
	p[pf.order.B] = c.B
	p[pf.order.A] = c.A
}

func (pf *PixFmtRGBA32) blendPix(p []byte, c RGBA8, alpha uint8) {
	p[pf.order.R] = Lerp(p[pf.order.R], c.R, alpha)
	p[pf.order.G] = Lerp(p[pf.order.G], c.G, alpha)
	p[pf.order.B] = Lerp(p[pf.order.B], c.B, alpha)
	da := p[pf.order.A]
	p[pf.order.A] = da + alpha - Multiply(da, alpha)
}

// CopyPixel writes the color without blending.
func (pf *PixFmtRGBA32) CopyPixel(x, y int, c RGBA8) {
	if !pf.inBounds(x, y) {
		return
	}
	pf.setPix(pf.rb.Row(y)[x*4:], c)
}

// BlendPixel composites c over the pixel with the given coverage.
func (pf *PixFmtRGBA32) BlendPixel(x, y int, c RGBA8, cover uint8) {
	if !pf.inBounds(x, y) {
		return
	}
	alpha := MultCover(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rb.Row(y)[x*4:]
	if alpha == 255 {
		pf.setPix(p, RGBA8{R: c.R, G: c.G, B: c.B, A: 255})
		return
	}
	pf.blendPix(p, c, alpha)
}

// CopyHline writes a run without blending, clipped to the buffer.
func (pf *PixFmtRGBA32) CopyHline(x, y, length int, c RGBA8) {
	x, length = clipRun(x, length, pf.rb.Width())
	if length <= 0 || y < 0 || y >= pf.rb.Height() {
		return
	}
	row := pf.rb.Row(y)
	for i := 0; i < length; i++ {
		pf.setPix(row[(x+i)*4:], c)
	}
}

// BlendHline composites a flat-coverage run.
func (pf *PixFmtRGBA32) BlendHline(x, y, length int, c RGBA8, cover uint8) {
	x, length = clipRun(x, length, pf.rb.Width())
	if length <= 0 || y < 0 || y >= pf.rb.Height() {
		return
	}
	alpha := MultCover(c.A, cover)
	if alpha == 0 {
		return
	}
	row := pf.rb.Row(y)
	if alpha == 255 {
		full := RGBA8{R: c.R, G: c.G, B: c.B, A: 255}
		for i := 0; i < length; i++ {
			pf.setPix(row[(x+i)*4:], full)
		}
		return
	}
	for i := 0; i < length; i++ {
		pf.blendPix(row[(x+i)*4:], c, alpha)
	}
}

// BlendSolidHspan composites a run with per-pixel coverage.
func (pf *PixFmtRGBA32) BlendSolidHspan(x, y, length int, c RGBA8, covers []uint8) {
	if y < 0 || y >= pf.rb.Height() || c.IsTransparent() {
		return
	}
	if x < 0 {
		d := -x
		if d >= length {
			return
		}
		x = 0
		length -= d
		covers = covers[d:]
	}
	if x+length > pf.rb.Width() {
		length = pf.rb.Width() - x
	}
	if length <= 0 {
		return
	}
	row := pf.rb.Row(y)
	full := RGBA8{R: c.R, G: c.G, B: c.B, A: 255}
	for i := 0; i < length; i++ {
		alpha := MultCover(c.A, covers[i])
		p := row[(x+i)*4:]
		switch {
		case alpha == 0:
		case alpha == 255:
			pf.setPix(p, full)
		default:
			pf.blendPix(p, c, alpha)
		}
	}
}
