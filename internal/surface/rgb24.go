package surface

// PixFmtRGB24 blends RGBA8 colors into a three-byte-per-pixel buffer;
// the source alpha composites against an implicitly opaque destination.
type PixFmtRGB24 struct {
	rb    *RenderingBuffer
	order RGBOrder
}

// NewPixFmtRGB24 wraps a rendering buffer with RGB byte order.
func NewPixFmtRGB24(rb *RenderingBuffer) *PixFmtRGB24 {
	return &PixFmtRGB24{rb: rb, order: OrderRGB}
}

// NewPixFmtBGR24 wraps a rendering buffer with BGR byte order.
func NewPixFmtBGR24(rb *RenderingBuffer) *PixFmtRGB24 {
	return &PixFmtRGB24{rb: rb, order: OrderBGR}
}

// Width returns the surface width in pixels.
func (pf *PixFmtRGB24) Width() int { return pf.rb.Width() }

// Height returns the surface height in pixels.
func (pf *PixFmtRGB24) Height() int { return pf.rb.Height() }

// PixWidth returns bytes per pixel.
func (pf *PixFmtRGB24) PixWidth() int { return 3 }

func (pf *PixFmtRGB24) inBounds(x, y int) bool {
	return x >= 0 && x < pf.rb.Width() && y >= 0 && y < pf.rb.Height()
}

// Pixel reads the color at (x, y); zero outside the buffer.
func (pf *PixFmtRGB24) Pixel(x, y int) RGBA8 {
	if !pf.inBounds(x, y) {
		return RGBA8{}
	}
	p := pf.rb.Row(y)[x*3:]
	return RGBA8{R: p[pf.order.R], G: p[pf.order.G], B: p[pf.order.B], A: 255}
}

func (pf *PixFmtRGB24) setPix(p []byte, c RGBA8) {
	p[pf.order.R] = c.R
	p[pf.order.G] = c.G
	p[pf.order.B] = c.B
}

func (pf *PixFmtRGB24) blendPix(p []byte, c RGBA8, alpha uint8) {
	p[pf.order.R] = Lerp(p[pf.order.R], c.R, alpha)
	p[pf.order.G] = Lerp(p[pf.order.G], c.G, alpha)
	p[pf.order.B] = Lerp(p[pf.order.B], c.B, alpha)
}

// CopyPixel writes the color without blending.
func (pf *PixFmtRGB24) CopyPixel(x, y int, c RGBA8) {
	if !pf.inBounds(x, y) {
		return
	}
	pf.setPix(pf.rb.Row(y)[x*3:], c)
}

// BlendPixel composites c over the pixel with the given coverage.
func (pf *PixFmtRGB24) BlendPixel(x, y int, c RGBA8, cover uint8) {
	if !pf.inBounds(x, y) {
		return
	}
	alpha := MultCover(c.A, cover)
	if alpha == 0 {
		return
	}
	p := pf.rb.Row(y)[x*3:]
	if alpha == 255 {
		pf.setPix(p, c)
		return
	}
	pf.blendPix(p, c, alpha)
}

// CopyHline writes a run without blending, clipped to the buffer.
func (pf *PixFmtRGB24) CopyHline(x, y, length int, c RGBA8) {
	x, length = clipRun(x, length, pf.rb.Width())
	if length <= 0 || y < 0 || y >= pf.rb.Height() {
		return
	}
	row := pf.rb.Row(y)
	for i := 0; i < length; i++ {
		pf.setPix(row[(x+i)*3:], c)
	}
}

// BlendHline composites a flat-coverage run.
func (pf *PixFmtRGB24) BlendHline(x, y, length int, c RGBA8, cover uint8) {
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
		for i := 0; i < length; i++ {
			pf.setPix(row[(x+i)*3:], c)
		}
		return
	}
	for i := 0; i < length; i++ {
		pf.blendPix(row[(x+i)*3:], c, alpha)
	}
}

// BlendSolidHspan composites a run with per-pixel coverage.
func (pf *PixFmtRGB24) BlendSolidHspan(x, y, length int, c RGBA8, covers []uint8) {
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
	for i := 0; i < length; i++ {
		alpha := MultCover(c.A, covers[i])
		p := row[(x+i)*3:]
		switch {
		case alpha == 0:
		case alpha == 255:
			pf.setPix(p, c)
		default:
			pf.blendPix(p, c, alpha)
		}
	}
}
