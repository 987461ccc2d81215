// Package surface owns pixel memory and the pixel-format blend
// operations that consume scanlines. A RenderingBuffer wraps
// caller-owned bytes with a stride that may be negative for bottom-up
// layouts; the pixel formats (Gray8, Rgb24, Rgba32 in several component
// orders) blend spans into it with premultiplied source-over math.
package surface

// RenderingBuffer is row-addressable pixel memory. The buffer is owned
// by the caller and never reallocated; negative stride flips the row
// origin so Row always returns rows in top-down logical order.
type RenderingBuffer struct {
	buf    []byte
	width  int
	height int
	stride int
	start  int
}

// NewRenderingBuffer wraps buf. stride is in bytes and may be negative.
func NewRenderingBuffer(buf []byte, width, height, stride int) *RenderingBuffer {
	rb := &RenderingBuffer{}
	rb.Attach(buf, width, height, stride)
	return rb
}

// Attach replaces the wrapped memory.
func (rb *RenderingBuffer) Attach(buf []byte, width, height, stride int) {
	rb.buf = buf
	rb.width = width
	rb.height = height
	rb.stride = stride
	if stride < 0 {
		rb.start = -stride * (height - 1)
	} else {
		rb.start = 0
	}
}

// Detach drops the reference to the wrapped memory without freeing it.
func (rb *RenderingBuffer) Detach() {
	rb.buf = nil
	rb.width = 0
	rb.height = 0
	rb.stride = 0
	rb.start = 0
}

// Buf returns the wrapped memory.
func (rb *RenderingBuffer) Buf() []byte { return rb.buf }

// Width returns the width in pixels.
func (rb *RenderingBuffer) Width() int { return rb.width }

// Height returns the height in pixels.
func (rb *RenderingBuffer) Height() int { return rb.height }

// Stride returns the signed byte stride.
func (rb *RenderingBuffer) Stride() int { return rb.stride }

// StrideAbs returns the row length in bytes.
func (rb *RenderingBuffer) StrideAbs() int {
	if rb.stride < 0 {
		return -rb.stride
	}
	return rb.stride
}

// Row returns logical row y as a slice of StrideAbs bytes, nil when y
// is out of range.
func (rb *RenderingBuffer) Row(y int) []byte {
	if y < 0 || y >= rb.height {
		return nil
	}
	off := rb.start + y*rb.stride
	return rb.buf[off : off+rb.StrideAbs()]
}
