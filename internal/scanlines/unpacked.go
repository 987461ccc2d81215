package scanlines

import "github.com/fenwick-labs/raster2d/internal/primitives"

// Unpacked is the per-pixel-cover scanline container. All spans share
// one cover buffer, each span slicing its own window; this is the right
// container when coverage varies pixel to pixel.
type Unpacked struct {
	minX   int
	maxLen int
	lastX  int
	y      int
	covers []uint8
	spans  []Span
	err    error
}

// NewUnpacked returns an empty container; call Reset before use.
func NewUnpacked() *Unpacked {
	return &Unpacked{lastX: sentinel}
}

// Reset sizes the container for rows spanning minX..maxX.
func (sl *Unpacked) Reset(minX, maxX int) {
	maxLen := maxX - minX + 2
	if maxLen > len(sl.covers) {
		sl.covers = make([]uint8, maxLen)
	}
	sl.minX = minX
	sl.maxLen = maxLen
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
	sl.err = nil
}

// ResetSpans drops the accumulated spans, keeping the row bounds.
func (sl *Unpacked) ResetSpans() {
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
}

// Err returns the first bounds violation since Reset.
func (sl *Unpacked) Err() error { return sl.err }

func (sl *Unpacked) boundsErr() {
	if sl.err == nil {
		sl.err = primitives.Precondition("scanlines.Unpacked", "cell outside Reset bounds")
	}
}

// AddCell records one pixel of coverage.
func (sl *Unpacked) AddCell(x int, cover uint) {
	x -= sl.minX
	if x < 0 || x >= sl.maxLen {
		sl.boundsErr()
		return
	}
	sl.covers[x] = uint8(cover)
	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len++
	} else {
		sl.spans = append(sl.spans, Span{
			X:      int32(x + sl.minX),
			Len:    1,
			Covers: sl.covers[x:],
		})
	}
	sl.lastX = x
}

// AddCells records a run of individually covered pixels.
func (sl *Unpacked) AddCells(x, length int, covers []uint8) {
	x -= sl.minX
	if x < 0 {
		d := -x
		if d >= length {
			sl.boundsErr()
			return
		}
		x = 0
		length -= d
		covers = covers[d:]
		sl.boundsErr()
	}
	if x+length > sl.maxLen {
		sl.boundsErr()
		length = sl.maxLen - x
	}
	if length <= 0 {
		return
	}
	copy(sl.covers[x:x+length], covers[:length])

	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len += int32(length)
	} else {
		sl.spans = append(sl.spans, Span{
			X:      int32(x + sl.minX),
			Len:    int32(length),
			Covers: sl.covers[x:],
		})
	}
	sl.lastX = x + length - 1
}

// AddSpan records a run of pixels sharing one coverage value.
func (sl *Unpacked) AddSpan(x, length int, cover uint) {
	x -= sl.minX
	if x < 0 {
		d := -x
		if d >= length {
			sl.boundsErr()
			return
		}
		x = 0
		length -= d
		sl.boundsErr()
	}
	if x+length > sl.maxLen {
		sl.boundsErr()
		length = sl.maxLen - x
	}
	if length <= 0 {
		return
	}
	for i := 0; i < length; i++ {
		sl.covers[x+i] = uint8(cover)
	}

	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len += int32(length)
	} else {
		sl.spans = append(sl.spans, Span{
			X:      int32(x + sl.minX),
			Len:    int32(length),
			Covers: sl.covers[x:],
		})
	}
	sl.lastX = x + length - 1
}

// Finalize stamps the row's y coordinate.
func (sl *Unpacked) Finalize(y int) { sl.y = y }

// Y returns the finalized row coordinate.
func (sl *Unpacked) Y() int { return sl.y }

// NumSpans returns the span count of the current row.
func (sl *Unpacked) NumSpans() int { return len(sl.spans) }

// Spans returns the row's spans in left-to-right order. Each span's
// Covers window is valid until the next Reset or addition.
func (sl *Unpacked) Spans() []Span { return sl.spans }
