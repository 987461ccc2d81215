package scanlines

// Binary is the coverage-free scanline container: spans record extent
// only, and any hit renders opaque. Consumers see Cover == 255.
type Binary struct {
	lastX int
	y     int
	spans []Span
}

// NewBinary returns an empty container.
func NewBinary() *Binary {
	return &Binary{lastX: sentinel}
}

// Reset prepares for a new row; the bounds are ignored.
func (sl *Binary) Reset(minX, maxX int) {
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
}

// ResetSpans drops the accumulated spans.
func (sl *Binary) ResetSpans() {
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
}

// AddCell records one pixel; the cover value is discarded.
func (sl *Binary) AddCell(x int, _ uint) {
	sl.AddSpan(x, 1, 0)
}

// AddCells records a run; the covers are discarded.
func (sl *Binary) AddCells(x, length int, _ []uint8) {
	sl.AddSpan(x, length, 0)
}

// AddSpan records a run; the cover value is discarded.
func (sl *Binary) AddSpan(x, length int, _ uint) {
	if length <= 0 {
		return
	}
	if x == sl.lastX+1 && len(sl.spans) > 0 {
		sl.spans[len(sl.spans)-1].Len += int32(length)
	} else {
		sl.spans = append(sl.spans, Span{
			X:     int32(x),
			Len:   int32(length),
			Cover: 255,
		})
	}
	sl.lastX = x + length - 1
}

// Finalize stamps the row's y coordinate.
func (sl *Binary) Finalize(y int) { sl.y = y }

// Y returns the finalized row coordinate.
func (sl *Binary) Y() int { return sl.y }

// NumSpans returns the span count of the current row.
func (sl *Binary) NumSpans() int { return len(sl.spans) }

// Spans returns the row's spans in left-to-right order.
func (sl *Binary) Spans() []Span { return sl.spans }
