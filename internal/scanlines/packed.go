package scanlines

// Packed is the run-length scanline container: each span carries a
// single cover value, and adjacent additions with the same cover extend
// the active span. It is the cheapest container for solid fills whose
// interiors are long flat runs.
type Packed struct {
	lastX int
	y     int
	spans []Span
}

// NewPacked returns an empty container.
func NewPacked() *Packed {
	return &Packed{lastX: sentinel}
}

// Reset prepares for rows spanning minX..maxX. Packed storage does not
// depend on the row width; the bounds only reset the merge state.
func (sl *Packed) Reset(minX, maxX int) {
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
}

// ResetSpans drops the accumulated spans.
func (sl *Packed) ResetSpans() {
	sl.lastX = sentinel
	sl.spans = sl.spans[:0]
}

// AddCell records one covered pixel, merging into the active span when
// both position and cover continue it.
func (sl *Packed) AddCell(x int, cover uint) {
	sl.AddSpan(x, 1, cover)
}

// AddCells records a run of individually covered pixels; equal covers
// collapse into shared spans.
func (sl *Packed) AddCells(x, length int, covers []uint8) {
	for i := 0; i < length; i++ {
		sl.AddSpan(x+i, 1, uint(covers[i]))
	}
}

// AddSpan records a flat run.
func (sl *Packed) AddSpan(x, length int, cover uint) {
	if length <= 0 {
		return
	}
	if x == sl.lastX+1 && len(sl.spans) > 0 && sl.spans[len(sl.spans)-1].Cover == uint8(cover) {
		sl.spans[len(sl.spans)-1].Len += int32(length)
	} else {
		sl.spans = append(sl.spans, Span{
			X:     int32(x),
			Len:   int32(length),
			Cover: uint8(cover),
		})
	}
	sl.lastX = x + length - 1
}

// Finalize stamps the row's y coordinate.
func (sl *Packed) Finalize(y int) { sl.y = y }

// Y returns the finalized row coordinate.
func (sl *Packed) Y() int { return sl.y }

// NumSpans returns the span count of the current row.
func (sl *Packed) NumSpans() int { return len(sl.spans) }

// Spans returns the row's spans in left-to-right order.
func (sl *Packed) Spans() []Span { return sl.spans }
