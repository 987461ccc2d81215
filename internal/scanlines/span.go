// Package scanlines provides the row containers between the rasterizer
// sweep and the blend surface. Three flavors cover the usual trade-offs:
// Unpacked keeps a cover byte per pixel, Packed collapses runs of equal
// cover, Binary records bare extents. All three absorb AddCell/AddSpan
// calls with x strictly increasing within a row.
package scanlines

// Span is one contiguous pixel run of a finished scanline. When Covers
// is non-nil it holds one byte per pixel; otherwise Cover applies to
// the whole run.
type Span struct {
	X, Len int32
	Cover  uint8
	Covers []uint8
}

// sentinel marks "no previous x" so the first addition never merges.
const sentinel = 0x7FFFFFF0
