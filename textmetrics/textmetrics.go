// Package textmetrics supplies the text-segmentation half of the font
// collaborator contract: grapheme-cluster boundaries, the unit a
// ToUnicode CMap maps onto glyphs. Glyph outline extraction lives
// elsewhere.
package textmetrics

import "github.com/clipperhouse/uax29/v2/graphemes"

// Clusters splits s into user-perceived characters (UAX #29 extended
// grapheme clusters).
func Clusters(s string) []string {
	var out []string
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		out = append(out, tokens.Value())
	}
	return out
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	n := 0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		n++
	}
	return n
}

// Advances spreads a fixed per-cluster advance over s, returning the
// pen x offset at which each cluster starts. Monospaced placement is
// all the core pipeline needs; proportional metrics come from the font
// tables, which are out of scope here.
func Advances(s string, advance float64) []float64 {
	var out []float64
	x := 0.0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		out = append(out, x)
		x += advance
	}
	return out
}
