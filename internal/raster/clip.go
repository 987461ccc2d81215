package raster

import "github.com/fenwick-labs/raster2d/internal/primitives"

// Clipping outcode bits.
const (
	clipX2 = 1
	clipY2 = 2
	clipX1 = 4
	clipY1 = 8
)

func clipFlags(x, y int, box primitives.RectI) uint {
	var f uint
	if x < box.X1 {
		f |= clipX1
	} else if x > box.X2 {
		f |= clipX2
	}
	if y < box.Y1 {
		f |= clipY1
	} else if y > box.Y2 {
		f |= clipY2
	}
	return f
}

func clipFlagsY(y int, box primitives.RectI) uint {
	if y < box.Y1 {
		return clipY1
	}
	if y > box.Y2 {
		return clipY2
	}
	return 0
}

// mulDiv computes round(a*b/c) for the clip intersection points.
func mulDiv(a, b, c int) int {
	return primitives.IRound(float64(a) * float64(b) / float64(c))
}

// clipper clips incoming line segments, in subpixel units, against an
// optional box before they reach the cell store. X overflow is clamped
// to the box edge (the clipped edge still contributes correct winding);
// Y overflow is culled.
type clipper struct {
	box      primitives.RectI
	x1, y1   int
	f1       uint
	clipping bool
}

func (c *clipper) reset() { c.clipping = false }

func (c *clipper) clipBox(x1, y1, x2, y2 int) {
	c.box = primitives.RectI{X1: x1, Y1: y1, X2: x2, Y2: y2}
	c.box.Normalize()
	c.clipping = true
}

func (c *clipper) moveTo(x, y int) {
	c.x1 = x
	c.y1 = y
	if c.clipping {
		c.f1 = clipFlags(x, y, c.box)
	}
}

func (c *clipper) lineClipY(sink *CellStore, x1, y1, x2, y2 int, f1, f2 uint) {
	f1 &= clipY1 | clipY2
	f2 &= clipY1 | clipY2
	if f1|f2 == 0 {
		sink.Line(x1, y1, x2, y2)
		return
	}
	if f1 == f2 {
		// Fully above or below the box.
		return
	}
	tx1, ty1 := x1, y1
	tx2, ty2 := x2, y2

	if f1&clipY1 != 0 {
		tx1 = x1 + mulDiv(c.box.Y1-y1, x2-x1, y2-y1)
		ty1 = c.box.Y1
	}
	if f1&clipY2 != 0 {
		tx1 = x1 + mulDiv(c.box.Y2-y1, x2-x1, y2-y1)
		ty1 = c.box.Y2
	}
	if f2&clipY1 != 0 {
		tx2 = x1 + mulDiv(c.box.Y1-y1, x2-x1, y2-y1)
		ty2 = c.box.Y1
	}
	if f2&clipY2 != 0 {
		tx2 = x1 + mulDiv(c.box.Y2-y1, x2-x1, y2-y1)
		ty2 = c.box.Y2
	}
	sink.Line(tx1, ty1, tx2, ty2)
}

func (c *clipper) lineTo(sink *CellStore, x2, y2 int) {
	if !c.clipping {
		sink.Line(c.x1, c.y1, x2, y2)
		c.x1 = x2
		c.y1 = y2
		return
	}

	f2 := clipFlags(x2, y2, c.box)

	if (c.f1&(clipY1|clipY2)) == (f2&(clipY1|clipY2)) && c.f1&(clipY1|clipY2) != 0 {
		// Both endpoints above or both below: invisible.
		c.x1, c.y1, c.f1 = x2, y2, f2
		return
	}

	x1, y1 := c.x1, c.y1
	f1 := c.f1

	switch ((f1 & (clipX1 | clipX2)) << 1) | (f2 & (clipX1 | clipX2)) {
	case 0:
		c.lineClipY(sink, x1, y1, x2, y2, f1, f2)
	case 1: // x2 right of box
		y3 := y1 + mulDiv(c.box.X2-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		c.lineClipY(sink, x1, y1, c.box.X2, y3, f1, f3)
		c.lineClipY(sink, c.box.X2, y3, c.box.X2, y2, f3, f2)
	case 2: // x1 right of box
		y3 := y1 + mulDiv(c.box.X2-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		c.lineClipY(sink, c.box.X2, y1, c.box.X2, y3, f1, f3)
		c.lineClipY(sink, c.box.X2, y3, x2, y2, f3, f2)
	case 3: // both right of box
		c.lineClipY(sink, c.box.X2, y1, c.box.X2, y2, f1, f2)
	case 4: // x2 left of box
		y3 := y1 + mulDiv(c.box.X1-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		c.lineClipY(sink, x1, y1, c.box.X1, y3, f1, f3)
		c.lineClipY(sink, c.box.X1, y3, c.box.X1, y2, f3, f2)
	case 6: // x1 right, x2 left
		y3 := y1 + mulDiv(c.box.X2-x1, y2-y1, x2-x1)
		y4 := y1 + mulDiv(c.box.X1-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		f4 := clipFlagsY(y4, c.box)
		c.lineClipY(sink, c.box.X2, y1, c.box.X2, y3, f1, f3)
		c.lineClipY(sink, c.box.X2, y3, c.box.X1, y4, f3, f4)
		c.lineClipY(sink, c.box.X1, y4, c.box.X1, y2, f4, f2)
	case 8: // x1 left of box
		y3 := y1 + mulDiv(c.box.X1-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		c.lineClipY(sink, c.box.X1, y1, c.box.X1, y3, f1, f3)
		c.lineClipY(sink, c.box.X1, y3, x2, y2, f3, f2)
	case 9: // x1 left, x2 right
		y3 := y1 + mulDiv(c.box.X1-x1, y2-y1, x2-x1)
		y4 := y1 + mulDiv(c.box.X2-x1, y2-y1, x2-x1)
		f3 := clipFlagsY(y3, c.box)
		f4 := clipFlagsY(y4, c.box)
		c.lineClipY(sink, c.box.X1, y1, c.box.X1, y3, f1, f3)
		c.lineClipY(sink, c.box.X1, y3, c.box.X2, y4, f3, f4)
		c.lineClipY(sink, c.box.X2, y4, c.box.X2, y2, f4, f2)
	case 12: // both left of box
		c.lineClipY(sink, c.box.X1, y1, c.box.X1, y2, f1, f2)
	}

	c.f1 = f2
	c.x1 = x2
	c.y1 = y2
}
