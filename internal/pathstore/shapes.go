package pathstore

import (
	"math"

	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// AddRect appends an axis-aligned rectangle as a closed contour.
func (s *Store) AddRect(x1, y1, x2, y2 float64) {
	s.MoveTo(x1, y1)
	s.LineTo(x2, y1)
	s.LineTo(x2, y2)
	s.LineTo(x1, y2)
	s.ClosePolygon(primitives.FlagNone)
}

// AddEllipse appends a closed polygonal approximation of an ellipse
// centered at (cx, cy). steps fixes the segment count; steps <= 0 picks
// a count whose chord error stays under an eighth of a pixel.
func (s *Store) AddEllipse(cx, cy, rx, ry float64, steps int) {
	if steps <= 0 {
		ra := (math.Abs(rx) + math.Abs(ry)) / 2
		da := math.Acos(ra/(ra+0.125)) * 2
		steps = int(primitives.URound(2 * primitives.Pi / da))
		if steps < 4 {
			steps = 4
		}
	}
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * primitives.Pi
		x := cx + math.Cos(angle)*rx
		y := cy + math.Sin(angle)*ry
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePolygon(primitives.FlagCCW)
}

// AddRoundedRect appends a rectangle whose corners are quarter-ellipse
// arcs of radius r. The radius is clamped so opposing corners never
// overlap; r <= 0 falls back to a plain rectangle.
func (s *Store) AddRoundedRect(x1, y1, x2, y2, r float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if r <= 0 {
		s.AddRect(x1, y1, x2, y2)
		return
	}
	if m := (x2 - x1) / 2; r > m {
		r = m
	}
	if m := (y2 - y1) / 2; r > m {
		r = m
	}

	corner := func(cx, cy, start float64, first bool) {
		var arc centerArc
		arc.init(cx, cy, r, r, start, primitives.Pi/2)
		arc.rewind()
		for {
			x, y, cmd := arc.next()
			if cmd.IsStop() {
				break
			}
			if cmd.IsMoveTo() {
				if first {
					s.MoveTo(x, y)
				} else {
					s.LineTo(x, y)
				}
				continue
			}
			s.addVertex(x, y, cmd)
		}
	}

	corner(x1+r, y1+r, primitives.Pi, true)
	corner(x2-r, y1+r, primitives.Pi*1.5, false)
	corner(x2-r, y2-r, 0, false)
	corner(x1+r, y2-r, primitives.Pi*0.5, false)
	s.ClosePolygon(primitives.FlagNone)
}
