package pathstore

import (
	"math"

	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// arcAngleEpsilon guards the quadrant loop against curves that collapse
// to a point. Slightly exceeding a pi/2 sweep per segment is harmless.
const arcAngleEpsilon = 0.01

// arcSegment approximates one arc segment of at most pi/2 sweep by a
// single cubic Bezier, writing the four control points into dst.
func arcSegment(dst []float64, cx, cy, rx, ry, startAngle, sweepAngle float64) {
	x0 := math.Cos(sweepAngle / 2)
	y0 := math.Sin(sweepAngle / 2)
	tx := (1 - x0) * 4 / 3
	ty := y0 - tx*x0/y0

	px := [4]float64{x0, x0 + tx, x0 + tx, x0}
	py := [4]float64{-y0, -ty, ty, y0}

	sn := math.Sin(startAngle + sweepAngle/2)
	cs := math.Cos(startAngle + sweepAngle/2)
	for i := 0; i < 4; i++ {
		dst[i*2] = cx + rx*(px[i]*cs-py[i]*sn)
		dst[i*2+1] = cy + ry*(px[i]*sn+py[i]*cs)
	}
}

// centerArc holds an arc in center parameterization expanded to at most
// four consecutive cubic Beziers (13 coordinate pairs).
type centerArc struct {
	numVertices int
	vertices    [26]float64
	cmd         primitives.Cmd
	cursor      int
}

func (a *centerArc) init(x, y, rx, ry, startAngle, sweepAngle float64) {
	startAngle = math.Mod(startAngle, 2*primitives.Pi)
	if sweepAngle > 2*primitives.Pi {
		sweepAngle = 2 * primitives.Pi
	}
	if sweepAngle < -2*primitives.Pi {
		sweepAngle = -2 * primitives.Pi
	}

	if math.Abs(sweepAngle) < 1e-10 {
		a.numVertices = 4
		a.cmd = primitives.CmdLineTo
		a.vertices[0] = x + rx*math.Cos(startAngle)
		a.vertices[1] = y + ry*math.Sin(startAngle)
		a.vertices[2] = x + rx*math.Cos(startAngle+sweepAngle)
		a.vertices[3] = y + ry*math.Sin(startAngle+sweepAngle)
		return
	}

	totalSweep := 0.0
	a.numVertices = 2
	a.cmd = primitives.CmdCurve4
	for a.numVertices < 26 {
		prevSweep := totalSweep
		var localSweep float64
		done := false
		if sweepAngle < 0 {
			localSweep = -primitives.Pi / 2
			totalSweep -= primitives.Pi / 2
			if totalSweep <= sweepAngle+arcAngleEpsilon {
				localSweep = sweepAngle - prevSweep
				done = true
			}
		} else {
			localSweep = primitives.Pi / 2
			totalSweep += primitives.Pi / 2
			if totalSweep >= sweepAngle-arcAngleEpsilon {
				localSweep = sweepAngle - prevSweep
				done = true
			}
		}

		arcSegment(a.vertices[a.numVertices-2:], x, y, rx, ry, startAngle, localSweep)

		a.numVertices += 6
		startAngle += localSweep
		if done {
			break
		}
	}
}

func (a *centerArc) rewind() { a.cursor = 0 }

func (a *centerArc) next() (x, y float64, cmd primitives.Cmd) {
	if a.cursor >= a.numVertices {
		return 0, 0, primitives.CmdStop
	}
	x = a.vertices[a.cursor]
	y = a.vertices[a.cursor+1]
	a.cursor += 2
	if a.cursor == 2 {
		return x, y, primitives.CmdMoveTo
	}
	return x, y, a.cmd
}

// svgArc converts an endpoint-parameterized (SVG-style) arc to center
// parameterization and expands it through centerArc.
type svgArc struct {
	centerArc
	radiiOK bool
}

func newSVGArc(x0, y0, rx, ry, angle float64, largeArc, sweep bool, x2, y2 float64) *svgArc {
	a := &svgArc{radiiOK: true}

	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}

	// Midpoint of the chord in the ellipse's rotated frame.
	dx2 := (x0 - x2) / 2
	dy2 := (y0 - y2) / 2
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	x1 := cosA*dx2 + sinA*dy2
	y1 := -sinA*dx2 + cosA*dy2

	// Scale the radii up when they cannot span the endpoints.
	prx := rx * rx
	pry := ry * ry
	px1 := x1 * x1
	py1 := y1 * y1
	radiiCheck := px1/prx + py1/pry
	if radiiCheck > 1 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
		prx = rx * rx
		pry = ry * ry
		if radiiCheck > 10 {
			a.radiiOK = false
		}
	}

	var sign float64 = 1
	if largeArc == sweep {
		sign = -1
	}
	sq := (prx*pry - prx*py1 - pry*px1) / (prx*py1 + pry*px1)
	if sq < 0 {
		sq = 0
	}
	coef := sign * math.Sqrt(sq)
	cx1 := coef * (rx * y1 / ry)
	cy1 := coef * -(ry * x1 / rx)

	cx := (x0+x2)/2 + (cosA*cx1 - sinA*cy1)
	cy := (y0+y2)/2 + (sinA*cx1 + cosA*cy1)

	ux := (x1 - cx1) / rx
	uy := (y1 - cy1) / ry
	vx := (-x1 - cx1) / rx
	vy := (-y1 - cy1) / ry

	clampCos := func(v float64) float64 {
		if v < -1 {
			return -1
		}
		if v > 1 {
			return 1
		}
		return v
	}

	n := math.Sqrt(ux*ux + uy*uy)
	sign = 1
	if uy < 0 {
		sign = -1
	}
	startAngle := sign * math.Acos(clampCos(ux/n))

	n = math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	sign = 1
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	sweepAngle := sign * math.Acos(clampCos((ux*vx+uy*vy)/n))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * primitives.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * primitives.Pi
	}

	a.init(0, 0, rx, ry, startAngle, sweepAngle)

	// Rotate and translate back; pin the endpoints exactly.
	for i := 2; i < a.numVertices-2; i += 2 {
		vx := a.vertices[i]
		vy := a.vertices[i+1]
		a.vertices[i] = cosA*vx - sinA*vy + cx
		a.vertices[i+1] = sinA*vx + cosA*vy + cy
	}
	a.vertices[0] = x0
	a.vertices[1] = y0
	if a.numVertices > 2 {
		a.vertices[a.numVertices-2] = x2
		a.vertices[a.numVertices-1] = y2
	}
	return a
}
