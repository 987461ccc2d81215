// Package affine implements the 2x2-plus-translation transform used
// throughout the pipeline. Points transform as column vectors:
//
//	| x' |   | SX  SHX  TX |   | x |
//	| y' | = | SHY SY   TY | * | y |
//	             0   0    1      1
package affine

import (
	"math"

	"github.com/fenwick-labs/raster2d/internal/primitives"
)

// Matrix is an affine transform. The zero value is NOT the identity;
// use Identity() or one of the constructors.
type Matrix struct {
	SX, SHY, SHX, SY, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// Translation returns a pure translation.
func Translation(x, y float64) Matrix {
	return Matrix{SX: 1, SY: 1, TX: x, TY: y}
}

// Rotation returns a rotation by angle radians about the origin.
func Rotation(angle float64) Matrix {
	ca, sa := math.Cos(angle), math.Sin(angle)
	return Matrix{SX: ca, SHY: sa, SHX: -sa, SY: ca}
}

// Scaling returns a non-uniform scale about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{SX: sx, SY: sy}
}

// Skewing returns a shear by the given tangents.
func Skewing(kx, ky float64) Matrix {
	return Matrix{SX: 1, SHY: math.Tan(ky), SHX: math.Tan(kx), SY: 1}
}

// Reset sets the matrix to identity.
func (m *Matrix) Reset() *Matrix {
	*m = Identity()
	return m
}

// Translate appends a translation (applied after the current transform).
func (m *Matrix) Translate(x, y float64) *Matrix {
	m.TX += x
	m.TY += y
	return m
}

// Rotate appends a rotation about the origin.
func (m *Matrix) Rotate(angle float64) *Matrix {
	ca, sa := math.Cos(angle), math.Sin(angle)
	sx := m.SX*ca - m.SHY*sa
	shx := m.SHX*ca - m.SY*sa
	tx := m.TX*ca - m.TY*sa
	m.SHY = m.SX*sa + m.SHY*ca
	m.SY = m.SHX*sa + m.SY*ca
	m.TY = m.TX*sa + m.TY*ca
	m.SX = sx
	m.SHX = shx
	m.TX = tx
	return m
}

// Scale appends a non-uniform scale.
func (m *Matrix) Scale(sx, sy float64) *Matrix {
	m.SX *= sx
	m.SHX *= sx
	m.TX *= sx
	m.SHY *= sy
	m.SY *= sy
	m.TY *= sy
	return m
}

// Skew appends a shear.
func (m *Matrix) Skew(kx, ky float64) *Matrix {
	return m.Multiply(Skewing(kx, ky))
}

// Multiply replaces m with m*n: n is applied after m.
func (m *Matrix) Multiply(n Matrix) *Matrix {
	sx := m.SX*n.SX + m.SHY*n.SHX
	shx := m.SHX*n.SX + m.SY*n.SHX
	tx := m.TX*n.SX + m.TY*n.SHX + n.TX
	m.SHY = m.SX*n.SHY + m.SHY*n.SY
	m.SY = m.SHX*n.SHY + m.SY*n.SY
	m.TY = m.TX*n.SHY + m.TY*n.SY + n.TY
	m.SX = sx
	m.SHX = shx
	m.TX = tx
	return m
}

// Premultiply replaces m with n*m: n is applied before m.
func (m *Matrix) Premultiply(n Matrix) *Matrix {
	t := n
	t.Multiply(*m)
	*m = t
	return m
}

// Then returns m*n without mutating either operand.
func (m Matrix) Then(n Matrix) Matrix {
	m.Multiply(n)
	return m
}

// Determinant of the 2x2 part.
func (m Matrix) Determinant() float64 {
	return m.SX*m.SY - m.SHY*m.SHX
}

// IsValid reports whether the matrix can be inverted.
func (m Matrix) IsValid(eps float64) bool {
	return math.Abs(m.Determinant()) > eps
}

// Invert inverts the matrix in place. The caller must have checked
// IsValid; inverting a singular matrix produces Inf/NaN coefficients.
func (m *Matrix) Invert() *Matrix {
	d := 1.0 / m.Determinant()
	sx := m.SY * d
	m.SY = m.SX * d
	m.SHY = -m.SHY * d
	m.SHX = -m.SHX * d
	tx := -m.TX*sx - m.TY*m.SHX
	m.TY = -m.TX*m.SHY - m.TY*m.SY
	m.SX = sx
	m.TX = tx
	return m
}

// Inverted returns the inverse, or a PreconditionViolated error when the
// determinant is below the singularity threshold.
func (m Matrix) Inverted() (Matrix, error) {
	if !m.IsValid(primitives.AffineEpsilon) {
		return Matrix{}, primitives.Precondition("affine.Inverted", "singular matrix")
	}
	m.Invert()
	return m, nil
}

// Transform maps a point through the matrix.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX + m.TX, x*m.SHY + y*m.SY + m.TY
}

// Transform2x2 maps a vector through the 2x2 part only.
func (m Matrix) Transform2x2(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX, x*m.SHY + y*m.SY
}

// InverseTransform maps a point through the inverse without building it.
func (m Matrix) InverseTransform(x, y float64) (float64, float64) {
	d := 1.0 / m.Determinant()
	a := (x - m.TX) * d
	b := (y - m.TY) * d
	return a*m.SY - b*m.SHX, b*m.SX - a*m.SHY
}

// TransformRect maps all four corners and returns their bounding box.
func (m Matrix) TransformRect(r primitives.RectD) primitives.RectD {
	x1, y1 := m.Transform(r.X1, r.Y1)
	x2, y2 := m.Transform(r.X2, r.Y1)
	x3, y3 := m.Transform(r.X2, r.Y2)
	x4, y4 := m.Transform(r.X1, r.Y2)
	out := primitives.RectD{
		X1: min(min(x1, x2), min(x3, x4)),
		Y1: min(min(y1, y2), min(y3, y4)),
		X2: max(max(x1, x2), max(x3, x4)),
		Y2: max(max(y1, y2), max(y3, y4)),
	}
	return out
}

// ScaleFactor returns the average scale of the 2x2 part; the flatteners
// use it to pick a subdivision tolerance that survives the transform.
func (m Matrix) ScaleFactor() float64 {
	const h = math.Sqrt2 / 2
	x := h*m.SX + h*m.SHX
	y := h*m.SHY + h*m.SY
	return math.Sqrt(x*x + y*y)
}

// IsIdentity reports whether the matrix is the identity within eps.
func (m Matrix) IsIdentity(eps float64) bool {
	return primitives.IsEqualEps(m.SX, 1, eps) &&
		primitives.IsEqualEps(m.SHY, 0, eps) &&
		primitives.IsEqualEps(m.SHX, 0, eps) &&
		primitives.IsEqualEps(m.SY, 1, eps) &&
		primitives.IsEqualEps(m.TX, 0, eps) &&
		primitives.IsEqualEps(m.TY, 0, eps)
}

// IsEqual compares two matrices coefficient-wise within eps.
func (m Matrix) IsEqual(n Matrix, eps float64) bool {
	return primitives.IsEqualEps(m.SX, n.SX, eps) &&
		primitives.IsEqualEps(m.SHY, n.SHY, eps) &&
		primitives.IsEqualEps(m.SHX, n.SHX, eps) &&
		primitives.IsEqualEps(m.SY, n.SY, eps) &&
		primitives.IsEqualEps(m.TX, n.TX, eps) &&
		primitives.IsEqualEps(m.TY, n.TY, eps)
}

// RotationAngle extracts the rotation the matrix applies to the x axis.
func (m Matrix) RotationAngle() float64 {
	x1, y1 := m.Transform(0, 0)
	x2, y2 := m.Transform(1, 0)
	return math.Atan2(y2-y1, x2-x1)
}

// ScalingAbs returns the absolute per-axis scale factors.
func (m Matrix) ScalingAbs() (float64, float64) {
	return math.Sqrt(m.SX*m.SX + m.SHX*m.SHX),
		math.Sqrt(m.SHY*m.SHY + m.SY*m.SY)
}

// StoreTo writes the six coefficients in (sx, shy, shx, sy, tx, ty) order.
func (m Matrix) StoreTo(dst []float64) {
	dst[0], dst[1], dst[2] = m.SX, m.SHY, m.SHX
	dst[3], dst[4], dst[5] = m.SY, m.TX, m.TY
}

// FromValues builds a matrix from the six coefficients.
func FromValues(sx, shy, shx, sy, tx, ty float64) Matrix {
	return Matrix{SX: sx, SHY: shy, SHX: shx, SY: sy, TX: tx, TY: ty}
}
