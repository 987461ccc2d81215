package primitives

import "golang.org/x/exp/constraints"

// Scalar is any coordinate type the geometry helpers accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Vertex is a coordinate pair tagged with its path command.
type Vertex struct {
	X, Y float64
	Cmd  Cmd
}

// Rect is an axis-aligned rectangle spanning (X1,Y1)..(X2,Y2).
type Rect[T Scalar] struct {
	X1, Y1, X2, Y2 T
}

// Normalize swaps coordinates so that X1 <= X2 and Y1 <= Y2.
func (r *Rect[T]) Normalize() {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
}

// Clip intersects r with box in place and reports whether anything is left.
func (r *Rect[T]) Clip(box Rect[T]) bool {
	if r.X2 <= box.X1 || r.X1 >= box.X2 || r.Y2 <= box.Y1 || r.Y1 >= box.Y2 {
		return false
	}
	if r.X1 < box.X1 {
		r.X1 = box.X1
	}
	if r.Y1 < box.Y1 {
		r.Y1 = box.Y1
	}
	if r.X2 > box.X2 {
		r.X2 = box.X2
	}
	if r.Y2 > box.Y2 {
		r.Y2 = box.Y2
	}
	return true
}

// IsValid reports whether the rectangle has positive extent.
func (r Rect[T]) IsValid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// Intersect returns the intersection of two rectangles. The boolean is
// false when they do not overlap.
func Intersect[T Scalar](a, b Rect[T]) (Rect[T], bool) {
	r := Rect[T]{
		X1: max(a.X1, b.X1), Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2), Y2: min(a.Y2, b.Y2),
	}
	return r, r.IsValid()
}

// Unite returns the bounding rectangle of two rectangles.
func Unite[T Scalar](a, b Rect[T]) Rect[T] {
	return Rect[T]{
		X1: min(a.X1, b.X1), Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2), Y2: max(a.Y2, b.Y2),
	}
}

// Aliases for the common instantiations.
type (
	PointI = Point[int]
	PointD = Point[float64]
	RectI  = Rect[int]
	RectD  = Rect[float64]
)
