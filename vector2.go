package geom

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Vector2 is an immutable 2D vector.
//
// The zero value is the zero vector. Every operation that would change a
// component returns a new Vector2 instead. Vector2 is comparable and can be
// used as a map key; note that a vector with a NaN component never matches
// itself, so it cannot be found again once stored.
type Vector2 struct {
	x, y float64
}

// New returns the vector (x, y). Components are stored verbatim, NaN and
// infinities included.
func New(x, y float64) Vector2 {
	return Vector2{x: x, y: y}
}

// X returns the x component.
func (v Vector2) X() float64 { return v.x }

// Y returns the y component.
func (v Vector2) Y() float64 { return v.y }

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.x == 0 && v.y == 0
}

// SquareMagnitude returns x*x + y*y.
// Prefer it over Magnitude when only comparing lengths.
func (v Vector2) SquareMagnitude() float64 {
	return v.x*v.x + v.y*v.y
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.SquareMagnitude())
}

// Abs is the absolute value of the vector, which is its magnitude.
func (v Vector2) Abs() float64 {
	return v.Magnitude()
}

// Normalized returns the unit vector with the same direction as v.
// It fails with ErrInvalidOperation for the zero vector.
func (v Vector2) Normalized() (Vector2, error) {
	if v.IsZero() {
		return Vector2{}, invalidOp("normalize", "cannot normalize a zero vector")
	}
	return v.Div(v.Magnitude()), nil
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.x*w.x + v.y*w.y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vector2) Cross(w Vector2) float64 {
	return v.x*w.y - v.y*w.x
}

// Angle returns the standard position angle of v in radians, in (-π, π].
// It fails with ErrInvalidOperation for the zero vector.
func (v Vector2) Angle() (float64, error) {
	if v.IsZero() {
		return 0, invalidOp("angle", "cannot compute angle of a zero vector")
	}
	return math.Atan2(v.y, v.x), nil
}

// AngleBetween returns the smallest angle between v and w in radians, in [0, π].
// The cosine ratio is clamped to [-1, 1] so nearly parallel vectors yield 0
// or π rather than NaN. It fails with ErrInvalidOperation if either vector
// is zero.
func (v Vector2) AngleBetween(w Vector2) (float64, error) {
	if v.IsZero() || w.IsZero() {
		return 0, invalidOp("angle between", "cannot compute angle between zero vectors")
	}
	ratio := v.Dot(w) / (v.Magnitude() * w.Magnitude())
	return math.Acos(max(-1, min(1, ratio))), nil
}

// Distance returns the length of w - v.
func (v Vector2) Distance(w Vector2) float64 {
	return w.Sub(v).Magnitude()
}

// Add returns the componentwise sum v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{x: v.x + w.x, y: v.y + w.y}
}

// Sub returns the componentwise difference v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{x: v.x - w.x, y: v.y - w.y}
}

// Mul returns the vector scaled by s.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{x: v.x * s, y: v.y * s}
}

// Div returns the vector divided by s.
// Division by zero follows IEEE 754 and yields infinities or NaN.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{x: v.x / s, y: v.y / s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{x: -v.x, y: -v.y}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		x: v.x + (w.x-v.x)*t,
		y: v.y + (w.y-v.y)*t,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vector2) Perp() Vector2 {
	return Vector2{x: -v.y, y: v.x}
}

// Rotate returns the vector rotated by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		x: v.x*cos - v.y*sin,
		y: v.x*sin + v.y*cos,
	}
}

// Equal reports whether both components are equal under IEEE 754 rules.
// A vector with a NaN component is never equal to anything, itself included.
func (v Vector2) Equal(w Vector2) bool {
	return v.x == w.x && v.y == w.y
}

// EqualTo compares v with a value of unknown type. Only Vector2 and
// *Vector2 can be compared; anything else fails with ErrTypeMismatch
// instead of reporting false.
func (v Vector2) EqualTo(other any) (bool, error) {
	w, ok := asVector(other)
	if !ok {
		return false, typeMismatch("compare", other)
	}
	return v.Equal(w), nil
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return math.Abs(v.x-w.x) < epsilon && math.Abs(v.y-w.y) < epsilon
}

// Len returns the number of components, which is always 2.
func (v Vector2) Len() int { return 2 }

// At returns component i: 0 is x and 1 is y.
func (v Vector2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	}
	return 0, fmt.Errorf("%w: index %d, Vector2 has 2 components", ErrIndexOutOfRange, i)
}

// All returns an iterator over the components, x first.
// Each call to the returned sequence starts from x again.
func (v Vector2) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.x) {
			return
		}
		yield(v.y)
	}
}

// Components returns the components as an array.
func (v Vector2) Components() [2]float64 {
	return [2]float64{v.x, v.y}
}

// String returns the vector as "Vector2(x=<x>, y=<y>)".
func (v Vector2) String() string {
	return "Vector2(x=" + formatFloat(v.x) + ", y=" + formatFloat(v.y) + ")"
}

// GoString makes %#v print the same form as String.
func (v Vector2) GoString() string {
	return v.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
