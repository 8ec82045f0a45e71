// Package geom provides Vector2, an immutable 2D floating-point vector.
//
// # Overview
//
// Vector2 is a small value type: it is copied by assignment, is safe to
// share between goroutines, and every operation returns a new vector.
//
//	a := geom.New(3, 4)
//	b := geom.New(1, 0)
//
//	a.Magnitude()          // 5
//	a.Add(b)               // Vector2(x=4, y=4)
//	a.Dot(b)               // 3
//	n, err := a.Normalized()
//
// # Errors
//
// Operations that are undefined for their operands return an error wrapping
// one of the package sentinels, to be tested with errors.Is:
//   - ErrInvalidOperation: zero-vector Normalized, Angle and AngleBetween,
//     and vector-by-vector multiplication in Apply
//   - ErrTypeMismatch: Apply and EqualTo with an operand of the wrong kind
//   - ErrIndexOutOfRange: At with an index other than 0 or 1
//
// Division by a zero scalar is not an error; it yields IEEE infinities or NaN.
//
// # Sub-packages
//
//   - charstream: lazy character-by-character reading of a text stream
package geom
