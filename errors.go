package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned when an operation is mathematically
	// undefined for its operands, such as normalizing a zero vector.
	ErrInvalidOperation = errors.New("geom: invalid operation")

	// ErrTypeMismatch is returned when an operand has a kind the operation
	// cannot accept.
	ErrTypeMismatch = errors.New("geom: type mismatch")

	// ErrIndexOutOfRange is returned by Vector2.At for indices other than 0 and 1.
	ErrIndexOutOfRange = errors.New("geom: index out of range")
)

// invalidOp wraps ErrInvalidOperation with a reason and logs it at debug level.
func invalidOp(op, reason string) error {
	Logger().Debug("geom: invalid operation", "op", op, "reason", reason)
	return fmt.Errorf("%w: %s", ErrInvalidOperation, reason)
}

func typeMismatch(op string, operand any) error {
	Logger().Debug("geom: type mismatch", "op", op, "operand", fmt.Sprintf("%T", operand))
	return fmt.Errorf("%w: cannot %s Vector2 and %T", ErrTypeMismatch, op, operand)
}
