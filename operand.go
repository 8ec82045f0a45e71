package geom

// Op is an arithmetic operator for Vector2.Apply.
type Op int

const (
	// OpAdd adds a vector operand.
	OpAdd Op = iota
	// OpSub subtracts a vector operand.
	OpSub
	// OpMul scales by a scalar operand.
	OpMul
	// OpDiv divides by a scalar operand.
	OpDiv
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	default:
		return "unknown"
	}
}

// Apply evaluates v <op> operand where the operand's type is only known at
// run time, e.g. when evaluating user input or scripted expressions. Code
// with static types should call Add, Sub, Mul or Div directly.
//
// OpAdd and OpSub accept a Vector2 or *Vector2. OpMul and OpDiv accept any
// Go integer or floating-point scalar. Other operands fail with
// ErrTypeMismatch; multiplying two vectors fails with ErrInvalidOperation
// since the product is ambiguous (use Dot or Cross).
func (v Vector2) Apply(op Op, operand any) (Vector2, error) {
	switch op {
	case OpAdd, OpSub:
		w, ok := asVector(operand)
		if !ok {
			return Vector2{}, typeMismatch(op.String(), operand)
		}
		if op == OpAdd {
			return v.Add(w), nil
		}
		return v.Sub(w), nil

	case OpMul, OpDiv:
		if _, ok := asVector(operand); ok && op == OpMul {
			return Vector2{}, invalidOp(op.String(), "cannot multiply two vectors, use Dot() or Cross()")
		}
		s, ok := asScalar(operand)
		if !ok {
			return Vector2{}, typeMismatch(op.String(), operand)
		}
		if op == OpMul {
			return v.Mul(s), nil
		}
		return v.Div(s), nil
	}
	return Vector2{}, invalidOp(op.String(), "unknown operator")
}

func asVector(operand any) (Vector2, bool) {
	switch w := operand.(type) {
	case Vector2:
		return w, true
	case *Vector2:
		if w == nil {
			return Vector2{}, false
		}
		return *w, true
	}
	return Vector2{}, false
}

func asScalar(operand any) (float64, bool) {
	switch s := operand.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	}
	return 0, false
}
