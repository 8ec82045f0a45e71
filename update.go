package geom

// UpdateOption replaces one component in Vector2.Updated.
//
// Example:
//
//	v := geom.New(1, 2)
//	w := v.Updated(geom.WithY(5)) // Vector2(x=1, y=5)
type UpdateOption func(*Vector2)

// WithX replaces the x component.
func WithX(x float64) UpdateOption {
	return func(v *Vector2) {
		v.x = x
	}
}

// WithY replaces the y component.
func WithY(y float64) UpdateOption {
	return func(v *Vector2) {
		v.y = y
	}
}

// Updated returns a copy of v with the given components replaced.
// Components without an option keep their current value; v itself is
// never modified.
func (v Vector2) Updated(opts ...UpdateOption) Vector2 {
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
