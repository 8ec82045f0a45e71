package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts v to 26.6 fixed-point coordinates, rounding each component
// to the nearest 1/64. This is the coordinate type used by
// golang.org/x/image/font and its rasterizers.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.x * 64)),
		Y: fixed.Int26_6(math.Round(v.y * 64)),
	}
}

// FromFixed converts a 26.6 fixed-point point to a Vector2.
func FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{x: float64(p.X) / 64, y: float64(p.Y) / 64}
}
