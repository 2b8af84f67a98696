// Package core provides the small value types shared by the generators and
// the preview layer: canvas rectangles, clamps, validation errors and a
// token-colored cell buffer. It has no external dependencies so generator
// packages can import it freely.
package core

// Rect is an axis-aligned box in canvas units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the square of side 2*half centered on (cx, cy).
func Square(cx, cy, half float64) Rect {
	return Rect{X: cx - half, Y: cy - half, W: 2 * half, H: 2 * half}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
