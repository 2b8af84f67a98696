// Package lattice builds the animated isometric cube lattice of the member
// card. Geometry and face colors are both drawn from one shared stream, so
// the traversal order below is part of the output.
package lattice

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidDirection is returned for a direction token other than x, y or z.
var ErrInvalidDirection = errors.New("invalid lattice direction")

// Direction is one of the three visible cube faces in isometric projection.
type Direction string

const (
	X Direction = "x"
	Y Direction = "y"
	Z Direction = "z"
)

// ParseDirection validates a direction token.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case X, Y, Z:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Vec2 is a point in canvas units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + (dx, dy).
func (v Vec2) Add(dx, dy float64) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// Face is a rhombus. A is always the anchor corner; B, C and D follow
// around the outline.
type Face struct {
	A, B, C, D Vec2
}

// Corner returns corner i, 0..3 for A..D.
func (f Face) Corner(i int) Vec2 {
	switch i {
	case 0:
		return f.A
	case 1:
		return f.B
	case 2:
		return f.C
	case 3:
		return f.D
	}
	panic(fmt.Sprintf("lattice: corner index %d out of range", i))
}

// Corners returns A, B, C, D in order.
func (f Face) Corners() [4]Vec2 {
	return [4]Vec2{f.A, f.B, f.C, f.D}
}

// Translate moves every corner by (dx, dy).
func (f Face) Translate(dx, dy float64) Face {
	return Face{A: f.A.Add(dx, dy), B: f.B.Add(dx, dy), C: f.C.Add(dx, dy), D: f.D.Add(dx, dy)}
}

// deltas returns the 30° isometric offsets for a given edge length.
func deltas(size float64) (dx, dy float64) {
	return size * math.Cos(math.Pi/6), size * math.Sin(math.Pi/6)
}

// MakeOrigin builds the rest-state rhombus anchored at o.
func MakeOrigin(o Vec2, size float64, dir Direction) (Face, error) {
	dx, dy := deltas(size)
	switch dir {
	case X:
		return Face{A: o, B: o.Add(0, dy*2), C: o.Add(-dx, dy), D: o.Add(-dx, -dy)}, nil
	case Y:
		return Face{A: o, B: o.Add(dx, -dy), C: o.Add(dx, dy), D: o.Add(0, dy*2)}, nil
	case Z:
		return Face{A: o, B: o.Add(-dx, -dy), C: o.Add(0, -dy*2), D: o.Add(dx, -dy)}, nil
	}
	return Face{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
}

// transform pushes a face outward along its direction by scale edges.
func transform(f Face, size, scale float64, dir Direction) (Face, error) {
	dx, dy := deltas(size)
	dx *= scale
	dy *= scale
	switch dir {
	case X:
		return f.Translate(-dx, dy), nil
	case Y:
		return f.Translate(dx, dy), nil
	case Z:
		return f.Translate(0, -dy), nil
	}
	return Face{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
}
