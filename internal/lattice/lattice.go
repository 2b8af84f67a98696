package lattice

import (
	"fmt"

	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

// MaxScale bounds how far a keyframe pushes a face, in edge lengths.
const MaxScale = 3

// Keyframes per cube: rest, five random offsets, rest again.
const Keyframes = 7

// Animation timing shared by every face.
const (
	Duration  = "8s"
	KeyTimes  = "0; 0.15; 0.3; 0.45; 0.6; 0.75; 1"
	KeySpline = "0.42 0 0.58 1"
)

// KeySplines is KeySpline repeated once per keyframe interval.
func KeySplines() string {
	s := KeySpline
	for i := 1; i < Keyframes-1; i++ {
		s += "; " + KeySpline
	}
	return s
}

// Cube is a rest-state face and its animation keyframes.
type Cube struct {
	Origin Face
	Frames []Face
}

// CreateCube builds a looping cube: Frames[0] and Frames[6] are Origin.
func CreateCube(o Vec2, size float64, dir Direction, rnd prng.Source) (Cube, error) {
	origin, err := MakeOrigin(o, size, dir)
	if err != nil {
		return Cube{}, err
	}

	frames := make([]Face, 0, Keyframes)
	frames = append(frames, origin)
	for i := 0; i < Keyframes-2; i++ {
		f, err := transform(origin, size, rnd.Next()*MaxScale, dir)
		if err != nil {
			return Cube{}, err
		}
		frames = append(frames, f)
	}
	frames = append(frames, origin)
	return Cube{Origin: origin, Frames: frames}, nil
}

// CreateCubes tiles four cubes from o. The anchor cube is generated first,
// then cubes anchored at its C, B and D corners; the anchor is returned
// last so it paints on top.
func CreateCubes(o Vec2, size float64, dir Direction, rnd prng.Source) ([]Cube, error) {
	c1, err := CreateCube(o, size, dir, rnd)
	if err != nil {
		return nil, err
	}

	out := make([]Cube, 0, 4)
	for _, corner := range []Vec2{c1.Origin.C, c1.Origin.B, c1.Origin.D} {
		c, err := CreateCube(corner, size, dir, rnd)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return append(out, c1), nil
}

// Quad is one drawable face of a cube with its keyframe outlines.
type Quad struct {
	Points [4]Vec2
	Frames [][4]Vec2
}

// Faces expands a cube into its three drawable quads: two side walls
// hinged on the rest face, and the moving top.
func Faces(c Cube) [3]Quad {
	o := c.Origin
	var q [3]Quad
	for i := range q {
		q[i].Frames = make([][4]Vec2, len(c.Frames))
	}
	for k, d := range c.Frames {
		q[0].Frames[k] = [4]Vec2{o.A, d.A, d.B, o.B}
		q[1].Frames[k] = [4]Vec2{o.A, d.A, d.D, o.D}
		q[2].Frames[k] = [4]Vec2{d.A, d.B, d.C, d.D}
	}
	for i := range q {
		if len(q[i].Frames) > 0 {
			q[i].Points = q[i].Frames[0]
		}
	}
	return q
}

// FaceStyle is the color of one quad. Key is the draw that precedes the
// color draw and identifies the face across renders.
type FaceStyle struct {
	Key   float64
	Token string
}

// Lattice is the full member-card geometry.
type Lattice struct {
	Cubes  map[Direction][]Cube
	Colors map[Direction][][3]FaceStyle
}

// GeometryOrder is the order directions are built in.
var GeometryOrder = []Direction{Z, X, Y}

// PaintOrder is the order directions are colored and drawn in.
var PaintOrder = []Direction{Z, Y, X}

// Generate builds the lattice at o. All geometry is drawn first (z, x, y),
// then two values per face are drawn for color (z, y, x).
func Generate(o Vec2, size float64, rnd prng.Source, tokens []string) (Lattice, error) {
	if len(tokens) == 0 {
		return Lattice{}, fmt.Errorf("lattice: %w", palette.ErrEmptyPalette)
	}

	l := Lattice{
		Cubes:  make(map[Direction][]Cube, 3),
		Colors: make(map[Direction][][3]FaceStyle, 3),
	}
	for _, dir := range GeometryOrder {
		cubes, err := CreateCubes(o, size, dir, rnd)
		if err != nil {
			return Lattice{}, fmt.Errorf("lattice %s: %w", dir, err)
		}
		l.Cubes[dir] = cubes
	}

	for _, dir := range PaintOrder {
		styles := make([][3]FaceStyle, len(l.Cubes[dir]))
		for i := range styles {
			for f := 0; f < 3; f++ {
				key := rnd.Next()
				styles[i][f] = FaceStyle{Key: key, Token: palette.Pick(rnd.Next(), tokens)}
			}
		}
		l.Colors[dir] = styles
	}
	return l, nil
}
