package lattice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

const eps = 1e-9

func assertFace(t *testing.T, want [4][2]float64, got Face) {
	t.Helper()
	for i, c := range got.Corners() {
		assert.InDelta(t, want[i][0], c.X, eps, "corner %d x", i)
		assert.InDelta(t, want[i][1], c.Y, eps, "corner %d y", i)
	}
}

func memberCard(t *testing.T) Lattice {
	t.Helper()
	l, err := Generate(Vec2{X: 320 - 50, Y: 448 - 50}, 10, prng.NewStream(prng.Seed{1, 2, 3, 4}), palette.TextTokens())
	require.NoError(t, err)
	return l
}

func TestGenerateGeometryGolden(t *testing.T) {
	l := memberCard(t)

	assertFace(t, [4][2]float64{
		{270, 388}, {261.33974596215563, 383}, {270, 378}, {278.66025403784437, 383},
	}, l.Cubes[Z][0].Origin)

	assertFace(t, [4][2]float64{
		{270, 386.60512574436143}, {261.33974596215563, 381.60512574436143},
		{270, 376.60512574436143}, {278.66025403784437, 381.60512574436143},
	}, l.Cubes[Z][0].Frames[1])

	assert.InDelta(t, 397.9999999755528, l.Cubes[Z][3].Frames[1].A.Y, eps)

	assertFace(t, [4][2]float64{
		{270, 398}, {270, 408}, {261.33974596215563, 403}, {261.33974596215563, 393},
	}, l.Cubes[X][3].Origin)

	assertFace(t, [4][2]float64{
		{277.59740185510964, 402.3863620061893}, {286.257655892954, 397.3863620061893},
		{286.257655892954, 407.3863620061893}, {277.59740185510964, 412.3863620061893},
	}, l.Cubes[Y][3].Frames[5])
}

func TestGenerateColorsGolden(t *testing.T) {
	l := memberCard(t)

	want := map[Direction][][3]string{
		Z: {
			{"text-pink", "text-green", "text-pink"},
			{"text-lime", "text-blue", "text-lime"},
			{"text-purple", "text-blue", "text-blue"},
			{"text-lime", "text-green", "text-purple"},
		},
		Y: {
			{"text-yellow", "text-lime", "text-green"},
			{"text-purple", "text-orange", "text-green"},
			{"text-purple", "text-pink", "text-blue"},
			{"text-blue", "text-pink", "text-green"},
		},
		X: {
			{"text-yellow", "text-blue", "text-purple"},
			{"text-yellow", "text-blue", "text-pink"},
			{"text-lime", "text-purple", "text-blue"},
			{"text-yellow", "text-orange", "text-pink"},
		},
	}

	for dir, cubes := range want {
		require.Len(t, l.Colors[dir], 4, "direction %s", dir)
		for i, faces := range cubes {
			for f, tok := range faces {
				assert.Equal(t, tok, l.Colors[dir][i][f].Token, "%s cube %d face %d", dir, i, f)
			}
		}
	}
}

func TestLatticeConnectivity(t *testing.T) {
	l := memberCard(t)

	for _, dir := range GeometryOrder {
		cubes := l.Cubes[dir]
		require.Len(t, cubes, 4)
		anchor := cubes[3].Origin
		for i, corner := range []Vec2{anchor.C, anchor.B, anchor.D} {
			got := cubes[i].Origin.A
			assert.InDelta(t, corner.X, got.X, eps, "%s cube %d", dir, i)
			assert.InDelta(t, corner.Y, got.Y, eps, "%s cube %d", dir, i)
		}
	}
}

func TestCubeLoops(t *testing.T) {
	c, err := CreateCube(Vec2{X: 10, Y: 10}, 5, Y, prng.NewStream(prng.FromInt(8)))
	require.NoError(t, err)
	require.Len(t, c.Frames, Keyframes)
	assert.Equal(t, c.Origin, c.Frames[0])
	assert.Equal(t, c.Origin, c.Frames[Keyframes-1])
}

func TestTransformBounds(t *testing.T) {
	c, err := CreateCube(Vec2{}, 10, Z, prng.NewStream(prng.FromInt(3)))
	require.NoError(t, err)
	// z frames only move up, by at most MaxScale * size/2
	for _, f := range c.Frames {
		shift := c.Origin.A.Y - f.A.Y
		assert.GreaterOrEqual(t, shift, 0.0)
		assert.LessOrEqual(t, shift, MaxScale*5.0+eps)
		assert.Equal(t, c.Origin.A.X, f.A.X)
	}
}

func TestInvalidDirection(t *testing.T) {
	_, err := MakeOrigin(Vec2{}, 10, Direction("w"))
	assert.True(t, errors.Is(err, ErrInvalidDirection))

	_, err = CreateCubes(Vec2{}, 10, Direction(""), prng.NewStream(prng.FromInt(1)))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = ParseDirection("diagonal")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	d, err := ParseDirection(" Z ")
	require.NoError(t, err)
	assert.Equal(t, Z, d)
}

func TestFaces(t *testing.T) {
	c, err := CreateCube(Vec2{X: 50, Y: 50}, 10, X, prng.NewStream(prng.FromInt(2)))
	require.NoError(t, err)

	q := Faces(c)
	o := c.Origin
	d := c.Frames[2]
	assert.Equal(t, [4]Vec2{o.A, d.A, d.B, o.B}, q[0].Frames[2])
	assert.Equal(t, [4]Vec2{o.A, d.A, d.D, o.D}, q[1].Frames[2])
	assert.Equal(t, [4]Vec2{d.A, d.B, d.C, d.D}, q[2].Frames[2])
	for i := range q {
		assert.Len(t, q[i].Frames, Keyframes)
		assert.Equal(t, q[i].Frames[0], q[i].Points)
	}
}

func TestKeySplines(t *testing.T) {
	want := "0.42 0 0.58 1; 0.42 0 0.58 1; 0.42 0 0.58 1; 0.42 0 0.58 1; 0.42 0 0.58 1; 0.42 0 0.58 1"
	assert.Equal(t, want, KeySplines())
}

func TestGenerateDeterministic(t *testing.T) {
	a := memberCard(t)
	b := memberCard(t)
	assert.Equal(t, a, b)
}

func TestGenerateEmptyTokens(t *testing.T) {
	_, err := Generate(Vec2{}, 10, prng.NewStream(prng.FromInt(1)), nil)
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)
}
