package noisefield

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

func brandNoise() NoiseFunc {
	return NewSimplex2D(prng.AleaFromFloat(99))
}

func TestSimplexGolden(t *testing.T) {
	n := brandNoise()

	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{1.0 / 30, 2.0 / 80, -0.1438183952581893},
		{10.0 / 30, 50.0 / 80, -0.8008713586935943},
		{99.0 / 30, 99.0 / 80, 0.039426683879278716},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, n(tt.x, tt.y), 1e-12, "noise(%v, %v)", tt.x, tt.y)
	}
}

func TestSimplexRange(t *testing.T) {
	n := NewSimplex2D(prng.NewStream(prng.FromInt(5)))
	for x := -50; x < 50; x++ {
		for y := -50; y < 50; y++ {
			v := n(float64(x)*0.37, float64(y)*0.53)
			if v < -1 || v > 1 {
				t.Fatalf("noise out of range at (%d,%d): %v", x, y, v)
			}
		}
	}
}

func TestColorFieldGolden(t *testing.T) {
	p := Params{Width: 4, Height: 4, XSmoothness: 30, YSmoothness: 80}
	f, err := ColorField(brandNoise(), p, palette.FillTokens())
	require.NoError(t, err)

	for x := 0; x < 4; x++ {
		want := "fill-blue"
		if x == 3 {
			want = "fill-purple"
		}
		for y := 0; y < 4; y++ {
			assert.Equal(t, want, f.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestColorFieldDeterministic(t *testing.T) {
	seed := prng.Seed{9, 8, 7, 6}
	a, err := ColorField(FromSeed(seed), DefaultParams(), palette.FillTokens())
	require.NoError(t, err)
	b, err := ColorField(FromSeed(seed), DefaultParams(), palette.FillTokens())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a.Cells, 100*100)
}

func TestColorFieldValidation(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		code string
	}{
		{"zero smoothness", Params{Width: 2, Height: 2, XSmoothness: 0, YSmoothness: 1}, core.CodeSmoothness},
		{"fractional smoothness", Params{Width: 2, Height: 2, XSmoothness: 1, YSmoothness: 0.5}, core.CodeSmoothness},
		{"empty grid", Params{Width: 0, Height: 2, XSmoothness: 1, YSmoothness: 1}, core.CodeDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ColorField(brandNoise(), tt.p, palette.FillTokens())
			var ve core.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.code, ve.Code)
		})
	}

	_, err := ColorField(brandNoise(), DefaultParams(), nil)
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)
}

func TestColorFieldConstantNoise(t *testing.T) {
	p := Params{Width: 2, Height: 2, XSmoothness: 1, YSmoothness: 1}
	top := func(x, y float64) float64 { return 1 }
	f, err := ColorField(top, p, []string{"a", "b", "c"})
	require.NoError(t, err)
	for _, c := range f.Cells {
		assert.Equal(t, "c", c, "noise of exactly 1 must clamp to the last entry")
	}
}

func TestDotField(t *testing.T) {
	p := Params{Width: 3, Height: 2, XSmoothness: 30, YSmoothness: 80}
	dots, err := DotField(brandNoise(), p, nil)
	require.NoError(t, err)
	require.Len(t, dots, 6)

	first := dots[0]
	assert.Equal(t, 0.5, first.CX)
	assert.Equal(t, 0.5, first.CY)
	// noise(0,0) is 0, so the dot is at half size and the 0.3 opacity floor
	assert.InDelta(t, 0.1, first.Radius, 1e-15)
	assert.InDelta(t, 0.3, first.Opacity, 1e-15)
	assert.Empty(t, first.Token)

	for _, d := range dots {
		assert.GreaterOrEqual(t, d.Opacity, MinDotOpacity)
		assert.LessOrEqual(t, d.Radius, MaxDotRadius)
	}
}

func TestOpenSimplexBackend(t *testing.T) {
	a := NewOpenSimplex(42)
	b := NewOpenSimplex(42)
	f1, err := ColorField(a, DefaultParams(), palette.FillTokens())
	require.NoError(t, err)
	f2, err := ColorField(b, DefaultParams(), palette.FillTokens())
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}
