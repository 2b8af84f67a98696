package noisefield

import (
	"fmt"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/palette"
)

// Params configures a sampled field.
type Params struct {
	Width, Height int
	XSmoothness   float64 // x is divided by this before sampling; >= 1
	YSmoothness   float64
}

// DefaultParams is the 100×100 brand background.
func DefaultParams() Params {
	return Params{Width: 100, Height: 100, XSmoothness: 30, YSmoothness: 80}
}

// Validate rejects parameters that would divide by zero or sample nothing.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return core.Invalid(core.CodeDimensions, "field must be at least 1x1, got %dx%d", p.Width, p.Height)
	}
	if p.XSmoothness < 1 || p.YSmoothness < 1 {
		return core.Invalid(core.CodeSmoothness, "smoothness must be >= 1, got x=%v y=%v", p.XSmoothness, p.YSmoothness)
	}
	return nil
}

// Normalize maps noise in [-1, 1] to [0, 1].
func Normalize(n float64) float64 {
	return (n + 1) / 2
}

// Field is a grid of palette tokens, Cells[y*Width+x].
type Field struct {
	Width, Height int
	Cells         []string
}

// At returns the token at (x, y).
func (f Field) At(x, y int) string {
	return f.Cells[y*f.Width+x]
}

// ColorField samples noise at (x/xs, y/ys) for every cell and picks the
// palette entry for the normalized value.
func ColorField(noise NoiseFunc, p Params, tokens []string) (Field, error) {
	if err := p.Validate(); err != nil {
		return Field{}, err
	}
	if len(tokens) == 0 {
		return Field{}, fmt.Errorf("noise field: %w", palette.ErrEmptyPalette)
	}

	f := Field{Width: p.Width, Height: p.Height, Cells: make([]string, p.Width*p.Height)}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			n := noise(float64(x)/p.XSmoothness, float64(y)/p.YSmoothness)
			f.Cells[y*p.Width+x] = palette.Pick(Normalize(n), tokens)
		}
	}
	return f, nil
}

// Dot is one cell of the dotted background.
type Dot struct {
	X, Y    int
	CX, CY  float64
	Radius  float64
	Opacity float64
	Token   string
}

// Dot sizing for the brand background.
const (
	MaxDotRadius  = 0.2
	MaxDotOpacity = 0.6
	MinDotOpacity = 0.3
)

// DotField sizes and fades one dot per cell by its normalized noise value.
// Dots sit at cell centers; tokens are optional and pick by the same value.
func DotField(noise NoiseFunc, p Params, tokens []string) ([]Dot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dots := make([]Dot, 0, p.Width*p.Height)
	for x := 0; x < p.Width; x++ {
		for y := 0; y < p.Height; y++ {
			v := Normalize(noise(float64(x)/p.XSmoothness, float64(y)/p.YSmoothness))
			d := Dot{
				X:       x,
				Y:       y,
				CX:      float64(x) + 0.5,
				CY:      float64(y) + 0.5,
				Radius:  v * MaxDotRadius,
				Opacity: core.ClampF(v*MaxDotOpacity, MinDotOpacity, 100),
			}
			if len(tokens) > 0 {
				d.Token = palette.Pick(v, tokens)
			}
			dots = append(dots, d)
		}
	}
	return dots, nil
}
