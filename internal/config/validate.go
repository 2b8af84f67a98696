package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/seedart/internal/contour"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/noisefield"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/render"
)

// Limits applied by Validate.
const (
	MaxGridSide = 64
	MaxNoiseDim = 1000
	MaxNoiseBox = 32
	MinEdges    = 3
	MaxEdges    = 64
	MaxGrowth   = 10 // inner radius equals the outer one
)

// Validate checks that every generator section can produce output and
// clamps soft limits into range. Hard errors are joined so the caller sees
// all of them at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if c.Logo.Rows <= 0 || c.Logo.Cols <= 0 || c.Logo.Rows > MaxGridSide || c.Logo.Cols > MaxGridSide {
		errs = append(errs, core.Invalid(core.CodeDimensions,
			"logo: grid must be between 1x1 and %dx%d, got %dx%d", MaxGridSide, MaxGridSide, c.Logo.Rows, c.Logo.Cols))
	}
	if len(c.Logo.RowPalettes) == 0 && len(c.Logo.Palette) == 0 {
		errs = append(errs, core.Invalid(core.CodeEmptyPalette, "logo: row_palettes and palette are both empty"))
	}
	errs = append(errs, checkTokens("logo.palette", c.Logo.Palette)...)
	for i, row := range c.Logo.RowPalettes {
		if len(row) == 0 {
			errs = append(errs, core.Invalid(core.CodeEmptyPalette, "logo: row_palettes[%d] is empty", i))
		}
		errs = append(errs, checkTokens(fmt.Sprintf("logo.row_palettes[%d]", i), row)...)
	}
	if c.Logo.CellSize <= 0 {
		c.Logo.CellSize = logo.DefaultCellSize
	}

	if c.Contour.Size <= 0 {
		errs = append(errs, core.Invalid(core.CodeSize, "contour: size must be positive, got %g", c.Contour.Size))
	}
	if c.Contour.Edges < MinEdges || c.Contour.Edges > MaxEdges {
		errs = append(errs, core.Invalid(core.CodeEdges,
			"contour: edges must be in [%d, %d], got %d", MinEdges, MaxEdges, c.Contour.Edges))
	}
	c.Contour.Growth = clampF(c.Contour.Growth, 0, MaxGrowth)
	if c.Contour.Size > 0 && c.Contour.Edges >= MinEdges && c.Contour.Edges <= MaxEdges {
		o := contour.Options{Size: c.Contour.Size, Growth: c.Contour.Growth, Edges: c.Contour.Edges}
		if err := o.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("contour: %w", err))
		}
	}
	if len(c.Contour.Colors) == 0 {
		errs = append(errs, core.Invalid(core.CodeEmptyPalette, "contour: colors is empty"))
	} else if c.Contour.Size > 0 {
		if err := contour.ValidateLayered(c.Contour.Size, len(c.Contour.Colors)); err != nil {
			errs = append(errs, fmt.Errorf("contour: %w", err))
		}
	}
	errs = append(errs, checkTokens("contour.colors", c.Contour.Colors)...)

	if c.Card.Width <= 0 || c.Card.Height <= 0 {
		errs = append(errs, core.Invalid(core.CodeDimensions, "card: %dx%d is not a valid size", c.Card.Width, c.Card.Height))
	}
	if c.Card.Size <= 0 {
		errs = append(errs, core.Invalid(core.CodeSize, "card: lattice size must be positive, got %g", c.Card.Size))
	}
	if len(c.Card.Tokens) == 0 {
		errs = append(errs, core.Invalid(core.CodeEmptyPalette, "card: tokens is empty"))
	}
	errs = append(errs, checkTokens("card.tokens", c.Card.Tokens)...)

	if err := c.NoiseParams().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("noise: %w", err))
	}
	if c.Noise.Width > MaxNoiseDim || c.Noise.Height > MaxNoiseDim {
		errs = append(errs, core.Invalid(core.CodeDimensions,
			"noise: field is limited to %dx%d, got %dx%d", MaxNoiseDim, MaxNoiseDim, c.Noise.Width, c.Noise.Height))
	}
	if len(c.Noise.Palette) == 0 {
		errs = append(errs, core.Invalid(core.CodeEmptyPalette, "noise: palette is empty"))
	}
	errs = append(errs, checkTokens("noise.palette", c.Noise.Palette)...)
	c.Noise.Box = int(clampF(float64(c.Noise.Box), 1, MaxNoiseBox))
	switch c.Noise.Backend {
	case "":
		c.Noise.Backend = BackendSimplex
	case BackendSimplex, BackendOpenSimplex:
	default:
		errs = append(errs, fmt.Errorf("noise.backend: unknown backend %q", c.Noise.Backend))
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}

	return errors.Join(errs...)
}

// LogoConfig converts the logo section into generator options.
func (c Config) LogoConfig() logo.Config {
	out := logo.Config{
		Rows:         c.Logo.Rows,
		Cols:         c.Logo.Cols,
		CellSize:     c.Logo.CellSize,
		RowPalettes:  c.Logo.RowPalettes,
		Palette:      c.Logo.Palette,
		DrawExcluded: c.Logo.DrawExcluded,
	}
	for _, e := range c.Logo.Exclude {
		out.Exclude = append(out.Exclude, logo.Cell{Col: e[0], Row: e[1]})
	}
	return out
}

// NoiseParams converts the noise section into field parameters.
func (c Config) NoiseParams() noisefield.Params {
	return noisefield.Params{
		Width:       c.Noise.Width,
		Height:      c.Noise.Height,
		XSmoothness: c.Noise.XSmoothness,
		YSmoothness: c.Noise.YSmoothness,
	}
}

// RenderCard converts the card section into render geometry.
func (c Config) RenderCard() render.Card {
	return render.Card{
		Width:  c.Card.Width,
		Height: c.Card.Height,
		Size:   c.Card.Size,
		Inset:  c.Card.Inset,
	}
}

func checkTokens(field string, tokens []string) []error {
	var errs []error
	for _, t := range tokens {
		if _, err := palette.Resolve(t); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	return errs
}

func cellPairs(cells []logo.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Col, c.Row}
	}
	return out
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
