// Package logo generates the seeded grid logo: an R×C grid of colored
// cells with a fixed notch of empty cells in the top-right corner.
package logo

import (
	"fmt"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

// DefaultCellSize is the pixel size of one logo cell.
const DefaultCellSize = 6

// Cell addresses one grid position.
type Cell struct {
	Col int
	Row int
}

// Config describes a grid logo.
type Config struct {
	Rows     int
	Cols     int
	CellSize int

	// RowPalettes selects colors per row (row % len). When empty, Palette
	// is used for every cell.
	RowPalettes [][]string
	Palette     []string

	// Exclude lists cells that are always empty.
	Exclude []Cell

	// DrawExcluded makes excluded cells consume a draw anyway, matching
	// renderers that pre-draw one value per cell.
	DrawExcluded bool

	// Markers adds a per-cell size multiplier in [0.4, 1) for dot logos.
	// It is drawn from a separate generator so colors are unaffected.
	Markers bool
}

// DefaultConfig returns the 8×8 brand logo with its row gradient.
func DefaultConfig() Config {
	return Config{
		Rows:        8,
		Cols:        8,
		CellSize:    DefaultCellSize,
		RowPalettes: palette.RowColors(),
		Exclude:     NotchExclusions(),
	}
}

// PointConfig returns the dot variant: one global palette, an inner notch
// and per-cell marker sizes.
func PointConfig() Config {
	return Config{
		Rows:     8,
		Cols:     8,
		CellSize: DefaultCellSize,
		Palette:  palette.Colors(),
		Exclude: []Cell{
			{4, 2}, {3, 3}, {3, 4}, {4, 3}, {4, 4}, {5, 4}, {3, 5}, {2, 3},
		},
		Markers:      true,
		DrawExcluded: true,
	}
}

// NotchExclusions is the top-right staircase notch. Cells with a column
// beyond the grid width are kept so wider grids get the full notch.
func NotchExclusions() []Cell {
	return []Cell{
		{9, 0}, {9, 1}, {9, 2}, {9, 3},
		{8, 0}, {8, 1}, {8, 2},
		{7, 0}, {7, 1},
		{6, 0},
	}
}

// GridCell is one resolved cell of a generated logo.
type GridCell struct {
	Row   int
	Col   int
	Token string
	Empty bool
	Scale float64 // marker size multiplier, 1 unless Config.Markers
}

// Grid is the output of Generate in row-major order.
type Grid struct {
	Rows     int
	Cols     int
	CellSize int
	Cells    []GridCell
}

// At returns the cell at (row, col). It panics on out-of-range indices.
func (g Grid) At(row, col int) GridCell {
	return g.Cells[row*g.Cols+col]
}

func (c Config) validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return core.Invalid(core.CodeDimensions, "grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if len(c.RowPalettes) == 0 && len(c.Palette) == 0 {
		return fmt.Errorf("logo: %w", palette.ErrEmptyPalette)
	}
	for i, p := range c.RowPalettes {
		if len(p) == 0 {
			return fmt.Errorf("logo: row palette %d: %w", i, palette.ErrEmptyPalette)
		}
	}
	return nil
}

func (c Config) excluded() map[Cell]bool {
	m := make(map[Cell]bool, len(c.Exclude))
	for _, e := range c.Exclude {
		m[e] = true
	}
	return m
}

func (c Config) paletteFor(row int) []string {
	if len(c.RowPalettes) == 0 {
		return c.Palette
	}
	return c.RowPalettes[row%len(c.RowPalettes)]
}

// Generate builds the logo for seed. Cells are visited row-major, row
// outer, and each drawn cell consumes exactly one value of the stream.
func Generate(seed prng.Seed, cfg Config) (Grid, error) {
	if err := cfg.validate(); err != nil {
		return Grid{}, err
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}

	stream := prng.NewStream(seed)
	var sizes prng.Source
	if cfg.Markers {
		sizes = prng.NewMWC(seed.First())
	}
	skip := cfg.excluded()

	n := cfg.Rows * cfg.Cols
	g := Grid{Rows: cfg.Rows, Cols: cfg.Cols, CellSize: cfg.CellSize, Cells: make([]GridCell, n)}
	for i := 0; i < n; i++ {
		row, col := i/cfg.Cols, i%cfg.Cols
		cell := GridCell{Row: row, Col: col, Scale: 1}
		if sizes != nil {
			cell.Scale = sizes.Next()*(1-0.4) + 0.4
		}

		if skip[Cell{Col: col, Row: row}] {
			if cfg.DrawExcluded {
				stream.Next()
			}
			cell.Empty = true
			g.Cells[i] = cell
			continue
		}

		cell.Token = palette.Pick(stream.Next(), cfg.paletteFor(row))
		g.Cells[i] = cell
	}
	return g, nil
}
