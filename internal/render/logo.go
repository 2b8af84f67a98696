package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

// LogoID is the element id of logo documents.
const LogoID = "craft-lab-logo"

// Logo writes a grid logo. Cells with a marker scale other than 1 are
// drawn as centered dots, the rest as squares.
func Logo(w io.Writer, g logo.Grid) error {
	cs := g.CellSize
	c := newCanvas(w)
	c.start(g.Cols*cs, g.Rows*cs, LogoID)

	for _, cell := range g.Cells {
		if cell.Empty {
			continue
		}
		f, err := fill(cell.Token)
		if err != nil {
			return fmt.Errorf("logo cell (%d,%d): %w", cell.Row, cell.Col, err)
		}
		if cell.Scale != 1 {
			half := float64(cs) / 2
			c.circle(float64(cell.Col*cs)+half, float64(cell.Row*cs)+half, half*cell.Scale, f)
			continue
		}
		c.Rect(cell.Col*cs, cell.Row*cs, cs, cs, f)
	}
	return c.end()
}

// FaviconSVG renders the logo as a standalone document.
func FaviconSVG(g logo.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Logo(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FaviconDataURI returns the logo as an inline base64 SVG payload suitable
// for a <link rel="icon"> href.
func FaviconDataURI(g logo.Grid) (string, error) {
	b, err := FaviconSVG(g)
	if err != nil {
		return "", err
	}
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// FaviconForSeed is the page-shell entry point: the brand logo for seed as
// a data URI.
func FaviconForSeed(seed prng.Seed) (string, error) {
	g, err := logo.Generate(seed, logo.DefaultConfig())
	if err != nil {
		return "", err
	}
	return FaviconDataURI(g)
}

// FaviconPNG rasterizes the logo at scale pixels per cell unit. Browsers
// that ignore SVG icons get the same image.
func FaviconPNG(g logo.Grid, scale int) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	cs := g.CellSize * scale
	w, h := g.Cols*cs, g.Rows*cs
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	var r vector.Rasterizer
	for _, cell := range g.Cells {
		if cell.Empty {
			continue
		}
		col, err := palette.RGB(cell.Token)
		if err != nil {
			return nil, fmt.Errorf("favicon cell (%d,%d): %w", cell.Row, cell.Col, err)
		}

		r.Reset(w, h)
		x0, y0 := float32(cell.Col*cs), float32(cell.Row*cs)
		size := float32(cs)
		if cell.Scale != 1 {
			// Inset dots so the cell keeps the same visual weight.
			inset := size * float32(1-cell.Scale) / 2
			x0, y0, size = x0+inset, y0+inset, size-2*inset
		}
		r.MoveTo(x0, y0)
		r.LineTo(x0+size, y0)
		r.LineTo(x0+size, y0+size)
		r.LineTo(x0, y0+size)
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(col.Clamped()), image.Point{})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("favicon png: %w", err)
	}
	return buf.Bytes(), nil
}
