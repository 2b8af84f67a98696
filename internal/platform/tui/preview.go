package tui

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/contour"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/lattice"
	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/noisefield"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/registry"
)

const (
	blockRune = '█'
	dotRune   = '●'
	smallDot  = '•'
	tinyDot   = '·'
)

// viewport maps canvas units onto terminal cells. Cells are roughly twice
// as tall as they are wide, so one canvas unit spans two columns per row.
type viewport struct {
	box        core.Rect
	scale      float64 // rows per canvas unit
	offX, offY int
}

func fit(box core.Rect, w, h int) viewport {
	scale := math.Min(float64(w)/(2*box.W), float64(h)/box.H)
	return viewport{
		box:   box,
		scale: scale,
		offX:  (w - int(2*scale*box.W)) / 2,
		offY:  (h - int(scale*box.H)) / 2,
	}
}

// toCanvas returns the canvas point at the center of cell (sx, sy).
func (v viewport) toCanvas(sx, sy int) (float64, float64) {
	x := v.box.X + (float64(sx-v.offX)+0.5)/(2*v.scale)
	y := v.box.Y + (float64(sy-v.offY)+0.5)/v.scale
	return x, y
}

func (v viewport) toScreen(x, y float64) (int, int) {
	sx := v.offX + int(math.Floor((x-v.box.X)*2*v.scale))
	sy := v.offY + int(math.Floor((y-v.box.Y)*v.scale))
	return sx, sy
}

// coverageThreshold is the minimum rasterized coverage for a cell to count
// as inside a polygon.
const coverageThreshold = 0x80

// toScreenF maps a canvas point to fractional cell coordinates.
func (v viewport) toScreenF(x, y float64) (float32, float32) {
	sx := float64(v.offX) + (x-v.box.X)*2*v.scale
	sy := float64(v.offY) + (y-v.box.Y)*v.scale
	return float32(sx), float32(sy)
}

// coverage rasterizes poly into a w×h alpha mask with one pixel per cell.
func coverage(v viewport, poly []lattice.Vec2, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(poly) < 3 {
		return mask
	}

	var r vector.Rasterizer
	r.Reset(w, h)
	r.MoveTo(v.toScreenF(poly[0].X, poly[0].Y))
	for _, p := range poly[1:] {
		r.LineTo(v.toScreenF(p.X, p.Y))
	}
	r.ClosePath()
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// fillPolygon paints every cell poly covers at least halfway.
func fillPolygon(dst *core.Screen, v viewport, poly []lattice.Vec2, token string) {
	mask := coverage(v, poly, dst.Width(), dst.Height())
	for sy := 0; sy < dst.Height(); sy++ {
		for sx := 0; sx < dst.Width(); sx++ {
			if mask.AlphaAt(sx, sy).A >= coverageThreshold {
				dst.Set(sx, sy, blockRune, token)
			}
		}
	}
}

func contourPolygon(pts []contour.Point) []lattice.Vec2 {
	out := make([]lattice.Vec2, len(pts))
	for i, p := range pts {
		out[i] = lattice.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

// Preview draws a terminal approximation of artwork id into dst. Every
// registered artwork has a preview.
func Preview(dst *core.Screen, id string, seed prng.Seed, cfg *config.Config) error {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return nil
	}

	switch id {
	case "logo":
		g, err := logo.Generate(seed, cfg.LogoConfig())
		if err != nil {
			return err
		}
		previewGrid(dst, g)
	case "point-logo":
		lc := logo.PointConfig()
		lc.CellSize = cfg.Logo.CellSize
		g, err := logo.Generate(seed, lc)
		if err != nil {
			return err
		}
		previewGrid(dst, g)
	case "blob":
		if len(cfg.Contour.Colors) == 0 {
			return fmt.Errorf("preview: %w", palette.ErrEmptyPalette)
		}
		s := seed.First()
		shape, err := contour.Blob(contour.Options{
			Size: cfg.Contour.Size, Growth: cfg.Contour.Growth, Edges: cfg.Contour.Edges, Seed: &s,
		}, nil)
		if err != nil {
			return err
		}
		token := palette.Pick(prng.NewStream(seed).Next(), cfg.Contour.Colors)
		v := fit(core.NewRect(0, 0, cfg.Contour.Size, cfg.Contour.Size), dst.Width(), dst.Height())
		fillPolygon(dst, v, contourPolygon(shape.Points), token)
	case "blob-logo":
		layers, err := contour.BlobLogo(cfg.Contour.Size, cfg.Contour.Colors, seed.First())
		if err != nil {
			return err
		}
		v := fit(core.NewRect(0, 0, cfg.Contour.Size, cfg.Contour.Size), dst.Width(), dst.Height())
		for _, l := range layers {
			fillPolygon(dst, v, contourPolygon(l.Shape.Points), l.Color)
		}
	case "circle-line":
		rings, err := contour.CircleLine(cfg.Contour.Size, cfg.Contour.Colors, seed.First())
		if err != nil {
			return err
		}
		previewRings(dst, rings, cfg.Contour.Size)
	case "lattice", "member-card":
		return previewLattice(dst, seed, cfg)
	case "noise":
		f, err := noisefield.ColorField(registry.Noise(seed, cfg), cfg.NoiseParams(), cfg.Noise.Palette)
		if err != nil {
			return err
		}
		previewField(dst, f)
	case "dots":
		p := cfg.NoiseParams()
		dots, err := noisefield.DotField(registry.Noise(seed, cfg), p, cfg.Noise.Palette)
		if err != nil {
			return err
		}
		return previewDots(dst, dots, p)
	default:
		return fmt.Errorf("preview: unknown artwork %q", id)
	}
	return nil
}

// previewGrid draws each logo cell as a two-column block, centered.
func previewGrid(dst *core.Screen, g logo.Grid) {
	offX := (dst.Width() - 2*g.Cols) / 2
	offY := (dst.Height() - g.Rows) / 2
	for _, c := range g.Cells {
		if c.Empty {
			continue
		}
		x, y := offX+2*c.Col, offY+c.Row
		if c.Scale != 1 {
			dst.Set(x, y, markerRune(c.Scale), c.Token)
			continue
		}
		dst.Set(x, y, blockRune, c.Token)
		dst.Set(x+1, y, blockRune, c.Token)
	}
}

func markerRune(scale float64) rune {
	switch {
	case scale >= 0.8:
		return dotRune
	case scale >= 0.6:
		return smallDot
	default:
		return tinyDot
	}
}

func previewRings(dst *core.Screen, rings []contour.Ring, size float64) {
	v := fit(core.NewRect(0, 0, size, size), dst.Width(), dst.Height())
	// Outermost first so inner rings stay visible where cells collide.
	for _, r := range rings {
		for _, p := range r.Points {
			sx, sy := v.toScreen(p.X, p.Y)
			dst.Set(sx, sy, markerRune(r.MarkerRadius/1.8), r.Color)
		}
	}
}

func previewLattice(dst *core.Screen, seed prng.Seed, cfg *config.Config) error {
	card := cfg.RenderCard()
	o := card.Origin()
	l, err := lattice.Generate(o, card.Size, prng.NewStream(seed), cfg.Card.Tokens)
	if err != nil {
		return err
	}

	v := fit(core.Square(o.X, o.Y, card.Inset), dst.Width(), dst.Height())
	for _, dir := range lattice.PaintOrder {
		for i, c := range l.Cubes[dir] {
			for f, q := range lattice.Faces(c) {
				fillPolygon(dst, v, q.Points[:], l.Colors[dir][i][f].Token)
			}
		}
	}
	return nil
}

// previewField samples the nearest field cell for every screen cell.
func previewField(dst *core.Screen, f noisefield.Field) {
	v := fit(core.NewRect(0, 0, float64(f.Width), float64(f.Height)), dst.Width(), dst.Height())
	for sy := 0; sy < dst.Height(); sy++ {
		for sx := 0; sx < dst.Width(); sx++ {
			x, y := v.toCanvas(sx, sy)
			if x < 0 || y < 0 || x >= float64(f.Width) || y >= float64(f.Height) {
				continue
			}
			dst.Set(sx, sy, blockRune, f.At(int(x), int(y)))
		}
	}
}

// previewDots approximates opacity by fading each token toward the
// background.
func previewDots(dst *core.Screen, dots []noisefield.Dot, p noisefield.Params) error {
	v := fit(core.NewRect(0, 0, float64(p.Width), float64(p.Height)), dst.Width(), dst.Height())
	for _, d := range dots {
		token := d.Token
		if token == "" {
			token = palette.Foreground
		}
		faded, err := palette.Fade(token, d.Opacity)
		if err != nil {
			return fmt.Errorf("preview dot (%d,%d): %w", d.X, d.Y, err)
		}
		sx, sy := v.toScreen(d.CX, d.CY)
		dst.Set(sx, sy, markerRune(d.Radius/noisefield.MaxDotRadius), faded)
	}
	return nil
}
