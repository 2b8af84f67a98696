package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/lattice"
	"github.com/vovakirdan/seedart/internal/palette"
)

// Card is the member card canvas.
type Card struct {
	Width, Height int
	Size          float64 // lattice edge length
	Inset         float64 // lattice origin distance from the bottom-right corner
}

// DefaultCard is the 5:7 member card.
func DefaultCard() Card {
	return Card{Width: 320, Height: 448, Size: 10, Inset: 50}
}

// Origin is the lattice anchor point on the card.
func (c Card) Origin() lattice.Vec2 {
	return lattice.Vec2{X: float64(c.Width) - c.Inset, Y: float64(c.Height) - c.Inset}
}

// Lattice writes the cubes of l in paint order with a background square
// behind the anchor.
func Lattice(w io.Writer, l lattice.Lattice, card Card) error {
	c := newCanvas(w)
	c.start(card.Width, card.Height, "svg")
	if err := writeLattice(c, l, card); err != nil {
		return err
	}
	return c.end()
}

// CardText is the printed text of a member card.
type CardText struct {
	Name   string // heading, the member's account
	Detail string // small line under the heading
}

// MemberCard writes the full card: background, label and lattice.
func MemberCard(w io.Writer, l lattice.Lattice, card Card, text CardText) error {
	c := newCanvas(w)
	c.start(card.Width, card.Height, "member-card")
	c.Rect(0, 0, card.Width, card.Height, attr("fill", palette.Background), `rx="12"`)
	c.Rect(25, 25, card.Width-50, card.Height-50, `fill="none"`, attr("stroke", palette.Foreground), `rx="4"`)
	if text.Name != "" {
		c.Text(41, 80, text.Name, attr("fill", palette.Foreground), `font-family="monospace"`, `font-size="24"`)
	}
	if text.Detail != "" {
		c.Text(41, 104, text.Detail, attr("fill", palette.Foreground), `font-family="monospace"`, `font-size="12"`, `opacity="0.7"`)
	}
	if err := writeLattice(c, l, card); err != nil {
		return err
	}
	return c.end()
}

func writeLattice(c *canvas, l lattice.Lattice, card Card) error {
	o := card.Origin()
	bg := core.Square(o.X, o.Y, card.Inset)
	c.rectf(bg.X, bg.Y, bg.W, bg.H, attr("fill", palette.Background))

	for _, dir := range lattice.PaintOrder {
		cubes := l.Cubes[dir]
		styles := l.Colors[dir]
		if len(styles) != len(cubes) {
			return fmt.Errorf("lattice %s: %d cubes but %d color sets", dir, len(cubes), len(styles))
		}
		for i, cube := range cubes {
			for f, q := range lattice.Faces(cube) {
				hex, err := palette.Resolve(styles[i][f].Token)
				if err != nil {
					return fmt.Errorf("lattice %s cube %d face %d: %w", dir, i, f, err)
				}
				c.animatedPolygon(q.Points, q.Frames, hex)
			}
		}
	}
	return nil
}
