package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/seedart/internal/noisefield"
	"github.com/vovakirdan/seedart/internal/palette"
)

// NoiseField writes one square per field cell, box pixels wide.
func NoiseField(w io.Writer, f noisefield.Field, box int) error {
	if box <= 0 {
		box = 1
	}
	c := newCanvas(w)
	c.startScaled(f.Width*box, f.Height*box, f.Width, f.Height, "noise")
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			fl, err := fill(f.At(x, y))
			if err != nil {
				return fmt.Errorf("noise cell (%d,%d): %w", x, y, err)
			}
			c.Rect(x, y, 1, 1, fl)
		}
	}
	return c.end()
}

// Dots writes the dotted background on a dark ground.
func Dots(w io.Writer, dots []noisefield.Dot, width, height, box int) error {
	if box <= 0 {
		box = 1
	}
	c := newCanvas(w)
	c.startScaled(width*box, height*box, width, height, "dots")
	c.Rect(0, 0, width, height, attr("fill", palette.Background))
	for _, d := range dots {
		token := d.Token
		if token == "" {
			token = "fill-foreground"
		}
		fl, err := fill(token)
		if err != nil {
			return fmt.Errorf("dot (%d,%d): %w", d.X, d.Y, err)
		}
		c.circle(d.CX, d.CY, d.Radius, fl, attr("opacity", num(d.Opacity)))
	}
	return c.end()
}
