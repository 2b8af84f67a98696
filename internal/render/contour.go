package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/seedart/internal/contour"
)

// BlobLogo writes stacked blobs blended with mix-blend-mode screen.
func BlobLogo(w io.Writer, layers []contour.Layer, size int) error {
	c := newCanvas(w)
	c.start(size, size, LogoID)
	c.Group(`style="isolation:isolate"`)
	for i, l := range layers {
		f, err := fill(l.Color)
		if err != nil {
			return fmt.Errorf("blob layer %d: %w", i, err)
		}
		c.Path(l.Shape.Path, f, `style="mix-blend-mode:screen"`)
	}
	c.Gend()
	return c.end()
}

// Blob writes a single blob filled with token.
func Blob(w io.Writer, s contour.Shape, size int, token string) error {
	f, err := fill(token)
	if err != nil {
		return err
	}
	c := newCanvas(w)
	c.start(size, size, "blob")
	c.Path(s.Path, f)
	return c.end()
}

// CircleLine writes every ring point as a dot sized by its ring.
func CircleLine(w io.Writer, rings []contour.Ring, size int) error {
	c := newCanvas(w)
	c.start(size, size, LogoID)
	for i, ring := range rings {
		f, err := fill(ring.Color)
		if err != nil {
			return fmt.Errorf("ring %d: %w", i, err)
		}
		for _, p := range ring.Points {
			c.circle(p.X, p.Y, ring.MarkerRadius, f)
		}
	}
	return c.end()
}
