// Package render turns generator output into SVG and PNG. Every function
// is a pure function of its input: identical geometry yields identical
// bytes.
package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/vovakirdan/seedart/internal/lattice"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

// canvas wraps an svgo document and remembers the first write error.
// svgo works in integer units, so fractional shapes are written directly
// to the underlying writer in the same element style.
type canvas struct {
	*svg.SVG
	err error
}

type errWriter struct {
	w   io.Writer
	err *error
}

func (e errWriter) Write(p []byte) (int, error) {
	if *e.err != nil {
		return 0, *e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		*e.err = err
	}
	return n, err
}

func newCanvas(w io.Writer) *canvas {
	c := &canvas{}
	c.SVG = svg.New(errWriter{w: w, err: &c.err})
	return c
}

// start opens a document whose viewBox matches its pixel size.
func (c *canvas) start(width, height int, id string) {
	c.startScaled(width, height, width, height, id)
}

// startScaled opens a document drawn in vw×vh units but sized width×height.
func (c *canvas) startScaled(width, height, vw, vh int, id string) {
	c.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, vw, vh), attr("id", id))
}

func (c *canvas) circle(cx, cy, r float64, attrs ...string) {
	fmt.Fprintf(c.Writer, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n", num(cx), num(cy), num(r), strings.Join(attrs, " "))
}

func (c *canvas) rectf(x, y, w, h float64, attrs ...string) {
	fmt.Fprintf(c.Writer, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n", num(x), num(y), num(w), num(h), strings.Join(attrs, " "))
}

// animatedPolygon writes a polygon whose points loop through frames.
func (c *canvas) animatedPolygon(points [4]lattice.Vec2, frames [][4]lattice.Vec2, fill string) {
	fmt.Fprintf(c.Writer, `<polygon points="%s" fill="%s" stroke="%s">`+"\n", quad(points), fill, palette.Background)
	values := make([]string, len(frames))
	for i, f := range frames {
		values[i] = quad(f)
	}
	fmt.Fprintf(c.Writer,
		`<animate attributeName="points" begin="0s" dur="%s" repeatCount="indefinite" values="%s" calcMode="spline" keyTimes="%s" keySplines="%s"/>`+"\n",
		lattice.Duration, strings.Join(values, "; "), lattice.KeyTimes, lattice.KeySplines())
	fmt.Fprintln(c.Writer, `</polygon>`)
}

func (c *canvas) end() error {
	c.End()
	return c.err
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func fill(token string) (string, error) {
	hex, err := palette.Resolve(token)
	if err != nil {
		return "", err
	}
	return attr("fill", hex), nil
}

func quad(q [4]lattice.Vec2) string {
	parts := make([]string, len(q))
	for i, v := range q {
		parts[i] = num(v.X) + "," + num(v.Y)
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	return prng.NumberString(v)
}
