package contour

import (
	"fmt"
	"math"

	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

// Ring is one concentric layer of a circle-line logo.
type Ring struct {
	Color        string
	Points       []Point
	MarkerRadius float64
}

// Layer is one colored blob of a blob logo.
type Layer struct {
	Color string
	Shape Shape
}

// RingEdges is the edge count of ring i: ceil(6 / 0.67^i).
func RingEdges(i int) int {
	return int(math.Ceil(6 / math.Pow(0.67, float64(i))))
}

// CircleLine builds one ring per color. colors[0] is the innermost ring and
// has the fewest edges; each later ring is larger and denser. The result is
// in draw order, outermost first, and markers grow toward the center.
// Ring i is seeded with seed+i.
func CircleLine(size float64, colors []string, seed int64) ([]Ring, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("circle-line: %w", palette.ErrEmptyPalette)
	}

	n := len(colors)
	rings := make([]Ring, n)
	for i, color := range colors {
		pts, err := Points(ringOptions(size, n, i), prng.NewMWC(seed+int64(i)))
		if err != nil {
			return nil, fmt.Errorf("circle-line ring %d: %w", i, err)
		}
		rings[i] = Ring{Color: color, Points: pts}
	}

	out := make([]Ring, n)
	for i := range rings {
		r := rings[n-1-i]
		r.MarkerRadius = 1.8 * math.Pow(0.8, float64(n-1-i)/1.3)
		out[i] = r
	}
	return out, nil
}

// BlobLogo stacks one blob per color, each growing rounder than the last.
// Layer i uses growth 1+0.85i, 8 edges and seed+i, in palette order.
func BlobLogo(size float64, colors []string, seed int64) ([]Layer, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("blob logo: %w", palette.ErrEmptyPalette)
	}

	layers := make([]Layer, 0, len(colors))
	for i, color := range colors {
		o := layerOptions(size, i)
		s := seed + int64(i)
		o.Seed = &s
		shape, err := Blob(o, nil)
		if err != nil {
			return nil, fmt.Errorf("blob logo layer %d: %w", i, err)
		}
		layers = append(layers, Layer{Color: color, Shape: shape})
	}
	return layers, nil
}

func ringOptions(size float64, n, i int) Options {
	return Options{
		Size:   size,
		Outer:  (size - 20) * math.Pow(0.8, float64(n-i)),
		Growth: 8,
		Edges:  RingEdges(i),
	}
}

func layerOptions(size float64, i int) Options {
	return Options{Size: size, Growth: 1 + float64(i)*0.85, Edges: 8}
}

// ValidateLayered checks that a circle-line and a blob logo of the given
// size and color count keep every outline free of collapsed points.
func ValidateLayered(size float64, colors int) error {
	for i := 0; i < colors; i++ {
		if err := ringOptions(size, colors, i).Validate(); err != nil {
			return fmt.Errorf("circle-line ring %d: %w", i, err)
		}
		if err := layerOptions(size, i).Validate(); err != nil {
			return fmt.Errorf("blob logo layer %d: %w", i, err)
		}
	}
	return nil
}
