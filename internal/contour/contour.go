// Package contour builds organic closed outlines by sampling a radius per
// angular slice. Contours use the MWC generator, never the sfc32 stream.
package contour

import (
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/prng"
)

// SeedModuli are the candidate upper bounds for an unseeded contour.
var SeedModuli = []int64{99, 999, 9999, 99999, 999999}

// Point is an integer canvas coordinate.
type Point struct {
	X, Y float64
}

// Options configures one contour.
type Options struct {
	Size   float64 // canvas side; the origin is (Size/2, Size/2)
	Outer  float64 // outer radius, Size/2 when zero
	Growth float64 // inner radius is Growth*Outer/10
	Edges  int
	Seed   *int64 // nil picks a random seed
}

// Shape is a generated contour with its smoothed path.
type Shape struct {
	Points []Point
	Path   string
	Seed   int64
}

// MinSpacing is the smallest gap between neighbouring unrounded points
// that still rounds to distinct integer points.
const MinSpacing = math.Sqrt2

// Validate reports options whose outline could collapse neighbouring points
// once they are rounded to the integer grid.
func (o Options) Validate() error {
	if o.Edges < 3 {
		return core.Invalid(core.CodeEdges, "contour needs at least 3 edges, got %d", o.Edges)
	}
	if o.Size <= 0 {
		return core.Invalid(core.CodeSize, "contour size must be positive, got %v", o.Size)
	}
	inner, outer := o.radii()
	if gap := MinGap(inner, outer, o.Edges); gap < MinSpacing {
		return core.Invalid(core.CodeEdges,
			"contour: %d edges at inner radius %g leave points %.2f apart, need %.2f",
			o.Edges, inner, gap, MinSpacing)
	}
	return nil
}

func (o Options) radii() (inner, outer float64) {
	outer = o.Outer
	if outer == 0 {
		outer = o.Size / 2
	}
	return o.Growth * (outer / 10), outer
}

// MinGap is the shortest distance between neighbouring points when every
// radius lies in [inner, outer]: the chord 2*inner*sin(pi/edges). An
// inverted band folds radii toward zero, so its gap is zero.
func MinGap(inner, outer float64, edges int) float64 {
	if inner <= 0 || inner > outer || edges < 1 {
		return 0
	}
	return 2 * inner * math.Sin(math.Pi/float64(edges))
}

// ResolveSeed returns the explicit seed or draws floor(rand*m) for a
// modulus m picked at random from SeedModuli.
func ResolveSeed(seed *int64, r *rand.Rand) int64 {
	if seed != nil {
		return *seed
	}
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	m := SeedModuli[r.Intn(len(SeedModuli))]
	return int64(math.Floor(r.Float64() * float64(m)))
}

// Points samples one radius per slice from rnd and returns the outline.
func Points(o Options, rnd prng.Source) ([]Point, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	inner, outer := o.radii()
	origin := o.Size / 2

	pts := make([]Point, 0, o.Edges)
	for _, deg := range divide(o.Edges) {
		r := magicPoint(rnd.Next(), inner, outer)
		pts = append(pts, polar(origin, r, deg))
	}
	return pts, nil
}

// Blob generates a smoothed contour. An unseeded blob draws its seed from
// r, or from the global source when r is nil.
func Blob(o Options, r *rand.Rand) (Shape, error) {
	seed := ResolveSeed(o.Seed, r)

	pts, err := Points(o, prng.NewMWC(seed))
	if err != nil {
		return Shape{}, err
	}
	return Shape{Points: pts, Path: SmoothPath(pts), Seed: seed}, nil
}

// magicPoint maps v onto [min, max]. Out-of-range radii are shifted by min
// rather than clamped; existing seeds depend on that exact fold.
//
// Products are wrapped in float64() so they are never fused into an FMA;
// a fused rounding can move a point across a .5 boundary.
func magicPoint(v, min, max float64) float64 {
	r := min + float64(v*(max-min))
	if r > max {
		r -= min
	} else if r < min {
		r += min
	}
	return r
}

func divide(count int) []float64 {
	step := 360 / float64(count)
	out := make([]float64, count)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

func polar(origin, radius, degree float64) Point {
	rad := degree * (math.Pi / 180.0)
	return Point{
		X: roundHalfUp(origin + float64(radius*math.Cos(rad))),
		Y: roundHalfUp(origin + float64(radius*math.Sin(rad))),
	}
}

// roundHalfUp rounds .5 toward +Inf, unlike math.Round.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// SmoothPath joins successive midpoints with quadratic curves through each
// point, producing a closed SVG path.
func SmoothPath(pts []Point) string {
	n := len(pts)
	if n < 2 {
		return ""
	}

	var sb strings.Builder
	mid := midpoint(pts[0], pts[1])
	sb.WriteString("M" + num(mid.X) + "," + num(mid.Y))
	for i := 0; i < n; i++ {
		p1 := pts[(i+1)%n]
		p2 := pts[(i+2)%n]
		mid = midpoint(p1, p2)
		sb.WriteString("Q" + num(p1.X) + "," + num(p1.Y) + "," + num(mid.X) + "," + num(mid.Y))
	}
	sb.WriteString("Z")
	return sb.String()
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func num(v float64) string {
	return prng.NumberString(v)
}
