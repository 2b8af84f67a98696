// Package noisefield samples 2D noise on a grid and buckets it into palette
// colors. The colorer is stateless; reproducibility comes from seeding the
// noise function.
package noisefield

import (
	"math"

	"github.com/ojrac/opensimplex-go"
	"github.com/vovakirdan/seedart/internal/prng"
)

// NoiseFunc returns a value in [-1, 1] for a point in noise space.
type NoiseFunc func(x, y float64) float64

var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

// Gradient directions, (x, y) pairs, indexed by perm%12.
var grad2 = [24]float64{
	1, 1, -1, 1, 1, -1, -1, -1,
	1, 0, -1, 0, 1, 0, -1, 0,
	0, 1, 0, -1, 0, 1, 0, -1,
}

type simplex struct {
	perm  [512]uint8
	gradX [512]float64
	gradY [512]float64
}

// NewSimplex2D builds 2D simplex noise whose permutation table is shuffled
// by rnd. It consumes exactly 255 draws. Seeded with Alea it matches the
// widely used JavaScript simplex-noise package value for value.
func NewSimplex2D(rnd prng.Source) NoiseFunc {
	s := &simplex{}
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 0; i < 255; i++ {
		r := i + int(rnd.Next()*float64(256-i))
		p[i], p[r] = p[r], p[i]
	}
	for i := range s.perm {
		s.perm[i] = p[i&255]
		g := int(s.perm[i]%12) * 2
		s.gradX[i] = grad2[g]
		s.gradY[i] = grad2[g+1]
	}
	return s.noise
}

func (s *simplex) noise(x, y float64) float64 {
	var n0, n1, n2 float64

	sk := (x + y) * f2
	i := int(math.Floor(x + sk))
	j := int(math.Floor(y + sk))
	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255

	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		gi := ii + int(s.perm[jj])
		t0 *= t0
		n0 = t0 * t0 * (s.gradX[gi]*x0 + s.gradY[gi]*y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		gi := ii + i1 + int(s.perm[jj+j1])
		t1 *= t1
		n1 = t1 * t1 * (s.gradX[gi]*x1 + s.gradY[gi]*y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0 {
		gi := ii + 1 + int(s.perm[jj+1])
		t2 *= t2
		n2 = t2 * t2 * (s.gradX[gi]*x2 + s.gradY[gi]*y2)
	}

	// Scale to [-1, 1]
	return 70.0 * (n0 + n1 + n2)
}

// NewOpenSimplex is an alternative backend using OpenSimplex noise. Its
// output differs from NewSimplex2D for the same seed.
func NewOpenSimplex(seed int64) NoiseFunc {
	n := opensimplex.New(seed)
	return n.Eval2
}

// FromSeed builds the default noise for a seed: simplex noise shuffled by
// an Alea generator hashed from the seed registers.
func FromSeed(seed prng.Seed) NoiseFunc {
	return NewSimplex2D(prng.AleaFromSeed(seed))
}
