package prng

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const twoPowMinus32 = 2.3283064365386963e-10

// Alea is Johannes Baagøe's Alea generator. It seeds the simplex noise
// field; the state is three fractional registers plus an integer carry.
type Alea struct {
	s0, s1, s2, c float64
}

// NewAlea hashes every seed string into the registers. Seeds are hashed as
// UTF-16 code units so non-ASCII seeds match other implementations.
func NewAlea(seeds ...string) *Alea {
	m := newMash()
	a := &Alea{c: 1}
	a.s0 = m.hash(" ")
	a.s1 = m.hash(" ")
	a.s2 = m.hash(" ")

	for _, s := range seeds {
		a.s0 -= m.hash(s)
		if a.s0 < 0 {
			a.s0++
		}
		a.s1 -= m.hash(s)
		if a.s1 < 0 {
			a.s1++
		}
		a.s2 -= m.hash(s)
		if a.s2 < 0 {
			a.s2++
		}
	}
	return a
}

// AleaFromFloat seeds Alea with a number rendered the way a JavaScript
// runtime would stringify it, so 99 hashes "99" and 0.5 hashes "0.5".
func AleaFromFloat(v float64) *Alea {
	return NewAlea(NumberString(v))
}

// AleaFromSeed hashes the seed's register list, "a,b,c,d".
func AleaFromSeed(s Seed) *Alea {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return NewAlea(strings.Join(parts, ","))
}

// Next returns a float in [0, 1).
func (a *Alea) Next() float64 {
	// Explicit conversions stop the compiler from fusing into an FMA,
	// which would change the low bits of the sequence.
	t := float64(2091639*a.s0) + float64(a.c*twoPowMinus32)
	a.s0 = a.s1
	a.s1 = a.s2
	a.c = math.Trunc(t)
	a.s2 = t - a.c
	return a.s2
}

type mash struct {
	n float64
}

func newMash() *mash {
	return &mash{n: 0xefc8249d}
}

func (m *mash) hash(data string) float64 {
	for _, cu := range utf16.Encode([]rune(data)) {
		m.n += float64(cu)
		h := 0.02519603282416938 * m.n
		m.n = toUint32(h)
		h -= m.n
		h *= m.n
		m.n = toUint32(h)
		h -= m.n
		m.n += float64(h * twoPow32)
	}
	return toUint32(m.n) * twoPowMinus32
}

// toUint32 is ToUint32 for non-negative finite inputs, returned as a float.
func toUint32(x float64) float64 {
	return float64(uint32(uint64(math.Floor(x))))
}

// NumberString formats v like Number.prototype.toString: shortest
// round-trip digits, plain notation for 1e-6 <= |v| < 1e21.
func NumberString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}
