package prng

import "math/bits"

const twoPow32 = 4294967296.0

// Stream is the sfc32 generator. All register arithmetic is uint32 so
// overflow wraps exactly like the reference implementation.
type Stream struct {
	a, b, c, d uint32
}

// NewStream creates a stream positioned at the start of the seed's sequence.
func NewStream(seed Seed) *Stream {
	return &Stream{a: seed[0], b: seed[1], c: seed[2], d: seed[3]}
}

// Next advances the registers one step and returns a float in [0, 1).
func (s *Stream) Next() float64 {
	t := s.a + s.b + s.d
	s.d++
	s.a = s.b ^ (s.b >> 9)
	s.b = s.c + (s.c << 3)
	s.c = bits.RotateLeft32(s.c, 21) + t
	return float64(t) / twoPow32
}
