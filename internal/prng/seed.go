// Package prng holds the deterministic random sources used by every
// generator. Nothing here touches global state: a source is created from a
// seed, owned by one generator and discarded after the render.
package prng

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Source is a stream of floats in [0, 1).
type Source interface {
	Next() float64
}

// Seed is the four-register seed shared by all generators.
type Seed [4]uint32

// FromInt widens a single integer seed to {n, n, n, n}.
func FromInt(n int64) Seed {
	v := uint32(n)
	return Seed{v, v, v, v}
}

// Seed register bounds accepted by ParseSeed.
const (
	MinRegister int64 = math.MinInt32
	MaxRegister int64 = math.MaxUint32
)

// ParseSeed accepts "99" or "1,2,3,4". Each value must lie in
// [MinRegister, MaxRegister]; negative values wrap to uint32.
func ParseSeed(s string) (Seed, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 1 && len(parts) != 4 {
		return Seed{}, fmt.Errorf("seed %q: want 1 or 4 integers, got %d", s, len(parts))
	}

	vals := make([]uint32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Seed{}, fmt.Errorf("seed %q: %w", s, err)
		}
		if n < MinRegister || n > MaxRegister {
			return Seed{}, fmt.Errorf("seed %q: %d is outside [%d, %d]", s, n, MinRegister, MaxRegister)
		}
		vals[i] = uint32(n)
	}

	if len(vals) == 1 {
		return Seed{vals[0], vals[0], vals[0], vals[0]}, nil
	}
	return Seed{vals[0], vals[1], vals[2], vals[3]}, nil
}

// RandomSeed picks a fresh single-integer seed below 1e9.
func RandomSeed(r *rand.Rand) Seed {
	return FromInt(r.Int63n(1_000_000_000))
}

// First returns the first register, used where a generator takes a scalar.
func (s Seed) First() int64 {
	return int64(s[0])
}

// String formats the seed so that ParseSeed round-trips it.
func (s Seed) String() string {
	if s[0] == s[1] && s[1] == s[2] && s[2] == s[3] {
		return strconv.FormatUint(uint64(s[0]), 10)
	}
	return fmt.Sprintf("%d,%d,%d,%d", s[0], s[1], s[2], s[3])
}
