package contour

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
)

func seedPtr(v int64) *int64 { return &v }

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestBlobGolden(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		points []Point
		path   string
	}{
		{
			name:   "size 400",
			opts:   Options{Size: 400, Growth: 6, Edges: 6, Seed: seedPtr(42)},
			points: pts(323, 200, 290, 355, 112, 352, 32, 200, 127, 74, 264, 89),
			path:   "M306.5,277.5Q290,355,201,353.5Q112,352,72,276Q32,200,79.5,137Q127,74,195.5,81.5Q264,89,293.5,144.5Q323,200,306.5,277.5Z",
		},
		{
			name:   "favicon size",
			opts:   Options{Size: 48, Growth: 1, Edges: 8, Seed: seedPtr(7)},
			points: pts(43, 24, 26, 26, 24, 29, 11, 37, 10, 24, 12, 12, 24, 17, 37, 11),
			path:   "M34.5,25Q26,26,25,27.5Q24,29,17.5,33Q11,37,10.5,30.5Q10,24,11,18Q12,12,18,14.5Q24,17,30.5,14Q37,11,40,17.5Q43,24,34.5,25Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := Blob(tt.opts, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.points, shape.Points)
			assert.Equal(t, tt.path, shape.Path)
			assert.Equal(t, *tt.opts.Seed, shape.Seed)
		})
	}
}

func TestBlobUnseededUsesModuli(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		shape, err := Blob(Options{Size: 100, Growth: 4, Edges: 6}, r)
		require.NoError(t, err)
		if shape.Seed < 0 || shape.Seed >= 999999 {
			t.Fatalf("unseeded blob seed out of range: %d", shape.Seed)
		}

		again, err := Blob(Options{Size: 100, Growth: 4, Edges: 6, Seed: seedPtr(shape.Seed)}, nil)
		require.NoError(t, err)
		assert.Equal(t, shape.Path, again.Path, "reported seed must reproduce the blob")
	}
}

func TestContourClosure(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		for _, edges := range []int{3, 5, 8, 12} {
			p, err := Points(Options{Size: 400, Growth: 6, Edges: edges}, prng.NewMWC(seed))
			require.NoError(t, err)
			require.Len(t, p, edges)
			for i := range p {
				if p[i] == p[(i+1)%len(p)] {
					t.Fatalf("seed %d edges %d: duplicate consecutive point %v", seed, edges, p[i])
				}
			}
		}
	}
}

func TestPointsRejectCollapsingOutlines(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"default blob", Options{Size: 48, Growth: 6, Edges: 6}, true},
		{"thin blob logo layer", Options{Size: 48, Growth: 1, Edges: 8}, true},
		{"full growth", Options{Size: 48, Growth: 10, Edges: 64}, true},
		{"small and dense", Options{Size: 10, Growth: 6, Edges: 64}, false},
		{"zero growth", Options{Size: 400, Growth: 0, Edges: 6}, false},
		{"inverted band", Options{Size: 400, Growth: 12, Edges: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Points(tt.opts, prng.NewMWC(1))
			if !tt.ok {
				var ve core.ValidationError
				require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
				assert.Equal(t, core.CodeEdges, ve.Code)
				return
			}
			require.NoError(t, err)
			for seed := int64(0); seed < 100; seed++ {
				p, err = Points(tt.opts, prng.NewMWC(seed))
				require.NoError(t, err)
				for i := range p {
					if p[i] == p[(i+1)%len(p)] {
						t.Fatalf("seed %d: duplicate consecutive point %v", seed, p[i])
					}
				}
			}
		})
	}
}

func TestMinGap(t *testing.T) {
	assert.InDelta(t, 2.0, MinGap(2, 10, 6), 1e-12)
	assert.Equal(t, 0.0, MinGap(0, 10, 6))
	assert.Equal(t, 0.0, MinGap(12, 10, 6))
}

func TestValidateLayered(t *testing.T) {
	require.NoError(t, ValidateLayered(48, len(palette.Best())))

	err := ValidateLayered(48, 14)
	var ve core.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, core.CodeEdges, ve.Code)
	assert.Contains(t, err.Error(), "circle-line ring")
}

func TestMagicPointFold(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"in range", 0.5, 2, 10, 6},
		{"at min", 0, 2, 10, 2},
		// growth > 10 inverts the band; the value is shifted, not clamped
		{"above max shifts down", 0.5, 12, 10, 11 - 12},
		{"below min shifts up", -0.5, 2, 10, -2 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, magicPoint(tt.v, tt.min, tt.max), 1e-12)
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(2.5))
	assert.Equal(t, -2.0, roundHalfUp(-2.5))
	assert.Equal(t, 2.0, roundHalfUp(2.4999))
}

func TestSmoothPathShortInput(t *testing.T) {
	assert.Equal(t, "", SmoothPath(nil))
	assert.Equal(t, "", SmoothPath(pts(1, 1)))
}

func TestPointsValidation(t *testing.T) {
	_, err := Points(Options{Size: 10, Edges: 2}, prng.NewMWC(1))
	var ve core.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, core.CodeEdges, ve.Code)

	_, err = Points(Options{Size: 0, Edges: 6}, prng.NewMWC(1))
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, core.CodeSize, ve.Code)
}

func TestRingEdges(t *testing.T) {
	want := []int{6, 9, 14, 20, 30, 45, 67}
	for i, w := range want {
		assert.Equal(t, w, RingEdges(i), "ring %d", i)
	}
}

func TestCircleLineGolden(t *testing.T) {
	rings, err := CircleLine(48, palette.Best(), 7)
	require.NoError(t, err)
	require.Len(t, rings, 7)

	outer := rings[0]
	assert.Equal(t, "#97DC42", outer.Color)
	assert.Len(t, outer.Points, 67)
	assert.Equal(t, pts(44, 24, 43, 26, 42, 27), outer.Points[:3])
	assert.InDelta(t, 0.6426810905975424, outer.MarkerRadius, 1e-15)

	inner := rings[6]
	assert.Equal(t, "#EFBD2D", inner.Color)
	assert.Len(t, inner.Points, 6)
	assert.Equal(t, pts(30, 24, 26, 28, 22, 28), inner.Points[:3])
	assert.InDelta(t, 1.8, inner.MarkerRadius, 1e-15)
}

func TestBlobLogoLayers(t *testing.T) {
	colors := palette.Colors()
	layers, err := BlobLogo(48, colors, 100)
	require.NoError(t, err)
	require.Len(t, layers, len(colors))

	for i, l := range layers {
		assert.Equal(t, colors[i], l.Color)
		assert.Equal(t, int64(100+i), l.Shape.Seed)
		assert.Len(t, l.Shape.Points, 8)
	}

	again, _ := BlobLogo(48, colors, 100)
	assert.Equal(t, layers, again)

	_, err = BlobLogo(48, nil, 1)
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)
}
