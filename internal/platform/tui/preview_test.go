package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/lattice"
	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/registry"
)

func TestPreviewEveryArtwork(t *testing.T) {
	cfg := config.Default()
	seed := prng.FromInt(99)

	for _, a := range registry.List() {
		t.Run(a.ID, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			if err := Preview(s, a.ID, seed, &cfg); err != nil {
				t.Fatalf("Preview failed: %v", err)
			}
			colored := 0
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if s.Get(x, y).Token != "" {
						colored++
					}
				}
			}
			if colored == 0 {
				t.Error("preview drew nothing")
			}
		})
	}
}

func TestPreviewUnknownArtwork(t *testing.T) {
	cfg := config.Default()
	if err := Preview(core.NewScreen(10, 10), "nope", prng.FromInt(1), &cfg); err == nil {
		t.Error("expected error for unknown artwork")
	}
}

func TestPreviewEmptyScreen(t *testing.T) {
	cfg := config.Default()
	if err := Preview(core.NewScreen(0, 0), "logo", prng.FromInt(1), &cfg); err != nil {
		t.Errorf("empty screen should be a no-op, got %v", err)
	}
}

func TestPreviewLogoMatchesGrid(t *testing.T) {
	cfg := config.Default()
	seed := prng.FromInt(99)
	g, err := logo.Generate(seed, cfg.LogoConfig())
	if err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(20, 10)
	if err := Preview(s, "logo", seed, &cfg); err != nil {
		t.Fatal(err)
	}

	offX, offY := (20-2*g.Cols)/2, (10-g.Rows)/2
	for _, c := range g.Cells {
		left := s.Get(offX+2*c.Col, offY+c.Row)
		right := s.Get(offX+2*c.Col+1, offY+c.Row)
		if c.Empty {
			if left.Token != "" {
				t.Errorf("cell (%d,%d) should be empty, got %q", c.Row, c.Col, left.Token)
			}
			continue
		}
		if left.Token != c.Token || right.Token != c.Token {
			t.Errorf("cell (%d,%d) = %q/%q, want %q", c.Row, c.Col, left.Token, right.Token, c.Token)
		}
		if left.Rune != blockRune {
			t.Errorf("cell (%d,%d) rune = %q", c.Row, c.Col, left.Rune)
		}
	}
}

func TestFillPolygonCoverage(t *testing.T) {
	// One canvas unit is two columns by one row, and canvas (-2,-2) is cell (0,0).
	v := fit(core.NewRect(-2, -2, 8, 8), 16, 8)
	square := []lattice.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	tests := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"center", 2, 2, true},
		{"near corner", 0.1, 3.9, true},
		{"right of square", 5, 2, false},
		{"above and left", -1, -1, false},
		{"below", 2, 4.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(16, 8)
			fillPolygon(s, v, square, "fill-purple")
			sx, sy := v.toScreen(tt.x, tt.y)
			got := s.Get(sx, sy).Token != ""
			if got != tt.inside {
				t.Errorf("cell for (%v,%v) painted = %v, want %v", tt.x, tt.y, got, tt.inside)
			}
		})
	}
}

func TestFillPolygonPartialCells(t *testing.T) {
	v := fit(core.NewRect(-2, -2, 8, 8), 16, 8)
	tests := []struct {
		name   string
		right  float64
		inside bool
	}{
		// Edge cell 12 spans canvas x [4, 4.5).
		{"40 percent covered", 4.2, false},
		{"60 percent covered", 4.3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := []lattice.Vec2{{X: 0, Y: 0}, {X: tt.right, Y: 0}, {X: tt.right, Y: 4}, {X: 0, Y: 4}}
			s := core.NewScreen(16, 8)
			fillPolygon(s, v, poly, "fill-purple")
			got := s.Get(12, 3).Token != ""
			if got != tt.inside {
				t.Errorf("edge cell painted = %v, want %v", got, tt.inside)
			}
		})
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	v := fit(core.NewRect(0, 0, 4, 4), 8, 4)
	s := core.NewScreen(8, 4)
	fillPolygon(s, v, []lattice.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}}, "fill-purple")
	if got := s.String(); strings.TrimSpace(got) != "" {
		t.Errorf("two-point polygon painted cells:\n%s", got)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := fit(core.NewRect(0, 0, 100, 100), 80, 24)
	for _, p := range [][2]int{{40, 12}, {30, 5}, {50, 20}} {
		x, y := v.toCanvas(p[0], p[1])
		sx, sy := v.toScreen(x, y)
		if sx != p[0] || sy != p[1] {
			t.Errorf("round trip of %v gave (%d,%d)", p, sx, sy)
		}
	}
}
