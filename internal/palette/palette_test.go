package palette

import (
	"math"
	"math/rand"
	"testing"
)

func TestIndexBounds(t *testing.T) {
	maxBelowOne := math.Nextafter(1, 0)

	tests := []struct {
		name string
		v    float64
		n    int
		want int
	}{
		{"zero", 0, 7, 0},
		{"max sub-one", maxBelowOne, 7, 6},
		{"exactly one clamps", 1, 7, 6},
		{"above one clamps", 1.5, 3, 2},
		{"negative", -0.2, 3, 0},
		{"nan", math.NaN(), 3, 0},
		{"mid", 0.5, 4, 2},
		{"empty length treated as one", 0.9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.v, tt.n); got != tt.want {
				t.Errorf("Index(%v, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestIndexAlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		n := 1 + r.Intn(12)
		idx := Index(r.Float64(), n)
		if idx < 0 || idx >= n {
			t.Fatalf("Index out of range: %d for n=%d", idx, n)
		}
	}
}

func TestPick(t *testing.T) {
	p := []string{"a", "b", "c"}
	if got := Pick(0.99, p); got != "c" {
		t.Errorf("Pick(0.99) = %q, want c", got)
	}
	if got := Pick(0.0, p); got != "a" {
		t.Errorf("Pick(0) = %q, want a", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		token   string
		want    string
		wantErr bool
	}{
		{"#5948f6", "#5948F6", false},
		{"text-purple", "#5948F6", false},
		{"fill-green", "#34BF96", false},
		{"pink", "#F460CF", false},
		{"fill-background", Background, false},
		{"text-teal", "", true},
		{"#zzz", "", true},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%q) expected error", tt.token)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.token, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.token, got, tt.want)
		}
	}
}

func TestFadeEndpoints(t *testing.T) {
	full, err := Fade("text-blue", 1)
	if err != nil {
		t.Fatal(err)
	}
	if full != "#3479F6" {
		t.Errorf("Fade(1) = %s, want brand blue", full)
	}
	none, _ := Fade("text-blue", 0)
	if none != Background {
		t.Errorf("Fade(0) = %s, want background", none)
	}
}

func TestTablesShape(t *testing.T) {
	if len(RowColors()) != 8 {
		t.Fatalf("RowColors rows = %d, want 8", len(RowColors()))
	}
	for _, tbl := range [][]string{Colors(), Best(), TextTokens()} {
		if len(tbl) != 7 {
			t.Errorf("palette length %d, want 7", len(tbl))
		}
	}
}
