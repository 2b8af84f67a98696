// Package palette maps random draws onto ordered color lists and resolves
// the brand's color tokens to concrete RGB values.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyPalette is returned by generators handed a palette with no entries.
var ErrEmptyPalette = errors.New("palette is empty")

// Index maps v in [0, 1) to an index in [0, n-1]. A draw of exactly 1.0
// (or anything larger) clamps to the last entry; NaN and negatives map to 0.
// n <= 0 is treated as a one-entry palette.
func Index(v float64, n int) int {
	if n <= 0 {
		n = 1
	}
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	i := int(math.Floor(v * float64(n)))
	if i >= n {
		return n - 1
	}
	return i
}

// Pick returns the entry of p selected by v. p must not be empty.
func Pick[T any](v float64, p []T) T {
	return p[Index(v, len(p))]
}

// Brand color names.
const (
	Blue   = "blue"
	Green  = "green"
	Yellow = "yellow"
	Lime   = "lime"
	Orange = "orange"
	Purple = "purple"
	Pink   = "pink"
)

// Hex values of the brand colors.
var brandHex = map[string]string{
	Blue:   "#3479F6",
	Green:  "#34BF96",
	Yellow: "#EFBD2D",
	Lime:   "#97DC42",
	Orange: "#F27D47",
	Purple: "#5948F6",
	Pink:   "#F460CF",
}

// Background is the dark card background used behind lattices and dots.
const Background = "#0A0A0F"

// Foreground is the light ink for noise dots.
const Foreground = "#F5F5F7"

// Colors is the global brand palette in canonical order.
func Colors() []string {
	return []string{
		brandHex[Blue], brandHex[Green], brandHex[Yellow], brandHex[Lime],
		brandHex[Orange], brandHex[Purple], brandHex[Pink],
	}
}

// Best is the ordering used by the layered blob and circle-line logos.
func Best() []string {
	return []string{
		brandHex[Yellow], brandHex[Orange], brandHex[Pink], brandHex[Purple],
		brandHex[Blue], brandHex[Green], brandHex[Lime],
	}
}

// RowColors is the warm-to-cool row table of the grid logo, top row first.
func RowColors() [][]string {
	P, B, G := brandHex[Purple], brandHex[Blue], brandHex[Green]
	Y, L, O, K := brandHex[Yellow], brandHex[Lime], brandHex[Orange], brandHex[Pink]
	return [][]string{
		{P, P, B},
		{P, B, B, G},
		{P, B, G},
		{Y, B, G, L},
		{Y, O, G, L},
		{Y, O, K, L},
		{Y, O, K, O, K},
		{O, K},
	}
}

// TextTokens is the seven-entry token palette of the cube lattice faces.
func TextTokens() []string {
	return []string{
		"text-pink", "text-orange", "text-yellow", "text-lime",
		"text-green", "text-blue", "text-purple",
	}
}

// FillTokens is the three-entry palette of the noise background.
func FillTokens() []string {
	return []string{"fill-purple", "fill-blue", "fill-green"}
}

// Resolve turns a token into a hex string. Accepted forms are "#rrggbb",
// a bare brand name, or a "fill-"/"text-"/"stroke-" prefixed brand name.
func Resolve(token string) (string, error) {
	if strings.HasPrefix(token, "#") {
		c, err := colorful.Hex(token)
		if err != nil {
			return "", fmt.Errorf("palette: bad hex %q: %w", token, err)
		}
		return strings.ToUpper(c.Hex()), nil
	}

	name := token
	for _, prefix := range []string{"fill-", "text-", "stroke-"} {
		name = strings.TrimPrefix(name, prefix)
	}
	switch name {
	case "background":
		return Background, nil
	case "foreground", "current":
		return Foreground, nil
	}
	if hex, ok := brandHex[name]; ok {
		return hex, nil
	}
	return "", fmt.Errorf("palette: unknown color token %q", token)
}

// RGB resolves a token to a colorful.Color.
func RGB(token string) (colorful.Color, error) {
	hex, err := Resolve(token)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Hex(hex)
}

// Fade blends a token toward the background by t in [0, 1], which is how
// opacity is approximated on surfaces without alpha (terminals, PNG fills).
func Fade(token string, t float64) (string, error) {
	c, err := RGB(token)
	if err != nil {
		return "", err
	}
	bg, _ := colorful.Hex(Background)
	return strings.ToUpper(bg.BlendRgb(c, clamp01(t)).Clamped().Hex()), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
