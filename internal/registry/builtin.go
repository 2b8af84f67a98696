package registry

import (
	"bytes"
	"fmt"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/contour"
	"github.com/vovakirdan/seedart/internal/lattice"
	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/noisefield"
	"github.com/vovakirdan/seedart/internal/palette"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/render"
)

func init() {
	Register("logo", "Grid logo", renderLogo)
	Register("point-logo", "Point logo", renderPointLogo)
	Register("blob", "Blob", renderBlob)
	Register("blob-logo", "Layered blob logo", renderBlobLogo)
	Register("circle-line", "Circle-line logo", renderCircleLine)
	Register("lattice", "Cube lattice", renderLattice)
	Register("member-card", "Member card", renderMemberCard)
	Register("noise", "Noise field", renderNoise)
	Register("dots", "Dot background", renderDots)
}

func renderLogo(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	g, err := logo.Generate(seed, cfg.LogoConfig())
	if err != nil {
		return nil, err
	}
	return render.FaviconSVG(g)
}

func renderPointLogo(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	lc := logo.PointConfig()
	lc.CellSize = cfg.Logo.CellSize
	g, err := logo.Generate(seed, lc)
	if err != nil {
		return nil, err
	}
	return render.FaviconSVG(g)
}

func renderBlob(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	if len(cfg.Contour.Colors) == 0 {
		return nil, fmt.Errorf("blob: %w", palette.ErrEmptyPalette)
	}
	s := seed.First()
	shape, err := contour.Blob(contour.Options{
		Size:   cfg.Contour.Size,
		Growth: cfg.Contour.Growth,
		Edges:  cfg.Contour.Edges,
		Seed:   &s,
	}, nil)
	if err != nil {
		return nil, err
	}
	token := palette.Pick(prng.NewStream(seed).Next(), cfg.Contour.Colors)
	return svgBytes(func(b *bytes.Buffer) error {
		return render.Blob(b, shape, int(cfg.Contour.Size), token)
	})
}

func renderBlobLogo(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	layers, err := contour.BlobLogo(cfg.Contour.Size, cfg.Contour.Colors, seed.First())
	if err != nil {
		return nil, err
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.BlobLogo(b, layers, int(cfg.Contour.Size))
	})
}

func renderCircleLine(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	rings, err := contour.CircleLine(cfg.Contour.Size, cfg.Contour.Colors, seed.First())
	if err != nil {
		return nil, err
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.CircleLine(b, rings, int(cfg.Contour.Size))
	})
}

func memberLattice(seed prng.Seed, cfg *config.Config) (lattice.Lattice, render.Card, error) {
	card := cfg.RenderCard()
	l, err := lattice.Generate(card.Origin(), card.Size, prng.NewStream(seed), cfg.Card.Tokens)
	return l, card, err
}

func renderLattice(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	l, card, err := memberLattice(seed, cfg)
	if err != nil {
		return nil, err
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.Lattice(b, l, card)
	})
}

func renderMemberCard(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	return memberCard(seed, cfg, "")
}

// RenderMemberCard renders the member card of account. The card carries the
// account name with the seed underneath; an empty account prints the seed
// alone. A nil cfg uses config.Default().
func RenderMemberCard(seed prng.Seed, cfg *config.Config, account string) ([]byte, error) {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	out, err := memberCard(seed, cfg, account)
	if err != nil {
		return nil, fmt.Errorf("registry: member-card: %w", err)
	}
	return out, nil
}

func memberCard(seed prng.Seed, cfg *config.Config, account string) ([]byte, error) {
	l, card, err := memberLattice(seed, cfg)
	if err != nil {
		return nil, err
	}
	text := render.CardText{Name: "#" + seed.String()}
	if account != "" {
		text = render.CardText{Name: account, Detail: text.Name}
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.MemberCard(b, l, card, text)
	})
}

// Noise selects the configured noise backend for seed.
func Noise(seed prng.Seed, cfg *config.Config) noisefield.NoiseFunc {
	if cfg.Noise.Backend == config.BackendOpenSimplex {
		return noisefield.NewOpenSimplex(seed.First())
	}
	return noisefield.FromSeed(seed)
}

func renderNoise(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	f, err := noisefield.ColorField(Noise(seed, cfg), cfg.NoiseParams(), cfg.Noise.Palette)
	if err != nil {
		return nil, err
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.NoiseField(b, f, cfg.Noise.Box)
	})
}

func renderDots(seed prng.Seed, cfg *config.Config) ([]byte, error) {
	p := cfg.NoiseParams()
	dots, err := noisefield.DotField(Noise(seed, cfg), p, cfg.Noise.Palette)
	if err != nil {
		return nil, err
	}
	return svgBytes(func(b *bytes.Buffer) error {
		return render.Dots(b, dots, p.Width, p.Height, cfg.Noise.Box)
	})
}

func svgBytes(write func(*bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
