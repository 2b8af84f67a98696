package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/seedart/internal/logo"
	"github.com/vovakirdan/seedart/internal/palette"
)

//go:embed defaults/seedart.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hardcoded configuration. It matches the embedded
// YAML and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Logo: LogoConfig{
			Rows:        8,
			Cols:        8,
			CellSize:    6,
			RowPalettes: palette.RowColors(),
			Exclude:     cellPairs(logo.NotchExclusions()),
		},
		Contour: ContourConfig{
			Size:   48,
			Growth: 6,
			Edges:  6,
			Colors: palette.Best(),
		},
		Card: CardConfig{
			Width:  320,
			Height: 448,
			Size:   10,
			Inset:  50,
			Tokens: palette.TextTokens(),
		},
		Noise: NoiseConfig{
			Width:       100,
			Height:      100,
			XSmoothness: 30,
			YSmoothness: 80,
			Palette:     palette.FillTokens(),
			Box:         3,
			Backend:     BackendSimplex,
		},
		Storage: StorageConfig{Path: "~/.seedart/seedart.db"},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2323,
			HostKeyPath: ".ssh/seedart_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
