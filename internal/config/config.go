// Package config provides YAML-based configuration for seedart: brand
// palettes, generator parameters, storage and the SSH preview server.
package config

import "time"

// Config is the root configuration document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Logo    LogoConfig    `yaml:"logo"`
	Contour ContourConfig `yaml:"contour"`
	Card    CardConfig    `yaml:"card"`
	Noise   NoiseConfig   `yaml:"noise"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LogoConfig defines the grid logo.
type LogoConfig struct {
	Rows         int        `yaml:"rows"`
	Cols         int        `yaml:"cols"`
	CellSize     int        `yaml:"cell_size"`
	RowPalettes  [][]string `yaml:"row_palettes"`
	Palette      []string   `yaml:"palette"`
	Exclude      [][2]int   `yaml:"exclude"` // [col, row] pairs
	DrawExcluded bool       `yaml:"draw_excluded"`
}

// ContourConfig defines the blob and circle-line logos.
type ContourConfig struct {
	Size   float64  `yaml:"size"`
	Growth float64  `yaml:"growth"`
	Edges  int      `yaml:"edges"`
	Colors []string `yaml:"colors"`
}

// CardConfig defines the member card and its cube lattice.
type CardConfig struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Size   float64  `yaml:"size"`  // lattice edge length
	Inset  float64  `yaml:"inset"` // origin offset from the bottom-right corner
	Tokens []string `yaml:"tokens"`
}

// NoiseConfig defines the noise background.
type NoiseConfig struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	XSmoothness float64  `yaml:"x_smoothness"`
	YSmoothness float64  `yaml:"y_smoothness"`
	Palette     []string `yaml:"palette"`
	Box         int      `yaml:"box"`     // output pixels per cell
	Backend     string   `yaml:"backend"` // simplex or opensimplex
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH preview server.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Noise backends.
const (
	BackendSimplex     = "simplex"
	BackendOpenSimplex = "opensimplex"
)
