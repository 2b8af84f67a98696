// seedart renders the deterministic brand artworks: grid logos, blobs,
// circle-line rings, cube lattices and noise backgrounds.
//
// Usage:
//
//	seedart list                  - List available artworks
//	seedart render <artwork>      - Write an artwork as SVG
//	seedart favicon               - Export the grid logo favicon
//	seedart preview <artwork>     - Print a terminal preview
//	seedart browse                - Interactive seed browser
//	seedart serve                 - Start SSH server for member cards
//	seedart member ...            - Manage per-account member seeds
//	seedart history               - Show recent renders
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.seedart, ./configs)
//	--seed <value>    - Seed, "99" or "1,2,3,4" (default: random)
//	--db <path>       - Database path (default from config)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seedart",
	Short: "seedart - deterministic generative brand artwork",
	Long: `seedart turns a seed into brand artwork. The same seed always
produces the same bytes, so a seed is all that needs to be stored.

Available commands:
  list     - Show all available artworks
  render   - Write an artwork as SVG
  favicon  - Export the logo as SVG, data URI or PNG
  preview  - Print a colored terminal preview
  browse   - Step through seeds interactively
  serve    - Start SSH server showing member cards
  member   - Manage member seeds
  history  - Show recent renders

Examples:
  seedart list
  seedart render logo --seed 99 -o logo.svg
  seedart favicon --format uri --seed 99
  seedart browse
  seedart serve`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", `Seed, "99" or "1,2,3,4" (empty = random)`)
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(faviconCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads and validates the configuration, applying flag overrides.
func loadConfig() *config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return &cfg
}

// newLogger creates the command logger at the configured level.
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seedart",
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
			level = log.InfoLevel
		}
		logger.SetLevel(level)
	}
	return logger
}

// seedFromFlag parses --seed, picking a random seed when it is empty.
func seedFromFlag() prng.Seed {
	if flagSeed == "" {
		return prng.RandomSeed(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	seed, err := prng.ParseSeed(flagSeed)
	if err != nil {
		fail("%v", err)
	}
	return seed
}

// openStore opens the database, returning nil with a warning on failure.
func openStore(cfg *config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}
