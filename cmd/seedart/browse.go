package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/platform/tui"
	"github.com/vovakirdan/seedart/internal/registry"
)

var (
	flagBrowseArtwork string
	flagExportDir     string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse seeds and artworks interactively",
	Long: `Open a full-screen browser with a live preview.

Controls:
  left/right   previous/next seed
  tab          next artwork
  r            random seed
  space        slideshow
  s            save SVG and record it in the history
  H            render history
  q            quit`,
	Run: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&flagBrowseArtwork, "artwork", "logo", "Artwork to start on")
	browseCmd.Flags().StringVar(&flagExportDir, "export-dir", "", "Directory for saved SVGs (default: ~/.seedart/exports)")
}

func runBrowse(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagBrowseArtwork) {
		fail("unknown artwork %q, run 'seedart list' to see available artworks", flagBrowseArtwork)
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	err := tui.RunBrowser(tui.BrowserOptions{
		Config:    cfg,
		Store:     store,
		Artwork:   flagBrowseArtwork,
		Seed:      seedFromFlag(),
		ExportDir: flagExportDir,
		Width:     width,
		Height:    height,
	})
	if err != nil {
		logger.Error("browser failed", "error", err)
	}
}
