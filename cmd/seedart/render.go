package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/registry"
)

var (
	flagOutput string
	flagRecord bool
)

var renderCmd = &cobra.Command{
	Use:   "render <artwork>",
	Short: "Render an artwork as SVG",
	Long: `Render the artwork for a seed and write the SVG document to a file
or stdout. Identical seeds and configs produce identical bytes.

Examples:
  seedart render logo --seed 99
  seedart render member-card --seed 1,2,3,4 -o card.svg --record`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the render in the history database")
}

func runRender(cmd *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		fail("unknown artwork %q, run 'seedart list' to see available artworks", id)
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	seed := seedFromFlag()

	out, err := registry.Render(id, seed, cfg)
	if err != nil {
		fail("%v", err)
	}

	if err := writeOutput(flagOutput, out); err != nil {
		fail("%v", err)
	}
	logger.Debug("rendered", "artwork", id, "seed", seed.String(), "bytes", len(out))

	if flagRecord {
		store := openStore(cfg, logger)
		if store == nil {
			return
		}
		defer store.Close()
		renderID, err := store.RecordRender(id, seed, len(out))
		if err != nil {
			logger.Warn("could not record render", "error", err)
			return
		}
		logger.Info("recorded render", "id", renderID, "artwork", id, "seed", seed.String())
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
