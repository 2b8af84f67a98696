package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seedart/internal/core"
	"github.com/vovakirdan/seedart/internal/platform/tui"
	"github.com/vovakirdan/seedart/internal/registry"
)

var previewCmd = &cobra.Command{
	Use:   "preview <artwork>",
	Short: "Print a colored terminal preview of an artwork",
	Long: `Draw a one-shot approximation of the artwork sized to the terminal.

Examples:
  seedart preview logo --seed 99
  seedart preview noise`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func runPreview(_ *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		fail("unknown artwork %q, run 'seedart list' to see available artworks", id)
	}

	cfg := loadConfig()
	seed := seedFromFlag()

	width, height := terminalSize()
	screen := core.NewScreen(width, max(height-2, 1)) // Leave room for the caption and prompt
	if err := tui.Preview(screen, id, seed, cfg); err != nil {
		fail("%v", err)
	}

	fmt.Println(tui.NewScreenRenderer().Render(screen))
	fmt.Printf("%s  seed %s\n", id, seed)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
