package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/platform/tui"
	"github.com/vovakirdan/seedart/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent renders",
	Long: `Display the most recent recorded renders.

Examples:
  seedart history
  seedart history --limit 50
  seedart history --tui`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of renders to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Open the interactive history table")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if flagHistoryTUI {
		width, height := terminalSize()
		if err := tui.RunHistory(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	renders, err := store.RecentRenders(flagHistoryLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Recent renders")
	fmt.Println()

	if len(renders) == 0 {
		fmt.Println("No renders recorded yet.")
		fmt.Println()
		fmt.Println("Run 'seedart render <id> --record' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-12s  %-24s  %8s  %s\n", "ID", "Artwork", "Seed", "Bytes", "Date")
	fmt.Printf("  %-36s  %-12s  %-24s  %8s  %s\n", "--", "-------", "----", "-----", "----")
	for _, r := range renders {
		fmt.Printf("  %-36s  %-12s  %-24s  %8d  %s\n",
			r.ID, r.Artwork, r.Seed, r.Bytes, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// mustOpenStore opens the database or exits.
func mustOpenStore(cfg *config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
