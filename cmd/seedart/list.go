package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available artworks",
	Long:  `Shows a list of all artworks registered in seedart.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	artworks := registry.List()

	if len(artworks) == 0 {
		fmt.Println("No artworks available.")
		return
	}

	fmt.Println("Available artworks:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, a := range artworks {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, a := range artworks {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'seedart render <id> --seed <n>' to render one.")
}
