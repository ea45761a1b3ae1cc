package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List page selectors",
	Long:  `Shows the registered page selectors, which decide the next page of the world.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	selectors := registry.List()

	if len(selectors) == 0 {
		fmt.Println("No selectors available.")
		return
	}

	fmt.Println("Available selectors:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range selectors {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range selectors {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tilerunner play --selector <id>' to use one.")
}
