package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/platform/tui"
	"github.com/vovakirdan/tilerunner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a single run in the terminal, skipping the menu.

Controls:
  Space/Up/W/Enter  - Start, jump (hold for a higher jump)
  Ctrl+S            - Save a screenshot
  Q/Esc/Ctrl+C      - Quit

Examples:
  tilerunner play
  tilerunner play --selector random --seed 7
  tilerunner play --difficulty hard
  tilerunner play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a := mustSetup(true)
	a.openSound()

	sel := a.selector()
	if !registry.Exists(sel) {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown selector %q\n", sel)
		fmt.Fprintln(os.Stderr, "Run 'tilerunner list' to see available selectors.")
		os.Exit(1)
	}

	g, err := a.newGame(sel)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := termSize()
	runErr := tui.Run(g, a.set, flagFPS, width, height)

	// Close store before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
