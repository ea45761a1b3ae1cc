package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/platform/desktop"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a native window and play with sound.

Controls:
  Space/Up/W/Enter  - Start, jump (hold for a higher jump)
  Q/Esc             - Quit

Examples:
  tilerunner window
  tilerunner window --scale 4 --mute`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", desktop.DefaultScale, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	a := mustSetup(false)
	a.openSound()

	g, err := a.newGame(a.selector())
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := desktop.Run(g, a.set, desktop.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Logger:   a.logger,
	})
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
