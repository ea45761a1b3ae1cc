package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/platform/tui"
)

// runMenu shows the selector menu, then plays, and returns to the menu
// after every run.
func runMenu(_ *cobra.Command, _ []string) {
	a := mustSetup(true)
	a.openSound()

	width, height := termSize()
	err := tui.RunSession(a.sessionOptions(), width, height)
	a.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
