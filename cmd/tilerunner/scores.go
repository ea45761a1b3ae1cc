package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/platform/tui"
	"github.com/vovakirdan/tilerunner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the high score",
	Long: `Display the best runs and a summary of all recorded runs.

Examples:
  tilerunner scores
  tilerunner scores --limit 20
  tilerunner scores --tui
  tilerunner scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete run history (the high score is kept)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	case flagScoresTUI:
		width, height := termSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	high := highFromFlags(store)

	fmt.Println("Tile Runner - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tilerunner play' to set the first high score!")
		if high > 0 {
			fmt.Printf("High score: %d\n", high)
		}
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-9s  %-8s  %s\n", "Rank", "Score", "Cause", "Selector", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-9s  %-8s  %s\n", "----", "-----", "-----", "--------", "----", "----")

	for i, e := range runs {
		fmt.Printf("  %-4d  %-10d  %-8s  %-9s  %-8s  %s\n",
			i+1, e.Score, e.Cause, e.Selector,
			e.Duration.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("High score: %d\n", high)

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Printf("Runs: %d  Average: %.0f  Played: %s\n",
		stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))

	causes := make([]string, 0, len(stats.Causes))
	for c := range stats.Causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	for _, c := range causes {
		fmt.Printf("  %-8s %d\n", c, stats.Causes[c])
	}
}

// highFromFlags reads the high score from the file store when one is set,
// otherwise from the database.
func highFromFlags(store *storage.Store) uint64 {
	if flagHighscoreFile != "" {
		fs, err := storage.NewFileStore(flagHighscoreFile)
		if err == nil {
			if v, err := fs.LoadHighscore(); err == nil {
				return v
			}
		}
		return 0
	}
	v, err := store.LoadHighscore()
	if err != nil {
		return 0
	}
	return v
}
