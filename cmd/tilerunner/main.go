// tilerunner is a side-scrolling endless runner over a tile world built from
// color-coded pages.
//
// Usage:
//
//	tilerunner               - Pick a page order and play in the terminal
//	tilerunner play          - Play in the terminal
//	tilerunner window        - Play in a desktop window
//	tilerunner serve         - Start SSH server for remote play
//	tilerunner scores        - Show run history and the high score
//	tilerunner list          - List page selectors
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for page selection
//	--db <path>               - Set database path (default: ~/.tilerunner/scores.db)
//	--highscore-file <path>   - Keep the high score in a plain text file instead
//	--config <path>           - Custom tuning YAML
//	--world <path>            - Custom world layout YAML
//	--difficulty <preset>     - easy, normal or hard
//	--assets <dir>            - Load blocks/img/splash/gameover images from dir
//	--selector <id>           - Page selector (rotation, cycle, random)
//	--mute                    - Disable sound (serve is always silent)
//	--debug                   - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerunner/internal/core"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagHighscoreFile string
	flagConfig        string
	flagWorld         string
	flagDifficulty    string
	flagAssets        string
	flagSelector      string
	flagMute          bool
	flagDebug         bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerunner",
	Short: "Tile Runner - an endless runner over color-coded pages",
	Long: `Tile Runner scrolls an endless world of tile pages past a runner
who has to jump over gaps and hazards. Blue boost tiles push the runner ahead.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View run history
  list     - Show page selectors

Examples:
  tilerunner
  tilerunner play --selector random --seed 42
  tilerunner window --difficulty easy
  tilerunner serve --ssh :2222
  tilerunner scores`,
	Run: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tilerunner/scores.db", "Path to scores database")
	pf.StringVar(&flagHighscoreFile, "highscore-file", "", "Keep the high score in this text file instead of the database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagWorld, "world", "", "Path to custom world layout YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagAssets, "assets", "", "Directory with blocks, img, splash and gameover images")
	pf.StringVar(&flagSelector, "selector", "", "Page selector (see 'tilerunner list')")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
