package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/audio"
	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/game"
	"github.com/vovakirdan/tilerunner/internal/platform/tui"
	"github.com/vovakirdan/tilerunner/internal/score"
	"github.com/vovakirdan/tilerunner/internal/storage"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// cueVolume is the playback volume for sound cues.
const cueVolume = 0.6

// app holds everything the subcommands share.
type app struct {
	cfg    config.RunnerConfig
	set    *assets.Set
	pages  []*tiles.Page
	db     *storage.Store // nil when the database could not be opened
	high   score.Store
	sound  audio.Sink
	logger *log.Logger
	logOut io.Closer
}

// setup loads tuning and images, opens persistence and builds the logger.
// toFile sends logs to ~/.tilerunner/tilerunner.log so they do not tear
// the terminal UI.
func setup(toFile bool) (_ *app, err error) {
	a := &app{sound: audio.Nop{}}
	a.logger = a.newLogger(toFile)
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a.cfg = cfg

	if flagAssets != "" {
		a.set, err = assets.LoadDir(flagAssets)
	} else {
		var layout config.WorldLayout
		layout, err = config.LoadWorld(flagWorld)
		if err == nil {
			a.set, err = assets.Builtin(cfg, layout)
		}
	}
	if err != nil {
		return nil, err
	}
	if err := a.set.Check(cfg); err != nil {
		return nil, err
	}
	a.pages, err = a.set.Pages(tiles.NewPalette(cfg.World.Palette), cfg.World.PageWidth, cfg.World.PageHeight)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without history.
		a.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		a.db = db
		a.high = db
	}
	if flagHighscoreFile != "" {
		fs, err := storage.NewFileStore(flagHighscoreFile)
		if err != nil {
			return nil, err
		}
		a.high = fs
	}

	a.logger.Debug("setup done",
		"screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"pages", len(a.pages),
		"selector", a.selector(),
	)
	return a, nil
}

func (a *app) newLogger(toFile bool) *log.Logger {
	var out io.Writer = os.Stderr
	if toFile {
		out = io.Discard
		if dir := config.Dir(); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "tilerunner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err == nil {
					out = f
					a.logOut = f
				}
			}
		}
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilerunner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openSound starts local cue playback unless --mute is set. Games built
// afterwards play through it.
func (a *app) openSound() {
	a.sound = audio.Open(flagMute, cueVolume, a.logger)
}

// selector returns the selector flag or the configured default.
func (a *app) selector() string {
	if flagSelector != "" {
		return flagSelector
	}
	return a.cfg.World.Selector
}

// seed returns the seed flag, or a time-based seed when it is 0.
func (a *app) seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newGame builds a fresh game over the loaded pages.
func (a *app) newGame(selector string) (*game.Game, error) {
	opts := game.Options{
		Config:   a.cfg,
		Pages:    a.pages,
		Selector: selector,
		Seed:     a.seed(),
		Store:    a.high,
		Audio:    a.sound,
		Logger:   a.logger,
	}
	if a.db != nil {
		opts.Runs = a.db
	}
	return game.New(opts)
}

// sessionOptions wires the menu-driven terminal session.
func (a *app) sessionOptions() tui.SessionOptions {
	opts := tui.SessionOptions{
		NewGame:  a.newGame,
		Assets:   a.set,
		Selector: a.selector(),
		High:     a.highScore,
		TickRate: flagFPS,
		Logger:   a.logger,
	}
	if a.db != nil {
		opts.Runs = a.db
	}
	return opts
}

// highScore reads the persisted high score, 0 when unavailable.
func (a *app) highScore() uint64 {
	if a.high == nil {
		return 0
	}
	v, err := a.high.LoadHighscore()
	if err != nil {
		a.logger.Warn("could not load high score", "err", err)
		return 0
	}
	return v
}

// Close releases the database and the log file.
func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("close scores database", "err", err)
		}
	}
	if a.logOut != nil {
		a.logOut.Close()
	}
}

// mustSetup is setup that exits on failure, the way every command starts.
func mustSetup(toFile bool) *app {
	a, err := setup(toFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// termSize returns the terminal size, or 80x24 if unknown.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
