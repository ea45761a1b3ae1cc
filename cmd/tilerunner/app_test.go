package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tilerunner/internal/audio"
	"github.com/vovakirdan/tilerunner/internal/game"
)

// withFlags isolates a test from the user's home and restores the globals.
func withFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	db, hs, cfg, world := flagDBPath, flagHighscoreFile, flagConfig, flagWorld
	diff, dir, sel := flagDifficulty, flagAssets, flagSelector
	mute, seed := flagMute, flagSeed
	t.Cleanup(func() {
		flagDBPath, flagHighscoreFile, flagConfig, flagWorld = db, hs, cfg, world
		flagDifficulty, flagAssets, flagSelector = diff, dir, sel
		flagMute, flagSeed = mute, seed
	})

	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	flagHighscoreFile, flagConfig, flagWorld = "", "", ""
	flagDifficulty, flagAssets, flagSelector = "", "", ""
	flagMute, flagSeed = false, 1
}

func TestMuteSilencesTerminalPlay(t *testing.T) {
	withFlags(t)
	flagMute = true

	a, err := setup(false)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer a.Close()

	a.openSound()
	if _, ok := a.sound.(audio.Nop); !ok {
		t.Fatalf("sound = %T, want audio.Nop with --mute", a.sound)
	}

	g, err := a.newGame(a.selector())
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if g.State() != game.Splash {
		t.Errorf("state = %v, want splash", g.State())
	}
}

func TestSetupUsesHighscoreFile(t *testing.T) {
	withFlags(t)
	flagHighscoreFile = filepath.Join(t.TempDir(), "high.txt")

	a, err := setup(false)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer a.Close()

	if err := a.high.SaveHighscore(42); err != nil {
		t.Fatalf("SaveHighscore: %v", err)
	}
	if got := a.highScore(); got != 42 {
		t.Errorf("highScore() = %d, want 42", got)
	}
	if v, _ := a.db.LoadHighscore(); v != 0 {
		t.Errorf("database high score = %d, want 0 when a file is used", v)
	}
}

func TestSetupRejectsUnknownDifficulty(t *testing.T) {
	withFlags(t)
	flagDifficulty = "brutal"

	if _, err := setup(false); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}
