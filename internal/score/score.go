// Package score tracks the running score, the persisted high score and the
// lives display derived from the runner's horizontal progress.
package score

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilerunner/internal/config"
)

// Store persists a single high score value.
type Store interface {
	// LoadHighscore returns the stored value. A missing value is 0.
	LoadHighscore() (uint64, error)
	// SaveHighscore stores v as the high score.
	SaveHighscore(v uint64) error
}

// Tracker counts ticks survived and remembers the best score.
type Tracker struct {
	score  uint64
	high   uint64
	lives  config.LivesConfig
	logger *log.Logger
}

// NewTracker creates a tracker with a zero score and high score.
func NewTracker(lives config.LivesConfig, logger *log.Logger) *Tracker {
	return &Tracker{lives: lives, logger: logger}
}

// Load reads the high score once. Failures are logged and count as 0.
func (t *Tracker) Load(s Store) {
	if s == nil {
		return
	}
	v, err := s.LoadHighscore()
	if err != nil {
		t.logger.Warn("high score unavailable, starting from 0", "err", err)
		t.high = 0
		return
	}
	t.high = v
}

// Save writes max(score, high score, stored value) and returns it. Write
// failures are logged and otherwise ignored.
func (t *Tracker) Save(s Store) uint64 {
	best := t.Best()
	if s == nil {
		t.high = best
		return best
	}
	// Other games sharing s may have raised it since Load.
	if v, err := s.LoadHighscore(); err == nil && v > best {
		best = v
	}
	t.high = best
	if err := s.SaveHighscore(best); err != nil {
		t.logger.Error("failed to save high score", "err", err, "value", best)
	}
	return best
}

// Inc adds one survived tick.
func (t *Tracker) Inc() {
	t.score++
}

// Reset starts a new run.
func (t *Tracker) Reset() {
	t.score = 0
}

// Score returns the current run score.
func (t *Tracker) Score() uint64 { return t.score }

// High returns the high score as last loaded or saved.
func (t *Tracker) High() uint64 { return t.high }

// Best returns max(score, high score).
func (t *Tracker) Best() uint64 {
	return max(t.score, t.high)
}

// Lives derives the lives display from the runner's x position:
// (x - min_x) / step + 1. It is never below 1.
func (t *Tracker) Lives(x float64) int {
	if t.lives.Step <= 0 {
		return 1
	}
	n := int((x-t.lives.MinX)/t.lives.Step) + 1
	return max(n, 1)
}

// Digits returns the count lowest decimal digits of n, least significant
// first.
func Digits(n uint64, count int) []int {
	d := make([]int, count)
	for i := range d {
		d[i] = int(n % 10)
		n /= 10
	}
	return d
}
