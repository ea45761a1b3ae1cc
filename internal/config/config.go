// Package config provides YAML-based tuning for the runner: viewport, world
// geometry, physics, player, lives ramp and audio cue pacing.
package config

import "time"

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Lives   LivesConfig   `yaml:"lives"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ScreenConfig defines the viewport size in world pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines page geometry and scrolling.
type WorldConfig struct {
	TileSize    int           `yaml:"tile_size"`
	PageWidth   int           `yaml:"page_width"`  // in tiles
	PageHeight  int           `yaml:"page_height"` // in tiles
	ScrollSpeed int           `yaml:"scroll_speed"`
	Selector    string        `yaml:"selector"`
	Palette     PaletteConfig `yaml:"palette"`
}

// PageWidthPx returns the page width in world pixels.
func (w WorldConfig) PageWidthPx() int {
	return w.PageWidth * w.TileSize
}

// PaletteConfig holds the reserved terrain colors as RGB triples.
type PaletteConfig struct {
	Solid  [3]uint8 `yaml:"solid"`
	Hazard [3]uint8 `yaml:"hazard"`
	Boost  [3]uint8 `yaml:"boost"`
}

// PhysicsConfig defines player physics. Velocities are pixels per tick.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	JumpBonus     float64 `yaml:"jump_bonus"`
	JumpWindowMS  int     `yaml:"jump_window_ms"`
	DisarmOnBonus bool    `yaml:"disarm_on_bonus"`
	SubSteps      int     `yaml:"sub_steps"`
	Drift         float64 `yaml:"drift"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	FloorMargin   int     `yaml:"floor_margin"`
}

// JumpWindow returns the jump buffer length.
func (p PhysicsConfig) JumpWindow() time.Duration {
	return time.Duration(p.JumpWindowMS) * time.Millisecond
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	BoostNudge float64 `yaml:"boost_nudge"`
	MaxX       float64 `yaml:"max_x"`
}

// LivesConfig defines the lives ramp: lives = (x - MinX) / Step + 1.
type LivesConfig struct {
	MinX float64 `yaml:"min_x"`
	Step float64 `yaml:"step"`
}

// AudioConfig defines sound cue pacing.
type AudioConfig struct {
	CueCooldownMS int `yaml:"cue_cooldown_ms"`
}

// CueCooldown returns the per-cue cooldown.
func (a AudioConfig) CueCooldown() time.Duration {
	return time.Duration(a.CueCooldownMS) * time.Millisecond
}

// DifficultyPreset represents a predefined tuning variant.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}
