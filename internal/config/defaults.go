package config

import (
	_ "embed"

	"github.com/vovakirdan/tilerunner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML cannot
// be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:  core.ViewportW,
			Height: core.ViewportH,
		},
		World: WorldConfig{
			TileSize:    10,
			PageWidth:   48,
			PageHeight:  16,
			ScrollSpeed: 1,
			Selector:    "rotation",
			Palette: PaletteConfig{
				Solid:  [3]uint8{255, 255, 255},
				Hazard: [3]uint8{237, 28, 36},
				Boost:  [3]uint8{0, 162, 232},
			},
		},
		Physics: PhysicsConfig{
			Gravity:       0.35,
			JumpImpulse:   -5.0,
			JumpBonus:     -1.6,
			JumpWindowMS:  175,
			DisarmOnBonus: true,
			SubSteps:      5,
			Drift:         -0.05,
			MaxFallSpeed:  8.0,
			FloorMargin:   0,
		},
		Player: PlayerConfig{
			StartX:     40,
			StartY:     40,
			Width:      10,
			Height:     10,
			BoostNudge: 10,
			MaxX:       120,
		},
		Lives: LivesConfig{
			MinX: 0,
			Step: 20,
		},
		Audio: AudioConfig{
			CueCooldownMS: 500,
		},
	}
}
