package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for inconsistent tuning.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the tuning describes a playable world.
func (c RunnerConfig) Validate() error {
	w := c.World
	p := c.Physics

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case w.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalid)
	case w.PageWidth <= 0 || w.PageHeight <= 0:
		return fmt.Errorf("%w: page %dx%d", ErrInvalid, w.PageWidth, w.PageHeight)
	case w.PageWidthPx() < c.Screen.Width:
		return fmt.Errorf("%w: page width %dpx narrower than screen", ErrInvalid, w.PageWidthPx())
	case w.PageHeight*w.TileSize < c.Screen.Height:
		return fmt.Errorf("%w: page height %dpx shorter than screen", ErrInvalid, w.PageHeight*w.TileSize)
	case w.ScrollSpeed <= 0 || w.ScrollSpeed >= w.PageWidthPx():
		return fmt.Errorf("%w: scroll_speed %d out of range", ErrInvalid, w.ScrollSpeed)
	case p.SubSteps <= 0:
		return fmt.Errorf("%w: sub_steps must be positive", ErrInvalid)
	case p.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: max_fall_speed must be positive", ErrInvalid)
	case p.MaxFallSpeed/float64(p.SubSteps) >= float64(w.TileSize):
		return fmt.Errorf("%w: sub-step fall distance reaches tile size", ErrInvalid)
	case -p.JumpImpulse/float64(p.SubSteps) >= float64(w.TileSize):
		return fmt.Errorf("%w: sub-step jump distance reaches tile size", ErrInvalid)
	case p.JumpWindowMS < 0:
		return fmt.Errorf("%w: jump_window_ms must not be negative", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player box %dx%d", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.MaxX <= 0 || c.Player.MaxX+float64(c.Player.Width) > float64(c.Screen.Width):
		return fmt.Errorf("%w: max_x %.1f outside screen", ErrInvalid, c.Player.MaxX)
	case c.Lives.Step <= 0:
		return fmt.Errorf("%w: lives step must be positive", ErrInvalid)
	}
	return nil
}
