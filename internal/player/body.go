// Package player implements the runner's body: horizontal drift, sub-stepped
// vertical motion against sampled terrain, and the buffered variable-height
// jump.
package player

import (
	"math"
	"time"

	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/core"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// Outcome is what happened to the body during one update.
type Outcome uint8

const (
	Nothing Outcome = iota
	Boost
	Dead
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Nothing:
		return "nothing"
	case Boost:
		return "boost"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cause tells why the last update returned Dead.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseHazard
	CauseFell
	CauseCrushed
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseHazard:
		return "hazard"
	case CauseFell:
		return "fell"
	case CauseCrushed:
		return "crushed"
	default:
		return "none"
	}
}

// Sampler reports the terrain class under a screen pixel.
type Sampler interface {
	Classify(x, y int) tiles.Class
}

// Config holds body tuning. Velocities are pixels per tick.
type Config struct {
	Gravity       float64
	JumpImpulse   float64
	JumpBonus     float64
	JumpWindow    time.Duration
	DisarmOnBonus bool
	SubSteps      int
	Drift         float64
	MaxFallSpeed  float64
	FloorY        int // a body whose bottom reaches this row is dead
	StartX        float64
	StartY        float64
	Width         int
	Height        int
	BoostNudge    float64
	MaxX          float64
}

// ConfigFrom extracts body tuning from the runner config.
func ConfigFrom(rc config.RunnerConfig) Config {
	return Config{
		Gravity:       rc.Physics.Gravity,
		JumpImpulse:   rc.Physics.JumpImpulse,
		JumpBonus:     rc.Physics.JumpBonus,
		JumpWindow:    rc.Physics.JumpWindow(),
		DisarmOnBonus: rc.Physics.DisarmOnBonus,
		SubSteps:      rc.Physics.SubSteps,
		Drift:         rc.Physics.Drift,
		MaxFallSpeed:  rc.Physics.MaxFallSpeed,
		FloorY:        rc.Screen.Height - rc.Physics.FloorMargin,
		StartX:        rc.Player.StartX,
		StartY:        rc.Player.StartY,
		Width:         rc.Player.Width,
		Height:        rc.Player.Height,
		BoostNudge:    rc.Player.BoostNudge,
		MaxX:          rc.Player.MaxX,
	}
}

// Body is the player's axis-aligned box in screen pixels.
type Body struct {
	cfg      Config
	x, y     float64
	vel      float64 // vertical, positive is down
	onGround bool
	jumping  bool
	buffer   core.Window
	cause    Cause
}

// New creates a body at the configured start position.
func New(cfg Config) *Body {
	if cfg.SubSteps <= 0 {
		cfg.SubSteps = 1
	}
	b := &Body{cfg: cfg}
	b.Reset()
	return b
}

// Reset puts the body back at its start position, airborne and at rest.
func (b *Body) Reset() {
	b.x = b.cfg.StartX
	b.y = b.cfg.StartY
	b.vel = 0
	b.onGround = false
	b.jumping = false
	b.buffer = core.NewWindow(b.cfg.JumpWindow)
	b.cause = CauseNone
}

// X returns the left edge.
func (b *Body) X() float64 { return b.x }

// Y returns the top edge.
func (b *Body) Y() float64 { return b.y }

// Vel returns the vertical velocity.
func (b *Body) Vel() float64 { return b.vel }

// OnGround reports whether the body rests on terrain.
func (b *Body) OnGround() bool { return b.onGround }

// Jumping reports whether a jump gesture is still in progress.
func (b *Body) Jumping() bool { return b.jumping }

// Cause returns why the body died, or CauseNone.
func (b *Body) Cause() Cause { return b.cause }

// Width returns the box width.
func (b *Body) Width() int { return b.cfg.Width }

// Height returns the box height.
func (b *Body) Height() int { return b.cfg.Height }

// Rect returns the box in whole pixels.
func (b *Body) Rect() core.Rect {
	return core.NewRect(px(b.x), px(b.y), b.cfg.Width, b.cfg.Height)
}

// Corners returns the top-left, top-right, bottom-left and bottom-right
// pixels of the box.
func (b *Body) Corners() [4]core.Point {
	r := b.Rect()
	return [4]core.Point{
		{X: r.X, Y: r.Y},
		{X: r.Right() - 1, Y: r.Y},
		{X: r.X, Y: r.Bottom() - 1},
		{X: r.Right() - 1, Y: r.Bottom() - 1},
	}
}

// Jump handles a held jump input. On the ground it starts a jump and arms
// the buffer. In the air, while the buffer is armed, it adds the bonus
// impulse exactly once.
func (b *Body) Jump(now time.Time) {
	if b.onGround {
		b.vel = b.cfg.JumpImpulse
		b.jumping = true
		b.buffer.Arm(now)
		return
	}
	if !b.jumping || !b.buffer.IsArmed(now) {
		return
	}
	b.vel += b.cfg.JumpBonus
	b.buffer.Consume()
	if b.cfg.DisarmOnBonus {
		b.jumping = false
	}
}

// Update advances the body by one tick against the terrain.
func (b *Body) Update(s Sampler) Outcome {
	prev := b.x
	b.x += b.cfg.Drift
	if b.leftBlocked(s) {
		b.x = prev
	}
	if c := b.pushBack(s); c != CauseNone {
		return b.die(c)
	}
	if b.x <= 0 {
		b.x = 0
	}

	if b.y+float64(b.cfg.Height) >= float64(b.cfg.FloorY) {
		return b.die(CauseFell)
	}

	n := b.cfg.SubSteps
	for i := 0; i < n; i++ {
		dy := b.vel / float64(n)
		b.y += dy

		hit := b.sample(s, b.y, b.vel >= 0)
		if hit == 0 {
			b.onGround = false
			b.vel = math.Min(b.vel+b.cfg.Gravity/float64(n), b.cfg.MaxFallSpeed)
			continue
		}

		b.y -= dy
		down := b.vel >= 0
		b.vel = 0
		if hit.has(tiles.Hazard) {
			return b.die(CauseHazard)
		}
		if !down {
			return Nothing
		}

		b.onGround = true
		b.jumping = false
		b.settle(s, b.y+dy)
		if hit.has(tiles.Boost) {
			b.nudge(s)
			return Boost
		}
		return Nothing
	}
	return Nothing
}

func (b *Body) die(c Cause) Outcome {
	b.cause = c
	return Dead
}

// hits is a set of sampled classes.
type hits uint8

func (h hits) has(c tiles.Class) bool { return h&(1<<c) != 0 }

func (h *hits) add(c tiles.Class) {
	if c.Blocking() {
		*h |= 1 << c
	}
}

// sample classifies the box corners at top edge y. With feet set the
// bottom samples are taken one row below the box, so resting contact is
// reported without overlapping the tile.
func (b *Body) sample(s Sampler, y float64, feet bool) hits {
	left := px(b.x)
	right := left + b.cfg.Width - 1
	top := px(y)
	bottom := top + b.cfg.Height - 1
	if feet {
		bottom++
	}

	var h hits
	h.add(s.Classify(left, top))
	h.add(s.Classify(right, top))
	h.add(s.Classify(left, bottom))
	h.add(s.Classify(right, bottom))
	return h
}

func (b *Body) feetBlocked(s Sampler, y float64) bool {
	feet := px(y) + b.cfg.Height
	left := px(b.x)
	return s.Classify(left, feet).Blocking() ||
		s.Classify(left+b.cfg.Width-1, feet).Blocking()
}

// settle moves the body down whole pixels until it rests on the tile below,
// never past limit and never into terrain.
func (b *Body) settle(s Sampler, limit float64) {
	y := math.Floor(b.y)
	for !b.feetBlocked(s, y) && y+1 <= limit && b.sample(s, y+1, false) == 0 {
		y++
	}
	b.y = y
}

// nudge moves the body forward by the boost distance, clamped to MaxX and
// stopped short of terrain.
func (b *Body) nudge(s Sampler) {
	target := core.ClampF(b.x+b.cfg.BoostNudge, 0, b.cfg.MaxX)
	for target > b.x {
		if b.boxFree(s, target) {
			b.x = target
			return
		}
		target = math.Floor(target - 1)
	}
}

func (b *Body) boxFree(s Sampler, x float64) bool {
	saved := b.x
	b.x = x
	free := b.sample(s, b.y, false) == 0
	b.x = saved
	return free
}

// leftBlocked reports terrain under the left edge of the box. Drift must
// never carry the body into a tile behind it.
func (b *Body) leftBlocked(s Sampler) bool {
	left := px(b.x)
	var h hits
	h.add(s.Classify(left, px(b.y)))
	h.add(s.Classify(left, px(b.y)+b.cfg.Height-1))
	return h != 0
}

// pushBack moves the body left out of terrain overlapping its right edge.
// It returns a cause when the body hits a hazard or is pushed off screen.
func (b *Body) pushBack(s Sampler) Cause {
	for i := 0; i <= b.cfg.Width; i++ {
		right := px(b.x) + b.cfg.Width - 1
		var h hits
		h.add(s.Classify(right, px(b.y)))
		h.add(s.Classify(right, px(b.y)+b.cfg.Height-1))
		if h == 0 {
			return CauseNone
		}
		if h.has(tiles.Hazard) {
			return CauseHazard
		}
		b.x = float64(px(b.x) - 1)
		if b.x < 0 {
			return CauseCrushed
		}
	}
	return CauseNone
}

func px(f float64) int {
	return int(math.Floor(f))
}
