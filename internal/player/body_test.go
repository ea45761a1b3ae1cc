package player

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// terrain is a Sampler over 10px ASCII tiles, top row first.
type terrain []string

func (t terrain) Classify(x, y int) tiles.Class {
	if x < 0 || y < 0 {
		return tiles.Empty
	}
	tx, ty := x/10, y/10
	if ty >= len(t) || tx >= len(t[ty]) {
		return tiles.Empty
	}
	switch t[ty][tx] {
	case '#':
		return tiles.Solid
	case '^':
		return tiles.Hazard
	case '>':
		return tiles.Boost
	default:
		return tiles.Empty
	}
}

// flat returns 16 rows of 24 tiles with solid ground on rows 14 and 15.
// edits replace single tiles: edits[row] = string to overlay at column 0.
func flat(edits map[int]string) terrain {
	t := make(terrain, 16)
	for i := range t {
		row := strings.Repeat(".", 24)
		if i >= 14 {
			row = strings.Repeat("#", 24)
		}
		if e, ok := edits[i]; ok {
			row = e + row[len(e):]
		}
		t[i] = row
	}
	return t
}

func testConfig() Config {
	cfg := ConfigFrom(config.DefaultRunnerConfig())
	cfg.Drift = 0
	return cfg
}

func resting(cfg Config, x float64) *Body {
	b := New(cfg)
	b.x = x
	b.y = 130
	b.onGround = true
	return b
}

func assertFree(t *testing.T, b *Body, s Sampler) {
	t.Helper()
	for _, c := range b.Corners() {
		if cls := s.Classify(c.X, c.Y); cls.Blocking() {
			t.Fatalf("corner (%d,%d) inside %v tile at y=%.2f", c.X, c.Y, cls, b.y)
		}
	}
}

func TestRestingBodyUnchanged(t *testing.T) {
	world := flat(nil)
	b := resting(testConfig(), 40)

	for i := 0; i < 30; i++ {
		if out := b.Update(world); out != Nothing {
			t.Fatalf("tick %d: outcome %v, want nothing", i, out)
		}
		if b.y != 130 {
			t.Fatalf("tick %d: y = %v, want 130", i, b.y)
		}
		if !b.onGround {
			t.Fatalf("tick %d: lost ground contact", i)
		}
		if b.vel != 0 {
			t.Fatalf("tick %d: vel = %v, want 0", i, b.vel)
		}
	}
}

func TestFallLandsWithoutPenetration(t *testing.T) {
	world := flat(nil)
	b := New(testConfig())

	for i := 0; i < 200 && !b.onGround; i++ {
		if out := b.Update(world); out != Nothing {
			t.Fatalf("tick %d: outcome %v, want nothing", i, out)
		}
		assertFree(t, b, world)
	}

	if !b.onGround {
		t.Fatal("body never landed")
	}
	if b.y != 130 {
		t.Errorf("landed at y=%v, want 130", b.y)
	}
	if b.jumping {
		t.Error("landing should clear jumping")
	}
}

func TestFallOntoHazard(t *testing.T) {
	world := flat(map[int]string{14: "^^^^^^^^"})
	b := New(testConfig())

	var out Outcome
	for i := 0; i < 200; i++ {
		if out = b.Update(world); out != Nothing {
			break
		}
	}
	if out != Dead {
		t.Errorf("outcome = %v, want dead", out)
	}
	if b.Cause() != CauseHazard {
		t.Errorf("cause = %v, want hazard", b.Cause())
	}
}

func TestBoostNudge(t *testing.T) {
	tests := []struct {
		name  string
		maxX  float64
		wantX float64
	}{
		{"full nudge", 120, 50},
		{"clamped", 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := flat(map[int]string{14: "....>>"})
			cfg := testConfig()
			cfg.MaxX = tt.maxX
			b := New(cfg)

			var out Outcome
			for i := 0; i < 200; i++ {
				if out = b.Update(world); out != Nothing {
					break
				}
			}
			if out != Boost {
				t.Fatalf("outcome = %v, want boost", out)
			}
			if b.x != tt.wantX {
				t.Errorf("x = %v, want %v", b.x, tt.wantX)
			}
			assertFree(t, b, world)
		})
	}
}

func TestBoostNudgeStopsAtWall(t *testing.T) {
	world := flat(map[int]string{13: ".....#", 14: "....>>"})
	b := resting(testConfig(), 40)

	if out := b.Update(world); out != Boost {
		t.Fatalf("outcome = %v, want boost", out)
	}
	if b.x != 40 {
		t.Errorf("x = %v, want 40 (wall at 50)", b.x)
	}
	assertFree(t, b, world)
}

func TestFloorDeath(t *testing.T) {
	world := terrain(make([]string, 16))
	b := New(testConfig())
	b.y = 150

	if out := b.Update(world); out != Dead {
		t.Errorf("outcome = %v, want dead", out)
	}
	if b.Cause() != CauseFell {
		t.Errorf("cause = %v, want fell", b.Cause())
	}
}

func TestFallIntoGapDies(t *testing.T) {
	world := terrain(make([]string, 16))
	b := New(testConfig())

	var out Outcome
	for i := 0; i < 500; i++ {
		if out = b.Update(world); out != Nothing {
			break
		}
	}
	if out != Dead {
		t.Errorf("outcome = %v, want dead", out)
	}
}

func TestLeftBoundaryClamps(t *testing.T) {
	world := flat(nil)
	cfg := testConfig()
	cfg.Drift = -0.05
	b := resting(cfg, 0.02)

	if out := b.Update(world); out != Nothing {
		t.Fatalf("outcome = %v, want nothing", out)
	}
	if b.x != 0 {
		t.Errorf("x = %v, want 0", b.x)
	}
	if out := b.Update(world); out != Nothing || b.x != 0 {
		t.Errorf("second tick: outcome %v x=%v", out, b.x)
	}
}

func TestWallPushBack(t *testing.T) {
	world := flat(map[int]string{13: ".....#"})
	b := resting(testConfig(), 41.5)

	if out := b.Update(world); out != Nothing {
		t.Fatalf("outcome = %v, want nothing", out)
	}
	if b.x != 40 {
		t.Errorf("x = %v, want 40", b.x)
	}
	assertFree(t, b, world)
}

func TestDriftStopsAtWallBehind(t *testing.T) {
	tests := []struct {
		name   string
		ground string
		want   Outcome
		wantX  float64
	}{
		{"solid ground", "", Nothing, 60.5},
		{"boost ground", "######>>", Boost, 70.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := flat(map[int]string{13: ".....#", 14: tt.ground})
			cfg := testConfig()
			cfg.Drift = -0.75
			b := resting(cfg, 60.5)

			if out := b.Update(world); out != tt.want {
				t.Fatalf("outcome = %v, want %v", out, tt.want)
			}
			if b.x != tt.wantX {
				t.Errorf("x = %v, want %v", b.x, tt.wantX)
			}
			assertFree(t, b, world)

			for i := 0; i < 20; i++ {
				if out := b.Update(world); out == Dead {
					t.Fatalf("tick %d: died against the wall behind", i)
				}
				assertFree(t, b, world)
			}
		})
	}
}

func TestWallCrushAtLeftEdge(t *testing.T) {
	world := flat(map[int]string{13: "#"})
	b := resting(testConfig(), 0)

	if out := b.Update(world); out != Dead {
		t.Errorf("outcome = %v, want dead", out)
	}
	if b.Cause() != CauseCrushed {
		t.Errorf("cause = %v, want crushed", b.Cause())
	}
}

func TestHazardWall(t *testing.T) {
	world := flat(map[int]string{13: ".....^"})
	b := resting(testConfig(), 41)

	if out := b.Update(world); out != Dead {
		t.Errorf("outcome = %v, want dead", out)
	}
}

func TestJumpStartsFromGround(t *testing.T) {
	cfg := testConfig()
	b := resting(cfg, 40)
	now := time.Unix(100, 0)

	b.Jump(now)
	if b.vel != cfg.JumpImpulse {
		t.Errorf("vel = %v, want %v", b.vel, cfg.JumpImpulse)
	}
	if !b.jumping {
		t.Error("jump should set jumping")
	}

	b.Update(flat(nil))
	if b.onGround {
		t.Error("body should leave the ground")
	}
	if b.y >= 130 {
		t.Errorf("body should rise, y = %v", b.y)
	}
}

func TestJumpBonusOncePerWindow(t *testing.T) {
	tests := []struct {
		name   string
		disarm bool
	}{
		{"disarm on bonus", true},
		{"keep jumping", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.DisarmOnBonus = tt.disarm
			world := flat(nil)
			b := resting(cfg, 40)
			start := time.Unix(100, 0)

			b.Jump(start)
			b.Update(world)

			bonuses := 0
			for i := 1; i <= 8; i++ {
				before := b.vel
				b.Jump(start.Add(time.Duration(i) * 16 * time.Millisecond))
				if b.vel != before {
					bonuses++
					if got := b.vel - before; math.Abs(got-cfg.JumpBonus) > 1e-9 {
						t.Errorf("bonus impulse = %v, want %v", got, cfg.JumpBonus)
					}
				}
				b.Update(world)
			}

			if bonuses != 1 {
				t.Errorf("bonus applied %d times, want 1", bonuses)
			}
			if b.jumping == tt.disarm {
				t.Errorf("jumping = %v after bonus", b.jumping)
			}
		})
	}
}

func TestJumpBonusExpires(t *testing.T) {
	cfg := testConfig()
	world := flat(nil)
	b := resting(cfg, 40)
	start := time.Unix(100, 0)

	b.Jump(start)
	b.Update(world)

	before := b.vel
	b.Jump(start.Add(cfg.JumpWindow + time.Millisecond))
	if b.vel != before {
		t.Errorf("bonus applied after window: vel %v -> %v", before, b.vel)
	}
}

func TestHeadBump(t *testing.T) {
	world := flat(map[int]string{11: "....#"})
	b := resting(testConfig(), 40)
	b.y = 120
	b.onGround = false
	b.vel = -5

	if out := b.Update(world); out != Nothing {
		t.Fatalf("outcome = %v, want nothing", out)
	}
	if b.vel != 0 {
		t.Errorf("vel = %v, want 0 after head bump", b.vel)
	}
	if b.y != 120 {
		t.Errorf("y = %v, want 120", b.y)
	}
	assertFree(t, b, world)
}

func TestCorners(t *testing.T) {
	b := New(testConfig())
	b.x, b.y = 12.7, 30.2

	c := b.Corners()
	want := [4][2]int{{12, 30}, {21, 30}, {12, 39}, {21, 39}}
	for i, p := range c {
		if p.X != want[i][0] || p.Y != want[i][1] {
			t.Errorf("corner %d = (%d,%d), want %v", i, p.X, p.Y, want[i])
		}
	}
}

func TestResetRestoresStart(t *testing.T) {
	cfg := testConfig()
	b := resting(cfg, 70)
	b.Jump(time.Unix(1, 0))
	b.Reset()

	if b.x != cfg.StartX || b.y != cfg.StartY || b.vel != 0 || b.jumping || b.onGround {
		t.Errorf("Reset left state %+v", b)
	}
}
