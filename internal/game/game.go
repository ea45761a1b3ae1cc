// Package game runs the runner's state machine: a splash screen, the running
// simulation and a game-over screen, advanced one tick at a time by a driver.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilerunner/internal/audio"
	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/core"
	"github.com/vovakirdan/tilerunner/internal/player"
	"github.com/vovakirdan/tilerunner/internal/registry"
	"github.com/vovakirdan/tilerunner/internal/render"
	"github.com/vovakirdan/tilerunner/internal/score"
	"github.com/vovakirdan/tilerunner/internal/tiles"
)

// State is the screen the game is on.
type State uint8

const (
	Splash State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case Splash:
		return "splash"
	case Running:
		return "running"
	case GameOver:
		return "gameover"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Run is one finished run.
type Run struct {
	Score    uint64
	Cause    string
	Selector string
	Duration time.Duration
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	RecordRun(r Run) error
}

// Options wires a game to its collaborators. Store, Runs, Audio and Logger
// are optional.
type Options struct {
	Config   config.RunnerConfig
	Pages    []*tiles.Page
	Selector string
	Seed     int64
	Store    score.Store
	Runs     RunRecorder
	Audio    audio.Sink
	Logger   *log.Logger
}

// TickResult is what a driver gets back from one tick.
type TickResult struct {
	Plan    render.Plan
	Quit    bool
	State   State
	Outcome player.Outcome
}

// Game owns the world, the body and the score for one player.
type Game struct {
	state   State
	cfg     config.RunnerConfig
	deck    *tiles.Deck
	world   *tiles.World
	body    *player.Body
	tracker *score.Tracker
	store   score.Store
	runs    RunRecorder
	sink    audio.Sink
	logger  *log.Logger

	boostCue core.Window
	deathCue core.Window
	started  time.Time
}

// New validates the config, builds the page deck and loads the high score.
// The game starts on the splash screen.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	id := opts.Selector
	if id == "" {
		id = opts.Config.World.Selector
	}
	sel, err := registry.Create(id, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	deck, err := tiles.NewDeck(opts.Pages, sel)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}

	g := &Game{
		state:    Splash,
		cfg:      opts.Config,
		deck:     deck,
		body:     player.New(player.ConfigFrom(opts.Config)),
		tracker:  score.NewTracker(opts.Config.Lives, logger),
		store:    opts.Store,
		runs:     opts.Runs,
		sink:     sink,
		logger:   logger,
		boostCue: core.NewWindow(opts.Config.Audio.CueCooldown()),
		deathCue: core.NewWindow(opts.Config.Audio.CueCooldown()),
	}
	g.tracker.Load(g.store)
	logger.Debug("game ready", "pages", deck.Len(), "selector", deck.Selector(), "high", g.tracker.High())
	return g, nil
}

// Tick advances the game by one fixed step.
func (g *Game) Tick(in core.InputFrame, now time.Time) TickResult {
	if in.IsPressed(core.ActionQuit) {
		g.Flush()
		return TickResult{Plan: g.Plan(), Quit: true, State: g.state}
	}

	out := player.Nothing
	switch g.state {
	case Splash, GameOver:
		if in.IsPressed(core.ActionConfirm) {
			g.start(now)
		}
	case Running:
		out = g.step(in, now)
	}
	return TickResult{Plan: g.Plan(), State: g.state, Outcome: out}
}

// Flush writes max(score, high score) to the store and returns it.
func (g *Game) Flush() uint64 {
	return g.tracker.Save(g.store)
}

func (g *Game) start(now time.Time) {
	g.deck.Reset()
	g.world = tiles.NewWorld(g.deck, g.cfg.World.TileSize)
	g.body.Reset()
	g.tracker.Reset()
	g.started = now
	g.state = Running
	g.logger.Debug("run started", "page", g.world.Current().Name)
}

func (g *Game) step(in core.InputFrame, now time.Time) player.Outcome {
	if in.IsHeld(core.ActionConfirm) {
		g.body.Jump(now)
	}

	out := g.body.Update(g.world)
	switch out {
	case player.Dead:
		g.die(now)
	case player.Boost:
		if g.boostCue.Gate(now) {
			g.sink.Play(audio.CueBoost)
		}
	default:
		if g.world.Scroll(g.cfg.World.ScrollSpeed) {
			g.logger.Debug("page advanced", "current", g.world.Current().Name, "next", g.world.Next().Name)
		}
		g.tracker.Inc()
	}
	return out
}

func (g *Game) die(now time.Time) {
	g.state = GameOver
	best := g.Flush()
	if g.deathCue.Gate(now) {
		g.sink.Play(audio.CueDeath)
	}

	run := Run{
		Score:    g.tracker.Score(),
		Cause:    g.body.Cause().String(),
		Selector: g.deck.Selector(),
		Duration: now.Sub(g.started),
	}
	g.logger.Info("run over", "score", run.Score, "best", best, "cause", run.Cause)
	if g.runs == nil {
		return
	}
	if err := g.runs.RecordRun(run); err != nil {
		g.logger.Error("failed to record run", "err", err)
	}
}

// Plan builds the draw plan for the current state.
func (g *Game) Plan() render.Plan {
	return render.Build(g.View())
}

// View describes the current frame.
func (g *Game) View() render.View {
	v := render.View{
		Width:  g.cfg.Screen.Width,
		Height: g.cfg.Screen.Height,
		Score:  g.tracker.Score(),
		High:   g.tracker.High(),
	}
	switch g.state {
	case Splash:
		v.Mode = render.ModeSplash
	case GameOver:
		v.Mode = render.ModeGameOver
	default:
		v.Mode = render.ModeRunning
		v.World = g.world
		v.PlayerX = int(g.body.X())
		v.PlayerY = int(g.body.Y())
		v.Lives = g.tracker.Lives(g.body.X())
	}
	return v
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Score returns the current run's score.
func (g *Game) Score() uint64 { return g.tracker.Score() }

// High returns the high score.
func (g *Game) High() uint64 { return g.tracker.High() }

// Body returns the player body.
func (g *Game) Body() *player.Body { return g.body }

// World returns the tile world, or nil before the first run.
func (g *Game) World() *tiles.World { return g.world }

// Config returns the tuning the game was built with.
func (g *Game) Config() config.RunnerConfig { return g.cfg }
