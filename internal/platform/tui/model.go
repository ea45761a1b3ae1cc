package tui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/core"
	"github.com/vovakirdan/tilerunner/internal/game"
	"github.com/vovakirdan/tilerunner/internal/render"
)

// Model is the Bubble Tea model for one running game.
type Model struct {
	game      *game.Game
	raster    *render.Rasterizer
	keyMapper *KeyMapper
	help      help.Model
	hold      holdTracker
	pending   core.InputFrame
	tickRate  int
	width     int
	height    int
	frame     string
	quitting  bool
	exit      tea.Cmd
}

// NewModel creates a model driving g, drawing with the assets in set.
func NewModel(g *game.Game, set *assets.Set, tickRate, width, height int) Model {
	cfg := g.Config()
	h := help.New()
	h.Width = width
	return Model{
		game:      g,
		raster:    render.NewRasterizer(set, cfg.Screen.Width, cfg.Screen.Height),
		keyMapper: NewKeyMapper(),
		help:      h,
		hold:      newHoldTracker(),
		pending:   core.NewInputFrame(),
		tickRate:  tickRate,
		width:     width,
		height:    height,
		exit:      tea.Quit,
	}
}

// embedded returns a copy that does not end the program when the game quits.
func (m Model) embedded() Model {
	m.exit = nil
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.pending.Press(core.ActionQuit)
	case core.ActionConfirm:
		if m.hold.press(now) {
			m.pending.Press(core.ActionConfirm)
		} else {
			m.pending.Hold(core.ActionConfirm)
		}
	}
	return m, nil
}

// handleTick runs one simulation step and renders the result.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	in := m.pending.Clone()
	if m.hold.held(now) {
		in.Hold(core.ActionConfirm)
	}
	m.pending.Clear()

	res := m.game.Tick(in, now)
	frame := m.raster.Draw(res.Plan)
	m.frame = RenderFrame(frame, m.width, m.height-1)

	if res.Quit {
		m.quitting = true
		return m, m.exit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the last frame as a PNG under ~/.tilerunner/screenshots.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(config.Dir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tilerunner_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	//nolint:errcheck // Best-effort save, game continues regardless
	png.Encode(f, frameImage(m.raster.Frame()))
}

func frameImage(f *core.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	copy(img.Pix, f.Pix())
	return img
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.frame + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Quitting reports whether the game asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Game returns the driven game.
func (m Model) Game() *game.Game {
	return m.game
}

// Run plays g in the terminal until the player quits.
func Run(g *game.Game, set *assets.Set, tickRate, width, height int) error {
	model := NewModel(g, set, tickRate, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		g.Flush()
	}
	return err
}
