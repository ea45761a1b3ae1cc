package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/config"
	"github.com/vovakirdan/tilerunner/internal/game"
)

// GameFactory builds a fresh game using the named page selector.
type GameFactory func(selector string) (*game.Game, error)

// SessionOptions holds what every session needs to start games.
type SessionOptions struct {
	NewGame  GameFactory
	Assets   *assets.Set
	Runs     RunSource // optional
	Selector string    // preselected menu entry
	High     func() uint64
	TickRate int
	Logger   *log.Logger
}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tilerunner/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own game.
type SSHServer struct {
	config  SSHServerConfig
	session SessionOptions
	server  *ssh.Server
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, opts SessionOptions) (*SSHServer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tilerunner-ssh",
		})
		opts.Logger = logger
	}

	srv := &SSHServer{
		config:  cfg,
		session: opts,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir := config.Dir()
		if dir == "" {
			return nil, errors.New("cannot get home directory for host key")
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.flushMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	live := &liveGame{}
	sshSession.Context().SetValue(liveGameKey{}, live)

	opts := s.session
	opts.NewGame = live.track(opts.NewGame)
	model := NewSessionModel(opts, pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// flushMiddleware persists the high score of a run cut short by a dropped
// connection.
func (s *SSHServer) flushMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		next(sshSession)
		live, ok := sshSession.Context().Value(liveGameKey{}).(*liveGame)
		if !ok {
			return
		}
		if high, flushed := live.flush(); flushed {
			s.logger.Debug("flushed on disconnect", "user", sshSession.User(), "high", high)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type liveGameKey struct{}

// liveGame remembers the last game a session started. Bubble Tea drops the
// model when the program ends, so the server keeps its own reference.
type liveGame struct {
	mu   sync.Mutex
	game *game.Game
}

func (l *liveGame) track(f GameFactory) GameFactory {
	return func(selector string) (*game.Game, error) {
		g, err := f(selector)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.game = g
		l.mu.Unlock()
		return g, nil
	}
}

// flush persists the tracked game's high score, if there is one.
func (l *liveGame) flush() (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game == nil {
		return 0, false
	}
	high := l.game.Flush()
	l.game = nil
	return high, true
}

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu.
type SessionModel struct {
	opts       SessionOptions
	width      int
	height     int
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	err        error
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, width, height int) SessionModel {
	m := SessionModel{
		opts:   opts,
		width:  width,
		height: height,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	var high uint64
	if m.opts.High != nil {
		high = m.opts.High()
	}
	return NewMenuModel(m.opts.Selector, high, m.width, m.height)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		board := NewScoreboardModel(m.opts.Runs, m.width, m.height).embedded()
		m.scoreboard = &board
		m.menu = m.newMenu()
		return m, board.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		g, err := m.opts.NewGame(selected.Selector)
		if err != nil {
			m.err = err
			if m.opts.Logger != nil {
				m.opts.Logger.Error("cannot start game", "selector", selected.Selector, "err", err)
			}
			m.menu = m.newMenu()
			return m, nil
		}
		m.err = nil
		m.opts.Selector = selected.Selector
		gm := NewModel(g, m.opts.Assets, m.opts.TickRate, m.width, m.height).embedded()
		m.gameModel = &gm
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.Quitting() {
		m.gameModel = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText("error: "+m.err.Error(), m.width)
	}
	return view
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions, width, height int) error {
	live := &liveGame{}
	opts.NewGame = live.track(opts.NewGame)

	p := tea.NewProgram(
		NewSessionModel(opts, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	live.flush()
	return err
}
