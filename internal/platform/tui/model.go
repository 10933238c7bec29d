package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Rows below the game screen reserved for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a Model. Zero values are usable.
type Options struct {
	Store  *storage.Store // nil disables run persistence
	Audio  audio.Output   // nil means silent
	Logger *log.Logger    // nil discards logs
	Clock  core.Clock     // nil uses a PausableClock
	Config core.RuntimeConfig
}

type pauser interface {
	Pause()
	Resume()
}

// runStats tracks the run being played, for persistence on game over or quit.
type runStats struct {
	start int64
	ticks uint64
	saved bool
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	audio  audio.Output
	logger *log.Logger
	clock  core.Clock
	config core.RuntimeConfig

	keys     KeyMap
	help     help.Model
	showHelp bool

	pending  core.Action
	state    core.GameState
	gen      int
	paused   bool
	run      runStats
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.NewPausableClock()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  opts.Store,
		audio:  opts.Audio,
		logger: opts.Logger.With("game", game.ID()),
		clock:  opts.Clock,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.game.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.paused {
			return m, nil
		}
		action := m.pending
		m.pending = core.ActionNone
		return m.step(action)
	}

	return m, nil
}

// handleKey processes keyboard input. Directions and restart wait for the
// next tick; quit, pause and help act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		return m.step(core.ActionQuit)
	case core.ActionPause:
		return m.togglePause()
	default:
		if m.paused || !m.accepts(action) {
			return m, nil
		}
		m.pending = core.Merge(m.pending, action)
		return m, nil
	}
}

// accepts reports whether action can affect the game in its current phase:
// directions while running, restart only after game over.
func (m Model) accepts(action core.Action) bool {
	if m.state.GameOver {
		return action == core.ActionRestart
	}
	return action.IsDirection()
}

// togglePause freezes or resumes ticking. Pausing a finished game does nothing.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}
	p, _ := m.clock.(pauser)

	m.gen++
	if m.paused {
		m.paused = false
		if p != nil {
			p.Resume()
		}
		m.logger.Debug("resumed")
		return m, tickCmd(m.game.TickInterval(), m.gen)
	}

	m.paused = true
	m.pending = core.ActionNone
	if p != nil {
		p.Pause()
	}
	m.logger.Debug("paused")
	return m, nil
}

// step runs one game tick and reacts to its events.
func (m Model) step(action core.Action) (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	wasRunning := !m.state.GameOver

	res := m.game.Step(now, action)
	m.state = res.State
	if wasRunning && action != core.ActionQuit {
		m.run.ticks++
	}

	for _, ev := range res.Events {
		m.audio.Notify(ev)

		switch ev {
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.state.Score, "length", m.state.Length, "ticks", m.run.ticks)
			m.saveRun(now, endReason(res.Events))
		case core.EventRestarted:
			m.logger.Info("restarted")
			m.run = runStats{start: now}
		case core.EventQuit:
			if !m.state.GameOver && m.run.ticks > 0 {
				m.saveRun(now, storage.EndQuit)
			}
			m.logger.Info("quit", "score", m.state.Score)
			m.quitting = true
			return m, tea.Quit
		default:
			m.logger.Debug("event", "event", ev, "score", m.state.Score)
		}
	}

	return m, tickCmd(res.Next, m.gen)
}

// endReason tells a poison death from a collision.
func endReason(events []core.Event) storage.EndReason {
	if core.HasEvent(events, core.EventPoisonEaten) {
		return storage.EndPoison
	}
	return storage.EndCollision
}

// saveRun records the current run once. Failures are logged, never fatal.
func (m *Model) saveRun(now int64, reason storage.EndReason) {
	if m.run.saved {
		return
	}
	m.run.saved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		Variant:   m.game.ID(),
		Score:     m.state.Score,
		Length:    m.state.Length,
		Ticks:     m.run.ticks,
		Duration:  time.Duration(now-m.run.start) * time.Millisecond,
		EndReason: reason,
		Seed:      m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// handleResize resizes the screen and restarts an unfinished game on the
// new grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if m.state.GameOver {
		return m, nil
	}

	m.game.Reset(m.config)
	m.state = m.game.State()
	m.pending = core.ActionNone
	m.run = runStats{start: m.clock.Now()}
	m.gen++
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	if m.paused {
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval(), m.gen)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPaused(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
