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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// EventSink receives the events emitted by every simulated frame.
type EventSink interface {
	Handle(events []breakout.Event)
}

type discardSink struct{}

func (discardSink) Handle([]breakout.Event) {}

// Keyboard nudges move the paddle target by this share of the field width.
const nudgeFraction = 1.0 / 24

// Model is the Bubble Tea model running one session.
type Model struct {
	session  *breakout.Session
	screen   *core.Screen
	layout   Layout
	assets   *Assets
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	snap     breakout.Snapshot
	sink     EventSink
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewModel creates a model for session. A nil sink or logger discards.
func NewModel(session *breakout.Session, assets *Assets, sink EventSink, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if sink == nil {
		sink = discardSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	// One row below the playfield is reserved for the help line.
	screenH := max(1, cfg.ScreenH-1)
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, screenH),
		layout:  NewLayout(session.Field(), cfg.ScreenW, screenH),
		assets:  assets,
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		input:   core.NewInputFrame(),
		snap:    session.Snapshot(),
		sink:    sink,
		logger:  logger,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	m.sink.Handle(m.session.Events())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, m.layout, &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// Nudges apply at once so key repeat moves the paddle smoothly.
	step := m.layout.Field.Width() * nudgeFraction
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.input.Point(core.ClampF(m.target()-step, m.layout.Field.XMin, m.layout.Field.XMax))
	case core.ActionRight:
		m.input.Point(core.ClampF(m.target()+step, m.layout.Field.XMin, m.layout.Field.XMax))
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// target is where the paddle is heading: the pointer once there is one,
// the paddle itself before that.
func (m Model) target() float64 {
	if m.input.HasPointer {
		return m.input.PointerX
	}
	return m.snap.Paddle.X
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	screenH := max(1, msg.Height-1)
	m.screen.Resize(msg.Width, screenH)
	m.layout = NewLayout(m.session.Field(), msg.Width, screenH)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionPause) && m.snap.State == breakout.StateOngoing {
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused, "frame", m.snap.Frame)
	}

	switch {
	case m.input.Has(core.ActionRestartGame):
		m.session.RestartGame()
		m.restarted("game")
	case m.input.Has(core.ActionRestartLevel):
		m.session.RestartLevel()
		m.restarted("level")
	case !m.paused:
		prev := m.snap.State
		m.snap = m.session.Update(breakout.Input{
			PaddleX: m.target(),
			Launch:  m.input.Has(core.ActionLaunch),
		})
		m.sink.Handle(m.snap.Events)
		if m.snap.State != prev {
			m.logger.Info("session finished", "state", m.snap.State, "level", m.snap.Level, "frame", m.snap.Frame)
		}
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restarted(what string) {
	m.paused = false
	m.snap = m.session.Snapshot()
	m.sink.Handle(m.session.Events())
	m.logger.Info("restart", "what", what, "level", m.snap.Level, "lives", m.snap.Lives)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.layout, m.assets, &m.snap, m.paused)

	dir := filepath.Join(os.Getenv("HOME"), ".breaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("level%02d_%s.txt", m.snap.Level, time.Now().Format("20060102_150405"))
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

	DrawSnapshot(m.screen, m.layout, m.assets, &m.snap, m.paused)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(session *breakout.Session, assets *Assets, sink EventSink, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(session, assets, sink, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer motion drives the paddle
	)

	_, err := p.Run()
	return err
}
