package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Fallback terminal size used until the first WindowSizeMsg arrives.
const (
	defaultTermW = 80
	defaultTermH = 30
)

// Model is the Bubble Tea model running one snake session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	styles     styleCache
	layout     Layout
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(s registry.Session) Model {
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		game:       s.Game,
		config:     s.Config,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     make(styleCache),
		inputFrame: core.NewInputFrame(),
		gameState:  s.Game.State(),
	}
	m.resize(defaultTermW, defaultTermH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records direction requests in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit requested", "key", msg.String())
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// resize recomputes the screen buffer and board layout. The game itself is
// never reset by a resize.
func (m *Model) resize(width, height int) {
	screenH := max(height-helpHeight, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(width, screenH)
	} else {
		m.screen.Resize(width, screenH)
	}
	m.help.Width = width
	m.layout = NewLayout(m.game.Grid(), m.config.CellWidth, width, screenH)
	if m.layout.TooSmall {
		m.logger.Debug("terminal too small", "have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", m.layout.NeedW, m.layout.NeedH+helpHeight))
	}
}

// handleTick advances the game one step. The game is paused while the
// board does not fit; queued input is kept for the next real step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.layout.TooSmall {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	st := result.State
	if result.Has(core.EventAte) {
		m.logger.Debug("apple eaten", "tick", st.Tick, "length", st.Length,
			"apple", m.game.Apple().Position())
	}
	if result.Has(core.EventReset) {
		m.logger.Info("snake reset", "tick", st.Tick, "best", st.BestLength, "resets", st.Resets)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.snake/screenshots.
func (m Model) saveScreenshot() {
	DrawBoard(m.screen, m.game, m.layout, m.config.Palette)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	data := m.screen.String() + "\n\n" + m.game.DebugState()
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.game, m.layout, m.config.Palette)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Backend runs sessions in the terminal.
type Backend struct{}

// ID returns the renderer identifier used on the command line.
func (Backend) ID() string { return "tui" }

// Title returns a human-readable name.
func (Backend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Backend) Run(ctx context.Context, s registry.Session) error {
	model := NewModel(s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return fmt.Errorf("tui: %w", err)
}

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}
