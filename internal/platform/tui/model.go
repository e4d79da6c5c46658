package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Model is the Bubble Tea model for running an arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	palette    palette
	quitting   bool
	runSaved   bool
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	return newModel(game, store, logger, cfg, lipgloss.DefaultRenderer())
}

func newModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, r *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		palette:    newPalette(r),
	}
}

// configReporter is implemented by games that can fall back to default
// settings when their config fails to load.
type configReporter interface {
	ConfigError() error
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigError(); err != nil {
			m.logger.Warn("using default config", "game", m.game.ID(), "error", err)
		}
	}
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game once it is over or paused.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The simulation works in playfield units, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.lastRunID = m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveRun stores the finished run's journal. Games that do not journal
// their inputs are skipped. Returns the stored run ID, or "" if nothing was saved.
func (m Model) saveRun() string {
	if m.store == nil {
		return ""
	}
	rec, ok := m.game.(registry.Recorder)
	if !ok {
		return ""
	}

	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		GameOver: true,
		Journal:  rec.Journal(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return ""
	}
	m.logger.Debug("run saved", "game", m.game.ID(), "run", id, "score", m.gameState.Score)
	return id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// LastRunID returns the ID of the most recently stored run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(m.palette.render(m.screen))
	if m.screen.Height() > 0 {
		sb.WriteRune('\n')
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
