package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const maxBrowsedRuns = 200

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is a table of recorded runs. Enter picks a run for replay.
type RunsModel struct {
	store    *storage.Store
	gameID   string
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	status   string
	selected string
	quitting bool
}

// NewRunsModel creates a run browser over store, optionally limited to gameID.
func NewRunsModel(store *storage.Store, gameID string, width, height int) RunsModel {
	m := RunsModel{
		store:  store,
		gameID: gameID,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	height := m.height - 6 // title, borders, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunsModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.ListRuns(m.gameID, maxBrowsedRuns)
	if err != nil {
		m.status = err.Error()
		runs = nil
	}
	m.runs = runs
	m.updateTableRows()
}

func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			shortID(r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if r, ok := m.current(); ok {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RunsModel) current() (storage.Run, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.Run{}, false
	}
	return m.runs[i], true
}

func (m *RunsModel) deleteCurrent() {
	r, ok := m.current()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteRun(r.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "deleted " + shortID(r.ID)
	m.loadRuns()
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RECORDED RUNS (%d)", len(m.runs))))
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No runs recorded yet.\nPlay a game to record one.")
		b.WriteString(boxStyle.Render(empty))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	line := m.help.View(m.keys)
	if m.status != "" {
		line = m.status + "  " + line
	}
	b.WriteString(helpStyle.Render(line))

	return b.String()
}

// Selected returns the ID of the run picked for replay, or "".
func (m RunsModel) Selected() string {
	return m.selected
}

// RunRunsBrowser shows the run browser and returns the run picked for
// replay, or "" if the user quit.
func RunRunsBrowser(store *storage.Store, gameID string, width, height int) (string, error) {
	p := tea.NewProgram(NewRunsModel(store, gameID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
