package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Restart, k.Back, k.Quit},
	}
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}
