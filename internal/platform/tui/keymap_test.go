package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame); quit {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("space should set ActionJump")
	}

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("ctrl+c should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded in the frame")
	}
}
