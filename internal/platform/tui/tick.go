// Package tui drives registered games from a Bubble Tea program, locally or
// over SSH. It owns key mapping, frame timing, colour output and run storage.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock period of one tick. It matches the
// virtual time a game advances per Step, so play runs at real speed.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.TickMillis() * float64(time.Millisecond))
}

// tickCmd schedules the next TickMsg.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(tickInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
