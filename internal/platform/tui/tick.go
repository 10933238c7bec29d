// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain; stale chains are dropped after a reset or pause.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd schedules the next tick of chain gen after d.
func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
