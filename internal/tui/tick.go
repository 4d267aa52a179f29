// Package tui hosts the snake game in a terminal with Bubble Tea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one period at tps.
func tickCmd(tps int) tea.Cmd {
	interval := time.Second / time.Duration(tps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
