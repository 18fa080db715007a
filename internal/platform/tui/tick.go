// Package tui provides the Bubble Tea integration for the box-pushing
// game. It handles the terminal UI loop, input mapping, and rendering;
// the game itself is turn-based, so ticks only drive the clock display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockTickMsg is sent once per second to refresh the elapsed-time display.
type ClockTickMsg time.Time

// clockTickCmd returns a Bubble Tea command that sends a clock tick message
// every second.
func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}
