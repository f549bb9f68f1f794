// Package tui provides the Bubble Tea integration for torsnake.
// It handles the terminal UI loop, key-to-request mapping and the frame
// clock; the simulation itself lives in internal/snake and never sees any
// of this.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. The simulation is advanced
// from elapsed clock time, not from the tick count, so a late tick never
// slows the snake down.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
