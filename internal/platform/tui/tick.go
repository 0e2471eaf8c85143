// Package tui provides the Bubble Tea integration for termsnake.
// It handles the terminal UI loop, input mapping, and the descending-timeout
// tick schedule that paces the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the input window for the current tick has elapsed.
type TickMsg time.Time

// tickCmd arms a one-shot timer for the given input timeout. Whatever
// steering key arrived before it fires is used for the tick; none means the
// snake goes straight.
func tickCmd(timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
