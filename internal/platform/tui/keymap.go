package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardzh/termsnake/internal/snake"
)

// The two active steering keys. Every other key (and a timeout) leaves the
// snake going straight.
const (
	KeyTurnLeft  = "a"
	KeyTurnRight = "d"
)

// SessionAction is a platform-level action, separate from steering.
type SessionAction int

const (
	SessionNone SessionAction = iota
	SessionQuit
	SessionRestart
)

// KeyMapper translates Bubble Tea key messages to steering commands and
// session actions. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapSteering translates a key message to a steering command.
// ok is false for keys that are not steering input.
func (km *KeyMapper) MapSteering(msg tea.KeyMsg) (st snake.Steering, ok bool) {
	switch msg.String() {
	case KeyTurnLeft:
		return snake.TurnLeft, true
	case KeyTurnRight:
		return snake.TurnRight, true
	}
	return snake.Straight, false
}

// MapSession translates a key message to a session action.
func (km *KeyMapper) MapSession(msg tea.KeyMsg) SessionAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return SessionQuit
	case "r":
		return SessionRestart
	}
	return SessionNone
}
