// Package snake implements the game state machine: an immutable snake and
// board advanced one tick at a time by pure transition functions. The package
// knows nothing about terminals or timing; the platform layer feeds it one
// steering command per tick and displays whatever it renders.
package snake

import "github.com/ardzh/termsnake/internal/core"

// Facing is the absolute compass direction the snake's head is moving.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Unit returns the unit displacement vector for this facing.
// The y axis grows downward, so up is (0,-1).
func (f Facing) Unit() core.Vec {
	switch f {
	case FacingUp:
		return core.Vec{X: 0, Y: -1}
	case FacingDown:
		return core.Vec{X: 0, Y: 1}
	case FacingLeft:
		return core.Vec{X: -1, Y: 0}
	default:
		return core.Vec{X: 1, Y: 0}
	}
}

// Left returns the facing after a 90° turn to the player's left.
func (f Facing) Left() Facing {
	switch f {
	case FacingUp:
		return FacingLeft
	case FacingLeft:
		return FacingDown
	case FacingDown:
		return FacingRight
	default:
		return FacingUp
	}
}

// Right returns the facing after a 90° turn to the player's right.
func (f Facing) Right() Facing {
	switch f {
	case FacingUp:
		return FacingRight
	case FacingRight:
		return FacingDown
	case FacingDown:
		return FacingLeft
	default:
		return FacingUp
	}
}

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Steering is a relative turn command, interpreted against the current facing.
// Straight is the zero value so a missing input naturally means "keep going".
type Steering int

const (
	Straight Steering = iota
	TurnLeft
	TurnRight
)

func (s Steering) String() string {
	switch s {
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	default:
		return "straight"
	}
}

// Steer resolves a steering command against the current facing. It returns the
// displacement for this tick and the facing after the turn. The displacement
// is the unit vector of the resulting facing: steering changes heading and
// movement in the same tick.
func Steer(f Facing, s Steering) (core.Vec, Facing) {
	var next Facing
	switch s {
	case TurnLeft:
		next = f.Left()
	case TurnRight:
		next = f.Right()
	default:
		next = f
	}
	return next.Unit(), next
}
