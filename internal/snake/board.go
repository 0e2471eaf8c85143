package snake

import (
	"math/rand"

	"github.com/ardzh/termsnake/internal/core"
)

// NoApple is the sentinel apple position meaning "no apple on the board".
// It only occurs when the snake has filled every cell.
var NoApple = core.Vec{X: -1, Y: -1}

// Board is an immutable game state: the snake, the apple and the board size.
// Advance produces a new Board each tick; the previous value is discarded by
// the caller, so ownership transfers tick-to-tick and nothing is shared.
type Board struct {
	Snake Snake
	Apple core.Vec
	Size  core.Vec // width x height
}

// NewBoard creates the starting position for a board of the given size: a
// three-segment snake near the top-left corner heading right, and an apple
// rolled onto a free cell.
func NewBoard(size core.Vec, rng *rand.Rand) Board {
	s := NewSnake(
		core.Vec{X: 2, Y: 2},
		[]core.Vec{{X: 1, Y: 0}, {X: 1, Y: 0}},
		FacingRight,
	)
	b := Board{Snake: s, Apple: NoApple, Size: size}
	b.Apple = b.rollApple(rng)
	return b
}

// HasApple reports whether an apple is currently on the board.
func (b Board) HasApple() bool {
	return !b.Apple.Eq(NoApple)
}

// Advance computes the next board state from one steering command. It has no
// failure modes: collisions are the caller's concern (WallCrash/TailCrash),
// evaluated on the current board before advancing.
//
// When the new head lands on the apple the snake grows and a replacement apple
// is rolled immediately, in the same transition, so the board never renders
// appleless mid-game.
func (b Board) Advance(st Steering, rng *rand.Rand) Board {
	d, facing := Steer(b.Snake.Facing, st)
	newHead := b.Snake.Head.Add(d)

	next := Board{Size: b.Size, Apple: b.Apple}
	if b.HasApple() && newHead.Eq(b.Apple) {
		next.Snake = b.Snake.Grow(d, facing)
		next.Apple = next.rollApple(rng)
	} else {
		next.Snake = b.Snake.Wriggle(d, facing)
	}
	return next
}

// rollApple picks a uniformly random cell not occupied by the snake.
// Returns NoApple when the snake covers the whole board.
func (b Board) rollApple(rng *rand.Rand) core.Vec {
	free := make([]core.Vec, 0, b.Size.X*b.Size.Y)
	for y := 0; y < b.Size.Y; y++ {
		for x := 0; x < b.Size.X; x++ {
			p := core.Vec{X: x, Y: y}
			if !b.Snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return NoApple
	}
	return free[rng.Intn(len(free))]
}

// WallCrash reports whether the head has left the board: x outside [0, width)
// or y outside [0, height).
func (b Board) WallCrash() bool {
	h := b.Snake.Head
	return h.X < 0 || h.X >= b.Size.X || h.Y < 0 || h.Y >= b.Size.Y
}

// TailCrash reports whether the head coordinate appears more than once in the
// derived body position list, i.e. the snake has run into itself.
func (b Board) TailCrash() bool {
	ps := b.Snake.Positions()
	for _, p := range ps[1:] {
		if p.Eq(ps[0]) {
			return true
		}
	}
	return false
}
