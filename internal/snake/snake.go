package snake

import "github.com/ardzh/termsnake/internal/core"

// Snake is an immutable snake value. The body is stored as the head position
// plus a sequence of relative deltas: Tail[i] is the vector from segment i+1
// to segment i, so absolute positions are derived by walking backward from the
// head. Every movement produces a brand-new Snake; no slice is mutated in
// place and no tick aliases the previous tick's tail.
type Snake struct {
	Head   core.Vec
	Tail   []core.Vec
	Facing Facing
}

// NewSnake creates a snake with the given head, tail deltas and facing.
// The deltas slice is copied so the caller keeps ownership of its argument.
func NewSnake(head core.Vec, tail []core.Vec, facing Facing) Snake {
	t := make([]core.Vec, len(tail))
	copy(t, tail)
	return Snake{Head: head, Tail: t, Facing: facing}
}

// Len returns the number of body segments including the head.
func (s Snake) Len() int {
	return len(s.Tail) + 1
}

// Positions derives the absolute body positions from the head and the tail
// deltas: positions[0] is the head, positions[i] = positions[i-1] - Tail[i-1].
func (s Snake) Positions() []core.Vec {
	ps := make([]core.Vec, s.Len())
	ps[0] = s.Head
	for i, d := range s.Tail {
		ps[i+1] = ps[i].Sub(d)
	}
	return ps
}

// Occupies reports whether any body segment sits on the given cell.
func (s Snake) Occupies(p core.Vec) bool {
	for _, q := range s.Positions() {
		if q.Eq(p) {
			return true
		}
	}
	return false
}

// Wriggle moves the snake one cell without growing: the new head is offset by
// d, the displacement becomes the newest tail delta, and the oldest delta is
// dropped so each segment slides into its predecessor's cell. Dropping from an
// empty tail is a no-op, so a one-segment snake wriggles safely.
func (s Snake) Wriggle(d core.Vec, facing Facing) Snake {
	keep := len(s.Tail)
	if keep > 0 {
		keep--
	}
	tail := make([]core.Vec, 0, keep+1)
	tail = append(tail, d)
	tail = append(tail, s.Tail[:keep]...)
	return Snake{Head: s.Head.Add(d), Tail: tail, Facing: facing}
}

// Grow moves the snake one cell and lengthens it: identical to Wriggle except
// the oldest tail delta is retained, so the body gains exactly one segment.
func (s Snake) Grow(d core.Vec, facing Facing) Snake {
	tail := make([]core.Vec, 0, len(s.Tail)+1)
	tail = append(tail, d)
	tail = append(tail, s.Tail...)
	return Snake{Head: s.Head.Add(d), Tail: tail, Facing: facing}
}
