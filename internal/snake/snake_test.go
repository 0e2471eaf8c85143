package snake

import (
	"testing"

	"github.com/ardzh/termsnake/internal/core"
)

func testSnake() Snake {
	// Head at (2,2), body trailing left: (1,2), (0,2)
	return NewSnake(
		core.Vec{X: 2, Y: 2},
		[]core.Vec{{X: 1, Y: 0}, {X: 1, Y: 0}},
		FacingRight,
	)
}

func TestPositionsDerivation(t *testing.T) {
	s := testSnake()

	want := []core.Vec{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	got := s.Positions()

	if len(got) != len(want) {
		t.Fatalf("Positions() length = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Eq(want[i]) {
			t.Errorf("positions[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestHeadIsFirstPosition(t *testing.T) {
	s := testSnake()
	if ps := s.Positions(); !ps[0].Eq(s.Head) {
		t.Errorf("positions[0] = %v, expected head %v", ps[0], s.Head)
	}
}

func TestWrigglePreservesLength(t *testing.T) {
	s := testSnake()
	d, f := Steer(s.Facing, Straight)

	next := s.Wriggle(d, f)
	if next.Len() != s.Len() {
		t.Errorf("wriggle changed length from %d to %d", s.Len(), next.Len())
	}
}

func TestWriggleBodyFollowsHead(t *testing.T) {
	s := testSnake()
	d, f := Steer(s.Facing, Straight)

	next := s.Wriggle(d, f)

	// Each segment occupies its predecessor's old position
	old := s.Positions()
	got := next.Positions()
	if !got[0].Eq(core.Vec{X: 3, Y: 2}) {
		t.Errorf("new head = %v, expected (3,2)", got[0])
	}
	for i := 1; i < len(got); i++ {
		if !got[i].Eq(old[i-1]) {
			t.Errorf("segment %d at %v, expected predecessor's old position %v", i, got[i], old[i-1])
		}
	}
}

func TestGrowAddsExactlyOneSegment(t *testing.T) {
	s := testSnake()
	d, f := Steer(s.Facing, Straight)

	next := s.Grow(d, f)
	if next.Len() != s.Len()+1 {
		t.Errorf("grow changed length from %d to %d, expected +1", s.Len(), next.Len())
	}

	// The old body stays put; only the head cell is new
	old := s.Positions()
	got := next.Positions()
	for i, p := range old {
		if !got[i+1].Eq(p) {
			t.Errorf("segment %d at %v, expected %v", i+1, got[i+1], p)
		}
	}
}

func TestWriggleEmptyTail(t *testing.T) {
	// A head-only snake: dropping the oldest delta must be a no-op
	s := NewSnake(core.Vec{X: 5, Y: 5}, nil, FacingUp)
	d, f := Steer(s.Facing, Straight)

	next := s.Wriggle(d, f)
	if next.Len() != 1 {
		t.Fatalf("head-only wriggle length = %d, expected 1", next.Len())
	}
	if !next.Head.Eq(core.Vec{X: 5, Y: 4}) {
		t.Errorf("head = %v, expected (5,4)", next.Head)
	}
	if len(next.Tail) != 1 || !next.Tail[0].Eq(d) {
		t.Errorf("tail = %v, expected exactly [%v]", next.Tail, d)
	}
}

func TestMovementDoesNotMutateOriginal(t *testing.T) {
	s := testSnake()
	origHead := s.Head
	origTail := append([]core.Vec(nil), s.Tail...)

	d, f := Steer(s.Facing, TurnRight)
	next := s.Wriggle(d, f)
	next = next.Grow(f.Unit(), f)
	_ = next

	if !s.Head.Eq(origHead) {
		t.Errorf("original head mutated: %v", s.Head)
	}
	for i, dd := range origTail {
		if !s.Tail[i].Eq(dd) {
			t.Errorf("original tail[%d] mutated: %v", i, s.Tail[i])
		}
	}
}

func TestNewSnakeCopiesTail(t *testing.T) {
	deltas := []core.Vec{{X: 1, Y: 0}}
	s := NewSnake(core.Vec{X: 1, Y: 1}, deltas, FacingRight)

	deltas[0] = core.Vec{X: 0, Y: 1}
	if !s.Tail[0].Eq(core.Vec{X: 1, Y: 0}) {
		t.Error("NewSnake aliased the caller's delta slice")
	}
}

func TestOccupies(t *testing.T) {
	s := testSnake()

	for _, p := range s.Positions() {
		if !s.Occupies(p) {
			t.Errorf("Occupies(%v) = false for a body cell", p)
		}
	}
	if s.Occupies(core.Vec{X: 9, Y: 9}) {
		t.Error("Occupies() = true for an empty cell")
	}
}
