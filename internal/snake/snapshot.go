package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StateWallCrash GameStateType = "wall_crash"
	StateTailCrash GameStateType = "tail_crash"
	StateDone      GameStateType = "done" // Timeout schedule exhausted
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Facing   Facing
	AppleX   int
	AppleY   int
	State    GameStateType
}

// Snapshot returns the current game snapshot. Two games reset with the same
// seed and stepped with the same steering sequence yield equal snapshots.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.crash == CrashWall:
		state = StateWallCrash
	case g.crash == CrashTail:
		state = StateTailCrash
	case g.exhausted:
		state = StateDone
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: g.board.Snake.Len(),
		HeadX:    g.board.Snake.Head.X,
		HeadY:    g.board.Snake.Head.Y,
		Facing:   g.board.Snake.Facing,
		AppleX:   g.board.Apple.X,
		AppleY:   g.board.Apple.Y,
		State:    state,
	}
}
