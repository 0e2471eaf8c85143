package snake

import (
	"math/rand"
	"time"

	"github.com/ardzh/termsnake/internal/config"
	"github.com/ardzh/termsnake/internal/core"
)

// CrashKind identifies which fatal collision ended the game.
type CrashKind int

const (
	CrashNone CrashKind = iota
	CrashWall
	CrashTail
)

// Message returns the terminal message for this crash, empty for CrashNone.
func (c CrashKind) Message() string {
	switch c {
	case CrashWall:
		return "Wall crash!"
	case CrashTail:
		return "Tail crash!"
	default:
		return ""
	}
}

// Game is the mutable session wrapper around the immutable Board value. It
// owns the RNG, the tick counter, the score and the descending timeout
// schedule; the platform layer calls Step once per tick with the steering
// command read (or defaulted to Straight) within the current timeout.
type Game struct {
	cfg      config.Config
	markers  Markers
	timeouts []time.Duration

	rng   *rand.Rand
	board Board

	tick      uint64
	tickIdx   int // Index into timeouts; also the number of ticks issued
	score     int
	crash     CrashKind
	exhausted bool
}

// NewGame creates a game for the given configuration. Call Reset before the
// first Step.
func NewGame(cfg config.Config) *Game {
	return &Game{
		cfg: cfg,
		markers: Markers{
			Snake:  cfg.Render.SnakeRune(),
			Apple:  cfg.Render.AppleRune(),
			Border: cfg.Render.BorderRune(),
		},
		timeouts: cfg.Schedule.Timeouts(),
	}
}

// Reset (re)initializes the game with the given RNG seed. The same seed and
// the same steering sequence reproduce the same run exactly.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.board = NewBoard(core.Vec{X: g.cfg.Board.Width, Y: g.cfg.Board.Height}, g.rng)
	g.tick = 0
	g.tickIdx = 0
	g.score = 0
	g.crash = CrashNone
	g.exhausted = false
}

// Step runs one tick: evaluate collisions on the current board, then advance
// it with the given steering. A detected crash freezes the board in its
// terminal state; the caller decides how to report it.
func (g *Game) Step(st Steering) {
	if g.Over() {
		return
	}

	switch {
	case g.board.WallCrash():
		g.crash = CrashWall
		return
	case g.board.TailCrash():
		g.crash = CrashTail
		return
	}

	prevLen := g.board.Snake.Len()
	g.board = g.board.Advance(st, g.rng)
	if g.board.Snake.Len() > prevLen {
		g.score++
	}

	g.tick++
	g.tickIdx++
	if g.tickIdx >= len(g.timeouts) {
		g.exhausted = true
	}
}

// NextTimeout returns the input timeout for the upcoming tick. ok is false
// once the schedule is exhausted and no further ticks should be issued.
func (g *Game) NextTimeout() (d time.Duration, ok bool) {
	if g.Over() || g.tickIdx >= len(g.timeouts) {
		return 0, false
	}
	return g.timeouts[g.tickIdx], true
}

// Board returns the current board value.
func (g *Game) Board() Board {
	return g.board
}

// Markers returns the render markers from the game configuration.
func (g *Game) Markers() Markers {
	return g.markers
}

// Over reports whether the session has ended, by crash or by outlasting the
// timeout schedule.
func (g *Game) Over() bool {
	return g.crash != CrashNone || g.exhausted
}

// Crash returns which collision ended the game, CrashNone while playing or
// when the schedule ran out first.
func (g *Game) Crash() CrashKind {
	return g.crash
}

// Exhausted reports whether the timeout schedule ran out before any crash.
func (g *Game) Exhausted() bool {
	return g.exhausted
}

// Score returns the number of apples eaten.
func (g *Game) Score() int {
	return g.score
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() uint64 {
	return g.tick
}
