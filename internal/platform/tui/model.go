package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ardzh/termsnake/internal/core"
	"github.com/ardzh/termsnake/internal/snake"
	"github.com/ardzh/termsnake/internal/storage"
)

// SessionOptions configures a game session.
type SessionOptions struct {
	ScreenW int
	ScreenH int
	Seed    int64          // 0 means derive from the current time
	Store   *storage.Store // May be nil; scores are then not persisted
	Logger  *log.Logger
}

// Result summarizes a finished session for the caller.
type Result struct {
	Crash snake.CrashKind // CrashNone when the timeout schedule ran out
	Score int
	Ticks uint64
}

// Model is the Bubble Tea model driving one game session. Each tick it arms a
// timer with the next timeout from the schedule; the first steering key that
// arrives before the timer fires is buffered, and when it fires the buffered
// steering (or Straight) is fed to the game.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keyMapper *KeyMapper
	seed      int64

	steering    snake.Steering
	hasSteering bool

	quitting bool
	saved    bool // Whether the finished run has been persisted
}

// NewModel creates a session model. The game must already be constructed; the
// model resets it with the session seed.
func NewModel(game *snake.Game, opts SessionOptions) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(seed)

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:     opts.Store,
		logger:    opts.Logger,
		keyMapper: NewKeyMapper(),
		seed:      seed,
	}
}

// Init arms the first input timeout.
func (m Model) Init() tea.Cmd {
	if d, ok := m.game.NextTimeout(); ok {
		return tickCmd(d)
	}
	return tea.Quit
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapSession(msg) {
	case SessionQuit:
		m.quitting = true
		return m, tea.Quit

	case SessionRestart:
		if m.game.Over() {
			m.seed = time.Now().UnixNano()
			m.game.Reset(m.seed)
			m.hasSteering = false
			m.saved = false
			if d, ok := m.game.NextTimeout(); ok {
				return m, tickCmd(d)
			}
		}
		return m, nil
	}

	// One steering event per tick: the first recognized key wins, later keys
	// and unrecognized keys are dropped.
	if st, ok := m.keyMapper.MapSteering(msg); ok && !m.hasSteering {
		m.steering = st
		m.hasSteering = true
	}

	return m, nil
}

// handleTick runs one game tick with the buffered steering.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Over() {
		return m, nil
	}

	st := snake.Straight
	if m.hasSteering {
		st = m.steering
	}
	m.hasSteering = false

	m.game.Step(st)

	snap := m.game.Snapshot()
	m.logger.Debug("tick",
		"n", snap.Tick,
		"steering", st,
		"head", fmt.Sprintf("(%d,%d)", snap.HeadX, snap.HeadY),
		"facing", snap.Facing,
		"len", snap.SnakeLen,
		"state", snap.State,
	)

	if m.game.Over() {
		m.saveRun()
		return m, nil
	}

	if d, ok := m.game.NextTimeout(); ok {
		return m, tickCmd(d)
	}
	return m, nil
}

// saveRun persists the finished game once, best-effort.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	cause := "done"
	switch m.game.Crash() {
	case snake.CrashWall:
		cause = "wall"
	case snake.CrashTail:
		cause = "tail"
	}

	run := storage.Run{
		Score: m.game.Score(),
		Ticks: int(m.game.Tick()),
		Cause: cause,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderHUD()

	board := m.game.Board()
	offsetX := core.Max(0, (m.screen.Width()-board.Size.X-2)/2)
	offsetY := core.Max(2, (m.screen.Height()-board.Size.Y-2)/2)
	snake.Draw(board, m.screen, offsetX, offsetY, m.game.Markers())

	switch {
	case m.game.Crash() != snake.CrashNone:
		m.renderOverlay(m.game.Crash().Message(), "Press R to restart, Q to quit")
	case m.game.Exhausted():
		m.renderOverlay("You outlasted the clock!", fmt.Sprintf("Final score: %d", m.game.Score()))
	}

	return RenderScreen(m.screen)
}

// renderHUD draws the top status bar.
func (m Model) renderHUD() {
	hud := fmt.Sprintf(" termsnake — Apples: %d  Ticks: %d", m.game.Score(), m.game.Tick())
	if d, ok := m.game.NextTimeout(); ok {
		hud += fmt.Sprintf("  Tick window: %dms", d.Milliseconds())
	}
	m.screen.DrawText(0, 0, hud)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (m Model) renderOverlay(line1, line2 string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			m.screen.Set(x, y, ' ')
		}
	}
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
}

// Run starts a game session and blocks until it ends.
func Run(game *snake.Game, opts SessionOptions) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected final model %T", final)
	}

	return Result{
		Crash: m.game.Crash(),
		Score: m.game.Score(),
		Ticks: m.game.Tick(),
	}, nil
}
