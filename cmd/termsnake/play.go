package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ardzh/termsnake/internal/config"
	"github.com/ardzh/termsnake/internal/platform/tui"
	"github.com/ardzh/termsnake/internal/snake"
	"github.com/ardzh/termsnake/internal/storage"
)

var (
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls:
  A          - Turn left (relative to travel direction)
  D          - Turn right
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Any other key, or no key within the tick window, keeps the snake going
straight. The window shrinks every tick; outlast the whole schedule and the
game ends in your favor.

Difficulty options:
  easy   - Longer tick windows, gentler shrink
  normal - The default schedule
  hard   - Short windows from the start

Examples:
  termsnake play
  termsnake play --difficulty hard
  termsnake play --config ./my-snake.yaml --seed 42`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a tick log to ~/.termsnake/debug.log")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "termsnake"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Terminal size for centering; the board itself is config-sized
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil // Game still works without score keeping
		} else {
			defer store.Close()
		}
	}

	// The TUI owns the terminal, so the debug log goes to a file
	sessionLogger := log.New(io.Discard)
	if flagDebug {
		if f, logErr := openDebugLog(); logErr == nil {
			defer f.Close()
			sessionLogger = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Level:           log.DebugLevel,
			})
		} else {
			logger.Warn("could not open debug log", "error", logErr)
		}
	}

	game := snake.NewGame(cfg)
	result, err := tui.Run(game, tui.SessionOptions{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Store:   store,
		Logger:  sessionLogger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	// Game over is a normal outcome, not an error: report and exit 0
	if msg := result.Crash.Message(); msg != "" {
		fmt.Println(msg)
	}
	fmt.Printf("Apples eaten: %d (%d ticks)\n", result.Score, result.Ticks)
	return nil
}

// openDebugLog opens (creating if needed) the per-user debug log file.
func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".termsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
