package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScheduleTimeoutsDescend(t *testing.T) {
	s := ScheduleConfig{InitialMs: 600, StepMs: 5}
	timeouts := s.Timeouts()

	if len(timeouts) != 120 {
		t.Fatalf("schedule length = %d, expected 120", len(timeouts))
	}
	if timeouts[0] != 600*time.Millisecond {
		t.Errorf("first timeout = %v, expected 600ms", timeouts[0])
	}
	if last := timeouts[len(timeouts)-1]; last != 5*time.Millisecond {
		t.Errorf("last timeout = %v, expected 5ms", last)
	}

	for i := 1; i < len(timeouts); i++ {
		if timeouts[i] >= timeouts[i-1] {
			t.Fatalf("schedule not strictly descending at %d: %v >= %v", i, timeouts[i], timeouts[i-1])
		}
	}
}

func TestScheduleFloor(t *testing.T) {
	s := ScheduleConfig{InitialMs: 700, StepMs: 100, FloorMs: 300}
	timeouts := s.Timeouts()

	// 700, 600, 500, 400 - stops at (not including) the floor
	if len(timeouts) != 4 {
		t.Fatalf("schedule length = %d, expected 4: %v", len(timeouts), timeouts)
	}
	if last := timeouts[len(timeouts)-1]; last != 400*time.Millisecond {
		t.Errorf("last timeout = %v, expected 400ms", last)
	}
}

func TestScheduleZeroStepDoesNotLoopForever(t *testing.T) {
	s := ScheduleConfig{InitialMs: 10, StepMs: 0}
	if got := len(s.Timeouts()); got != 10 {
		t.Errorf("schedule length with zero step = %d, expected 10", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Board.Width != 25 || cfg.Board.Height != 15 {
		t.Errorf("default board = %dx%d, expected 25x15", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Render.SnakeRune() != 'o' || cfg.Render.AppleRune() != '*' {
		t.Errorf("default markers = %q/%q", cfg.Render.SnakeRune(), cfg.Render.AppleRune())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	yaml := `
board:
  width: 40
  height: 20
schedule:
  initial_ms: 500
  step_ms: 10
render:
  snake_marker: "#"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 40 || cfg.Board.Height != 20 {
		t.Errorf("board = %dx%d, expected 40x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Schedule.InitialMs != 500 || cfg.Schedule.StepMs != 10 {
		t.Errorf("schedule = %+v", cfg.Schedule)
	}
	if cfg.Render.SnakeRune() != '#' {
		t.Errorf("snake marker = %q, expected '#'", cfg.Render.SnakeRune())
	}
	// Unset marker falls back to the default
	if cfg.Render.AppleRune() != '*' {
		t.Errorf("apple marker = %q, expected '*'", cfg.Render.AppleRune())
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 30 {
		t.Errorf("width = %d, expected 30", cfg.Board.Width)
	}
	if cfg.Board.Height != Default().Board.Height {
		t.Errorf("height = %d, expected default", cfg.Board.Height)
	}
	if cfg.Schedule.InitialMs != Default().Schedule.InitialMs {
		t.Errorf("schedule = %+v, expected default", cfg.Schedule)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/snake.yaml"); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		initial int
	}{
		{DifficultyEasy, 700},
		{DifficultyNormal, 600},
		{DifficultyHard, 450},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Schedule.InitialMs != tc.initial {
				t.Errorf("initial_ms = %d, expected %d", cfg.Schedule.InitialMs, tc.initial)
			}
		})
	}

	// Unknown preset leaves the config untouched
	cfg := Default()
	ApplyPreset(&cfg, "nightmare")
	if cfg.Schedule != Default().Schedule {
		t.Error("unknown preset modified the schedule")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no custom path in a bare environment falls through to the
	// embedded YAML, which should agree with the hardcoded defaults.
	t.Setenv("HOME", t.TempDir()) // Keep a real user config out of the test
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board != Default().Board {
		t.Errorf("embedded board = %+v, hardcoded %+v", cfg.Board, Default().Board)
	}
	if cfg.Schedule != Default().Schedule {
		t.Errorf("embedded schedule = %+v, hardcoded %+v", cfg.Schedule, Default().Schedule)
	}
}
