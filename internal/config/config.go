// Package config provides YAML-based configuration loading and difficulty
// presets for termsnake.
package config

import "time"

// Config contains all tunable parameters of the game.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Render   RenderConfig   `yaml:"render"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScheduleConfig defines the descending input-timeout sequence that paces the
// game. Each tick waits InitialMs minus StepMs per elapsed tick, down to (but
// not including) FloorMs; when the sequence runs out the session ends.
type ScheduleConfig struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	FloorMs   int `yaml:"floor_ms"`
}

// Timeouts expands the schedule into the concrete timeout sequence.
func (s ScheduleConfig) Timeouts() []time.Duration {
	step := s.StepMs
	if step <= 0 {
		step = 1
	}
	var out []time.Duration
	for ms := s.InitialMs; ms > s.FloorMs; ms -= step {
		out = append(out, time.Duration(ms)*time.Millisecond)
	}
	return out
}

// RenderConfig defines the characters used to draw the board. Each marker is
// a one-rune string in YAML; extra runes are ignored.
type RenderConfig struct {
	SnakeMarker  string `yaml:"snake_marker"`
	AppleMarker  string `yaml:"apple_marker"`
	BorderMarker string `yaml:"border_marker"`
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// SnakeRune returns the marker for snake body cells.
func (r RenderConfig) SnakeRune() rune {
	return firstRune(r.SnakeMarker, 'o')
}

// AppleRune returns the marker for the apple cell.
func (r RenderConfig) AppleRune() rune {
	return firstRune(r.AppleMarker, '*')
}

// BorderRune returns the marker for plain-text border lines.
func (r RenderConfig) BorderRune() rune {
	return firstRune(r.BorderMarker, '-')
}

// DifficultyPreset represents a named pacing level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset overrides the timeout schedule with a named preset. Unknown
// presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Schedule = ScheduleConfig{InitialMs: 700, StepMs: 3, FloorMs: 200}
	case DifficultyNormal:
		cfg.Schedule = ScheduleConfig{InitialMs: 600, StepMs: 5, FloorMs: 0}
	case DifficultyHard:
		cfg.Schedule = ScheduleConfig{InitialMs: 450, StepMs: 7, FloorMs: 0}
	}
}
