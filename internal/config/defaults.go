package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when no config
// file is found and the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  25,
			Height: 15,
		},
		Schedule: ScheduleConfig{
			InitialMs: 600,
			StepMs:    5,
			FloorMs:   0,
		},
		Render: RenderConfig{
			SnakeMarker:  "o",
			AppleMarker:  "*",
			BorderMarker: "-",
		},
	}
}
