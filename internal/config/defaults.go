package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default snake configuration:
// a 640x480 window of 20px cells, 20 ticks per second.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Speed: 20,
		Window: WindowConfig{
			Title:    "Snake",
			CellSize: 20,
		},
		Terminal: TerminalConfig{
			CellWidth: 2,
		},
		Colors: ColorsConfig{
			Background: core.ColorBackground.Hex(),
			Border:     core.ColorBorder.Hex(),
			Apple:      core.ColorApple.Hex(),
			Snake:      core.ColorSnake.Hex(),
			Text:       core.ColorText.Hex(),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
