// Package config provides YAML-based game configuration loading for the
// snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for the snake game.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Speed    int            `yaml:"speed"` // Ticks per second
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig defines parameters of the window renderer.
type WindowConfig struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cell_size"`
}

// TerminalConfig defines parameters of the terminal renderer.
type TerminalConfig struct {
	CellWidth int `yaml:"cell_width"`
}

// ColorsConfig holds "#RRGGBB" colors of the board.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
	Text       string `yaml:"text"`
}

// Validate checks that the configuration describes a playable board.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Speed < 1 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %d", c.Speed))
	}
	if c.Window.CellSize < 1 {
		errs = append(errs, fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize))
	}
	if c.Terminal.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("terminal.cell_width must be positive, got %d", c.Terminal.CellWidth))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Palette parses the configured colors.
func (c Config) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"border", c.Colors.Border, &p.Border},
		{"apple", c.Colors.Apple, &p.Apple},
		{"snake", c.Colors.Snake, &p.Snake},
		{"text", c.Colors.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Runtime converts the configuration into the runtime settings handed to
// the game and its backend.
func (c Config) Runtime(seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, err := c.Palette()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	return core.RuntimeConfig{
		Grid:      core.NewGrid(c.Grid.Width, c.Grid.Height),
		TickRate:  c.Speed,
		Seed:      seed,
		CellSize:  c.Window.CellSize,
		CellWidth: c.Terminal.CellWidth,
		Palette:   palette,
		Title:     c.Window.Title,
	}, nil
}
