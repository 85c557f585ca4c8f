package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Rand is the source of randomness for apple placement.
// *rand.Rand satisfies it; tests substitute a scripted source.
type Rand interface {
	Intn(n int) int
}

// Apple occupies a single cell that the snake can eat.
type Apple struct {
	grid     core.Grid
	rng      Rand
	color    core.Color
	position core.Cell
}

// NewApple creates an apple at the center of the grid.
// Call Relocate before the first tick to place it off the snake.
func NewApple(grid core.Grid, rng Rand, color core.Color) *Apple {
	return &Apple{
		grid:     grid,
		rng:      rng,
		color:    color,
		position: grid.Center(),
	}
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Cell {
	return a.position
}

// Relocate samples uniformly random cells until it finds one that is not
// occupied, moves the apple there and returns it.
// occupied must not cover the whole grid, otherwise Relocate never returns.
func (a *Apple) Relocate(occupied core.CellSet) core.Cell {
	for {
		c := core.Cell{
			X: a.rng.Intn(a.grid.Width),
			Y: a.rng.Intn(a.grid.Height),
		}
		if !occupied.Has(c) {
			a.position = c
			return c
		}
	}
}

// Cells implements Drawable.
func (a *Apple) Cells() []core.Cell {
	return []core.Cell{a.position}
}

// Color implements Drawable.
func (a *Apple) Color() core.Color {
	return a.color
}
