package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered chain of cells with the head at index 0.
// length is the target size; the body catches up with it one advance after Grow.
type Snake struct {
	grid      core.Grid
	color     core.Color
	positions []core.Cell
	length    int
	direction core.Direction

	pending    core.Direction
	hasPending bool

	// Tail cell dropped by the last Advance, for renderers that erase
	// incrementally instead of redrawing the board.
	vacated    core.Cell
	hasVacated bool
}

// NewSnake creates a one-cell snake at the grid center moving right.
func NewSnake(grid core.Grid, color core.Color) *Snake {
	s := &Snake{
		grid:      grid,
		color:     color,
		direction: core.DirRight,
	}
	s.Reset()
	return s
}

// SetPendingDirection queues d for the next Advance.
// A request to reverse the current direction is ignored.
func (s *Snake) SetPendingDirection(d core.Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Advance moves the snake one cell in its direction.
func (s *Snake) Advance() {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	newHead := s.grid.Step(s.Head(), s.direction)
	s.positions = append([]core.Cell{newHead}, s.positions...)

	// Remove tail unless growing
	if len(s.positions) > s.length {
		last := len(s.positions) - 1
		s.vacated = s.positions[last]
		s.hasVacated = true
		s.positions = s.positions[:last]
	} else {
		s.hasVacated = false
	}
}

// Grow lengthens the snake by one segment, starting with the next Advance.
func (s *Snake) Grow() {
	s.length++
}

// HasSelfCollision returns true if the head overlaps any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, p := range s.positions[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Reset shrinks the snake back to a single cell at the grid center.
// The current direction is kept.
func (s *Snake) Reset() {
	s.length = 1
	s.positions = []core.Cell{s.grid.Center()}
	s.hasPending = false
	s.hasVacated = false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the occupied cells, head first.
func (s *Snake) Positions() []core.Cell {
	out := make([]core.Cell, len(s.positions))
	copy(out, s.positions)
	return out
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the queued direction, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Vacated returns the tail cell dropped by the last Advance, if any.
func (s *Snake) Vacated() (core.Cell, bool) {
	return s.vacated, s.hasVacated
}

// Occupies checks if the snake occupies the given cell.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, p := range s.positions {
		if p == c {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the snake.
func (s *Snake) Occupied() core.CellSet {
	return core.NewCellSet(s.positions...)
}

// Cells implements Drawable. The head is drawn last so it stays on top.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, 0, len(s.positions))
	for i := len(s.positions) - 1; i >= 0; i-- {
		out = append(out, s.positions[i])
	}
	return out
}

// Color implements Drawable.
func (s *Snake) Color() core.Color {
	return s.color
}
