package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Length    int
	Positions []core.Cell
	Dir       core.Direction
	Apple     core.Cell
	Resets    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Length:    g.snake.Length(),
		Positions: g.snake.Positions(),
		Dir:       g.snake.Direction(),
		Apple:     g.apple.Position(),
		Resets:    g.resets,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Length != other.Length || s.Dir != other.Dir ||
		s.Apple != other.Apple || s.Resets != other.Resets ||
		len(s.Positions) != len(other.Positions) {
		return false
	}
	for i := range s.Positions {
		if s.Positions[i] != other.Positions[i] {
			return false
		}
	}
	return true
}
