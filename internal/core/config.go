package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Backends use the cell sizes to map grid cells onto their drawing surface.
type RuntimeConfig struct {
	Grid      Grid    // Board dimensions in cells
	TickRate  int     // Simulation ticks per second
	Seed      int64   // RNG seed for apple placement (0 = time based, resolved by the caller)
	CellSize  int     // Pixels per cell edge (window backend)
	CellWidth int     // Terminal columns per cell (terminal backend)
	Palette   Palette // Board colors
	Title     string  // Window title
}

// DefaultConfig returns a RuntimeConfig with sensible defaults:
// a 640x480 board of 20px cells moving at 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:      NewGrid(32, 24),
		TickRate:  20,
		Seed:      0,
		CellSize:  20,
		CellWidth: 2,
		Palette:   DefaultPalette(),
		Title:     "Snake",
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Tick       uint64 // Ticks simulated so far
	Length     int    // Current target length of the snake
	BestLength int    // Longest snake of this session (not persisted)
	Resets     int    // Self-collisions so far
}

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventNone  Event = iota
	EventAte         // The snake ate the apple and will grow
	EventReset       // The snake hit itself and was reset
)

func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventReset:
		return "reset"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has returns true if the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
