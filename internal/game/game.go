// Package game implements the snake simulation: a snake moving on a toroidal
// grid, growing on apples and shrinking back to one cell when it bites itself.
// It knows nothing about terminals or windows; backends feed it input frames
// at a fixed rate and draw the Frame it publishes.
package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Drawable is anything the renderer paints as uniformly colored cells.
type Drawable interface {
	Cells() []core.Cell
	Color() core.Color
}

// Frame is the state handed to a renderer after each tick.
type Frame struct {
	Grid    core.Grid
	Snake   []core.Cell // Head first
	Apple   core.Cell
	Vacated *core.Cell // Tail dropped this tick; nil when nothing was dropped
	Reset   bool       // The snake was reset this tick; incremental renderers should repaint
}

// Game owns the snake and the apple and advances them one tick at a time.
type Game struct {
	grid  core.Grid
	snake *Snake
	apple *Apple

	tick       uint64
	bestLength int
	resets     int
	lastReset  bool
}

// New creates a game seeded from cfg.Seed.
func New(cfg core.RuntimeConfig) *Game {
	return NewWithRand(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// NewWithRand creates a game that places apples using rng.
func NewWithRand(cfg core.RuntimeConfig, rng Rand) *Game {
	g := &Game{
		grid:  cfg.Grid,
		snake: NewSnake(cfg.Grid, cfg.Palette.Snake),
		apple: NewApple(cfg.Grid, rng, cfg.Palette.Apple),
	}
	g.apple.Relocate(g.snake.Occupied())
	g.bestLength = g.snake.Length()
	return g
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.lastReset = false

	var events []core.Event

	// Later requests overwrite earlier ones; each is checked against the
	// direction the snake is actually moving in.
	for _, d := range input.Directions() {
		g.snake.SetPendingDirection(d)
	}

	g.snake.Advance()

	if g.snake.HasSelfCollision() {
		g.snake.Reset()
		g.apple.Relocate(g.snake.Occupied())
		g.resets++
		g.lastReset = true
		events = append(events, core.EventReset)
	}

	if g.snake.Head() == g.apple.Position() {
		g.snake.Grow()
		g.apple.Relocate(g.snake.Occupied())
		events = append(events, core.EventAte)
	}

	g.bestLength = max(g.bestLength, g.snake.Length())

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:       g.tick,
		Length:     g.snake.Length(),
		BestLength: g.bestLength,
		Resets:     g.resets,
	}
}

// Frame returns the render hand-off for the last tick.
func (g *Game) Frame() Frame {
	f := Frame{
		Grid:  g.grid,
		Snake: g.snake.Positions(),
		Apple: g.apple.Position(),
		Reset: g.lastReset,
	}
	if c, ok := g.snake.Vacated(); ok {
		f.Vacated = &c
	}
	return f
}

// Drawables returns the entities in paint order: apple first, snake on top.
func (g *Game) Drawables() []Drawable {
	return []Drawable{g.apple, g.snake}
}

// Grid returns the board dimensions.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Snake returns the snake. Only the loop goroutine may mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple.
func (g *Game) Apple() *Apple {
	return g.apple
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Length: %d, Resets: %d\n", g.tick, g.snake.Length(), g.resets))
	b.WriteString(fmt.Sprintf("Head: %s, Direction: %s, Apple: %s\n", g.snake.Head(), g.snake.Direction(), g.apple.Position()))
	return b.String()
}
