// Package window is the desktop backend: Ebitengine drives the tick loop
// and every grid cell is painted as a filled square with a 1px border.
package window

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// keyAction returns the action bound to k, or ActionNone.
func keyAction(k ebiten.Key) core.Action {
	return keyActions[k]
}

// Rect is a cell's square on the window in pixels.
type Rect struct {
	X, Y, Size float32
	Fill       core.Color
}

// cellRects lists the squares to paint for a frame: the apple first, then
// the snake on top of it.
func cellRects(f game.Frame, pal core.Palette, cellSize int) []Rect {
	rects := make([]Rect, 0, len(f.Snake)+1)
	add := func(c core.Cell, clr core.Color) {
		x, y := f.Grid.ToScreen(c, cellSize, cellSize)
		rects = append(rects, Rect{
			X:    float32(x),
			Y:    float32(y),
			Size: float32(cellSize),
			Fill: clr,
		})
	}
	add(f.Apple, pal.Apple)
	for _, c := range f.Snake {
		add(c, pal.Snake)
	}
	return rects
}

// snakeGame adapts a game session to ebiten.Game. Update runs at the
// configured tick rate, so one Update is one game step.
type snakeGame struct {
	ctx    context.Context
	game   *game.Game
	config core.RuntimeConfig
	logger *log.Logger
	input  core.InputFrame
	keys   []ebiten.Key
}

func newSnakeGame(ctx context.Context, s registry.Session) *snakeGame {
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &snakeGame{
		ctx:    ctx,
		game:   s.Game,
		config: s.Config,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Update implements ebiten.Game.
func (g *snakeGame) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	return g.step(g.keys)
}

// step applies the keys pressed since the last tick and advances the game.
// Returns ebiten.Termination when the session should end.
func (g *snakeGame) step(keys []ebiten.Key) error {
	if err := g.ctx.Err(); err != nil {
		g.logger.Info("stopping", "reason", err)
		return ebiten.Termination
	}

	for _, k := range keys {
		action := keyAction(k)
		if action == core.ActionQuit {
			g.logger.Info("quit requested", "key", k.String())
			return ebiten.Termination
		}
		g.input.Set(action)
	}

	result := g.game.Step(g.input)
	g.input.Clear()

	st := result.State
	if result.Has(core.EventAte) {
		g.logger.Debug("apple eaten", "tick", st.Tick, "length", st.Length,
			"apple", g.game.Apple().Position())
	}
	if result.Has(core.EventReset) {
		g.logger.Info("snake reset", "tick", st.Tick, "best", st.BestLength, "resets", st.Resets)
	}
	return nil
}

// Draw implements ebiten.Game. The whole board is repainted every frame,
// which also covers the cell vacated by the tail and a reset.
func (g *snakeGame) Draw(screen *ebiten.Image) {
	pal := g.config.Palette
	screen.Fill(pal.Background)

	for _, r := range cellRects(g.game.Frame(), pal, g.config.CellSize) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.Size, r.Size, r.Fill, false)
		vector.StrokeRect(screen, r.X+0.5, r.Y+0.5, r.Size-1, r.Size-1, 1, pal.Border, false)
	}
}

// Layout implements ebiten.Game. The logical screen is always the board;
// Ebitengine scales it to the window.
func (g *snakeGame) Layout(_, _ int) (int, int) {
	return g.windowSize()
}

func (g *snakeGame) windowSize() (int, int) {
	grid := g.game.Grid()
	return grid.Width * g.config.CellSize, grid.Height * g.config.CellSize
}

// Backend runs sessions in a desktop window.
type Backend struct{}

// ID returns the renderer identifier used on the command line.
func (Backend) ID() string { return "window" }

// Title returns a human-readable name.
func (Backend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until it is closed, the player quits
// or ctx is cancelled.
func (Backend) Run(ctx context.Context, s registry.Session) error {
	g := newSnakeGame(ctx, s)

	w, h := g.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(s.Config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.Config.TickRate)

	g.logger.Info("window opened", "size", fmt.Sprintf("%dx%d", w, h), "tps", s.Config.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func init() {
	registry.Register("window", func() registry.Backend { return Backend{} })
}
