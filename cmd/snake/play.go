package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Rows and columns the terminal renderer needs around the board:
// HUD line, top and bottom border, help line; left and right border.
const (
	fitExtraRows = 4
	fitExtraCols = 2
)

var (
	flagRenderer string
	flagFit      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the selected renderer.

Controls:
  Arrows/WASD - Change direction (terminal also accepts h/j/k/l)
  Ctrl+S      - Save a text screenshot (terminal)
  Q/Esc       - Quit

Examples:
  snake play
  snake play --renderer window --cell-size 30
  snake play --fit
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd.Flags())
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&flagRenderer, "renderer", "r", "tui", "Renderer: tui or window (see 'snake backends')")
	fs.BoolVar(&flagFit, "fit", false, "Size the board to fill the terminal (tui only)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !registry.Exists(flagRenderer) {
		return fmt.Errorf("unknown renderer %q, run 'snake backends' to see available renderers", flagRenderer)
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagFit {
		if flagRenderer != "tui" {
			return errors.New("--fit only applies to the tui renderer")
		}
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("--fit: cannot read terminal size: %w", err)
		}
		cfg = fitGrid(cfg, w, h)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt, err := cfg.Runtime(seed)
	if err != nil {
		return err
	}

	// A full-screen terminal UI owns stdout/stderr, so it only logs to a file.
	var fallback io.Writer = os.Stderr
	if flagRenderer == "tui" {
		fallback = nil
	}
	logger, closeLog, err := logging.New(logging.Options{
		Path:     flagLogFile,
		Fallback: fallback,
		Level:    flagLogLevel,
	})
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do on close failure

	backend, err := registry.Create(flagRenderer)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"renderer", backend.ID(),
		"config", source,
		"grid", fmt.Sprintf("%dx%d", rt.Grid.Width, rt.Grid.Height),
		"tps", rt.TickRate,
		"seed", seed)

	g := game.New(rt)
	runErr := backend.Run(ctx, registry.Session{Game: g, Config: rt, Logger: logger})

	st := g.State()
	logger.Info("session ended", "ticks", st.Tick, "best", st.BestLength, "resets", st.Resets)
	return runErr
}

// loadConfig loads the configuration and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	return applyOverrides(cfg, overridesFromFlags(cmd.Flags())), source, nil
}

// overrides holds command-line values that replace configured ones.
// Nil fields were not given.
type overrides struct {
	FPS        *int
	GridWidth  *int
	GridHeight *int
	CellSize   *int
}

func overridesFromFlags(fs *pflag.FlagSet) overrides {
	var o overrides
	if fs.Changed("fps") {
		o.FPS = &flagFPS
	}
	if fs.Changed("grid-width") {
		o.GridWidth = &flagGridWidth
	}
	if fs.Changed("grid-height") {
		o.GridHeight = &flagGridHeight
	}
	if fs.Changed("cell-size") {
		o.CellSize = &flagCellSize
	}
	return o
}

func applyOverrides(cfg config.Config, o overrides) config.Config {
	if o.FPS != nil {
		cfg.Speed = *o.FPS
	}
	if o.GridWidth != nil {
		cfg.Grid.Width = *o.GridWidth
	}
	if o.GridHeight != nil {
		cfg.Grid.Height = *o.GridHeight
	}
	if o.CellSize != nil {
		cfg.Window.CellSize = *o.CellSize
	}
	return cfg
}

// fitGrid sizes the board to fill a width x height terminal.
func fitGrid(cfg config.Config, width, height int) config.Config {
	cellW := max(cfg.Terminal.CellWidth, 1)
	cfg.Grid.Width = (width - fitExtraCols) / cellW
	cfg.Grid.Height = height - fitExtraRows
	return cfg
}
