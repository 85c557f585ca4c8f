// snake is the classic snake game on a wrap-around board, played in the
// terminal or in a desktop window.
//
// Usage:
//
//	snake                    - Play in the terminal
//	snake play -r window     - Play in a desktop window
//	snake backends           - List available renderers
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default search: ~/.snake, ./configs)
//	--fps <rate>        - Ticks per second (default: from config, 20)
//	--seed <value>      - RNG seed for reproducible apples (0 = time based)
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/window"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagGridWidth  int
	flagGridHeight int
	flagCellSize   int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, don't bite yourself",
	Long: `Snake on a wrap-around board. Leaving one edge brings the snake back
on the opposite side; running into its own body shrinks it back to a
single cell in the middle of the board.

Without a subcommand, snake starts a game (same as "snake play").

Examples:
  snake
  snake play --renderer window
  snake --fps 10 --seed 42
  snake play --fit
  snake config > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagGridWidth, "grid-width", 32, "Board width in cells")
	pf.IntVar(&flagGridHeight, "grid-height", 24, "Board height in cells")
	pf.IntVar(&flagCellSize, "cell-size", 20, "Cell size in pixels (window renderer)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd.Flags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
