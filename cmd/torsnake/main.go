// torsnake is a terminal snake game on a toroidal grid: the board has no
// walls, every edge wraps to the opposite one.
//
// Usage:
//
//	torsnake              - Play with the default configuration
//	torsnake play         - Same, explicit
//
// Global flags:
//
//	--fps <rate>     - Render frame rate (default: 60)
//	--seed <value>   - RNG seed for food placement (0 = time-based)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "torsnake",
	Short: "Snake on a torus, in your terminal",
	Long: `torsnake is a terminal snake game played on a toroidal grid:
there are no walls, the snake wraps around every edge.

Controls:
  Arrows/WASD  - Turn
  Space        - Start / pause / resume
  Esc          - Reset
  Q/Ctrl+C     - Quit

Examples:
  torsnake
  torsnake play --fps 30
  torsnake play --width 24 --height 24
  torsnake play --config ./my-torsnake.yaml`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
}
