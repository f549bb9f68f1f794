package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"torsnake/internal/config"
	"torsnake/internal/core"
	"torsnake/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game session",
	Long: `Start a play session.

The grid size comes from the config file unless overridden with
--width/--height. Gameplay rules are fixed: speed starts at 5 tiles per
second and rises by one for every food eaten, up to 30.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in tiles (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in tiles (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "torsnake",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.GridW = cfg.Grid.Width
	rt.GridH = cfg.Grid.Height
	rt.TickRate = cfg.TickRate
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "error", termErr)
	}

	if rt.ScreenW < cfg.Grid.Width || rt.ScreenH < cfg.Grid.Height+3 {
		logger.Warn("terminal smaller than the grid, the board will not fit until resized",
			"terminal", rt.ScreenW, "grid", cfg.Grid.Width)
	}

	return tui.Run(rt, cfg.Theme)
}
