package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. The game defaults to breakout.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Any key    - Start, serve a new ball, continue
  Esc/Q      - Quit

Examples:
  breakout window
  breakout window --scale 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}

	w, h := game.World()
	logger.Info("starting window host", "game", game.ID(), "scale", flagScale)
	if err := window.Run(game, runtimeConfig(int(w), int(h)), window.Options{Scale: flagScale}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
