package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to breakout.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Any key    - Start, serve a new ball, continue
  Q/Ctrl+C   - Quit

Terminals do not report key releases: a key counts as held for a few ticks
after its last key event (input.hold_ticks in the config).

Examples:
  breakout play
  breakout play --seed 7
  breakout play --config ./my-breakout.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// gameArg returns the requested game, defaulting to breakout.
func gameArg(args []string) (registry.Game, error) {
	id := breakout.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q (run 'breakout list' to see available games)", id)
	}
	return registry.Create(id)
}

// runtimeConfig builds the runtime config shared by the hosts.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}

	gameCfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	var width, height int
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := runtimeConfig(width, height)

	logger.Info("starting terminal host", "game", game.ID(), "cols", cfg.ScreenW, "rows", cfg.ScreenH)
	opts := tui.Options{HoldTicks: gameCfg.Input.HoldTicks}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
