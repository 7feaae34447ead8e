// Package window hosts games in a desktop window through ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Options tune the window host.
type Options struct {
	// Scale multiplies the world size to get the initial window size.
	Scale float64
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game    registry.Game
	config  core.RuntimeConfig
	input   core.InputFrame
	pressed []ebiten.Key
	state   core.GameState
}

// NewHost resets the game and wraps it for ebiten.
func NewHost(game registry.Game, cfg core.RuntimeConfig) *Host {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)
	return &Host{
		game:   game,
		config: cfg,
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// mapKey translates an ebiten key into a game key.
func mapKey(k ebiten.Key) (gameKey core.Key, quit bool) {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return "", true
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.KeyLeft, false
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.KeyRight, false
	}
	return core.Key(k.String()), false
}

// Update samples the keys held right now and runs one simulation step.
func (h *Host) Update() error {
	h.pressed = inpututil.AppendPressedKeys(h.pressed[:0])
	h.input.Clear()
	for _, k := range h.pressed {
		gk, quit := mapKey(k)
		if quit {
			return ebiten.Termination
		}
		h.input.Press(gk)
	}

	result := h.game.Step(h.input, 1/float64(h.config.TickRate))
	h.state = result.State
	return nil
}

// Draw renders the game onto the window.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	w, hgt := h.game.World()
	h.game.Render(NewImageSurface(screen, w, hgt))
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	w, hgt := h.game.World()
	return int(w), int(hgt)
}

// State returns the game summary after the last update.
func (h *Host) State() core.GameState {
	return h.state
}

// Run opens a window and runs the game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	host := NewHost(game, cfg)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := game.World()
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(host.config.TickRate)

	return ebiten.RunGame(host)
}
