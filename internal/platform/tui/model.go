package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Chrome taken by the border and help line around the playfield.
const (
	chromeCols = 2
	chromeRows = 3
)

// Options tune the terminal host.
type Options struct {
	// HoldTicks is how long a key counts as held after its last key event.
	HoldTicks int
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game     registry.Game
	surface  *CellSurface
	held     *HeldKeys
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(cfg)
	worldW, worldH := game.World()
	cols, rows := fieldSize(cfg.ScreenW, cfg.ScreenH, worldW, worldH)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		surface: NewCellSurface(core.NewScreen(cols, rows), worldW, worldH),
		held:    NewHeldKeys(opts.HoldTicks),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		state:   game.State(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// fieldSize fits the playfield into a terminal, leaving room for the chrome.
func fieldSize(termW, termH int, worldW, worldH float64) (int, int) {
	return FitField(termW-chromeCols, termH-chromeRows, worldW, worldH)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a key event or quits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(k)
	return m, nil
}

// handleResize refits the playfield. The game keeps running: its world
// size does not depend on the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	m.help.Width = msg.Width

	worldW, worldH := m.game.World()
	cols, rows := fieldSize(msg.Width, msg.Height, worldW, worldH)
	m.surface.Resize(cols, rows)
	return m, nil
}

// handleTick runs one simulation step with the keys held on this tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := tickInterval(m.config.TickRate).Seconds()
	result := m.game.Step(m.held, dt)
	m.state = result.State
	m.held.Advance()

	return m, tickCmd(m.config.TickRate)
}

// State returns the game summary after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Held returns the held-key tracker.
func (m Model) Held() *HeldKeys {
	return m.held
}

// Field returns the playfield buffer.
func (m Model) Field() *core.Screen {
	return m.surface.Screen()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.surface.Screen().Clear()
	m.game.Render(m.surface)
	return RenderFrame(m.surface.Screen(), m.help.View(m.keys), m.width)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
