package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"torsnake/internal/config"
	"torsnake/internal/core"
	"torsnake/internal/snake"
)

// Model is the Bubble Tea model running a torsnake session. It owns the
// frame clock and the screen buffer; the simulation owns everything else.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	clock    *core.Clock
	keys     KeyMap
	theme    config.ThemeConfig
	tickRate int
	quitting bool
}

// NewModel creates a model for a fresh game session.
func NewModel(cfg core.RuntimeConfig, theme config.ThemeConfig) Model {
	// Use time-based seed if not specified
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Model{
		game:     snake.NewSeeded(cfg.GridW, cfg.GridH, seed),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		clock:    core.NewClock(),
		keys:     DefaultKeyMap(),
		theme:    theme,
		tickRate: cfg.TickRate,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey translates a key press into a simulation request.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.OnQuit()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.game.OnReset()
	case key.Matches(msg, m.keys.Pause):
		m.game.OnTogglePause(m.clock.NowMS())
	case key.Matches(msg, m.keys.Up):
		m.game.TryChangeDirection(snake.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.game.TryChangeDirection(snake.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.game.TryChangeDirection(snake.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.game.TryChangeDirection(snake.DirRight)
	}

	return m, nil
}

// handleTick advances the simulation to the current clock reading.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.OnUpdate(m.clock.NowMS())

	if m.game.State() == snake.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game, m.theme)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one play session.
func Run(cfg core.RuntimeConfig, theme config.ThemeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, theme),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
