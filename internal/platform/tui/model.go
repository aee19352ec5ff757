package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/loop"
)

// footerRows is the number of rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	game   *breakout.Game
	screen *core.Screen
	canvas *ScreenCanvas
	styles styleCache

	keys  KeyMap
	help  help.Model
	held  *heldKeys
	queue *core.EventQueue

	pacer  loop.Pacer
	logger *log.Logger
	now    func() time.Time

	quitting bool
}

// NewModel creates a model for g sized for a width x height terminal.
func NewModel(g *breakout.Game, cfg config.Config, width, height int, logger *log.Logger) Model {
	screen := core.NewScreen(width, playfieldRows(height))

	return Model{
		game:   g,
		screen: screen,
		canvas: NewScreenCanvas(screen, cfg.Window.Width, cfg.Window.Height),
		styles: make(styleCache),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   newHeldKeys(cfg.Terminal.KeyHold),
		queue:  &core.EventQueue{},
		pacer:  loop.NewPacer(cfg.TickRate),
		logger: logger,
		now:    time.Now,
	}
}

func playfieldRows(height int) int {
	if height-footerRows < 1 {
		return 1
	}
	return height - footerRows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Budget())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues input events; they are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.queue.Push(core.Quit())
		return m, nil
	}

	k := MapKey(msg)
	switch k {
	case core.KeyNone:
		return m, nil
	case core.KeySpace:
		m.logger.Debug("restart requested", "status", m.game.Status())
		m.queue.Push(core.KeyDown(k))
	default:
		// Every repeat re-sends the press, like a held key on a keyboard.
		m.queue.Push(core.KeyDown(k))
		m.held.Press(k, m.now())
	}
	return m, nil
}

// handleTick runs one frame: drain input, update, schedule the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frameStart := m.now()

	for _, ev := range m.held.Expire(frameStart) {
		m.queue.Push(ev)
	}

	res := m.game.Frame(m.queue.Drain())
	if res.Finished {
		m.logger.Info("session finished", "outcome", res.Outcome, "tick", m.game.Tick(),
			"bricks_left", m.game.VisibleBricks())
	}
	if res.BricksCleared > 0 {
		m.logger.Debug("bricks cleared", "count", res.BricksCleared, "tick", m.game.Tick())
	}

	if m.game.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.pacer.Delay(m.now().Sub(frameStart)))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *breakout.Game, cfg config.Config, width, height int, logger *log.Logger, opts ...tea.ProgramOption) error {
	model := NewModel(g, cfg, width, height, logger)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	return err
}
