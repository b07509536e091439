package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/sfx"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Options configures the front-end around a game.
type Options struct {
	Menu       config.MenuConfig
	HoldTicks  int        // Ticks one key press keeps a direction held
	MaxCatchUp int        // Ticks per frame before the rest carries over
	Sound      sfx.Player // nil means silent
	Logger     *log.Logger
}

// OptionsFromConfig builds front-end options from a loaded config.
func OptionsFromConfig(cfg config.BreakoutConfig) Options {
	return Options{
		Menu:       cfg.Menu,
		HoldTicks:  cfg.Input.HoldTicks,
		MaxCatchUp: cfg.Sim.MaxCatchUp,
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    *core.FixedStep
	keys     KeyMap
	help     string
	held     *HeldKeys
	opts     Options
	log      *log.Logger
	state    core.GameState
	button   ButtonState
	last     time.Time
	play     bool // Play requested, delivered on the next tick
	paused   bool
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = sfx.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	keys := DefaultKeyMap()

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		clock:  core.NewFixedStep(cfg.TickRate, opts.MaxCatchUp),
		keys:   keys,
		help:   helpLine(keys),
		held:   NewHeldKeys(opts.HoldTicks),
		opts:   opts,
		log:    logger,
		state:  game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.state.Phase != core.PhasePlay {
			return m, nil
		}
		m.paused = !m.paused
		// Re-anchor on the next frame so paused time is never simulated.
		m.last = time.Time{}
		m.held.Release()
		m.log.Debug("pause toggled", "paused", m.paused)

	case core.ActionPlay:
		if m.state.Phase == core.PhaseMenu {
			m.play = true
		}

	case core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.held.Press(a)
		}
	}

	return m, nil
}

// menu returns the current menu layout.
func (m Model) menu() (string, core.Rect) {
	return menuLayout(m.config.ScreenW, m.config.ScreenH, menuView{
		title:  m.game.Title(),
		state:  m.state,
		button: m.button,
		colors: m.opts.Menu,
		help:   m.help,
	})
}

// handleMouse drives the Play button: hover on motion, pressed while the
// left button is down over it, activation on release over it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state.Phase != core.PhaseMenu {
		return m, nil
	}
	_, rect := m.menu()
	inside := rect.Contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.button == ButtonPressed {
			break
		}
		m.button = ButtonIdle
		if inside {
			m.button = ButtonHover
		}

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.button = ButtonPressed
		}

	case tea.MouseActionRelease:
		if m.button == ButtonPressed && inside {
			m.play = true
			m.button = ButtonHover
		} else if !inside {
			m.button = ButtonIdle
		}
	}

	return m, nil
}

// handleFrame runs every fixed tick that became due since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused || m.last.IsZero() {
		m.last = now
		return m, frameCmd(m.config.FPS)
	}
	elapsed := now.Sub(m.last)
	m.last = now

	for range m.clock.Advance(elapsed) {
		in := m.held.Frame()
		if m.play {
			in.Set(core.ActionPlay)
			m.play = false
		}

		prev := m.state.Phase
		result := m.game.Step(in)
		m.state = result.State
		sfx.PlayEvents(m.opts.Sound, result.Events)
		m.held.Tick()

		if prev != m.state.Phase {
			m.button = ButtonIdle
			m.held.Release()
		}
	}

	return m, frameCmd(m.config.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state.Phase == core.PhaseMenu {
		view, _ := m.menu()
		return view
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	defer model.opts.Sound.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Hover and click on the menu
	)

	_, err := p.Run()
	return err
}
