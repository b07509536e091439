package breakout

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// MiniRows is the brick row count of the short variant.
const MiniRows = 3

// RNG is the randomness the game draws from: brick kinds and bonus ball
// directions. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

var defaultLogger = log.New(io.Discard)

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRNG injects the random source. Reset will not replace it.
func WithRNG(rng RNG) Option {
	return func(g *Game) { g.fixedRNG = rng }
}

// WithAssets sets the asset loader used to resolve ball textures.
func WithAssets(a core.AssetLoader) Option {
	return func(g *Game) { g.assets = a }
}

// WithLogger sets the game's logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRows overrides the configured number of brick rows.
func WithRows(rows int) Option {
	return func(g *Game) { g.rowsOverride = rows }
}

// WithIdentity sets the registry ID and display title.
func WithIdentity(id, title string) Option {
	return func(g *Game) { g.id, g.title = id, title }
}

// Game implements the breakout simulation and its Menu/Play state machine.
type Game struct {
	id    string
	title string

	// Set at construction
	cfg          config.BreakoutConfig
	fixedCfg     bool
	fixedRNG     RNG
	rowsOverride int
	assets       core.AssetLoader
	log          *log.Logger

	// Per Reset
	runtime core.RuntimeConfig
	rows    int
	rng     RNG
	world   *world.World

	// Session state
	mode    Mode
	score   Scoreboard
	outcome core.Outcome
	session uuid.UUID
	paddle  world.Handle
	tick    int
}

// New creates the standard game. Configuration is loaded on Reset.
func New(opts ...Option) *Game {
	g := &Game{
		id:     "breakout",
		title:  "Breakout",
		assets: core.DefaultAssets(),
		log:    defaultLogger,
		world:  world.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewMini creates the three-row variant.
func NewMini(opts ...Option) *Game {
	base := []Option{WithIdentity("breakout_mini", "Breakout (Mini)"), WithRows(MiniRows)}
	return New(append(base, opts...)...)
}

// NewWithConfig creates a game that uses cfg instead of loading from disk.
func NewWithConfig(cfg config.BreakoutConfig, opts ...Option) *Game {
	g := New(opts...)
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration in effect.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Reset clears the world and returns to the menu with a zero score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			g.log.Warn("config load failed, using defaults", "err", err)
			cfg = config.DefaultBreakoutConfig()
		}
		g.cfg = cfg
	}

	g.rows = g.cfg.Bricks.Rows
	if g.rowsOverride > 0 {
		g.rows = g.rowsOverride
	}

	if g.fixedRNG != nil {
		g.rng = g.fixedRNG
	} else {
		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- game randomness
	}

	g.world = world.New()
	g.mode = ModeMenu
	g.score.Reset()
	g.outcome = core.OutcomeNone
	g.session = uuid.Nil
	g.paddle = world.Nil
	g.tick = 0
}

// Step advances the game by one fixed tick. In the menu only the Play
// action matters; in play one simulation step runs and the session is
// evaluated afterwards.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionPlay) {
			events = g.apply(OnActivate(g.mode), events)
		}
	case ModePlay:
		g.tick++
		events = append(events, g.Simulate(in)...)
		tr := AfterTick(g.mode, g.world.Count(world.KindBall), g.world.Count(world.KindBrick))
		events = g.apply(tr, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// apply performs a transition's effects in order, then switches mode.
func (g *Game) apply(tr Transition, events []core.Event) []core.Event {
	for _, e := range tr.Effects {
		switch e {
		case EffectResetScore:
			g.score.Reset()
		case EffectSpawnSession:
			bricks := g.spawnSession()
			g.log.Info("session start", "session", g.session, "bricks", bricks, "rows", g.rows)
			events = append(events, core.Event{Kind: core.EventSessionStart})
		case EffectDestroySession:
			removed := g.world.DestroySession(g.session)
			g.log.Info("session end", "session", g.session, "outcome", tr.Outcome,
				"score", g.score.Value(), "ticks", g.tick, "removed", removed)
			g.session = uuid.Nil
			g.paddle = world.Nil
			events = append(events, core.Event{Kind: core.EventSessionEnd})
		case EffectShowMenu:
			g.outcome = tr.Outcome
		}
	}
	g.mode = tr.Next
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:   g.mode,
		Score:   g.score.Value(),
		Outcome: g.outcome,
		Balls:   g.world.Count(world.KindBall),
		Bricks:  g.world.Count(world.KindBrick),
	}
}

// Session returns the current session id, or uuid.Nil in the menu.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_mini", func() registry.Game {
		return NewMini()
	})
}
