package tui

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

type soundRecorder struct {
	played []core.EventKind
	closed bool
}

func (r *soundRecorder) Play(k core.EventKind) { r.played = append(r.played, k) }
func (r *soundRecorder) Close() { r.closed = true }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *breakout.Game, *soundRecorder) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	game := breakout.NewWithConfig(cfg, breakout.WithRNG(rand.New(rand.NewSource(1))))
	rec := &soundRecorder{}

	opts := OptionsFromConfig(cfg)
	opts.Sound = rec

	rt := core.DefaultConfig()
	rt.Seed = 1
	m := NewModel(game, rt, opts)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}), game, rec
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

// frames sends n+1 frame messages one tick period apart, starting at
// start, so exactly n ticks run. It returns the time of the last frame.
func frames(t *testing.T, m Model, start time.Time, n int) (Model, time.Time) {
	t.Helper()
	period := m.clock.Period()
	now := start
	m = update(t, m, FrameMsg(now))
	for range n {
		now = now.Add(period)
		m = update(t, m, FrameMsg(now))
	}
	return m, now
}

func startSession(t *testing.T, m Model) (Model, time.Time) {
	t.Helper()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, now := frames(t, m, epoch, 1)
	if m.state.Phase != core.PhasePlay {
		t.Fatalf("phase = %v, expected play after Play", m.state.Phase)
	}
	return m, now
}

func TestModelStartsInMenu(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.state.Phase != core.PhaseMenu {
		t.Errorf("initial phase = %v, expected menu", m.state.Phase)
	}
	if m.Init() == nil {
		t.Error("Init should start the frame loop")
	}
}

func TestModelPlayKeyStartsSession(t *testing.T) {
	m, game, rec := newTestModel(t)
	m, _ = startSession(t, m)

	if game.State().Bricks == 0 {
		t.Error("session should spawn bricks")
	}
	found := false
	for _, k := range rec.played {
		if k == core.EventSessionStart {
			found = true
		}
	}
	if !found {
		t.Errorf("session start event not forwarded to the sound player: %v", rec.played)
	}
}

func TestModelFirstFrameOnlyAnchors(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, FrameMsg(epoch))

	if m.clock.Ticks() != 0 {
		t.Errorf("ticks = %d after the first frame, expected 0", m.clock.Ticks())
	}
}

func TestModelRunsDueTicks(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, FrameMsg(epoch))
	m = update(t, m, FrameMsg(epoch.Add(3*m.clock.Period())))

	if m.clock.Ticks() != 3 {
		t.Errorf("ticks = %d, expected 3", m.clock.Ticks())
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, now := startSession(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !m.paused {
		t.Fatal("p should pause during play")
	}

	before := game.Snapshot().Hash()
	ticks := m.clock.Ticks()
	m, now = frames(t, m, now.Add(time.Second), 10)
	if m.clock.Ticks() != ticks {
		t.Errorf("clock advanced while paused: %d -> %d", ticks, m.clock.Ticks())
	}
	if game.Snapshot().Hash() != before {
		t.Error("simulation changed while paused")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = frames(t, m, now.Add(time.Second), 2)
	if m.clock.Ticks() != ticks+2 {
		t.Errorf("ticks = %d after resuming, expected %d", m.clock.Ticks(), ticks+2)
	}
}

func TestModelPauseIgnoredInMenu(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	if m.paused {
		t.Error("pause should only apply during play")
	}
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m, game, _ := newTestModel(t)
	m, now := startSession(t, m)

	x := game.Snapshot().PaddleX
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = frames(t, m, now, 1)

	if got := game.Snapshot().PaddleX; got >= x {
		t.Errorf("paddle x = %v, expected less than %v", got, x)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelMouseClickStartsSession(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, rect := m.menu()

	m = update(t, m, tea.MouseMsg{X: rect.X, Y: rect.Y, Action: tea.MouseActionMotion})
	if m.button != ButtonHover {
		t.Fatalf("button = %v after hover, expected hover", m.button)
	}

	m = update(t, m, tea.MouseMsg{X: rect.X, Y: rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.button != ButtonPressed {
		t.Fatalf("button = %v after press, expected pressed", m.button)
	}

	m = update(t, m, tea.MouseMsg{X: rect.X, Y: rect.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = frames(t, m, epoch, 1)

	if m.state.Phase != core.PhasePlay {
		t.Errorf("phase = %v, expected play after click", m.state.Phase)
	}
	if m.button != ButtonIdle {
		t.Errorf("button = %v after the mode change, expected idle", m.button)
	}
}

func TestModelMouseReleaseOutsideCancels(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, rect := m.menu()

	m = update(t, m, tea.MouseMsg{X: rect.X, Y: rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = frames(t, m, epoch, 1)

	if m.state.Phase != core.PhaseMenu {
		t.Errorf("phase = %v, expected menu when released outside", m.state.Phase)
	}
	if m.button != ButtonIdle {
		t.Errorf("button = %v, expected idle", m.button)
	}
}

func TestModelMouseMotionAway(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, rect := m.menu()

	m = update(t, m, tea.MouseMsg{X: rect.X, Y: rect.Y, Action: tea.MouseActionMotion})
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})

	if m.button != ButtonIdle {
		t.Errorf("button = %v after leaving, expected idle", m.button)
	}
}

func TestModelViewModes(t *testing.T) {
	m, _, _ := newTestModel(t)
	menu := m.View()
	if menu == "" {
		t.Fatal("menu view should not be empty")
	}

	m, _ = startSession(t, m)
	if play := m.View(); play == menu {
		t.Error("play view should differ from the menu")
	}
}
