package tui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func testMenuView(state core.GameState) menuView {
	return menuView{
		title:  "Breakout",
		state:  state,
		colors: config.DefaultBreakoutConfig().Menu,
		help:   helpLine(DefaultKeyMap()),
	}
}

func TestMenuLayoutFillsArea(t *testing.T) {
	view, _ := menuLayout(80, 24, testMenuView(core.GameState{}))
	lines := strings.Split(view, "\n")

	if len(lines) != 24 {
		t.Fatalf("menu has %d lines, expected 24", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 80 {
			t.Errorf("line %d width = %d, expected 80", i, w)
		}
	}
}

func TestMenuLayoutButtonRect(t *testing.T) {
	view, rect := menuLayout(80, 24, testMenuView(core.GameState{}))
	lines := strings.Split(view, "\n")

	if rect.H != 1 || rect.W != len(playLabel)+4 {
		t.Fatalf("button rect = %+v, expected 1 row of %d cells", rect, len(playLabel)+4)
	}
	if rect.Y < 0 || rect.Y >= len(lines) {
		t.Fatalf("button row %d outside the view", rect.Y)
	}
	if got := strings.Index(lines[rect.Y], playLabel); got != rect.X+2 {
		t.Errorf("Play label at column %d, expected %d", got, rect.X+2)
	}
}

func TestMenuLayoutShowsOutcomeAndScore(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		message string
	}{
		{"first launch", core.GameState{}, ""},
		{"after a win", core.GameState{Outcome: core.OutcomeWin, Score: 50}, "You win!"},
		{"after a loss", core.GameState{Outcome: core.OutcomeLose, Score: 7}, "Game over!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view, _ := menuLayout(80, 24, testMenuView(tc.state))

			if !strings.Contains(view, "Breakout") {
				t.Error("menu should show the title")
			}
			if tc.message != "" && !strings.Contains(view, tc.message) {
				t.Errorf("menu should show %q", tc.message)
			}
			score := "Score: " + strconv.Itoa(tc.state.Score)
			if !strings.Contains(view, score) {
				t.Errorf("menu should show %q", score)
			}
		})
	}
}

func TestMenuLayoutTinyTerminal(t *testing.T) {
	view, rect := menuLayout(10, 3, testMenuView(core.GameState{}))
	lines := strings.Split(view, "\n")

	if rect.Y != buttonLine {
		t.Fatalf("button row = %d, expected %d", rect.Y, buttonLine)
	}
	if got := strings.Index(lines[rect.Y], playLabel); got != rect.X+2 {
		t.Errorf("Play label at column %d, expected %d", got, rect.X+2)
	}
}

func TestButtonColor(t *testing.T) {
	menu := config.DefaultBreakoutConfig().Menu

	tests := []struct {
		state    ButtonState
		expected string
	}{
		{ButtonIdle, menu.ButtonIdle},
		{ButtonHover, menu.ButtonHover},
		{ButtonPressed, menu.ButtonPressed},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			if got := buttonColor(menu, tc.state); got != tc.expected {
				t.Errorf("buttonColor(%v) = %q, expected %q", tc.state, got, tc.expected)
			}
		})
	}
}
