package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ButtonState is the visual state of the Play button.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHover
	ButtonPressed
)

// String returns a human-readable state name.
func (b ButtonState) String() string {
	switch b {
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	default:
		return "idle"
	}
}

// playLabel is the Play button's text before padding.
const playLabel = "Play"

// buttonLine is the index of the Play button within the menu block.
const buttonLine = 5

// menuView holds everything the menu screen shows.
type menuView struct {
	title  string
	state  core.GameState
	button ButtonState
	colors config.MenuConfig
	help   string
}

// buttonColor picks the configured background for a button state.
func buttonColor(c config.MenuConfig, s ButtonState) string {
	switch s {
	case ButtonHover:
		return c.ButtonHover
	case ButtonPressed:
		return c.ButtonPressed
	default:
		return c.ButtonIdle
	}
}

// menuLayout renders the menu centered in a w x h area and returns the
// screen rectangle covered by the Play button, for mouse hit tests.
func menuLayout(w, h int, v menuView) (string, core.Rect) {
	bg := lipgloss.Color(v.colors.Background)
	base := lipgloss.NewStyle().Background(bg)

	title := base.Bold(true).Foreground(lipgloss.Color(v.colors.ButtonIdle)).Render(v.title)
	message := base.Foreground(lipgloss.Color(v.colors.ButtonIdle)).Render(v.state.Outcome.Message())
	score := base.Foreground(lipgloss.Color(v.colors.ScoreText)).
		Render("Score: " + strconv.Itoa(v.state.Score))
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(v.colors.ButtonText)).
		Background(lipgloss.Color(buttonColor(v.colors, v.button))).
		Render(playLabel)

	lines := []string{title, "", message, score, "", button, "", v.help}

	blockW := 0
	for _, l := range lines {
		blockW = max(blockW, lipgloss.Width(l))
	}
	blockH := len(lines)

	left := max(0, (w-blockW)/2)
	top := max(0, (h-blockH)/2)

	pad := func(n int) string {
		if n <= 0 {
			return ""
		}
		return base.Render(strings.Repeat(" ", n))
	}

	var sb strings.Builder
	for y := range max(h, top+blockH) {
		if y > 0 {
			sb.WriteByte('\n')
		}
		i := y - top
		if i < 0 || i >= blockH {
			sb.WriteString(pad(w))
			continue
		}
		lw := lipgloss.Width(lines[i])
		inset := (blockW - lw) / 2
		sb.WriteString(pad(left + inset))
		sb.WriteString(lines[i])
		sb.WriteString(pad(w - left - inset - lw))
	}

	bw := lipgloss.Width(button)
	rect := core.NewRect(left+(blockW-bw)/2, top+buttonLine, bw, 1)
	return sb.String(), rect
}

// helpLine renders the short key help.
func helpLine(keys KeyMap) string {
	return help.New().View(keys)
}
