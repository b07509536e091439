package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It matches
// defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Min: core.V(-400, -300),
			Max: core.V(400, 300),
		},
		Walls: WallsConfig{
			Thickness: 10,
		},
		Paddle: PaddleConfig{
			StartY: -100,
			Size:   core.V(120, 20),
			Speed:  500,
		},
		Ball: BallConfig{
			Start:     core.V(0, -50),
			Size:      core.V(20, 20),
			Speed:     500,
			Direction: core.V(0.5, -0.5),
			Texture:   "textures/circle.png",
		},
		Bricks: BricksConfig{
			Size:        core.V(40, 10),
			Gap:         core.V(50, 10),
			CeilingGap:  20,
			SideGap:     20,
			Rows:        5,
			Health:      1,
			BonusChance: 10,
			BonusBalls:  3,
		},
		Sim: SimConfig{
			TickRate:   60,
			MaxCatchUp: 8,
		},
		Colors: ColorsConfig{
			Paddle:     core.ColorLavender,
			Ball:       core.ColorSalmon,
			Brick:      core.ColorLavender,
			BonusBrick: core.ColorRed,
			Wall:       core.ColorGray,
			HUD:        core.ColorWhite,
		},
		Menu: MenuConfig{
			ButtonIdle:    "#262626",
			ButtonHover:   "#1a0000",
			ButtonPressed: "#1a1a1a",
			ButtonText:    "#e6e6e6",
			ScoreText:     "#66e600",
			Background:    "#e6e6e6",
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
			Volume:     -2,
			ToneMillis: 40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
