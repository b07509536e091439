// Package config provides YAML-based configuration loading for the
// breakout simulation and its terminal front-end.
package config

import "github.com/vovakirdan/tui-breakout/internal/core"

// BreakoutConfig contains all tunables for the game.
// Distances are world units; y grows upward.
type BreakoutConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Walls  WallsConfig  `yaml:"walls"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BricksConfig `yaml:"bricks"`
	Sim    SimConfig    `yaml:"sim"`
	Colors ColorsConfig `yaml:"colors"`
	Menu   MenuConfig   `yaml:"menu"`
	Input  InputConfig  `yaml:"input"`
	Audio  AudioConfig  `yaml:"audio"`
}

// FieldConfig is the playfield rectangle.
type FieldConfig struct {
	Min core.Vec2 `yaml:"min,flow"`
	Max core.Vec2 `yaml:"max,flow"`
}

// Width returns the horizontal extent of the field.
func (f FieldConfig) Width() float64 {
	return f.Max.X - f.Min.X
}

// Height returns the vertical extent of the field.
func (f FieldConfig) Height() float64 {
	return f.Max.Y - f.Min.Y
}

// WallsConfig defines the boundary walls.
type WallsConfig struct {
	Thickness float64 `yaml:"thickness"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	StartY float64   `yaml:"start_y"`
	Size   core.Vec2 `yaml:"size,flow"`
	Speed  float64   `yaml:"speed"` // Units per second
}

// BallConfig defines the initial ball and every ball spawned later.
type BallConfig struct {
	Start     core.Vec2 `yaml:"start,flow"`
	Size      core.Vec2 `yaml:"size,flow"`
	Speed     float64   `yaml:"speed"`           // Units per second
	Direction core.Vec2 `yaml:"direction,flow"` // Scaled by Speed as-is
	Texture   string    `yaml:"texture"`
}

// BricksConfig defines the brick field.
type BricksConfig struct {
	Size        core.Vec2 `yaml:"size,flow"`
	Gap         core.Vec2 `yaml:"gap,flow"`
	CeilingGap  float64   `yaml:"ceiling_gap"`
	SideGap     float64   `yaml:"side_gap"`
	Rows        int       `yaml:"rows"`
	Health      int       `yaml:"health"`
	BonusChance int       `yaml:"bonus_chance"` // Percent, [0,100]
	BonusBalls  int       `yaml:"bonus_balls"`
}

// SimConfig defines the fixed-step clock.
type SimConfig struct {
	TickRate   int `yaml:"tick_rate"`    // Ticks per second
	MaxCatchUp int `yaml:"max_catch_up"` // Ticks per frame before carrying over
}

// ColorsConfig assigns terminal colors to entity kinds.
type ColorsConfig struct {
	Paddle     core.Color `yaml:"paddle"`
	Ball       core.Color `yaml:"ball"`
	Brick      core.Color `yaml:"brick"`
	BonusBrick core.Color `yaml:"bonus_brick"`
	Wall       core.Color `yaml:"wall"`
	HUD        core.Color `yaml:"hud"`
}

// MenuConfig styles the menu screen. Values are lipgloss color strings.
type MenuConfig struct {
	ButtonIdle    string `yaml:"button_idle"`
	ButtonHover   string `yaml:"button_hover"`
	ButtonPressed string `yaml:"button_pressed"`
	ButtonText    string `yaml:"button_text"`
	ScoreText     string `yaml:"score_text"`
	Background    string `yaml:"background"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	// HoldTicks is how long one key press keeps a direction held.
	// Terminals report presses and repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // beep effects.Volume exponent, base 2
	ToneMillis int     `yaml:"tone_ms"`
}
