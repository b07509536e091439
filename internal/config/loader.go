package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "breakout.yaml"

var logger = log.Default()

// SetLogger replaces the logger used to report skipped config files.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default -> DefaultBreakoutConfig.
//
// An explicit customPath must exist and be valid. Files found in the search
// directories are skipped with a warning when they fail to parse or validate.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil {
			logger.Debug("loaded config", "path", path)
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("skipping config", "path", path, "err", err)
		}
	}

	cfg, err := Parse(defaultBreakoutYAML)
	if err != nil {
		logger.Warn("embedded config unusable, using built-in defaults", "err", err)
		return DefaultBreakoutConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (BreakoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate returns the first invalid field, if any.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Field.Max.X <= c.Field.Min.X || c.Field.Max.Y <= c.Field.Min.Y:
		return errors.New("config: field.max must exceed field.min on both axes")
	case c.Walls.Thickness <= 0:
		return errors.New("config: walls.thickness must be positive")
	case !positive(c.Paddle.Size.X, c.Paddle.Size.Y):
		return errors.New("config: paddle.size must be positive")
	case c.Paddle.Size.X >= c.Field.Width():
		return errors.New("config: paddle.size.x must be smaller than the field")
	case c.Paddle.Speed <= 0:
		return errors.New("config: paddle.speed must be positive")
	case !positive(c.Ball.Size.X, c.Ball.Size.Y):
		return errors.New("config: ball.size must be positive")
	case c.Ball.Speed <= 0:
		return errors.New("config: ball.speed must be positive")
	case !positive(c.Bricks.Size.X, c.Bricks.Size.Y):
		return errors.New("config: bricks.size must be positive")
	case c.Bricks.Gap.X < 0 || c.Bricks.Gap.Y < 0:
		return errors.New("config: bricks.gap must not be negative")
	case c.Bricks.Rows < 1:
		return errors.New("config: bricks.rows must be at least 1")
	case c.Bricks.Health < 1:
		return errors.New("config: bricks.health must be at least 1")
	case c.Bricks.BonusChance < 0 || c.Bricks.BonusChance > 100:
		return fmt.Errorf("config: bricks.bonus_chance %d outside [0,100]", c.Bricks.BonusChance)
	case c.Bricks.BonusBalls < 0:
		return errors.New("config: bricks.bonus_balls must not be negative")
	case c.Sim.TickRate <= 0:
		return errors.New("config: sim.tick_rate must be positive")
	case c.Sim.MaxCatchUp <= 0:
		return errors.New("config: sim.max_catch_up must be positive")
	case c.Input.HoldTicks <= 0:
		return errors.New("config: input.hold_ticks must be positive")
	case c.Audio.SampleRate <= 0:
		return errors.New("config: audio.sample_rate must be positive")
	case c.Audio.ToneMillis <= 0:
		return errors.New("config: audio.tone_ms must be positive")
	}
	return nil
}

func positive(vals ...float64) bool {
	for _, v := range vals {
		if v <= 0 {
			return false
		}
	}
	return true
}
