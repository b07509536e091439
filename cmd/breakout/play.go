package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/sfx"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const defaultGame = "breakout"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start the given variant in its menu.

Controls:
  Left/A, Right/D  - Move paddle
  Enter/Space      - Play (or click the Play button)
  P                - Pause
  Q/Esc/Ctrl+C     - Quit

Examples:
  breakout play
  breakout play breakout_mini
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	config.SetLogger(logger)
	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)

	// Front-end settings come from the same file the game loads on Reset
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Sim.TickRate
	if flagTickRate > 0 {
		tickRate = flagTickRate
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		FPS:      flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.OptionsFromConfig(cfg)
	opts.Logger = logger
	if flagSound || cfg.Audio.Enabled {
		spk, err := sfx.NewSpeaker(cfg.Audio)
		if err != nil {
			// Keep playing without sound
			logger.Warn("audio unavailable", "err", err)
		} else {
			opts.Sound = spk
		}
	}

	logger.Info("starting", "game", gameID, "tick_rate", tickRate, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, rt, opts); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
