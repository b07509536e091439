// breakout is a Breakout clone that plays in the terminal.
//
// Usage:
//
//	breakout                 - Play the standard game
//	breakout play [game]     - Play a variant (breakout, breakout_mini)
//	breakout list            - List available variants
//	breakout config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Render frames per second (default: 30)
//	--tick-rate <rate>  - Simulation ticks per second (default: from config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a specific YAML config file
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--sound             - Play tones for game events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagTickRate int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - knock out bricks in your terminal",
	Long: `Breakout is a terminal Breakout clone with a fixed-timestep simulation.

Move the paddle to keep the ball in play and clear every brick. Red bricks
release three extra balls when destroyed.

Available commands:
  play     - Play a variant (default: breakout)
  list     - Show all available variants
  config   - Print the effective configuration

Examples:
  breakout
  breakout play breakout_mini
  breakout --seed 42 --sound
  breakout config > ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, []string{defaultGame})
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render frames per second")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Simulation ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play tones for game events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
