// arcade runs a deterministic Flappy Bird simulation in the terminal.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play [game]         - Play a game (default: flappy)
//	arcade serve               - Start SSH server for remote play
//	arcade runs                - List recorded runs
//	arcade runs rm <run-id>    - Delete a recorded run
//	arcade replay <run-id>     - Re-simulate a recorded run and verify it
//	arcade config              - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/runs.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Flappy - a deterministic Flappy Bird for your terminal",
	Long: `TUI Flappy runs a deterministic Flappy Bird simulation in the terminal.
Every finished run is journaled so it can be replayed and verified later.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  runs     - List or delete recorded runs
  replay   - Re-simulate a recorded run
  config   - Print the effective game config

Examples:
  arcade play
  arcade play --seed 42 --fps 30
  arcade serve --ssh :2222
  arcade runs --limit 5
  arcade replay 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		flappy.SetConfigPath(flagConfig)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to stderr so they do not
// mix with command output.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), nil
}
