package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Resolves the game config the same way 'play' does and prints it as YAML.

Search order:
  1. --config path
  2. ~/.arcade/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Redirect the output to start a custom config:
  arcade config > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // stdout
}
