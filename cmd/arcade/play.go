package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const defaultGame = "flappy"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (flappy if omitted).

Controls:
  Space/Up/W - Flap
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Leave (after game over or while paused)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Finished runs are journaled to the database given by --db.

Examples:
  arcade play
  arcade play flappy --seed 42
  arcade play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Fail early on a broken config instead of silently playing defaults.
	if _, err := config.LoadFlappy(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
