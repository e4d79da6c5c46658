package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Loads a recorded run, feeds its journal back through the simulation
and checks that the outcome matches what was recorded.

The run must be replayed with the same config it was played with.

Examples:
  arcade replay 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  arcade replay <run-id> --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

// errReplayDiverged means a replay did not reproduce the recorded outcome.
var errReplayDiverged = errors.New("replay diverged from recorded run")

func runReplay(cmd *cobra.Command, args []string) {
	if err := replayRun(args[0]); err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// replayRun re-simulates a stored run with the effective config and
// prints both outcomes.
func replayRun(id string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	run, err := store.LoadRun(id)
	store.Close()
	if err != nil {
		return err
	}

	if run.GameID != "flappy" {
		return fmt.Errorf("cannot replay runs of game %q", run.GameID)
	}

	final := flappy.Replay(flappy.ParamsFromConfig(cfg), run.Journal)
	gameOver := final.Status == flappy.StatusGameOver

	fmt.Printf("Run:      %s\n", run.ID)
	fmt.Printf("Seed:     %d\n", run.Seed)
	fmt.Printf("Ticks:    %d\n", run.Ticks)
	fmt.Printf("Recorded: score %d, game over %t\n", run.Score, run.GameOver)
	fmt.Printf("Replayed: score %d, status %s\n", final.Score, final.Status)

	if final.Score != run.Score || gameOver != run.GameOver {
		logger.Warn("replay mismatch",
			"run", run.ID,
			"recorded_score", run.Score,
			"replayed_score", final.Score,
		)
		return errReplayDiverged
	}
	fmt.Println("Replay matches.")
	return nil
}
