package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsGame   string
	flagRunsLimit  int
	flagRunsBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Shows recorded runs, newest first.

Examples:
  arcade runs
  arcade runs --limit 5
  arcade runs --browse      # pick a run to replay, d deletes
  arcade runs rm <run-id>`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <run-id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsRm,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsGame, "game", "", "Only show runs of this game")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Browse runs interactively")
	runsCmd.AddCommand(runsRmCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runRuns(cmd *cobra.Command, args []string) {
	if flagRunsBrowse {
		browseRuns()
		return
	}

	store := openStore()
	defer store.Close()

	runs, err := store.ListRuns(flagRunsGame, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Play a game with 'arcade play' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-8s  %6s  %7s  %-20s  %s\n", "ID", "Game", "Score", "Ticks", "Seed", "Date")
	fmt.Printf("  %-36s  %-8s  %6s  %7s  %-20s  %s\n", "--", "----", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-8s  %6d  %7d  %-20d  %s\n",
			r.ID, r.GameID, r.Score, r.Ticks, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runRunsRm(cmd *cobra.Command, args []string) {
	store := openStore()
	err := store.DeleteRun(args[0])
	store.Close()

	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Deleted run %s\n", args[0])
}

func browseRuns() {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	selected, err := tui.RunRunsBrowser(store, flagRunsGame, width, height)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == "" {
		return
	}

	if err := replayRun(selected); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
