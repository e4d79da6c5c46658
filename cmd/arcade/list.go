package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows the registered games. The default game, played by a bare
'arcade play' and served by 'arcade serve', is marked with *.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Printf("    %-*s  %s\n", idWidth, "ID", "Title")
	for _, g := range games {
		mark := " "
		if g.ID == defaultGame {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %s\n", mark, idWidth, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Printf("Run 'arcade play' to play %s, or 'arcade play <id>' for another game.\n", defaultGame)
}
