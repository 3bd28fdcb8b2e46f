package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-arcade/internal/registry"
	"github.com/vovakirdan/console-arcade/internal/rps"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and the computer opponents available for rps.`,
	Run: func(cmd *cobra.Command, args []string) {
		printGames(os.Stdout)
	},
}

func printGames(w io.Writer) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "ID", "Title")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Opponents for '%s' (--opponent):\n", rps.GameID)
	for i, o := range rps.Opponents {
		fmt.Fprintf(w, "  %d  %-8s  %s\n", i+1, o.Key, o.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
