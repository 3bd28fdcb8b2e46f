package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/console-arcade/internal/console"
	"github.com/vovakirdan/console-arcade/internal/core"
	"github.com/vovakirdan/console-arcade/internal/platform/tui"
	"github.com/vovakirdan/console-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start the arcade in menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
When stdin is not a terminal a numbered list is shown instead.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	con := newConsole(logger)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	for {
		var gameID string
		if interactive {
			res, err := tui.RunMenu()
			if err != nil {
				return err
			}
			if res.Quit {
				return nil
			}
			gameID = res.GameID
		} else {
			gameID, err = pickGame(con)
			if errors.Is(err, console.ErrInputClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			if gameID == "" {
				return nil
			}
		}

		cfg := core.RuntimeConfig{Seed: flagSeed, Logger: logger}
		if err := runGame(gameID, con, cfg); err != nil {
			logger.Error("game failed", "game", gameID, "error", err)
		}
		if !interactive && con.Closed() {
			return nil
		}
	}
}

// pickGame is the line-based fallback for the Bubble Tea menu.
// An empty id means the player chose to quit.
func pickGame(con *console.Console) (string, error) {
	games := registry.List()

	con.Title("\nSelect a game:")
	byNumber := make(map[string]string, len(games))
	accepted := []string{"q"}
	for i, g := range games {
		key := strconv.Itoa(i + 1)
		byNumber[key] = g.ID
		accepted = append(accepted, key)
		con.WriteLine(fmt.Sprintf("%s. %s", key, g.Title))
	}

	choice, err := con.ReadChoice(fmt.Sprintf("Enter 1-%d or q to quit: ", len(games)), accepted)
	if err != nil {
		return "", err
	}
	if choice == "q" {
		return "", nil
	}

	id, ok := byNumber[choice]
	if !ok {
		return "", fmt.Errorf("menu: no game numbered %q", choice)
	}
	return id, nil
}
