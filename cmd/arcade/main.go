// arcade is a small collection of turn-based console games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Pick games interactively
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--no-color           - Disable styled output
//	--no-pause           - Skip the dramatic pauses between lines
//	--log-level <level>  - Diagnostic log level (debug, info, warn, error)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/console-arcade/internal/console"
	"github.com/vovakirdan/console-arcade/internal/core"
	"github.com/vovakirdan/console-arcade/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/console-arcade/internal/adventure"
	_ "github.com/vovakirdan/console-arcade/internal/rps"
)

var (
	// Global flags
	flagSeed     int64
	flagNoColor  bool
	flagNoPause  bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Console Arcade - turn-based games in your terminal",
	Long: `Console Arcade bundles a Rock-Paper-Scissors match runner and a short
text adventure.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play rps
  arcade play rps --opponent cycle --rounds 5
  arcade play adventure --no-pause
  arcade menu`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVar(&flagNoPause, "no-pause", false, "Skip pauses between narrative lines")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the stderr diagnostic logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, nil
}

// newConsole wires stdin/stdout into the console shim. Styling and pacing
// are only used on a real terminal.
func newConsole(logger *log.Logger) *console.Console {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	return console.New(os.Stdin, os.Stdout,
		console.WithColor(isTTY && !flagNoColor),
		console.WithPacing(isTTY && !flagNoPause),
		console.WithLogger(logger),
	)
}

// runGame creates and runs a registered game. A closed input stream is a
// normal way to leave.
func runGame(gameID string, con *console.Console, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg = cfg.Normalize()
	cfg.Logger.Debug("starting game", "game", gameID, "seed", cfg.Seed)
	if err := game.Run(con, cfg); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			cfg.Logger.Debug("input closed", "game", gameID)
			return nil
		}
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
