package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-arcade/internal/core"
	"github.com/vovakirdan/console-arcade/internal/registry"
	"github.com/vovakirdan/console-arcade/internal/rps"
)

var (
	flagOpponent string
	flagRounds   int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Rock, Paper, Scissors:
  Type rock/paper/scissors (or r/p/s) each round.
  Press Enter to play the next round, q to quit early.
  Opponents: 1 rock, 2 random, 3 reflect, 4 cycle.
  Without --opponent and --rounds you are asked for both.

Adventure:
  Answer the numbered prompts; y/n to play again.

Examples:
  arcade play rps
  arcade play rps --opponent reflect --rounds 3
  arcade play rps --seed 42 --opponent random
  arcade play adventure`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagOpponent, "opponent", "", "rps opponent: number 1-4 or rock, random, reflect, cycle")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "rps rounds, 1-10 (0 = ask)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	if flagOpponent != "" {
		if _, err := rps.LookupOpponent(flagOpponent); err != nil {
			return err
		}
	}
	if flagRounds != 0 && (flagRounds < rps.MinRounds || flagRounds > rps.MaxRounds) {
		return fmt.Errorf("--rounds must be between %d and %d, got %d", rps.MinRounds, rps.MaxRounds, flagRounds)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		Seed:     flagSeed,
		Rounds:   flagRounds,
		Opponent: flagOpponent,
		Logger:   logger,
	}

	return runGame(gameID, newConsole(logger), cfg)
}
