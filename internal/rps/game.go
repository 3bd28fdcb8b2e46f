package rps

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/console-arcade/internal/console"
	"github.com/vovakirdan/console-arcade/internal/core"
	"github.com/vovakirdan/console-arcade/internal/registry"
)

// Registry identity for Rock-Paper-Scissors.
const (
	GameID    = "rps"
	GameTitle = "Rock, Paper, Scissors"
)

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func() registry.Game { return NewGame() })
}

// Game adapts the match engine to the arcade registry: it picks an
// opponent and a round count, then plays one match.
type Game struct{}

// NewGame creates the registry entry.
func NewGame() *Game { return &Game{} }

func (g *Game) ID() string { return GameID }
func (g *Game) Title() string { return GameTitle }

// Run sets up a fresh human-vs-computer match and plays it to the end.
// Opponent and rounds come from cfg when set, otherwise they are prompted for.
func (g *Game) Run(con *console.Console, cfg core.RuntimeConfig) error {
	cfg = cfg.Normalize()
	rng := cfg.RNG()

	opponent, err := g.chooseOpponent(con, cfg.Opponent)
	if err != nil {
		return err
	}

	rounds := cfg.Rounds
	if rounds == 0 {
		rounds, err = g.chooseRounds(con)
		if err != nil {
			return err
		}
	}

	human := NewPlayer("Human", NewHuman(con))
	computer := NewOpponentPlayer(opponent, rng)

	match := NewMatch(human, computer, con, WithMatchLogger(cfg.Logger))
	if _, err := match.Play(rounds); err != nil {
		return err
	}
	return nil
}

func (g *Game) chooseOpponent(con *console.Console, preset string) (Opponent, error) {
	if preset != "" {
		return LookupOpponent(preset)
	}

	con.WriteLine("\nChoose your opponent:")
	for i, o := range Opponents {
		con.WriteLine(fmt.Sprintf("%d. %s", i+1, o.Name))
	}

	prompt := fmt.Sprintf("Enter the number of your opponent (1-%d): ", len(Opponents))
	choice, err := con.ReadChoice(prompt, opponentChoices())
	if err != nil {
		return Opponent{}, err
	}
	return LookupOpponent(choice)
}

func (g *Game) chooseRounds(con *console.Console) (int, error) {
	accepted := make([]string, 0, MaxRounds-MinRounds+1)
	for n := MinRounds; n <= MaxRounds; n++ {
		accepted = append(accepted, strconv.Itoa(n))
	}

	prompt := fmt.Sprintf("\nChoose number of rounds (%d-%d): ", MinRounds, MaxRounds)
	choice, err := con.ReadChoice(prompt, accepted)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(choice)
}
