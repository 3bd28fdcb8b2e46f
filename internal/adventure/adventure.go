// Package adventure is a short branching text adventure: explore a cave
// for a better weapon, then face the monster in the house.
package adventure

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/console-arcade/internal/console"
	"github.com/vovakirdan/console-arcade/internal/core"
	"github.com/vovakirdan/console-arcade/internal/registry"
)

// Registry identity for the adventure.
const (
	GameID    = "adventure"
	GameTitle = "Village Hero"
)

// Weapon names with special behaviour.
const (
	Dagger    = "Dagger"
	Longbow   = "Longbow"
	Healstaff = "Healstaff"
	Kyeblade  = "kyeblade"
)

// Ending is how a single playthrough concluded.
type Ending int

const (
	EndingDefeated Ending = iota
	EndingVictory
	EndingSurvived
	EndingFled
)

// String returns a human-readable ending.
func (e Ending) String() string {
	switch e {
	case EndingDefeated:
		return "defeated"
	case EndingVictory:
		return "victory"
	case EndingSurvived:
		return "survived"
	case EndingFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Console is the part of the console shim the adventure uses.
type Console interface {
	ReadLine(prompt string) (string, error)
	ReadChoice(prompt string, accepted []string) (string, error)
	Title(text string)
	Pause(text string, d time.Duration)
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func() registry.Game { return &Game{} })
}

// Game adapts Adventure to the arcade registry.
type Game struct{}

func (g *Game) ID() string { return GameID }
func (g *Game) Title() string { return GameTitle }

// Run plays the adventure until the player declines another round.
func (g *Game) Run(con *console.Console, cfg core.RuntimeConfig) error {
	cfg = cfg.Normalize()
	a := New(con, DefaultRoster(), cfg.RNG(), cfg.Logger)
	return a.Play()
}

// Adventure holds one session of the game.
type Adventure struct {
	con    Console
	roster Roster
	rng    *rand.Rand
	logger *log.Logger
}

// New creates an adventure. A nil logger discards diagnostics.
func New(con Console, roster Roster, rng *rand.Rand, logger *log.Logger) *Adventure {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adventure{con: con, roster: roster, rng: rng, logger: logger}
}

// Play runs playthroughs until the player answers "n" to playing again.
func (a *Adventure) Play() error {
	for {
		ending, err := a.PlayOnce()
		if err != nil {
			return err
		}
		a.logger.Debug("adventure ended", "ending", ending.String())

		again, err := a.con.ReadChoice("Would you like to play again? (y/n): ", []string{"y", "n"})
		if err != nil {
			return err
		}
		if again == "n" {
			a.say("Thanks for playing! Goodbye!")
			return nil
		}
		a.say("Restarting the game...")
	}
}

// PlayOnce runs a single playthrough from the intro to an ending.
func (a *Adventure) PlayOnce() (Ending, error) {
	enemy := a.pick(a.roster.Enemies)
	weapon := a.pick(a.roster.Weapons)

	if err := a.intro(enemy, weapon); err != nil {
		return EndingFled, err
	}

	for {
		a.say("You are in the field, make your choice.")
		path, err := a.con.ReadChoice("1 or 2?: ", []string{"1", "2"})
		if err != nil {
			return EndingFled, err
		}
		if path == "2" {
			return a.house(enemy, weapon)
		}
		weapon = a.cave(weapon)
	}
}

func (a *Adventure) intro(enemy, weapon string) error {
	a.say("To get started, enter your name:")
	name, err := a.con.ReadLine("")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "stranger"
	}

	a.con.Title(fmt.Sprintf("Hi, %s!", name))
	a.say("You find yourself standing in an open field, filled with grass and yellow wildflowers.")
	a.say(fmt.Sprintf("Rumor has it that a %s is somewhere around here, terrifying the nearby village.", enemy))
	a.say(fmt.Sprintf("If you want to be the hero and save the village, let's get started, %s!", name))
	a.say("You see two paths ahead of you:")
	a.say("1. A dark cave to your right.")
	a.say("2. A house in front of you.")
	a.say(fmt.Sprintf("You hold your trusty (but maybe not very effective) %s.", weapon))
	return nil
}

// cave swaps the current weapon for whatever glints in the dark.
func (a *Adventure) cave(weapon string) string {
	a.say("You cautiously enter the dark cave.")

	switch weapon {
	case Dagger:
		a.say("Your eyes adjust to the dim light, revealing a glint of metal.")
		a.say("It's a Longbow! You swap it for your dagger.")
		weapon = Longbow
	case Kyeblade:
		a.say("It's a kyeblade! You swap it, but it might not be effective.")
	default:
		a.say("Is that just a sun reflection, or is it your new winning staff?")
		a.say("It's a Healstaff! Swap it right now! That's a perfect prize.")
		weapon = Healstaff
	}

	a.say("The cave is empty. You step back into the field.")
	return weapon
}

func (a *Adventure) house(enemy, weapon string) (Ending, error) {
	a.say(fmt.Sprintf("You move towards the house. The %s might be there!", enemy))
	a.say(fmt.Sprintf("The door creaks open, revealing the %s staring at you!", enemy))
	a.say(fmt.Sprintf("You freeze as the %s lunges at you!", enemy))

	action, err := a.con.ReadChoice("Do you (1) fight or (2) run back to the field? ", []string{"1", "2"})
	if err != nil {
		return EndingFled, err
	}
	if action == "2" {
		a.say("You run back to the safety of the field.")
		return EndingFled, nil
	}
	return a.fight(enemy, weapon), nil
}

func (a *Adventure) fight(enemy, weapon string) Ending {
	switch weapon {
	case Dagger:
		a.say(fmt.Sprintf("You bravely face the %s with your %s.", enemy, weapon))
		a.say("But your dagger is no match for such a powerful foe.")
		a.say("You have been defeated.")
		return EndingDefeated

	case Longbow:
		a.say(fmt.Sprintf("You take aim with your %s as the %s approaches.", weapon, enemy))
		if a.rng.Intn(2) == 0 {
			a.say(fmt.Sprintf("Your arrow strikes true, and the %s falls! You win!", enemy))
			return EndingVictory
		}
		a.say("Your arrow misses, and the monster overpowers you.")
		a.say("You have been defeated.")
		return EndingDefeated

	case Healstaff:
		a.say(fmt.Sprintf("You wield the mystical %s as the %s attacks.", weapon, enemy))
		a.say("The staff heals your wounds, and the confused enemy retreats.")
		a.say("You survive!")
		return EndingSurvived

	default:
		a.say(fmt.Sprintf("You attempt to fight with your %s, but it's ineffective.", weapon))
		a.say(fmt.Sprintf("The %s overpowers you. You have been defeated.", enemy))
		return EndingDefeated
	}
}

func (a *Adventure) say(text string) {
	a.con.Pause(text, a.roster.Pause)
}

func (a *Adventure) pick(options []string) string {
	return options[a.rng.Intn(len(options))]
}
