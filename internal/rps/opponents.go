package rps

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrUnknownOpponent is returned for an opponent id that is neither a menu
// number nor a key.
var ErrUnknownOpponent = errors.New("rps: unknown opponent")

// Opponent describes one of the scripted computer players offered on the
// opponent menu.
type Opponent struct {
	Key  string // CLI identifier, e.g. "cycle"
	Name string // Display name, also used as the player name
	New  func(rng *rand.Rand) Strategy
}

// Opponents is the menu of scripted players, in menu order (1-based).
var Opponents = []Opponent{
	{
		Key:  "rock",
		Name: "Rock Player",
		New:  func(*rand.Rand) Strategy { return NewFixed(Rock) },
	},
	{
		Key:  "random",
		Name: "Random Player",
		New:  func(rng *rand.Rand) Strategy { return NewRandom(rng) },
	},
	{
		Key:  "reflect",
		Name: "Reflect Player",
		New:  func(rng *rand.Rand) Strategy { return NewMirror(rng) },
	},
	{
		Key:  "cycle",
		Name: "Cycle Player",
		New:  func(*rand.Rand) Strategy { return NewCycle() },
	},
}

// LookupOpponent finds an opponent by menu number ("1".."4") or key.
func LookupOpponent(id string) (Opponent, error) {
	id = strings.ToLower(strings.TrimSpace(id))

	if n, err := strconv.Atoi(id); err == nil {
		if n >= 1 && n <= len(Opponents) {
			return Opponents[n-1], nil
		}
		return Opponent{}, fmt.Errorf("%w: number %d out of range 1-%d", ErrUnknownOpponent, n, len(Opponents))
	}

	for _, o := range Opponents {
		if o.Key == id {
			return o, nil
		}
	}
	return Opponent{}, fmt.Errorf("%w %q", ErrUnknownOpponent, id)
}

// NewOpponentPlayer creates a fresh player for the given opponent.
func NewOpponentPlayer(o Opponent, rng *rand.Rand) *Player {
	return NewPlayer(o.Name, o.New(rng))
}

// opponentChoices returns the accepted menu tokens "1".."n".
func opponentChoices() []string {
	choices := make([]string, len(Opponents))
	for i := range Opponents {
		choices[i] = strconv.Itoa(i + 1)
	}
	return choices
}
