// Package rps implements the Rock-Paper-Scissors match engine: the move
// model, the scripted and interactive players, and the round/match loop.
package rps

import (
	"math/rand"
	"strings"
)

// Move is one of the three hand shapes. The numeric order is internal and
// drives Decide's modular arithmetic.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// moveCount is the size of the move cycle.
const moveCount = 3

// Moves lists every move in cycle order.
var Moves = [moveCount]Move{Rock, Paper, Scissors}

// String returns the lower-case name shown to players.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// moveTokens maps accepted input to moves.
var moveTokens = map[string]Move{
	"r":        Rock,
	"p":        Paper,
	"s":        Scissors,
	"rock":     Rock,
	"paper":    Paper,
	"scissors": Scissors,
}

// ParseMove converts a user token into a Move. Full names and single-letter
// abbreviations are accepted, ignoring case and surrounding whitespace.
func ParseMove(token string) (Move, bool) {
	m, ok := moveTokens[strings.ToLower(strings.TrimSpace(token))]
	return m, ok
}

// RandomMove draws a move uniformly from rng.
func RandomMove(rng *rand.Rand) Move {
	return Move(rng.Intn(moveCount))
}

// Outcome is the result of comparing two moves.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	default:
		return "unknown"
	}
}

// Decide compares the first mover's a against the second mover's b.
// With rock=0, paper=1, scissors=2 the winner is the move exactly one step
// ahead in the cycle, so (a-b) mod 3 == 1 means a wins.
func Decide(a, b Move) Outcome {
	if a == b {
		return Tie
	}
	if ((int(a)-int(b))%moveCount+moveCount)%moveCount == 1 {
		return FirstWins
	}
	return SecondWins
}
