package rps

import (
	"math/rand"
)

// Strategy is the capability set every player variant implements.
//
// NextMove may block on console input for the interactive variant; scripted
// strategies never fail. Remember receives the opponent's move after every
// round and only touches the strategy's own state.
type Strategy interface {
	NextMove() (Move, error)
	Remember(opponent Move)
}

// Player pairs a strategy with the per-match identity and score.
type Player struct {
	Name     string
	Score    int
	Strategy Strategy
}

// NewPlayer creates a player with a zero score.
func NewPlayer(name string, s Strategy) *Player {
	return &Player{Name: name, Strategy: s}
}

// Human reads moves from the console.
type Human struct {
	con Console
}

// NewHuman creates an interactive strategy bound to con.
func NewHuman(con Console) *Human {
	return &Human{con: con}
}

const (
	movePrompt         = "\nEnter your move (rock/paper/scissors or r/p/s): "
	invalidMoveMessage = "Invalid move! Please try again."
)

// NextMove blocks until a valid move token is entered. The only error is
// the console's, e.g. a closed input stream.
func (h *Human) NextMove() (Move, error) {
	for {
		line, err := h.con.ReadLine(movePrompt)
		if err != nil {
			return Rock, err
		}
		if m, ok := ParseMove(line); ok {
			return m, nil
		}
		h.con.WriteLine(invalidMoveMessage)
	}
}

// Remember is a no-op; the human keeps their own notes.
func (h *Human) Remember(Move) {}

// Fixed always plays the same move.
type Fixed struct {
	move Move
}

// NewFixed creates a strategy that always plays m.
func NewFixed(m Move) *Fixed {
	return &Fixed{move: m}
}

func (f *Fixed) NextMove() (Move, error) { return f.move, nil }
func (f *Fixed) Remember(Move) {}

// Random draws every move uniformly and independently.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) NextMove() (Move, error) { return RandomMove(r.rng), nil }
func (r *Random) Remember(Move) {}

// Mirror replays whatever the opponent played last round. Before it has
// seen anything it falls back to a random move.
type Mirror struct {
	rng  *rand.Rand
	last Move
	seen bool
}

// NewMirror creates a mirror strategy; rng serves the first-round fallback.
func NewMirror(rng *rand.Rand) *Mirror {
	return &Mirror{rng: rng}
}

// NextMove returns the last observed opponent move.
func (m *Mirror) NextMove() (Move, error) {
	if m.seen {
		return m.last, nil
	}
	return RandomMove(m.rng), nil
}

// Remember overwrites the stored observation.
func (m *Mirror) Remember(opponent Move) {
	m.last = opponent
	m.seen = true
}

// Cycle plays rock, paper, scissors in order, wrapping around.
type Cycle struct {
	next int
}

// NewCycle creates a cycle strategy starting at rock.
func NewCycle() *Cycle {
	return &Cycle{}
}

// NextMove returns the current move in the cycle and advances one step.
func (c *Cycle) NextMove() (Move, error) {
	m := Moves[c.next]
	c.next = (c.next + 1) % moveCount
	return m, nil
}

func (c *Cycle) Remember(Move) {}
