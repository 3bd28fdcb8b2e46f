package rps

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/console-arcade/internal/console"
)

// Round limits for a match.
const (
	MinRounds = 1
	MaxRounds = 10
)

const continuePrompt = "\nPress Enter to continue or q to quit: "

// revealDelay paces the "Rock... Paper... Scissors..." countdown.
const revealDelay = 500 * time.Millisecond

var (
	// ErrInvalidRounds is returned when a match is asked for a round count
	// outside [MinRounds, MaxRounds].
	ErrInvalidRounds = errors.New("rps: rounds must be between 1 and 10")

	// ErrRoundLimit is returned by PlayRound once the configured number of
	// rounds has been played.
	ErrRoundLimit = errors.New("rps: round limit reached")

	// ErrMatchFinished is returned when a finished match is asked for more
	// rounds, or when Play is called on a match that has already started.
	ErrMatchFinished = errors.New("rps: match already finished")
)

// Console is the slice of the console shim the engine depends on.
type Console interface {
	ReadLine(prompt string) (string, error)
	WriteLine(text string)
	Highlight(text string)
	Title(text string)
	Pause(text string, d time.Duration)
}

// State is the match lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateRoundInProgress
	StateAwaitingContinue
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRoundInProgress:
		return "RoundInProgress"
	case StateAwaitingContinue:
		return "AwaitingContinue"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// RoundResult is what a single round produced.
type RoundResult struct {
	Round       int
	FirstMove   Move
	SecondMove  Move
	Outcome     Outcome
	FirstScore  int
	SecondScore int
}

// Result is the final tally of a match.
type Result struct {
	Rounds      int
	FirstName   string
	SecondName  string
	FirstScore  int
	SecondScore int
}

// Winner compares the two totals.
func (r Result) Winner() Outcome {
	switch {
	case r.FirstScore > r.SecondScore:
		return FirstWins
	case r.FirstScore < r.SecondScore:
		return SecondWins
	default:
		return Tie
	}
}

// Match runs a bounded series of rounds between two players.
// By convention the first player is the human, but any two players work.
type Match struct {
	first  *Player
	second *Player
	con    Console
	logger *log.Logger

	round int
	limit int
	state State
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithMatchLogger sets the diagnostic logger.
func WithMatchLogger(l *log.Logger) MatchOption {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatch creates a match between first and second. Scores are not reset:
// pass fresh players unless carrying a score over is intended.
func NewMatch(first, second *Player, con Console, opts ...MatchOption) *Match {
	m := &Match{
		first:  first,
		second: second,
		con:    con,
		logger: log.New(io.Discard),
		limit:  MaxRounds,
		state:  StateNotStarted,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Round returns the number of completed rounds.
func (m *Match) Round() int { return m.round }

// State returns the current lifecycle state.
func (m *Match) State() State { return m.state }

// Play runs up to rounds rounds, asking between rounds whether to carry on,
// and prints the final results. A closed input stream ends the match the
// same way an explicit quit does.
func (m *Match) Play(rounds int) (Result, error) {
	if rounds < MinRounds || rounds > MaxRounds {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}
	if m.state != StateNotStarted {
		return m.result(), ErrMatchFinished
	}
	m.limit = rounds

	m.con.Title("\nWelcome to Rock, Paper, Scissors!")
	m.con.WriteLine(fmt.Sprintf("You'll be playing against %s", m.second.Name))
	m.con.WriteLine(fmt.Sprintf("This match will be %d rounds", rounds))
	m.logger.Debug("match started", "first", m.first.Name, "second", m.second.Name, "rounds", rounds)

	for i := 0; i < rounds; i++ {
		if _, err := m.PlayRound(); err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				m.logger.Debug("input closed, ending match", "round", m.round)
				break
			}
			m.state = StateFinished
			return m.result(), err
		}

		if i == rounds-1 {
			break
		}

		m.state = StateAwaitingContinue
		more, err := m.ContinuePlaying()
		if err != nil && !errors.Is(err, console.ErrInputClosed) {
			m.state = StateFinished
			return m.result(), err
		}
		if !more {
			m.logger.Debug("player quit", "round", m.round)
			break
		}
	}

	m.state = StateFinished
	res := m.result()
	m.report(res)
	m.logger.Debug("match finished", "rounds", res.Rounds, "first", res.FirstScore, "second", res.SecondScore)
	return res, nil
}

// PlayRound plays one round: both moves, the reveal, scoring and memory
// updates. The round counter only advances once both moves are in.
func (m *Match) PlayRound() (RoundResult, error) {
	if m.state == StateFinished {
		return RoundResult{}, ErrMatchFinished
	}
	if m.round >= m.limit {
		return RoundResult{}, ErrRoundLimit
	}
	m.state = StateRoundInProgress

	m.con.Title(fmt.Sprintf("\nRound %d", m.round+1))

	firstMove, err := m.first.Strategy.NextMove()
	if err != nil {
		return RoundResult{}, err
	}

	m.con.Pause("\nRock...", revealDelay)
	m.con.Pause("Paper...", revealDelay)
	m.con.Pause("Scissors...", revealDelay)
	m.con.WriteLine("Shoot!\n")

	secondMove, err := m.second.Strategy.NextMove()
	if err != nil {
		return RoundResult{}, err
	}

	m.round++

	m.con.WriteLine(fmt.Sprintf("%s chose: %s", m.first.Name, firstMove))
	m.con.WriteLine(fmt.Sprintf("%s chose: %s", m.second.Name, secondMove))

	outcome := Decide(firstMove, secondMove)
	switch outcome {
	case Tie:
		m.con.Highlight("\nIt's a tie!")
	case FirstWins:
		m.first.Score++
		m.con.Highlight(fmt.Sprintf("\n%s wins this round!", m.first.Name))
	case SecondWins:
		m.second.Score++
		m.con.Highlight(fmt.Sprintf("\n%s wins this round!", m.second.Name))
	}

	m.second.Strategy.Remember(firstMove)
	m.first.Strategy.Remember(secondMove)

	m.con.WriteLine("\nCurrent Score:")
	m.con.WriteLine(fmt.Sprintf("%s: %d", m.first.Name, m.first.Score))
	m.con.WriteLine(fmt.Sprintf("%s: %d", m.second.Name, m.second.Score))

	m.logger.Debug("round played",
		"round", m.round,
		"first", firstMove.String(),
		"second", secondMove.String(),
		"outcome", outcome.String(),
	)

	return RoundResult{
		Round:       m.round,
		FirstMove:   firstMove,
		SecondMove:  secondMove,
		Outcome:     outcome,
		FirstScore:  m.first.Score,
		SecondScore: m.second.Score,
	}, nil
}

// ContinuePlaying asks whether to play the next round. Only a bare Enter
// continues and only "q" (either case) quits; a line of spaces is not empty.
func (m *Match) ContinuePlaying() (bool, error) {
	for {
		line, err := m.con.ReadLine(continuePrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return true, nil
		case "q":
			return false, nil
		}
		m.con.WriteLine(console.InvalidInputMessage)
	}
}

func (m *Match) result() Result {
	return Result{
		Rounds:      m.round,
		FirstName:   m.first.Name,
		SecondName:  m.second.Name,
		FirstScore:  m.first.Score,
		SecondScore: m.second.Score,
	}
}

// report prints the final score and the overall winner.
func (m *Match) report(res Result) {
	m.con.Title("\nGame Over!")
	m.con.WriteLine(fmt.Sprintf("Final Score after %d rounds:", res.Rounds))
	m.con.WriteLine(fmt.Sprintf("%s: %d", res.FirstName, res.FirstScore))
	m.con.WriteLine(fmt.Sprintf("%s: %d", res.SecondName, res.SecondScore))

	switch res.Winner() {
	case FirstWins:
		m.con.Highlight(fmt.Sprintf("\nCongrats! %s wins", res.FirstName))
	case SecondWins:
		m.con.Highlight(fmt.Sprintf("\n%s wins the match!", res.SecondName))
	default:
		m.con.Highlight("\nThe match ends in a tie!")
	}
}
