package adventure

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/console-arcade/internal/console"
)

func newAdventure(input string, weapon string, seed int64) (*Adventure, *bytes.Buffer) {
	var out bytes.Buffer
	con := console.New(strings.NewReader(input), &out)
	roster := Roster{
		Enemies: []string{"Mech"},
		Weapons: []string{weapon},
	}
	return New(con, roster, rand.New(rand.NewSource(seed)), nil), &out
}

func TestDefaultRoster(t *testing.T) {
	r := DefaultRoster()
	if len(r.Enemies) != 6 {
		t.Errorf("Expected 6 enemies, got %d", len(r.Enemies))
	}
	if len(r.Weapons) != 4 {
		t.Errorf("Expected 4 weapons, got %d", len(r.Weapons))
	}
	if r.Pause != 2*time.Second {
		t.Errorf("Expected 2s pause, got %s", r.Pause)
	}
}

func TestParseRosterRejectsEmpty(t *testing.T) {
	_, err := ParseRoster([]byte("enemies: []\nweapons: []\n"))
	if err == nil {
		t.Fatal("Empty roster should fail validation")
	}
	if !strings.Contains(err.Error(), "no enemies") || !strings.Contains(err.Error(), "no weapons") {
		t.Errorf("Error should name both problems, got %v", err)
	}

	if _, err := ParseRoster([]byte("enemies: [")); err == nil {
		t.Error("Malformed YAML should fail")
	}
}

func TestDaggerFightLoses(t *testing.T) {
	a, out := newAdventure("Ada\n2\n1\n", Dagger, 1)

	ending, err := a.PlayOnce()
	if err != nil {
		t.Fatalf("PlayOnce() failed: %v", err)
	}
	if ending != EndingDefeated {
		t.Errorf("Expected defeat, got %v", ending)
	}
	if !strings.Contains(out.String(), "Hi, Ada!") {
		t.Error("Intro should greet the player by name")
	}
	if !strings.Contains(out.String(), "Rumor has it that a Mech") {
		t.Error("Intro should name the enemy")
	}
}

func TestCaveSwapsDaggerThenHealstaff(t *testing.T) {
	// Cave twice: Dagger -> Longbow -> Healstaff, then fight and survive.
	a, out := newAdventure("Ada\n1\n1\n2\n1\n", Dagger, 1)

	ending, err := a.PlayOnce()
	if err != nil {
		t.Fatalf("PlayOnce() failed: %v", err)
	}
	if ending != EndingSurvived {
		t.Errorf("Expected survival with the Healstaff, got %v", ending)
	}
	if !strings.Contains(out.String(), "It's a Longbow!") || !strings.Contains(out.String(), "It's a Healstaff!") {
		t.Errorf("Expected both cave swaps:\n%s", out.String())
	}
}

func TestKyebladeStaysIneffective(t *testing.T) {
	a, _ := newAdventure("Ada\n1\n2\n1\n", Kyeblade, 1)

	ending, err := a.PlayOnce()
	if err != nil {
		t.Fatalf("PlayOnce() failed: %v", err)
	}
	if ending != EndingDefeated {
		t.Errorf("Expected kyeblade defeat, got %v", ending)
	}
}

func TestLongbowHitOrMiss(t *testing.T) {
	seen := make(map[Ending]bool)
	for seed := int64(1); seed <= 40; seed++ {
		a, _ := newAdventure("Ada\n2\n1\n", Longbow, seed)
		ending, err := a.PlayOnce()
		if err != nil {
			t.Fatalf("PlayOnce() failed: %v", err)
		}
		if ending != EndingVictory && ending != EndingDefeated {
			t.Fatalf("Longbow fight should hit or miss, got %v", ending)
		}
		seen[ending] = true
	}
	if !seen[EndingVictory] || !seen[EndingDefeated] {
		t.Errorf("Expected both hits and misses across seeds, got %v", seen)
	}
}

func TestRunAwayAndInvalidInput(t *testing.T) {
	a, out := newAdventure("\n3\n2\nx\n2\n", Dagger, 1)

	ending, err := a.PlayOnce()
	if err != nil {
		t.Fatalf("PlayOnce() failed: %v", err)
	}
	if ending != EndingFled {
		t.Errorf("Expected to flee, got %v", ending)
	}
	if !strings.Contains(out.String(), "Hi, stranger!") {
		t.Error("Blank name should fall back to stranger")
	}
	if n := strings.Count(out.String(), console.InvalidInputMessage); n != 2 {
		t.Errorf("Expected 2 re-prompts, got %d", n)
	}
}

func TestPlayAgainLoop(t *testing.T) {
	a, out := newAdventure("Ada\n2\n2\ny\nBob\n2\n2\nn\n", Dagger, 1)

	if err := a.Play(); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restarting the game...") {
		t.Error("Answering y should restart")
	}
	if !strings.Contains(out.String(), "Hi, Bob!") {
		t.Error("Second playthrough should ask for a name again")
	}
	if !strings.HasSuffix(out.String(), "Thanks for playing! Goodbye!\n") {
		t.Errorf("Answering n should say goodbye, got tail %q", out.String()[max(0, out.Len()-60):])
	}
}

func TestPlayInputClosed(t *testing.T) {
	a, _ := newAdventure("Ada\n", Dagger, 1)

	err := a.Play()
	if !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
}
