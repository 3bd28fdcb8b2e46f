package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadChoiceAcceptsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  Y \n"), &out)

	got, err := c.ReadChoice("again? ", []string{"y", "n"})
	if err != nil {
		t.Fatalf("ReadChoice() failed: %v", err)
	}
	if got != "y" {
		t.Errorf("Expected %q, got %q", "y", got)
	}
	if strings.Contains(out.String(), InvalidInputMessage) {
		t.Error("Valid answer should not trigger the invalid-input message")
	}
}

func TestReadChoiceRepromptsOnInvalid(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("x\n4\n\n2\n"), &out)

	got, err := c.ReadChoice("pick: ", []string{"1", "2", "3"})
	if err != nil {
		t.Fatalf("ReadChoice() failed: %v", err)
	}
	if got != "2" {
		t.Errorf("Expected %q, got %q", "2", got)
	}

	if n := strings.Count(out.String(), InvalidInputMessage); n != 3 {
		t.Errorf("Expected 3 invalid-input messages, got %d", n)
	}
	if n := strings.Count(out.String(), "pick: "); n != 4 {
		t.Errorf("Expected 4 prompts, got %d", n)
	}
}

func TestReadChoiceEmptyAccepted(t *testing.T) {
	c := New(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := c.ReadChoice("", []string{"", "q"})
	if err != nil {
		t.Fatalf("ReadChoice() failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty answer, got %q", got)
	}
}

func TestReadLineInputClosed(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.ReadLine("> ")
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}

	// Choice reading propagates the same error instead of looping
	_, err = c.ReadChoice("> ", []string{"y"})
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed from ReadChoice, got %v", err)
	}
}

func TestReadLineUnterminated(t *testing.T) {
	c := New(strings.NewReader("last"), &bytes.Buffer{})

	got, err := c.ReadLine("")
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if got != "last" {
		t.Errorf("Expected %q, got %q", "last", got)
	}
}

func TestPauseRespectsPacing(t *testing.T) {
	var slept []time.Duration
	sleep := func(d time.Duration) { slept = append(slept, d) }

	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, WithSleep(sleep))
	c.Pause("quiet", time.Second)
	if len(slept) != 0 {
		t.Errorf("Pacing disabled should not sleep, slept %v", slept)
	}

	c = New(strings.NewReader(""), &out, WithSleep(sleep), WithPacing(true))
	c.Pause("Rock...", 500*time.Millisecond)
	if len(slept) != 1 || slept[0] != 500*time.Millisecond {
		t.Errorf("Expected one 500ms sleep, got %v", slept)
	}

	if !strings.Contains(out.String(), "quiet\n") || !strings.Contains(out.String(), "Rock...\n") {
		t.Errorf("Pause should still write its text, got %q", out.String())
	}
}

func TestPlainStylesPassThrough(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Title("Game Over!")
	c.Highlight("You win")

	if out.String() != "Game Over!\nYou win\n" {
		t.Errorf("Unstyled console should not decorate text, got %q", out.String())
	}
}

func TestClosedTracksExhaustedInput(t *testing.T) {
	c := New(strings.NewReader("one\n"), &bytes.Buffer{})

	if _, err := c.ReadLine(""); err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if c.Closed() {
		t.Error("Console should not be closed while a line was read")
	}

	_, _ = c.ReadLine("")
	if !c.Closed() {
		t.Error("Console should report closed after EOF")
	}
}
