// Package console is the line-oriented terminal shim shared by the arcade's
// text games. It reads validated choices from a single input stream and
// writes narrative text, optionally styled and paced, to a single output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInputClosed is returned when the input stream ends before a valid
// answer was read.
var ErrInputClosed = errors.New("console: input closed")

// InvalidInputMessage is printed after any rejected choice.
const InvalidInputMessage = "Invalid input. Please try again."

// Console reads answers from in and writes text to out.
// It is not safe for concurrent use; the games are single-threaded.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	pacing bool
	closed bool
	sleep  func(time.Duration)
	logger *log.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithColor enables or disables lipgloss styling of highlighted lines.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.styles = NewStyles(c.out, enabled)
	}
}

// WithPacing enables the timed pauses between narrative lines.
func WithPacing(enabled bool) Option {
	return func(c *Console) {
		c.pacing = enabled
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Console) {
		c.sleep = fn
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a console over the given streams. Styling and pacing are off
// unless enabled with options.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		sleep:  time.Sleep,
		logger: log.New(io.Discard),
	}
	c.styles = NewStyles(out, false)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WriteLine prints text followed by a newline. Write errors are ignored:
// there is nothing useful a game can do about a broken terminal.
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// Highlight prints a line using the emphasis style.
func (c *Console) Highlight(text string) {
	c.WriteLine(c.styles.Highlight(text))
}

// Title prints a heading line.
func (c *Console) Title(text string) {
	c.WriteLine(c.styles.Title(text))
}

// Pause prints text and then waits for d when pacing is enabled.
func (c *Console) Pause(text string, d time.Duration) {
	c.WriteLine(text)
	if c.pacing && d > 0 {
		c.sleep(d)
	}
}

// ReadLine prompts and returns the next line without its trailing newline.
// A final unterminated line is returned as-is; a stream that is already
// exhausted yields ErrInputClosed.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		if line == "" {
			if !c.closed {
				c.logger.Debug("input stream closed")
			}
			c.closed = true
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Closed reports whether the input stream has been exhausted.
func (c *Console) Closed() bool {
	return c.closed
}

// ReadChoice prompts until the answer, trimmed and lower-cased, is one of
// accepted. An empty string in accepted allows a bare Enter.
func (c *Console) ReadChoice(prompt string, accepted []string) (string, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}

		answer := Normalize(line)
		if slices.Contains(accepted, answer) {
			return answer, nil
		}
		c.WriteLine(InvalidInputMessage)
	}
}

// Normalize trims whitespace and lower-cases a raw answer.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
