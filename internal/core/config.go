// Package core holds the runtime settings shared by every game in the arcade.
package core

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// RuntimeConfig contains configuration passed to games when they start.
// Games use this for randomness, pacing and any choices already made on the
// command line.
type RuntimeConfig struct {
	Seed     int64       // RNG seed; 0 means seed from the current time
	Rounds   int         // Pre-selected round count for rps (0 = ask)
	Opponent string      // Pre-selected rps opponent key or number ("" = ask)
	Logger   *log.Logger // Diagnostic logger, never nil after Normalize
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:   0, // 0 means use current time
		Logger: log.New(io.Discard),
	}
}

// Normalize fills in zero-valued fields that games rely on.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// RNG returns a pseudo-random source for this run.
// A non-zero Seed yields a reproducible sequence.
func (c RuntimeConfig) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
