// Package registry keeps the set of playable games. Each game package
// registers itself from init() so the CLI can find it by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/console-arcade/internal/console"
	"github.com/vovakirdan/console-arcade/internal/core"
)

// Game is the interface every console game implements.
type Game interface {
	// ID is the name used on the command line, e.g. "rps".
	ID() string
	Title() string

	// Run plays the game to completion on the given console.
	// Returning console.ErrInputClosed means the player left early.
	Run(con *console.Console, cfg core.RuntimeConfig) error
}

// GameInfo describes a registered game without building it.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game for one session.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register records a game under info.ID. The factory is not called until
// Create. It panics on an empty or duplicate ID or a nil factory.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: game needs an ID and a factory")
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		games = append(games, e.info)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
