// Package registry holds the global table of playable game variants.
// Each variant registers itself in an init() function, so the platform
// discovers games through blank imports instead of hardcoded wiring.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cardfall/internal/core"
)

// Game is the interface every game variant implements. Games contain
// pure simulation logic with no terminal or Bubble Tea dependencies;
// the platform owns input mapping, timing, and drawing the screen.
type Game interface {
	// ID returns a unique identifier (e.g. "blitz21", "blitz21_hard").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for menus and HUDs.
	Title() string

	// Reset initializes or restarts the session. Called once at start
	// and again on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the input
	// intents delivered during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and session flags.
	State() core.GameState
}

// GameInfo contains the metadata of a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a game variant.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under the given ID. Called from the
// variant's init(); a duplicate ID is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns metadata for every registered variant, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
