// Package registry maps variant IDs to game constructors. Each variant
// registers from its package init, so the CLI, the SSH server and the
// scoreboard all see the same set by importing the game package.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the driver needs from a snake variant. Implementations are
// pure simulation: no terminal, no storage, no wall clock.
type Game interface {
	// ID is the variant key used on the command line and in the runs table.
	ID() string

	// Title is the display name shown in the HUD and scoreboard tabs.
	Title() string

	// Reset seeds the random source and builds a fresh session for the
	// screen and grid in cfg. Restarting after game over goes through Step.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with the intent collected since the previous tick.
	// now is in milliseconds from the driver's clock.
	Step(now int64, in core.Action) core.StepResult

	// TickInterval is the delay the driver waits before the next Step.
	TickInterval() time.Duration

	// Render draws the session into a cleared screen.
	Render(dst *core.Screen)

	// State summarizes the session for the driver.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, unreset game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string // registration order, which List preserves
)

// Register adds a variant. The title is read from one throwaway instance.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: variant %q registered twice", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
	order = append(order, id)
}

// List returns every variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(order))
	for i, id := range order {
		out[i] = GameInfo{ID: id, Title: entries[id].title}
	}
	return out
}

// Create builds a new game for the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
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
