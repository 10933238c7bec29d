package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant identifies a registered ruleset.
type Variant string

const (
	VariantStandard Variant = "snake"
	VariantClassic  Variant = "snake_classic"
)

// Minimum grid that still leaves room to turn.
const minGridSide = 4

// Session is the complete mutable state of one game, owned by a Game.
type Session struct {
	Snake *Snake
	Food  *FoodManager
	Score int
	Speed int // ms per tick
	Phase core.Phase
	Tick  uint64
}

// Game sequences one simulation tick at a time over its Session.
type Game struct {
	variant Variant
	rules   Rules
	rng     *rand.Rand

	gridW, gridH int
	tooSmall     bool

	session *Session
}

// Package-level rules set by the CLI before games are created.
var (
	rulesMu   sync.RWMutex
	baseRules = DefaultRules()
)

// SetRules replaces the ruleset used by newly created games.
func SetRules(r Rules) {
	rulesMu.Lock()
	defer rulesMu.Unlock()
	baseRules = r
}

func currentRules() Rules {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	return baseRules
}

// New creates a standard (poison-enabled) game.
func New() *Game {
	return NewWithRules(VariantStandard, currentRules())
}

// NewClassic creates a game with classic scoring and no poison.
func NewClassic() *Game {
	return NewWithRules(VariantClassic, currentRules().Classic())
}

// NewWithRules creates a game with an explicit ruleset.
func NewWithRules(v Variant, r Rules) *Game {
	return &Game{variant: v, rules: r}
}

func init() {
	registry.Register(string(VariantStandard), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Rules returns the active ruleset.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset seeds the random source and starts a new session sized to cfg.
// Restarts after game over reuse the random source instead.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // gameplay randomness
	g.gridW, g.gridH = g.gridSize(cfg)
	g.tooSmall = g.gridW < minGridSide || g.gridH < minGridSide
	if g.tooSmall {
		g.gridW, g.gridH = minGridSide, minGridSide
	}
	g.session = &Session{
		Snake: NewSnake(g.gridW * g.gridH),
		Food:  NewFoodManager(g.rng, g.gridW, g.gridH, g.rules),
	}
	g.restart()
}

// gridSize picks the grid: explicit size first, then the ruleset, both
// shrunk to what fits the screen at two columns per cell plus border and HUD.
func (g *Game) gridSize(cfg core.RuntimeConfig) (int, int) {
	w, h := g.rules.GridW, g.rules.GridH
	if cfg.GridW > 0 {
		w = cfg.GridW
	}
	if cfg.GridH > 0 {
		h = cfg.GridH
	}
	if cfg.ScreenW > 0 {
		w = min(w, (cfg.ScreenW-2)/cellWidth)
	}
	if cfg.ScreenH > 0 {
		h = min(h, cfg.ScreenH-hudHeight-2)
	}
	return w, h
}

// restart re-derives the initial session, keeping the random source.
func (g *Game) restart() {
	s := g.session
	s.Snake.Reset()
	s.Food.Reset(s.Snake)
	s.Score = 0
	s.Speed = g.rules.InitialSpeed
	s.Phase = core.PhaseRunning
	s.Tick = 0
}

// Step advances the game by one tick. now is the clock in ms.
func (g *Game) Step(now int64, in core.Action) core.StepResult {
	_, events := g.Update(now, in)
	return core.StepResult{
		State:  g.State(),
		Events: events,
		Next:   g.TickInterval(),
	}
}

// Update runs one simulation step and returns the resulting snapshot and events.
func (g *Game) Update(now int64, in core.Action) (Snapshot, []core.Event) {
	events := g.step(now, in)
	return g.Snapshot(), events
}

func (g *Game) step(now int64, in core.Action) []core.Event {
	if in == core.ActionQuit {
		return []core.Event{core.EventQuit}
	}

	s := g.session
	if s.Phase == core.PhaseGameOver {
		if in == core.ActionRestart {
			g.restart()
			return []core.Event{core.EventRestarted}
		}
		return nil
	}
	if g.tooSmall {
		return nil
	}

	s.Tick++

	if dir, ok := in.Heading(); ok {
		s.Snake.SetHeading(dir)
	}

	s.Snake.Advance()

	if BorderCollision(s.Snake, g.gridW, g.gridH) || SelfCollision(s.Snake) {
		s.Phase = core.PhaseGameOver
		events := []core.Event{core.EventGameOver}
		// Food is not consumed, but poison still ages out on this tick.
		if s.Food.Tick(now) {
			events = append(events, core.EventPoisonExpired)
		}
		return events
	}

	var events []core.Event
	head := s.Snake.Head()

	if s.Food.Regular.Active && head == s.Food.Regular.Location {
		s.Snake.Grow()
		s.Score = g.rules.Scoring.Apply(core.EventRegularEaten, s.Score)
		s.Food.OnRegularConsumed(s.Snake, now)
		s.Speed = g.rules.NextSpeed(s.Speed)
		events = append(events, core.EventRegularEaten)
	}

	if s.Food.Poison.Active && head == s.Food.Poison.Location {
		s.Score = g.rules.Scoring.Apply(core.EventPoisonEaten, s.Score)
		s.Food.OnPoisonConsumed()
		events = append(events, core.EventPoisonEaten)
		if s.Score < 0 {
			s.Phase = core.PhaseGameOver
			return append(events, core.EventGameOver)
		}
	}

	if s.Food.Bonus.Active && head == s.Food.Bonus.Location {
		s.Score = g.rules.Scoring.Apply(core.EventBonusEaten, s.Score)
		s.Food.OnBonusConsumed()
		events = append(events, core.EventBonusEaten)
	}

	if s.Food.Tick(now) {
		events = append(events, core.EventPoisonExpired)
	}

	return events
}

// TickInterval is the delay before the next tick: the current speed while
// running, the slower game-over cadence otherwise.
func (g *Game) TickInterval() time.Duration {
	if g.session == nil || g.session.Phase == core.PhaseGameOver {
		return time.Duration(g.rules.GameOverInterval) * time.Millisecond
	}
	return time.Duration(g.session.Speed) * time.Millisecond
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		Length:   g.session.Snake.Len(),
		Phase:    g.session.Phase,
		GameOver: g.session.Phase == core.PhaseGameOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.session
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Speed: %dms, Phase: %s\n", s.Tick, s.Score, s.Speed, s.Phase)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Head: (%d, %d)\n",
		s.Snake.Len(), s.Snake.Heading(), s.Snake.Head().X, s.Snake.Head().Y)
	for _, f := range []FoodItem{s.Food.Regular, s.Food.Bonus, s.Food.Poison} {
		fmt.Fprintf(&b, "%s: (%d, %d) active=%v\n", f.Kind, f.Location.X, f.Location.Y, f.Active)
	}
	return b.String()
}
