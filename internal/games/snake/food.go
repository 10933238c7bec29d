package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodKind distinguishes the three food variants.
type FoodKind int

const (
	FoodRegular FoodKind = iota
	FoodBonus
	FoodPoison
)

func (k FoodKind) String() string {
	switch k {
	case FoodRegular:
		return "regular"
	case FoodBonus:
		return "bonus"
	case FoodPoison:
		return "poison"
	default:
		return "unknown"
	}
}

// FoodItem is one food on the grid.
type FoodItem struct {
	Kind      FoodKind
	Location  core.Cell
	Active    bool
	SpawnedAt int64 // ms, used for poison expiry
}

// offGrid marks a food that could not be placed.
var offGrid = core.Cell{X: -1, Y: -1}

// spawnAttempts bounds rejection sampling before falling back to a free-cell scan.
const spawnAttempts = 64

// FoodManager owns the three food items and the consumption counter.
// Items of different kinds may share a cell.
type FoodManager struct {
	rng   *rand.Rand
	grid  core.Rect
	rules Rules

	Regular FoodItem
	Bonus   FoodItem
	Poison  FoodItem

	consumed int // regular food eaten since the last bonus spawn
}

// NewFoodManager creates a manager for a w×h grid drawing from rng.
func NewFoodManager(rng *rand.Rand, w, h int, rules Rules) *FoodManager {
	return &FoodManager{
		rng:     rng,
		grid:    core.NewRect(0, 0, w, h),
		rules:   rules,
		Regular: FoodItem{Kind: FoodRegular},
		Bonus:   FoodItem{Kind: FoodBonus},
		Poison:  FoodItem{Kind: FoodPoison},
	}
}

// Reset clears special food and the counter and places a fresh regular food.
func (m *FoodManager) Reset(s *Snake) {
	m.consumed = 0
	m.Bonus.Active = false
	m.Poison.Active = false
	m.Poison.SpawnedAt = 0
	m.SpawnRegular(s)
}

// SpawnRegular moves the regular food to a random cell not on the snake.
func (m *FoodManager) SpawnRegular(s *Snake) core.Cell {
	m.Regular.Location = m.freeCell(s)
	m.Regular.Active = m.Regular.Location != offGrid
	return m.Regular.Location
}

// OnRegularConsumed relocates the regular food and advances the counter.
// Poison spawns at the poison threshold when not already out; bonus spawns at
// the bonus threshold and resets the counter. Both can fire in one call.
func (m *FoodManager) OnRegularConsumed(s *Snake, now int64) (poison, bonus bool) {
	m.SpawnRegular(s)
	m.consumed++

	if m.rules.PoisonEnabled && m.consumed >= m.rules.PoisonThreshold && !m.Poison.Active {
		m.Poison.Location = m.freeCell(s)
		m.Poison.Active = m.Poison.Location != offGrid
		m.Poison.SpawnedAt = now
		poison = m.Poison.Active
	}

	if m.consumed >= m.rules.BonusThreshold {
		m.Bonus.Location = m.freeCell(s)
		m.Bonus.Active = m.Bonus.Location != offGrid
		m.consumed = 0
		bonus = m.Bonus.Active
	}
	return poison, bonus
}

// OnBonusConsumed removes the bonus food.
func (m *FoodManager) OnBonusConsumed() {
	m.Bonus.Active = false
}

// OnPoisonConsumed removes the poison food.
func (m *FoodManager) OnPoisonConsumed() {
	m.Poison.Active = false
}

// Tick expires the poison once more than PoisonTTL ms have passed since it
// spawned. Returns true on the tick it expires.
func (m *FoodManager) Tick(now int64) bool {
	if !m.Poison.Active || now-m.Poison.SpawnedAt <= m.rules.PoisonTTL {
		return false
	}
	m.Poison.Active = false
	return true
}

// Consumed returns the counter toward the next bonus.
func (m *FoodManager) Consumed() int {
	return m.consumed
}

// freeCell draws a uniform random grid cell not occupied by s.
// Returns offGrid when the snake covers every cell.
func (m *FoodManager) freeCell(s *Snake) core.Cell {
	for range spawnAttempts {
		c := core.Cell{X: m.rng.Intn(m.grid.W), Y: m.rng.Intn(m.grid.H)}
		if !s.Occupies(c) {
			return c
		}
	}

	// Crowded grid: pick uniformly among the remaining cells.
	free := make([]core.Cell, 0, max(0, m.grid.Area()-s.Len()))
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			c := core.Cell{X: x, Y: y}
			if !s.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return offGrid
	}
	return free[m.rng.Intn(len(free))]
}
