package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the session taken between ticks.
// It shares no memory with the game, so renderers and replays may keep it.
type Snapshot struct {
	Tick     uint64
	Body     []core.Cell // head first
	Heading  core.Vec
	Regular  FoodItem
	Bonus    FoodItem
	Poison   FoodItem
	Score    int
	Speed    int
	Consumed int
	Phase    core.Phase
	GridW    int
	GridH    int
	TooSmall bool
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return offGrid
	}
	return s.Body[0]
}

// Foods returns the active food items.
func (s Snapshot) Foods() []FoodItem {
	out := make([]FoodItem, 0, 3)
	for _, f := range []FoodItem{s.Regular, s.Bonus, s.Poison} {
		if f.Active {
			out = append(out, f)
		}
	}
	return out
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Tick:     s.Tick,
		Body:     s.Snake.Cells(),
		Heading:  s.Snake.Heading(),
		Regular:  s.Food.Regular,
		Bonus:    s.Food.Bonus,
		Poison:   s.Food.Poison,
		Score:    s.Score,
		Speed:    s.Speed,
		Consumed: s.Food.Consumed(),
		Phase:    s.Phase,
		GridW:    g.gridW,
		GridH:    g.gridH,
		TooSmall: g.tooSmall,
	}
}
