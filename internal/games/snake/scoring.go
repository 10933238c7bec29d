package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Scoring holds the score delta for each food event.
type Scoring struct {
	Regular int
	Bonus   int
	Poison  int // subtracted
}

// Apply returns the score after ev. Events that are not food leave it unchanged.
// No floor is applied; the controller treats a negative score as terminal.
func (sc Scoring) Apply(ev core.Event, score int) int {
	switch ev {
	case core.EventRegularEaten:
		return score + sc.Regular
	case core.EventBonusEaten:
		return score + sc.Bonus
	case core.EventPoisonEaten:
		return score - sc.Poison
	}
	return score
}

// Rules is the complete ruleset for one game variant.
type Rules struct {
	GridW, GridH int

	Scoring Scoring

	PoisonEnabled   bool
	PoisonThreshold int
	BonusThreshold  int
	PoisonTTL       int64 // ms

	InitialSpeed     int // ms per tick
	MinSpeed         int
	SpeedStep        int
	GameOverInterval int // ms per frame while game over
}

// RulesFromConfig converts a loaded config into Rules.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		GridW: cfg.Grid.Columns(),
		GridH: cfg.Grid.Rows(),
		Scoring: Scoring{
			Regular: cfg.Scoring.Regular,
			Bonus:   cfg.Scoring.Bonus,
			Poison:  cfg.Scoring.Poison,
		},
		PoisonEnabled:    cfg.Food.PoisonEnabled,
		PoisonThreshold:  cfg.Food.PoisonThreshold,
		BonusThreshold:   cfg.Food.BonusThreshold,
		PoisonTTL:        cfg.Food.PoisonTTL,
		InitialSpeed:     cfg.Speed.Initial,
		MinSpeed:         cfg.Speed.Minimum,
		SpeedStep:        cfg.Speed.Step,
		GameOverInterval: cfg.Speed.GameOverInterval,
	}
}

// DefaultRules is the poison-enabled ruleset: +10 regular, +50 bonus, -10 poison.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// ClassicRules is the ruleset without poison: +1 regular, +5 bonus.
func ClassicRules() Rules {
	return RulesFromConfig(config.ClassicSnakeConfig())
}

// Classic derives the classic variant from r, keeping its grid and pacing.
func (r Rules) Classic() Rules {
	c := ClassicRules()
	c.GridW, c.GridH = r.GridW, r.GridH
	c.InitialSpeed, c.MinSpeed, c.SpeedStep = r.InitialSpeed, r.MinSpeed, r.SpeedStep
	c.GameOverInterval = r.GameOverInterval
	return c
}

// NextSpeed returns the tick interval after a regular food, floored at
// MinSpeed and never below config.MinSpeedFloor.
func (r Rules) NextSpeed(speed int) int {
	return max(speed-r.SpeedStep, r.MinSpeed, config.MinSpeedFloor)
}
