package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			ScreenWidth:  700,
			ScreenHeight: 600,
			BlockSize:    20,
		},
		Speed: SnakeSpeed{
			Initial:          200,
			Minimum:          50,
			Step:             5,
			GameOverInterval: 300,
		},
		Scoring: SnakeScoring{
			Regular: 10,
			Bonus:   50,
			Poison:  10,
		},
		Food: SnakeFood{
			PoisonEnabled:   true,
			PoisonThreshold: 4,
			BonusThreshold:  5,
			PoisonTTL:       4000,
		},
	}
}

// ClassicSnakeConfig returns the simpler ruleset: one point per regular food,
// five per bonus, and no poison.
func ClassicSnakeConfig() SnakeConfig {
	cfg := DefaultSnakeConfig()
	cfg.Scoring = SnakeScoring{Regular: 1, Bonus: 5}
	cfg.Food.PoisonEnabled = false
	return cfg
}
