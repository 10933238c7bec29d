// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
	Food    SnakeFood    `yaml:"food"`
}

// SnakeGrid defines the play field. Cell counts are screen size / block size.
type SnakeGrid struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	BlockSize    int `yaml:"block_size"`
}

// Columns returns the grid width in cells.
func (g SnakeGrid) Columns() int {
	if g.BlockSize <= 0 {
		return 0
	}
	return g.ScreenWidth / g.BlockSize
}

// Rows returns the grid height in cells.
func (g SnakeGrid) Rows() int {
	if g.BlockSize <= 0 {
		return 0
	}
	return g.ScreenHeight / g.BlockSize
}

// SnakeSpeed defines tick pacing in milliseconds per tick.
type SnakeSpeed struct {
	Initial          int `yaml:"initial"`
	Minimum          int `yaml:"minimum"`
	Step             int `yaml:"step"`               // Subtracted per regular food
	GameOverInterval int `yaml:"game_over_interval"` // Frame interval while game over
}

// SnakeScoring defines score deltas per food type.
type SnakeScoring struct {
	Regular int `yaml:"regular"`
	Bonus   int `yaml:"bonus"`
	Poison  int `yaml:"poison"` // Penalty, subtracted
}

// SnakeFood defines special food spawn rules.
type SnakeFood struct {
	PoisonEnabled   bool  `yaml:"poison_enabled"`
	PoisonThreshold int   `yaml:"poison_threshold"` // Regular food eaten before poison appears
	BonusThreshold  int   `yaml:"bonus_threshold"`  // Regular food eaten before bonus appears
	PoisonTTL       int64 `yaml:"poison_ttl_ms"`
}

// MinSpeedFloor is the fastest tick interval any config may reach, in ms.
const MinSpeedFloor = 50

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.BlockSize <= 0:
		return fmt.Errorf("%w: grid.block_size must be positive, got %d", ErrInvalidConfig, c.Grid.BlockSize)
	case c.Grid.Columns() < 4 || c.Grid.Rows() < 4:
		return fmt.Errorf("%w: grid must be at least 4x4 cells, got %dx%d", ErrInvalidConfig, c.Grid.Columns(), c.Grid.Rows())
	case c.Speed.Minimum < MinSpeedFloor:
		return fmt.Errorf("%w: speed.minimum must be at least %d, got %d", ErrInvalidConfig, MinSpeedFloor, c.Speed.Minimum)
	case c.Speed.Initial < c.Speed.Minimum:
		return fmt.Errorf("%w: speed.initial %d is below speed.minimum %d", ErrInvalidConfig, c.Speed.Initial, c.Speed.Minimum)
	case c.Speed.Step < 0:
		return fmt.Errorf("%w: speed.step must not be negative, got %d", ErrInvalidConfig, c.Speed.Step)
	case c.Speed.GameOverInterval <= 0:
		return fmt.Errorf("%w: speed.game_over_interval must be positive, got %d", ErrInvalidConfig, c.Speed.GameOverInterval)
	case c.Food.BonusThreshold <= 0:
		return fmt.Errorf("%w: food.bonus_threshold must be positive, got %d", ErrInvalidConfig, c.Food.BonusThreshold)
	case c.Food.PoisonEnabled && c.Food.PoisonThreshold <= 0:
		return fmt.Errorf("%w: food.poison_threshold must be positive, got %d", ErrInvalidConfig, c.Food.PoisonThreshold)
	case c.Food.PoisonEnabled && c.Food.PoisonTTL <= 0:
		return fmt.Errorf("%w: food.poison_ttl_ms must be positive, got %d", ErrInvalidConfig, c.Food.PoisonTTL)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
