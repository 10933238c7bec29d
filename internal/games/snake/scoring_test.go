package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestScoringApply(t *testing.T) {
	rich := DefaultRules().Scoring
	classic := ClassicRules().Scoring

	tests := []struct {
		name    string
		scoring Scoring
		ev      core.Event
		score   int
		want    int
	}{
		{"regular", rich, core.EventRegularEaten, 0, 10},
		{"bonus", rich, core.EventBonusEaten, 10, 60},
		{"poison", rich, core.EventPoisonEaten, 30, 20},
		{"poison below zero", rich, core.EventPoisonEaten, 5, -5},
		{"non food", rich, core.EventPoisonExpired, 40, 40},
		{"classic regular", classic, core.EventRegularEaten, 0, 1},
		{"classic bonus", classic, core.EventBonusEaten, 1, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.scoring.Apply(tc.ev, tc.score))
		})
	}
}

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 35, r.GridW)
	assert.Equal(t, 30, r.GridH)
	assert.True(t, r.PoisonEnabled)
	assert.Equal(t, 4, r.PoisonThreshold)
	assert.Equal(t, 5, r.BonusThreshold)
	assert.Equal(t, int64(4000), r.PoisonTTL)
	assert.Equal(t, 200, r.InitialSpeed)
	assert.Equal(t, 300, r.GameOverInterval)
}

func TestClassicKeepsPacing(t *testing.T) {
	r := DefaultRules()
	r.GridW, r.GridH = 20, 15
	r.InitialSpeed, r.MinSpeed, r.SpeedStep = 150, 40, 6

	c := r.Classic()
	assert.False(t, c.PoisonEnabled)
	assert.Equal(t, 1, c.Scoring.Regular)
	assert.Equal(t, 20, c.GridW)
	assert.Equal(t, 15, c.GridH)
	assert.Equal(t, 150, c.InitialSpeed)
	assert.Equal(t, 40, c.MinSpeed)
	assert.Equal(t, 6, c.SpeedStep)
}

func TestNextSpeed(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 195, r.NextSpeed(200))
	assert.Equal(t, 50, r.NextSpeed(54))
	assert.Equal(t, 50, r.NextSpeed(50))

	speed := r.InitialSpeed
	for range 100 {
		speed = r.NextSpeed(speed)
	}
	assert.Equal(t, r.MinSpeed, speed)
}

func TestNextSpeedHonorsFloor(t *testing.T) {
	r := DefaultRules()
	r.InitialSpeed, r.MinSpeed, r.SpeedStep = 150, 40, 6

	speed := r.InitialSpeed
	for range 100 {
		speed = r.NextSpeed(speed)
	}
	assert.Equal(t, 50, speed)
}
