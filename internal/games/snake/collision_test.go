package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSelfCollision(t *testing.T) {
	straight := snakeWith(core.VecRight, 16,
		core.Cell{X: 3, Y: 0}, core.Cell{X: 2, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 0, Y: 0})
	assert.False(t, SelfCollision(straight))

	wrapped := snakeWith(core.VecUp, 16,
		core.Cell{X: 1, Y: 1}, core.Cell{X: 2, Y: 1}, core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2})
	assert.True(t, SelfCollision(wrapped))
}

func TestSelfCollisionAfterLoop(t *testing.T) {
	// A length-5 snake turning down, left, up runs into its own body.
	s := snakeWith(core.VecRight, 25,
		core.Cell{X: 4, Y: 0}, core.Cell{X: 3, Y: 0}, core.Cell{X: 2, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 0, Y: 0})

	for _, dir := range []core.Vec{core.VecDown, core.VecLeft, core.VecUp} {
		assert.False(t, SelfCollision(s))
		s.SetHeading(dir)
		s.Advance()
	}
	assert.True(t, SelfCollision(s))
}

func TestBorderCollision(t *testing.T) {
	const w, h = 10, 8

	tests := []struct {
		name string
		head core.Cell
		hit  bool
	}{
		{"origin", core.Cell{X: 0, Y: 0}, false},
		{"far corner", core.Cell{X: w - 1, Y: h - 1}, false},
		{"left", core.Cell{X: -1, Y: 3}, true},
		{"right", core.Cell{X: w, Y: 3}, true},
		{"top", core.Cell{X: 3, Y: -1}, true},
		{"bottom", core.Cell{X: 3, Y: h}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := snakeWith(core.VecRight, w*h, tc.head, core.Cell{X: 4, Y: 4})
			assert.Equal(t, tc.hit, BorderCollision(s, w, h))
		})
	}
}
