package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// snakeWith builds a snake with an explicit body, head first.
func snakeWith(heading core.Vec, maxLen int, body ...core.Cell) *Snake {
	s := NewSnake(maxLen)
	s.body = append([]core.Cell(nil), body...)
	s.heading = heading
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(35 * 30)

	assert.Equal(t, []core.Cell{{X: 1, Y: 0}, {X: 0, Y: 0}}, s.Cells())
	assert.Equal(t, core.VecRight, s.Heading())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 35*30, s.MaxLen())
}

func TestAdvanceShiftsBody(t *testing.T) {
	s := snakeWith(core.VecRight, 100,
		core.Cell{X: 3, Y: 2}, core.Cell{X: 2, Y: 2}, core.Cell{X: 2, Y: 3}, core.Cell{X: 2, Y: 4})

	for range 2 {
		before := s.Cells()
		s.Advance()
		after := s.Cells()

		require.Len(t, after, len(before))
		assert.Equal(t, before[0].Add(s.Heading()), after[0])
		assert.Equal(t, before[:len(before)-1], after[1:], "each segment takes its predecessor's cell")
	}
}

func TestSetHeadingRejectsReversal(t *testing.T) {
	for _, h := range []core.Vec{core.VecRight, core.VecLeft, core.VecUp, core.VecDown} {
		t.Run(h.String(), func(t *testing.T) {
			s := snakeWith(h, 10, core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 5}.Add(h.Neg()))

			assert.False(t, s.SetHeading(h.Neg()))
			assert.Equal(t, h, s.Heading())
		})
	}
}

func TestSetHeadingValidation(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vec
		ok   bool
	}{
		{"up", core.VecUp, true},
		{"down", core.VecDown, true},
		{"same", core.VecRight, true},
		{"reverse", core.VecLeft, false},
		{"zero", core.Vec{}, false},
		{"diagonal", core.Vec{X: 1, Y: 1}, false},
		{"long", core.Vec{X: 2, Y: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(100)
			assert.Equal(t, tc.ok, s.SetHeading(tc.dir))
			if tc.ok {
				assert.Equal(t, tc.dir, s.Heading())
			} else {
				assert.Equal(t, core.VecRight, s.Heading())
			}
		})
	}
}

func TestGrowKeepsOldTail(t *testing.T) {
	s := NewSnake(100)
	oldTail := s.Cells()[1]

	require.True(t, s.Grow())
	assert.Equal(t, 3, s.Len())

	s.Advance()
	assert.Equal(t, []core.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}, oldTail}, s.Cells())
	assert.False(t, SelfCollision(s))
}

func TestGrowStopsAtMaxLen(t *testing.T) {
	s := NewSnake(3)
	assert.True(t, s.Grow())
	assert.False(t, s.Grow())
	assert.Equal(t, 3, s.Len())
}

func TestCellsIsCopy(t *testing.T) {
	s := NewSnake(10)
	cells := s.Cells()
	cells[0] = core.Cell{X: 9, Y: 9}
	assert.Equal(t, core.Cell{X: 1, Y: 0}, s.Head())
}

func TestOccupies(t *testing.T) {
	s := NewSnake(10)
	assert.True(t, s.Occupies(core.Cell{X: 0, Y: 0}))
	assert.True(t, s.Occupies(core.Cell{X: 1, Y: 0}))
	assert.False(t, s.Occupies(core.Cell{X: 2, Y: 0}))
}
