package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Initial snake shape: two cells on the top row, moving right.
const initialLength = 2

// Snake is the grid state: the body cells (head at index 0) and the heading.
type Snake struct {
	body    []core.Cell
	heading core.Vec
	maxLen  int // grid cell count
}

// NewSnake creates a snake in its initial position.
// maxLen bounds the body length, normally W*H.
func NewSnake(maxLen int) *Snake {
	s := &Snake{maxLen: max(maxLen, initialLength)}
	s.Reset()
	return s
}

// Reset restores the initial body [(1,0),(0,0)] heading right.
func (s *Snake) Reset() {
	body := make([]core.Cell, initialLength, min(s.maxLen, 64))
	for i := range body {
		body[i] = core.Cell{X: initialLength - i - 1, Y: 0}
	}
	s.body = body
	s.heading = core.VecRight
}

// SetHeading replaces the heading unless dir is not a unit axis vector
// or points straight back into the neck. Returns whether it was accepted.
func (s *Snake) SetHeading(dir core.Vec) bool {
	if !dir.IsUnit() || dir == s.heading.Neg() {
		return false
	}
	s.heading = dir
	return true
}

// Advance moves every segment into its predecessor's cell, tail first,
// then steps the head along the heading. Length is unchanged.
func (s *Snake) Advance() {
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Add(s.heading)
}

// Grow lengthens the snake by one segment. The new tail slot repeats the
// current tail, so the next Advance leaves the old tail cell occupied.
// Returns false once the snake fills the grid.
func (s *Snake) Grow() bool {
	if len(s.body) >= s.maxLen {
		return false
	}
	s.body = append(s.body, s.body[len(s.body)-1])
	return true
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Heading returns the current unit heading.
func (s *Snake) Heading() core.Vec {
	return s.heading
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// MaxLen returns the length bound.
func (s *Snake) MaxLen() int {
	return s.maxLen
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}
