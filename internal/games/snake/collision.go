package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// SelfCollision reports whether the head shares a cell with any other segment.
func SelfCollision(s *Snake) bool {
	head := s.body[0]
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == head {
			return true
		}
	}
	return false
}

// BorderCollision reports whether the head has left the w×h grid.
func BorderCollision(s *Snake, w, h int) bool {
	return !core.NewRect(0, 0, w, h).ContainsCell(s.Head())
}
