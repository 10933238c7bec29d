// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is an integer (column, row) position on the play grid.
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by v.
func (c Cell) Add(v Vec) Cell {
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Vec is an integer displacement between cells.
type Vec struct {
	X, Y int
}

// Unit headings.
var (
	VecRight = Vec{X: 1, Y: 0}
	VecLeft  = Vec{X: -1, Y: 0}
	VecDown  = Vec{X: 0, Y: 1}
	VecUp    = Vec{X: 0, Y: -1}
)

// Neg returns the opposite vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// IsUnit reports whether v is one of the four axis-aligned unit vectors.
func (v Vec) IsUnit() bool {
	return Abs(v.X)+Abs(v.Y) == 1
}

// String returns a compass name for unit vectors.
func (v Vec) String() string {
	switch v {
	case VecRight:
		return "right"
	case VecLeft:
		return "left"
	case VecDown:
		return "down"
	case VecUp:
		return "up"
	default:
		return "none"
	}
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsCell is Contains for a Cell.
func (r Rect) ContainsCell(c Cell) bool {
	return r.Contains(c.X, c.Y)
}

// Area returns W*H.
func (r Rect) Area() int {
	return r.W * r.H
}


// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
