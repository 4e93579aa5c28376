// Package core provides fundamental types shared by the worm game, the
// renderer and the terminal platform. It has no external dependencies so the
// game logic stays pure and testable.
package core

// Position addresses a terminal cell. Columns and rows are 1-based.
type Position struct {
	Col, Row int
}

// Pos is a shorthand constructor for Position.
func Pos(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dc, dr := d.Delta()
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// Direction is one of the four grid directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the column and row offsets of one step in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Perpendicular reports whether turning from d to other is a 90 degree turn.
func (d Direction) Perpendicular(other Direction) bool {
	return d.horizontal() != other.horizontal()
}

func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if p is inside this rectangle.
func (r Rect) Contains(p Position) bool {
	return p.Col >= r.X && p.Col < r.Right() && p.Row >= r.Y && p.Row < r.Bottom()
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
