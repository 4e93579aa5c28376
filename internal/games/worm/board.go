package worm

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// ErrBoardTooSmall is returned when the terminal leaves no playable interior.
var ErrBoardTooSmall = errors.New("worm: board too small")

// BorderSet holds the glyphs used to draw the one-cell frame around the board.
type BorderSet struct {
	Horizontal  string `yaml:"horizontal"`
	Vertical    string `yaml:"vertical"`
	TopLeft     string `yaml:"top_left"`
	TopRight    string `yaml:"top_right"`
	BottomLeft  string `yaml:"bottom_left"`
	BottomRight string `yaml:"bottom_right"`
}

// DefaultBorder returns the rounded box-drawing border.
func DefaultBorder() BorderSet {
	return BorderSet{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

// Board is the playfield geometry. The interior spans columns [2, width+1]
// and rows [2, height+1]; row and column 1 and width+2/height+2 hold the border.
type Board struct {
	width  int
	height int
	border BorderSet
}

// NewBoard creates a board with the given interior size.
func NewBoard(width, height int, border BorderSet) (Board, error) {
	if width < 1 || height < 1 {
		return Board{}, fmt.Errorf("%w: interior %dx%d", ErrBoardTooSmall, width, height)
	}
	return Board{width: width, height: height, border: border}, nil
}

// BoardFromTerminal creates a board filling a terminal of cols x rows cells.
func BoardFromTerminal(cols, rows int, border BorderSet) (Board, error) {
	return NewBoard(cols-2, rows-2, border)
}

// Width returns the interior width.
func (b Board) Width() int { return b.width }

// Height returns the interior height.
func (b Board) Height() int { return b.height }

// Border returns the border glyph set.
func (b Board) Border() BorderSet { return b.border }

// Cells returns the number of interior cells.
func (b Board) Cells() int { return b.Interior().Area() }

// Interior returns the playable rectangle in terminal coordinates.
func (b Board) Interior() core.Rect {
	return core.NewRect(2, 2, b.width, b.height)
}

// Outer returns the rectangle including the border.
func (b Board) Outer() core.Rect {
	return core.NewRect(1, 1, b.width+2, b.height+2)
}

// Contains reports whether p is inside the interior.
func (b Board) Contains(p core.Position) bool {
	return b.Interior().Contains(p)
}

// StartPosition returns the head cell for a fresh worm of the given length:
// vertically centered, far enough right that the whole chain fits.
func (b Board) StartPosition(length int) core.Position {
	col := core.Clamp(5, length+1, b.width+1)
	row := 2 + (b.height-1)/2
	return core.Pos(col, row)
}
