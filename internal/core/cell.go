package core

// Cell is a single cursor-addressed write: a glyph drawn at a position.
type Cell struct {
	Pos   Position
	Glyph string
	Color Color
}

// Frame is the batch of writes produced for one tick.
// When Clear is set the output device is wiped before Cells are drawn.
type Frame struct {
	Clear bool
	Cells []Cell
}

// Empty reports whether applying the frame would change nothing.
func (f Frame) Empty() bool {
	return !f.Clear && len(f.Cells) == 0
}

// Add appends a write to the frame.
func (f *Frame) Add(p Position, glyph string, color Color) {
	f.Cells = append(f.Cells, Cell{Pos: p, Glyph: glyph, Color: color})
}
