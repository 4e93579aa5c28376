package console

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// palette maps core.Color to 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Writer applies frames as cursor-addressed writes on a buffered stream.
// Nothing reaches the underlying writer until Flush.
type Writer struct {
	buf    *bufio.Writer
	styles map[core.Color]lipgloss.Style
}

// NewWriter creates a frame writer. Color support is detected from w.
func NewWriter(w io.Writer) *Writer {
	renderer := lipgloss.NewRenderer(w)
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = renderer.NewStyle()
	for c, code := range palette {
		styles[c] = renderer.NewStyle().Foreground(lipgloss.Color(code))
	}
	return &Writer{
		buf:    bufio.NewWriterSize(w, 16*1024),
		styles: styles,
	}
}

// Apply writes one frame and flushes it. A cell that starts where the
// previous glyph ended skips the cursor move.
func (w *Writer) Apply(f core.Frame) error {
	if f.Clear {
		w.buf.WriteString(ansi.ResetStyle)
		w.buf.WriteString(ansi.EraseEntireScreen)
		w.buf.WriteString(ansi.CursorHomePosition)
	}

	next := core.Position{}
	for _, c := range f.Cells {
		if c.Pos != next {
			w.buf.WriteString(ansi.CursorPosition(c.Pos.Col, c.Pos.Row))
		}
		style, ok := w.styles[c.Color]
		if !ok {
			style = w.styles[core.ColorDefault]
		}
		w.buf.WriteString(style.Render(c.Glyph))
		next = core.Position{Col: c.Pos.Col + ansi.StringWidth(c.Glyph), Row: c.Pos.Row}
	}
	return w.Flush()
}

// WriteString queues raw control sequences.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// Flush sends buffered output.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
