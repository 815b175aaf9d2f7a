package display

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
)

// Screen is one full frame (§4.4 "Two screens"): `Compose` builds a fresh
// virtual Screen from a buffer.Screen's windows on every refresh; the
// physical Screen mirrors what was last sent to the terminal and is
// updated row by row as Diff finds differences.
type Screen struct {
	Rows []Row

	// CursRow, CursCol are the hardware cursor position computed from the
	// current window's point, horizontal scroll, and overflow marker.
	CursRow int
	CursCol int
}

// Options configures a Compose pass with the pieces of mode-line state
// that live outside buffer.Screen/Window.
type Options struct {
	ScreenNum      int
	MacroRecording bool
	ShowLineCol    bool
}

// Compose renders scr's window stack into a virtual Screen (§4.4
// "Composition"): each window reframes if needed, then contributes its
// content rows followed by one mode-line row.
func Compose(scr *buffer.Screen, cfg *config.Config, opts Options) *Screen {
	out := &Screen{}
	curRow := 0
	for _, w := range scr.Windows() {
		contentRows := w.Rows - 1
		if contentRows < 0 {
			contentRows = 0
		}
		Reframe(w, contentRows, cfg.VJumpPercent)

		dotRow := -1
		id := w.Face.TopLine
		for r := 0; r < contentRows; r++ {
			var row Row
			if id == buffer.NoLine {
				row = NewRow(scr.Cols)
			} else {
				isDot := id == w.Face.Point.Line
				if isDot {
					dotRow = r
				}
				row = renderLine(w.Buf, id, w, scr.Cols, cfg, isDot)
				id = w.Buf.Lines.Next(id)
			}
			out.Rows = append(out.Rows, row)
			curRow++
		}
		out.Rows = append(out.Rows, composeModeLine(w, scr, cfg.FillChar, modeLineOptions{
			ScreenNum:      opts.ScreenNum,
			MacroRecording: opts.MacroRecording,
			ShowLineCol:    opts.ShowLineCol,
		}))
		curRow++

		if w == scr.Current() {
			out.CursRow = w.TopRow
			if dotRow >= 0 {
				out.CursRow = w.TopRow + dotRow
			}
			out.CursCol = cursorColumn(w, cfg)
		}
	}
	return out
}

// renderLine expands one buffer line into a display row scrolled by the
// window's FirstCol and marked Extended if it overflows the terminal
// width (§4.4 steps 2-5). Attribute decoding only applies when the
// buffer opted in via ModeTermAttr and the line isn't the current one.
func renderLine(buf *buffer.Buffer, id buffer.LineID, w *buffer.Window, cols int, cfg *config.Config, isDot bool) Row {
	decodeAttrs := buf.Modes.Has(config.ModeTermAttr) && !isDot
	cells := expandLine(buf.Lines.Line(id).Bytes(), cfg.HardTabSize, decodeAttrs)

	if w.Face.FirstCol > 0 && w.Face.FirstCol < len(cells) {
		cells = cells[w.Face.FirstCol:]
	} else if w.Face.FirstCol >= len(cells) {
		cells = nil
	}

	row := Row{Dot: isDot}
	if len(cells) > cols {
		row.Cells = append(append([]Cell{}, cells[:cols-1]...), NewCell('$', Attrs{}))
		row.Extended = true
	} else {
		row.Cells = append([]Cell{}, cells...)
		for len(row.Cells) < cols {
			row.Cells = append(row.Cells, BlankCell())
		}
	}
	return row
}

// cursorColumn computes the on-screen column of w's point, accounting for
// horizontal scroll and the tab/control expansion renderLine applies.
func cursorColumn(w *buffer.Window, cfg *config.Config) int {
	line := w.Buf.Lines.Line(w.Face.Point.Line)
	prefix := line.Bytes()[:w.Face.Point.Offset]
	cells := expandLine(prefix, cfg.HardTabSize, false)
	col := len(cells) - w.Face.FirstCol
	if col < 0 {
		col = 0
	}
	return col
}

// RowDiff names one repainted row and the column the repaint starts from
// (§4.4 "Diffing": "find the leftmost differing column and repaint from
// that column to the end of the virtual line").
type RowDiff struct {
	Row      int
	FromCol  int
	ClearEOL bool // physical line was longer than virtual; clear to EOL first
}

// Diff updates physical in place to match virtual, returning one RowDiff
// per repainted row. A row whose cell count shrank (ClearEOL) needs its
// tail cleared before the new content is written; any attribute
// difference within a row forces FromCol back to 0 for that row.
func Diff(virtual *Screen, physical *Screen) []RowDiff {
	var changed []RowDiff
	for i, vr := range virtual.Rows {
		if i >= len(physical.Rows) {
			physical.Rows = append(physical.Rows, vr)
			changed = append(changed, RowDiff{Row: i, FromCol: 0})
			continue
		}
		pr := physical.Rows[i]
		if vr.Equal(pr) {
			continue
		}
		from := leftmostDiff(vr, pr)
		if rowAttrsDiffer(vr, pr) {
			from = 0
		}
		physical.Rows[i] = vr
		changed = append(changed, RowDiff{
			Row:      i,
			FromCol:  from,
			ClearEOL: len(pr.Cells) > len(vr.Cells),
		})
	}
	if len(virtual.Rows) < len(physical.Rows) {
		physical.Rows = physical.Rows[:len(virtual.Rows)]
	}
	physical.CursRow = virtual.CursRow
	physical.CursCol = virtual.CursCol
	return changed
}

// leftmostDiff returns the first column at which a and b's cells differ,
// or the shorter row's length if one is a prefix of the other.
func leftmostDiff(a, b Row) int {
	n := len(a.Cells)
	if len(b.Cells) < n {
		n = len(b.Cells)
	}
	for i := 0; i < n; i++ {
		if a.Cells[i] != b.Cells[i] {
			return i
		}
	}
	return n
}

// rowAttrsDiffer reports whether any overlapping cell's Attrs differ
// between a and b, even where the cell's content (Ch) is identical. A
// terminal's attribute state is positional, not addressable mid-line, so
// Diff repaints the whole row from column 0 rather than from
// leftmostDiff's content-only column whenever this is true.
func rowAttrsDiffer(a, b Row) bool {
	n := len(a.Cells)
	if len(b.Cells) < n {
		n = len(b.Cells)
	}
	for i := 0; i < n; i++ {
		if a.Cells[i].Attrs != b.Cells[i].Attrs {
			return true
		}
	}
	return false
}
