package display

// Row is one line of the virtual or physical screen (§4.4 "Two screens"):
// a sequence of Cells plus the flags composition/diffing attach to it.
// Adapted from cliofy-govte/terminal/row.go's Row, replacing its
// TerminalCharacter/IsCanonical shape with the Cell/Extended/Dot flags
// this engine's composition step actually produces.
type Row struct {
	Cells []Cell
	// Extended marks a row whose source line overflowed the terminal
	// width; its rightmost column holds '$' instead of content.
	Extended bool
	// Dot marks the row currently showing a window's point.
	Dot bool
}

// NewRow returns a row of width blank cells.
func NewRow(width int) Row {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = BlankCell()
	}
	return Row{Cells: cells}
}

// Width returns the row's column count.
func (r *Row) Width() int { return len(r.Cells) }

// Set writes cell at column col, growing the row with blanks if needed.
func (r *Row) Set(col int, cell Cell) {
	for len(r.Cells) <= col {
		r.Cells = append(r.Cells, BlankCell())
	}
	r.Cells[col] = cell
}

// Text renders the row's runes as a plain string, ignoring attributes;
// used by tests and the pop-up pager's plain-content paths.
func (r *Row) Text() string {
	runes := make([]rune, len(r.Cells))
	for i, c := range r.Cells {
		runes[i] = c.Ch
	}
	return string(runes)
}

// Equal reports whether two rows have identical cells (used by Diff to
// skip unchanged rows entirely).
func (r Row) Equal(other Row) bool {
	if len(r.Cells) != len(other.Cells) {
		return false
	}
	for i := range r.Cells {
		if r.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}
