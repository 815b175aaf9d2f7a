package buffer

import (
	"bytes"

	"github.com/go-memacs/core/config"
)

// TabStop returns the column reached after advancing from col by one
// (n=1) or n tab stops of the given width (§4.6 tabStop(n)).
func TabStop(col, n, width int) int {
	for i := 0; i < n; i++ {
		col = (col/width + 1) * width
	}
	return col
}

// InsertSoftTab inserts spaces to the next stop at softTabSize, counted
// from w's current column (offset, since the buffer has no tab expansion
// of its own — display-column tab stops are computed by the display
// engine). n repeats the stop-advance n times.
func (b *Buffer) InsertSoftTab(w *Window, n, softTabSize int) error {
	if b.Modes.Has(config.ModeHardTabs) {
		return b.InsertHardTab(w, n)
	}
	col := w.Face.Point.Offset
	target := TabStop(col, n, softTabSize)
	return b.InsertChars(w, target-col, ' ')
}

// InsertHardTab inserts n literal tab characters at point.
func (b *Buffer) InsertHardTab(w *Window, n int) error {
	return b.InsertChars(w, n, '\t')
}

// DetabLine expands every '\t' in text to spaces, aligned to
// tabSize stops (§4.2 detabLine). It returns the new text without
// mutating the line in place, since this is typically applied to a whole
// block of lines by the caller.
func DetabLine(text []byte, tabSize int) []byte {
	var out bytes.Buffer
	col := 0
	for _, c := range text {
		if c == '\t' {
			next := TabStop(col, 1, tabSize)
			for ; col < next; col++ {
				out.WriteByte(' ')
			}
			continue
		}
		out.WriteByte(c)
		col++
	}
	return out.Bytes()
}

// EntabLine collapses runs of spaces that cross a tab stop into '\t'
// (§4.2 entabLine). A run of spaces is only replaced when it reaches at
// least the next stop; shorter trailing runs are left as spaces.
func EntabLine(text []byte, tabSize int) []byte {
	var out bytes.Buffer
	col := 0
	i := 0
	for i < len(text) {
		if text[i] != ' ' {
			out.WriteByte(text[i])
			col++
			i++
			continue
		}
		runStart := i
		for i < len(text) && text[i] == ' ' {
			i++
		}
		spaces := i - runStart
		startCol := col
		endCol := col + spaces
		stop := TabStop(startCol, 1, tabSize)
		for stop <= endCol {
			out.WriteByte('\t')
			startCol = stop
			stop = TabStop(startCol, 1, tabSize)
		}
		for c := startCol; c < endCol; c++ {
			out.WriteByte(' ')
		}
		col = endCol
	}
	return out.Bytes()
}

// DetabLineAt rewrites the buffer line at id in place, expanding tabs.
func (b *Buffer) DetabLineAt(id LineID, tabSize int) {
	l := b.Lines.Line(id)
	l.text = DetabLine(l.text, tabSize)
	b.ChangeCount++
}

// EntabLineAt rewrites the buffer line at id in place, collapsing spaces
// into tabs.
func (b *Buffer) EntabLineAt(id LineID, tabSize int) {
	l := b.Lines.Line(id)
	l.text = EntabLine(l.text, tabSize)
	b.ChangeCount++
}
