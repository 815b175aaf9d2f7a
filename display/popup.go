package display

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
	"github.com/go-memacs/core/status"
)

// Popup is a modal pager (§4.4 "Pop-up windows (bpop)"): a read-only
// buffer rendered directly into the virtual screen, navigated with a
// fixed key set rather than full command dispatch.
type Popup struct {
	win  *buffer.Window
	rows int
	cols int
}

// NewPopup opens a pop-up over buf, setting its ModeReadOnly bit (bpop
// always shows a read-only view regardless of the buffer's own mode).
// Close does not clear the bit again.
func NewPopup(buf *buffer.Buffer, rows, cols int) *Popup {
	buf.Modes.Set(config.ModeReadOnly)
	w := buffer.NewWindow(buf, rows)
	return &Popup{win: w, rows: rows, cols: cols}
}

// Close detaches the pop-up's window.
func (p *Popup) Close() { p.win.Close() }

// Compose renders the pop-up's content rows plus a bottom mode line
// temporarily rewritten with buffer identification (§4.4: "The bottom
// mode line is temporarily rewritten with buffer identification").
func (p *Popup) Compose(cfg *config.Config, title string) *Screen {
	out := &Screen{}
	contentRows := p.rows - 1
	id := p.win.Face.TopLine
	for r := 0; r < contentRows; r++ {
		var row Row
		if id == buffer.NoLine {
			row = NewRow(p.cols)
		} else {
			row = renderLine(p.win.Buf, id, p.win, p.cols, cfg, false)
			id = p.win.Buf.Lines.Next(id)
		}
		out.Rows = append(out.Rows, row)
	}
	idRow := NewRow(p.cols)
	for i, r := range []rune(title) {
		if i >= p.cols {
			break
		}
		idRow.Set(i, NewCell(r, Attrs{Reverse: true}))
	}
	for i := len([]rune(title)); i < p.cols; i++ {
		idRow.Set(i, NewCell(' ', Attrs{Reverse: true}))
	}
	out.Rows = append(out.Rows, idRow)
	return out
}

// pageLines returns the content-row count (everything but the mode
// line), the unit PageDown/PageUp scroll by.
func (p *Popup) pageLines() int {
	n := p.rows - 1
	if n < 1 {
		n = 1
	}
	return n
}

func (p *Popup) scrollBy(lines int) {
	ll := p.win.Buf.Lines
	id := p.win.Face.TopLine
	if lines >= 0 {
		for i := 0; i < lines && id != buffer.NoLine; i++ {
			next := ll.Next(id)
			if next == buffer.NoLine {
				break
			}
			id = next
		}
	} else {
		for i := 0; i < -lines && id != buffer.NoLine; i++ {
			prev := ll.Prev(id)
			if prev == buffer.NoLine {
				break
			}
			id = prev
		}
	}
	p.win.Face.TopLine = id
}

// PageDown scrolls forward a full page (space/f).
func (p *Popup) PageDown() { p.scrollBy(p.pageLines()) }

// PageUp scrolls back a full page (b).
func (p *Popup) PageUp() { p.scrollBy(-p.pageLines()) }

// HalfDown scrolls forward half a page (d).
func (p *Popup) HalfDown() { p.scrollBy(p.pageLines() / 2) }

// HalfUp scrolls back half a page (u).
func (p *Popup) HalfUp() { p.scrollBy(-p.pageLines() / 2) }

// LineDown/LineUp are bound to the same keys as forwLine/backLine.
func (p *Popup) LineDown() { p.scrollBy(1) }
func (p *Popup) LineUp()   { p.scrollBy(-1) }

// Top jumps to the first line (g).
func (p *Popup) Top() { p.win.Face.TopLine = p.win.Buf.Lines.First() }

// Bottom jumps so the last page of the buffer is visible (G).
func (p *Popup) Bottom() {
	ll := p.win.Buf.Lines
	lines := make([]buffer.LineID, 0, ll.Count())
	for id := ll.First(); id != buffer.NoLine; id = ll.Next(id) {
		lines = append(lines, id)
	}
	n := p.pageLines()
	if n > len(lines) {
		n = len(lines)
	}
	if n == 0 {
		return
	}
	p.win.Face.TopLine = lines[len(lines)-n]
}

// quitKeys are the keys that dismiss a pop-up (ESC/q); exported as data
// so the input layer's key table can reference it without this package
// importing an input/keymap package.
var quitKeys = map[rune]bool{27: true, 'q': true}

// IsQuitKey reports whether r should close the pop-up.
func IsQuitKey(r rune) bool { return quitKeys[r] }

// Key dispatches one paging keystroke (space/f, b, d, u, g, G), returning
// status.NotFound for any other key. The help key '?', the quit keys (see
// IsQuitKey) and the line-motion keys are not dispatched here and also
// return status.NotFound.
func (p *Popup) Key(r rune) error {
	switch r {
	case ' ', 'f':
		p.PageDown()
	case 'b':
		p.PageUp()
	case 'd':
		p.HalfDown()
	case 'u':
		p.HalfUp()
	case 'g':
		p.Top()
	case 'G':
		p.Bottom()
	default:
		return status.New(status.NotFound, "unbound pop-up key %q", r)
	}
	return nil
}
