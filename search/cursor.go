package search

import "github.com/go-memacs/core/buffer"

// cursor walks a buffer's line list one logical byte at a time, treating
// every line delimiter as a single '\n' regardless of the line's actual
// on-disk delimiter (§4.3: "Scanning the line list treats line breaks as
// \n"). It is the shared stepping primitive for both Boyer-Moore and the
// regex engine's streaming source.
type cursor struct {
	buf  *buffer.Buffer
	ll   *buffer.LineList
	line buffer.LineID
	off  int
}

func newCursor(buf *buffer.Buffer, p buffer.Point) *cursor {
	return &cursor{buf: buf, ll: buf.Lines, line: p.Line, off: p.Offset}
}

func (c *cursor) point() buffer.Point { return buffer.Point{Line: c.line, Offset: c.off} }

// atEnd reports whether the cursor sits at end-of-buffer.
func (c *cursor) atEnd() bool {
	return c.point().AtBufferEnd(c.ll)
}

// atStart reports whether the cursor sits at beginning-of-buffer.
func (c *cursor) atStart() bool {
	return c.point().AtBufferStart(c.ll)
}

// peek returns the logical byte at the cursor without moving it, and
// whether one exists (false at end-of-buffer).
func (c *cursor) peek() (byte, bool) {
	if c.atEnd() {
		return 0, false
	}
	l := c.ll.Line(c.line)
	if c.off < l.Used() {
		return l.Bytes()[c.off], true
	}
	return '\n', true
}

// advance moves the cursor forward one logical byte, reporting whether a
// line break was crossed.
func (c *cursor) advance() (crossed bool) {
	l := c.ll.Line(c.line)
	if c.off < l.Used() {
		c.off++
		return false
	}
	next := c.ll.Next(c.line)
	if next == buffer.NoLine {
		return false
	}
	c.line = next
	c.off = 0
	return true
}

// retreat moves the cursor backward one logical byte, reporting whether a
// line break was crossed.
func (c *cursor) retreat() (crossed bool) {
	if c.off > 0 {
		c.off--
		return false
	}
	prev := c.ll.Prev(c.line)
	if prev == buffer.NoLine {
		return false
	}
	c.line = prev
	c.off = c.ll.Line(prev).Used()
	return true
}
