package buffer

// Point is a (Line, offset) pair, 0 <= offset <= line.used (§3.3).
// offset == line.used means "just before the line delimiter", or
// end-of-buffer if the line is last.
type Point struct {
	Line   LineID
	Offset int
}

// AtLineEnd reports whether p sits just past the last byte of its line.
func (p Point) AtLineEnd(ll *LineList) bool {
	return p.Offset >= ll.Line(p.Line).Used()
}

// AtBufferStart reports whether p is the very first position in the
// buffer: the first line, offset 0.
func (p Point) AtBufferStart(ll *LineList) bool {
	return p.Line == ll.First() && p.Offset == 0
}

// AtBufferEnd reports whether p is the very last position in the buffer:
// the last line, at its end.
func (p Point) AtBufferEnd(ll *LineList) bool {
	return p.Line == ll.Last() && p.AtLineEnd(ll)
}
