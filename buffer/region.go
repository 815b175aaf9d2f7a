package buffer

// Region is a (point, size, lineCount) triple (§3.9). Size is signed: a
// negative size means the region runs backward from Point.
type Region struct {
	Point     Point
	Size      int
	LineCount int
}

// RegionBetween builds the Region spanning from to the buffer's
// RegMark, counting the line breaks crossed (§4.2 region.c-style
// incremental bookkeeping — maintained here by a single forward walk
// rather than recomputed per access, since the walk already has to visit
// every line to build the byte count).
func (b *Buffer) RegionBetween(from Point) Region {
	to := b.RegMarkVal.Point
	return b.regionBetweenPoints(from, to)
}

func (b *Buffer) regionBetweenPoints(from, to Point) Region {
	fwd := b.pointLE(from, to)
	lo, hi := from, to
	if !fwd {
		lo, hi = to, from
	}
	size, lines := b.spanSize(lo, hi)
	if !fwd {
		size = -size
	}
	return Region{Point: from, Size: size, LineCount: lines}
}

// pointLE reports whether a occurs at or before b in line-list order.
func (b *Buffer) pointLE(a, c Point) bool {
	if a.Line == c.Line {
		return a.Offset <= c.Offset
	}
	for id := a.Line; id != NoLine; id = b.Lines.Next(id) {
		if id == c.Line {
			return true
		}
	}
	return false
}

// spanSize walks from lo to hi (lo assumed <= hi) and returns the byte
// count (including one delimiter byte per crossed line break) and the
// number of line breaks crossed.
func (b *Buffer) spanSize(lo, hi Point) (size, lines int) {
	if lo.Line == hi.Line {
		return hi.Offset - lo.Offset, 0
	}
	l := b.Lines.Line(lo.Line)
	size += l.Used() - lo.Offset
	lines++
	id := b.Lines.Next(lo.Line)
	for id != hi.Line {
		size += b.Lines.Line(id).Used() + 1
		lines++
		id = b.Lines.Next(id)
	}
	size += 1 + hi.Offset
	return size, lines
}

// ExtractRegion returns the region's bytes as a string, normalizing to a
// non-negative span by default (regionToString, §4.2). Pass
// preserveDirection=true to keep a backward region's bytes in
// point-to-mark order rather than forward document order.
func (b *Buffer) ExtractRegion(r Region, preserveDirection bool) string {
	lo := r.Point
	size := r.Size
	if size < 0 {
		size = -size
		lo = stepBack(b.Lines, r.Point, size)
	}
	text := b.extractForward(lo, size)
	if preserveDirection && r.Size < 0 {
		rev := []byte(text)
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		return string(rev)
	}
	return text
}

// stepBack walks p backward n bytes, crossing line delimiters (counted as
// one byte each), and returns the resulting point.
func stepBack(ll *LineList, p Point, n int) Point {
	for n > 0 {
		if p.Offset >= n {
			p.Offset -= n
			return p
		}
		n -= p.Offset + 1
		prev := ll.Prev(p.Line)
		if prev == NoLine {
			return Point{Line: p.Line, Offset: 0}
		}
		p = Point{Line: prev, Offset: ll.Line(prev).Used()}
	}
	return p
}

func (b *Buffer) extractForward(lo Point, size int) string {
	var out []byte
	id := lo.Line
	offset := lo.Offset
	remaining := size
	for remaining > 0 {
		l := b.Lines.Line(id)
		avail := l.Used() - offset
		if avail >= remaining {
			out = append(out, l.text[offset:offset+remaining]...)
			return string(out)
		}
		out = append(out, l.text[offset:]...)
		remaining -= avail
		next := b.Lines.Next(id)
		if next == NoLine {
			return string(out)
		}
		out = append(out, '\n')
		remaining--
		id = next
		offset = 0
	}
	return string(out)
}

// TextFromPoint materializes the buffer text from p forward, stopping at
// end-of-buffer or after crossing maxLines line breaks (0 = unlimited). It
// returns the text and the point just past the last byte returned, for
// search's streaming-source compromise (§4.3): the line list is still the
// source of truth, but a bounded span is copied out for regexp matching
// rather than maintaining a true zero-copy rune source.
func (b *Buffer) TextFromPoint(p Point, maxLines int) (text string, end Point) {
	var out []byte
	id := p.Line
	offset := p.Offset
	lines := 0
	for {
		l := b.Lines.Line(id)
		out = append(out, l.text[offset:]...)
		next := b.Lines.Next(id)
		if next == NoLine {
			return string(out), Point{Line: id, Offset: l.Used()}
		}
		if maxLines > 0 && lines >= maxLines {
			return string(out), Point{Line: id, Offset: l.Used()}
		}
		out = append(out, '\n')
		lines++
		id = next
		offset = 0
	}
}

// TextToPoint materializes the buffer text from the buffer start (or
// maxLines back from p, whichever is nearer) up to p, returning the text
// and the point it starts at.
func (b *Buffer) TextToPoint(p Point, maxLines int) (text string, start Point) {
	id := p.Line
	lines := 0
	for {
		prev := b.Lines.Prev(id)
		if prev == NoLine {
			break
		}
		if maxLines > 0 && lines >= maxLines {
			break
		}
		id = prev
		lines++
	}
	start = Point{Line: id, Offset: 0}
	size, _ := b.spanSize(start, p)
	return b.extractForward(start, size), start
}

// PointAfterBytes walks n logical bytes forward from p (each crossed line
// delimiter counting as one byte), returning the resulting point. Used to
// translate a materialized-text byte offset (§4.3 regex matching) back
// into a line-list position.
func (b *Buffer) PointAfterBytes(p Point, n int) Point {
	id := p.Line
	offset := p.Offset
	for n > 0 {
		l := b.Lines.Line(id)
		avail := l.Used() - offset
		if avail >= n {
			return Point{Line: id, Offset: offset + n}
		}
		n -= avail
		next := b.Lines.Next(id)
		if next == NoLine {
			return Point{Line: id, Offset: l.Used()}
		}
		n--
		id = next
		offset = 0
	}
	return Point{Line: id, Offset: offset}
}

// LineRegion expands a point/n pair to a line-block Region (§4.2):
// n == 1 selects the current line through its trailing newline; n == 0
// selects the region's own lines; n < 0 goes |n|-1 lines backward from
// point and runs through the end of point's line, including its trailing
// newline.
func (b *Buffer) LineRegion(p Point, n int) Region {
	switch {
	case n == 0:
		return b.RegionBetween(p)
	case n > 0:
		start := Point{Line: p.Line, Offset: 0}
		id := p.Line
		for i := 1; i < n; i++ {
			next := b.Lines.Next(id)
			if next == NoLine {
				break
			}
			id = next
		}
		l := b.Lines.Line(id)
		end := Point{Line: id, Offset: l.Used()}
		if b.Lines.Next(id) != NoLine {
			// include the trailing delimiter by extending onto the next
			// line at offset 0, so extractForward's '\n' bridge is
			// counted in Size.
			end = Point{Line: b.Lines.Next(id), Offset: 0}
		}
		size, lines := b.spanSize(start, end)
		return Region{Point: start, Size: size, LineCount: lines}
	default:
		steps := -n - 1
		id := p.Line
		for i := 0; i < steps; i++ {
			prev := b.Lines.Prev(id)
			if prev == NoLine {
				break
			}
			id = prev
		}
		start := Point{Line: id, Offset: 0}
		end := Point{Line: p.Line, Offset: b.Lines.Line(p.Line).Used()}
		if next := b.Lines.Next(p.Line); next != NoLine {
			end = Point{Line: next, Offset: 0}
		}
		size, lines := b.spanSize(start, end)
		return Region{Point: start, Size: size, LineCount: lines}
	}
}
