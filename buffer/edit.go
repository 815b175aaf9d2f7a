package buffer

import "github.com/go-memacs/core/status"

// insertBytes inserts raw bytes into line at offset, growing its backing
// array via Go's append (the arena LineID never changes, so no window or
// mark ever needs to learn about a "new" Line the way the teacher's
// pointer-linked list would require after a capacity-driven reallocation —
// see SPEC_FULL.md's arena design note).
func (ll *LineList) insertBytes(id LineID, offset int, data []byte) {
	l := ll.Line(id)
	grown := make([]byte, 0, len(l.text)+len(data))
	grown = append(grown, l.text[:offset]...)
	grown = append(grown, data...)
	grown = append(grown, l.text[offset:]...)
	l.text = grown
}

func (ll *LineList) deleteBytes(id LineID, offset, n int) {
	l := ll.Line(id)
	l.text = append(l.text[:offset], l.text[offset+n:]...)
}

// relocateInsertion applies invariant 4 (§8) to every mark and every
// other window's point on line id: offsets strictly greater than offset
// shift forward by n. The acting window's own point is then advanced past
// the inserted text explicitly, since (unlike a passive mark sitting at
// the insertion point) the cursor that typed the text ends up after it.
func (b *Buffer) relocateInsertion(acting *Window, id LineID, offset, n int) {
	relocate := func(p *Point) {
		if p.Line == id && p.Offset > offset {
			p.Offset += n
		}
	}
	relocate(&b.RegMarkVal.Point)
	for _, m := range b.marks {
		relocate(&m.Point)
	}
	for _, w := range b.windows {
		relocate(&w.Face.Point)
		dirty := WFEdit
		w.SetDirty(dirty)
	}
	if acting != nil {
		if acting.Face.Point.Line == id && acting.Face.Point.Offset == offset {
			acting.Face.Point.Offset = offset + n
		}
	}
}

// relocateDeletion applies invariant 5 (§8) to every mark and window's
// point on line id for a deletion of n bytes starting at offset: offsets
// in (offset, offset+n] collapse to offset; offsets beyond offset+n shift
// back by n; offsets at exactly offset are unchanged. This also correctly
// repositions the acting window, provided its point was already moved to
// `offset` before the deletion (forward deletes start there already;
// backward deletes walk point back to `offset` first).
func (b *Buffer) relocateDeletion(id LineID, offset, n int) {
	relocate := func(p *Point) {
		if p.Line != id {
			return
		}
		switch {
		case p.Offset > offset && p.Offset <= offset+n:
			p.Offset = offset
		case p.Offset > offset+n:
			p.Offset -= n
		}
	}
	relocate(&b.RegMarkVal.Point)
	for _, m := range b.marks {
		relocate(&m.Point)
	}
	for _, w := range b.windows {
		relocate(&w.Face.Point)
		w.SetDirty(WFEdit)
	}
}

// retargetLine repoints every mark/window face currently on `from` to
// `to`, adding `offsetDelta` to their offset. Used when a line is removed
// by a join and its content has migrated onto a neighboring line.
func (b *Buffer) retargetLine(from, to LineID, offsetDelta int) {
	retarget := func(p *Point) {
		if p.Line == from {
			p.Line = to
			p.Offset += offsetDelta
		}
	}
	retarget(&b.RegMarkVal.Point)
	for _, m := range b.marks {
		retarget(&m.Point)
	}
	for _, w := range b.windows {
		retarget(&w.Face.Point)
		if w.Face.TopLine == from {
			w.Face.TopLine = to
		}
		w.SetDirty(WFHard)
	}
}

// InsertChars inserts n copies of byte c at w's point. It never interprets
// '\n' specially: a literal newline byte is stored as ordinary line data,
// matching §4.2's insertChars semantics (use InsertString to get
// line-splitting behavior for embedded newlines).
func (b *Buffer) InsertChars(w *Window, n int, c byte) error {
	if n <= 0 {
		return nil
	}
	if b.Modes.Has(modeReadOnlyBit) {
		return status.New(status.Failure, "buffer %q is read-only", b.Name)
	}
	p := w.Face.Point
	data := make([]byte, n)
	for i := range data {
		data[i] = c
	}
	b.Lines.insertBytes(p.Line, p.Offset, data)
	b.relocateInsertion(w, p.Line, p.Offset, n)
	b.ChangeCount++
	return nil
}

// InsertNewline splits the line at w's point into two lines (§4.2).
func (b *Buffer) InsertNewline(w *Window) error {
	if b.Modes.Has(modeReadOnlyBit) {
		return status.New(status.Failure, "buffer %q is read-only", b.Name)
	}
	p := w.Face.Point
	l := b.Lines.Line(p.Line)
	tail := append([]byte(nil), l.text[p.Offset:]...)
	l.text = l.text[:p.Offset]
	newID := b.Lines.insertAfter(p.Line, tail)

	// Marks/windows strictly past the split point move to the new line,
	// with their offset measured from the split; marks at or before the
	// split point stay on the original (now shorter) line.
	b.retargetSplit(p.Line, newID, p.Offset)

	w.Face.Point = Point{Line: newID, Offset: 0}
	for _, win := range b.windows {
		win.SetDirty(WFHard)
	}
	b.ChangeCount++
	return nil
}

// retargetSplit moves every mark/window point with offset > splitAt on
// `orig` to `newID`, rebasing the offset against the split.
func (b *Buffer) retargetSplit(orig, newID LineID, splitAt int) {
	move := func(p *Point) {
		if p.Line == orig && p.Offset > splitAt {
			p.Line = newID
			p.Offset -= splitAt
		}
	}
	move(&b.RegMarkVal.Point)
	for _, m := range b.marks {
		move(&m.Point)
	}
	for _, w := range b.windows {
		move(&w.Face.Point)
		// topLine never needs to move here: it still names the (now
		// shorter) original line, which still renders as the same row.
	}
}

// InsertString inserts s at w's point; each '\n' byte triggers
// InsertNewline instead of being stored literally (§4.2).
func (b *Buffer) InsertString(w *Window, s string) error {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		if i > start {
			if err := b.insertRun(w, []byte(s[start:i])); err != nil {
				return err
			}
		}
		if err := b.InsertNewline(w); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		return b.insertRun(w, []byte(s[start:]))
	}
	return nil
}

// insertRun inserts a run of bytes containing no newline.
func (b *Buffer) insertRun(w *Window, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if b.Modes.Has(modeReadOnlyBit) {
		return status.New(status.Failure, "buffer %q is read-only", b.Name)
	}
	p := w.Face.Point
	b.Lines.insertBytes(p.Line, p.Offset, data)
	b.relocateInsertion(w, p.Line, p.Offset, len(data))
	b.ChangeCount++
	return nil
}

// DeleteChars deletes n bytes from w's point: positive n deletes forward,
// negative deletes backward (§4.2). Deleted bytes are handed to disp's
// disposition. Crossing a line delimiter merges the two lines.
func (b *Buffer) DeleteChars(w *Window, n int, disp KillDisposition) error {
	if n == 0 {
		return nil
	}
	if b.Modes.Has(modeReadOnlyBit) {
		return status.New(status.Failure, "buffer %q is read-only", b.Name)
	}
	forward := n > 0
	count := n
	if !forward {
		count = -n
	}

	var collected []byte
	multiline := false
	for i := 0; i < count; i++ {
		var chunk []byte
		var crossed bool
		var err error
		if forward {
			chunk, crossed, err = b.deleteOneForward(w)
		} else {
			chunk, crossed, err = b.deleteOneBackward(w)
		}
		if err != nil {
			return err
		}
		if crossed {
			multiline = true
		}
		if forward {
			collected = append(collected, chunk...)
		} else {
			collected = append(chunk, collected...)
		}
	}

	b.ChangeCount++
	dirty := WFEdit
	if multiline {
		dirty = WFHard
	}
	for _, win := range b.windows {
		win.SetDirty(dirty)
	}

	switch disp {
	case KillDiscard:
	case KillSave:
		if b.killSink != nil {
			b.killSink.Kill(collected, forward)
		}
	case KillSaveUndelete:
		// handled by caller via UndeleteRing.Push(collected) — the
		// buffer itself doesn't own an undelete ring instance, since
		// ring lifetime is a session concern; exposed via the return.
	}
	b.lastDeleted = collected
	return nil
}

// LastDeleted exposes the most recent DeleteChars' removed bytes, so a
// caller using KillSaveUndelete can push them onto its UndeleteRing.
func (b *Buffer) LastDeleted() []byte { return b.lastDeleted }

// deleteOneForward removes the byte immediately after w's point, merging
// with the next line if point sits at end-of-line. Returns the removed
// byte (or '\n' for a merge) and whether a line boundary was crossed.
func (b *Buffer) deleteOneForward(w *Window) ([]byte, bool, error) {
	p := w.Face.Point
	l := b.Lines.Line(p.Line)
	if p.Offset < len(l.text) {
		removed := l.text[p.Offset]
		b.Lines.deleteBytes(p.Line, p.Offset, 1)
		b.relocateDeletion(p.Line, p.Offset, 1)
		return []byte{removed}, false, nil
	}
	// At end of line: merge with next line, if any.
	next := b.Lines.Next(p.Line)
	if next == NoLine {
		return nil, false, status.New(status.NotFound, "end of buffer")
	}
	b.mergeNext(p.Line)
	return []byte{'\n'}, true, nil
}

// deleteOneBackward removes the byte immediately before w's point, moving
// point back first; merges with the previous line if point sits at
// start-of-line.
func (b *Buffer) deleteOneBackward(w *Window) ([]byte, bool, error) {
	p := w.Face.Point
	if p.Offset > 0 {
		w.Face.Point.Offset = p.Offset - 1
		removed := b.Lines.Line(p.Line).text[p.Offset-1]
		b.Lines.deleteBytes(p.Line, p.Offset-1, 1)
		b.relocateDeletion(p.Line, p.Offset-1, 1)
		return []byte{removed}, false, nil
	}
	prev := b.Lines.Prev(p.Line)
	if prev == NoLine {
		return nil, false, status.New(status.NotFound, "beginning of buffer")
	}
	prevLen := b.Lines.Line(prev).Used()
	w.Face.Point = Point{Line: prev, Offset: prevLen}
	b.mergeNext(prev)
	return []byte{'\n'}, true, nil
}

// mergeNext removes the line delimiter between id and its successor,
// merging the successor's text onto id and relocating every mark/window
// that referenced the successor (§4.2 joinLines).
func (b *Buffer) mergeNext(id LineID) {
	next := b.Lines.Next(id)
	head := b.Lines.Line(id)
	tail := b.Lines.Line(next)
	splitAt := len(head.text)
	head.text = append(head.text, tail.text...)
	b.retargetLine(next, id, splitAt)
	b.Lines.remove(next)
}

// JoinLines removes the line delimiter adjacent to w's point: dir > 0
// joins with the following line, dir < 0 joins with the preceding line
// (§4.2).
func (b *Buffer) JoinLines(w *Window, dir int) error {
	if b.Modes.Has(modeReadOnlyBit) {
		return status.New(status.Failure, "buffer %q is read-only", b.Name)
	}
	if dir > 0 {
		next := b.Lines.Next(w.Face.Point.Line)
		if next == NoLine {
			return status.New(status.NotFound, "no following line")
		}
		b.mergeNext(w.Face.Point.Line)
	} else {
		prev := b.Lines.Prev(w.Face.Point.Line)
		if prev == NoLine {
			return status.New(status.NotFound, "no preceding line")
		}
		w.Face.Point = Point{Line: prev, Offset: b.Lines.Line(prev).Used()}
		b.mergeNext(prev)
	}
	b.ChangeCount++
	for _, win := range b.windows {
		win.SetDirty(WFHard)
	}
	return nil
}
