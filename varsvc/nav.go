package varsvc

import "github.com/go-memacs/core/buffer"

// MoveChar walks w's point forward (n > 0) or backward (n < 0) by |n|
// characters, crossing line boundaries as needed. The move is atomic: if
// the buffer runs out before all n steps are taken, point is left
// unchanged and MoveChar reports false (§8 "moveChar(+1) at end-of-buffer
// ... does not move point").
func MoveChar(w *buffer.Window, n int) bool {
	ll := w.Buf.Lines
	p := w.Face.Point
	if n >= 0 {
		for ; n > 0; n-- {
			if p.AtLineEnd(ll) {
				next := ll.Next(p.Line)
				if next == buffer.NoLine {
					return false
				}
				p = buffer.Point{Line: next, Offset: 0}
				continue
			}
			p.Offset++
		}
	} else {
		for ; n < 0; n++ {
			if p.Offset == 0 {
				prev := ll.Prev(p.Line)
				if prev == buffer.NoLine {
					return false
				}
				p = buffer.Point{Line: prev, Offset: ll.Line(prev).Used()}
				continue
			}
			p.Offset--
		}
	}
	w.Face.Point = p
	w.NoteNonLineMove()
	return true
}

// MoveLine walks w's point forward or backward by n full lines, landing
// on the run's pinned goal column (§4.6 "retaining a target column across
// a sequence of line-moves, reset only by any non-line-move command").
// Atomic, like MoveChar: if fewer than |n| lines remain, point is
// unchanged and MoveLine reports false.
func MoveLine(w *buffer.Window, n int) bool {
	w.NoteLineMove(w.Face.Point.Offset)

	ll := w.Buf.Lines
	id := w.Face.Point.Line
	if n >= 0 {
		for i := 0; i < n; i++ {
			next := ll.Next(id)
			if next == buffer.NoLine {
				return false
			}
			id = next
		}
	} else {
		for i := 0; i < -n; i++ {
			prev := ll.Prev(id)
			if prev == buffer.NoLine {
				return false
			}
			id = prev
		}
	}
	goal := w.GoalColumn(w.Face.Point.Offset)
	used := ll.Line(id).Used()
	if goal > used {
		goal = used
	}
	w.Face.Point = buffer.Point{Line: id, Offset: goal}
	return true
}

// MoveWord walks w's point forward (n > 0) or backward (n < 0) by |n|
// words, where word boundaries are defined by isWord (§4.6: "word
// boundaries are defined by the word-character set"). Non-atomic: a
// partial final word still counts, matching moveChar's per-character
// boundary style rather than moveLine's whole-unit atomicity, since a
// word motion that runs out of buffer simply stops at the boundary it
// reached (mirroring moveChar's own per-step boundary check).
func MoveWord(w *buffer.Window, n int, isWord func(rune) bool) bool {
	if n >= 0 {
		for ; n > 0; n-- {
			if !skipToWordBoundary(w, true, isWord) {
				return false
			}
			if !skipWhileWord(w, true, isWord) {
				return true
			}
		}
	} else {
		for ; n < 0; n++ {
			if !skipToWordBoundary(w, false, isWord) {
				return false
			}
			if !skipWhileWord(w, false, isWord) {
				return true
			}
		}
	}
	return true
}

func curByte(w *buffer.Window) (byte, bool) {
	p := w.Face.Point
	l := w.Buf.Lines.Line(p.Line)
	if p.Offset >= l.Used() {
		return 0, false
	}
	return l.Bytes()[p.Offset], true
}

func skipToWordBoundary(w *buffer.Window, forward bool, isWord func(rune) bool) bool {
	for {
		c, ok := curByte(w)
		if ok && isWord(rune(c)) {
			return true
		}
		if !MoveChar(w, boolToStep(forward)) {
			return false
		}
	}
}

func skipWhileWord(w *buffer.Window, forward bool, isWord func(rune) bool) bool {
	moved := false
	for {
		c, ok := curByte(w)
		if !ok || !isWord(rune(c)) {
			return moved
		}
		if !MoveChar(w, boolToStep(forward)) {
			return moved
		}
		moved = true
	}
}

func boolToStep(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

// TabStop computes the buffer offset reached after n tab-stop jumps from
// w's current column, at the given stop width (§4.6 tabStop(n)). It is a
// pure computation: callers that want to actually move or insert use the
// returned offset themselves (buffer.InsertSoftTab already does this for
// the insertion case).
func TabStop(w *buffer.Window, n, width int) int {
	return buffer.TabStop(w.Face.Point.Offset, n, width)
}
