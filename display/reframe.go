package display

import "github.com/go-memacs/core/buffer"

// visible reports whether point's line lies within the next contentRows
// lines starting at top, and if so how many rows down from top it sits.
func visible(ll *buffer.LineList, top, point buffer.LineID, contentRows int) (row int, ok bool) {
	id := top
	for r := 0; r < contentRows && id != buffer.NoLine; r++ {
		if id == point {
			return r, true
		}
		id = ll.Next(id)
	}
	return 0, false
}

// reframeTarget walks back targetRow lines from point, returning the line
// that should become the new top line and whether it actually reached
// targetRow lines back (false means it hit the buffer's first line first
// -- an overshoot).
func reframeTarget(ll *buffer.LineList, point buffer.LineID, targetRow int) (buffer.LineID, bool) {
	id := point
	for r := 0; r < targetRow; r++ {
		prev := ll.Prev(id)
		if prev == buffer.NoLine {
			return id, false
		}
		id = prev
	}
	return id, true
}

// Reframe repositions w's top line so point is visible, per §4.4
// "Reframing": forced (WFReframe) or off-screen point recomputes the top
// line using vjumpPct% from the edge reached, falling back to a centered
// window if that jump would run past the start of the buffer. Spec
// leaves the exact directional split unspecified beyond "vjumpPct% from
// the edge reached"; this reframes to the same target row regardless of
// which edge point crossed, which satisfies the stated behavior (point
// lands vjumpPct% down from the top of the window) without inventing an
// asymmetric up/down policy the spec doesn't name.
func Reframe(w *buffer.Window, contentRows, vjumpPct int) {
	ll := w.Buf.Lines
	forced := w.Flags&buffer.WFReframe != 0
	if !forced {
		if _, ok := visible(ll, w.Face.TopLine, w.Face.Point.Line, contentRows); ok {
			return
		}
	}

	target := vjumpPct * (contentRows - 1) / 100
	top, exact := reframeTarget(ll, w.Face.Point.Line, target)
	if !exact {
		top, _ = reframeTarget(ll, w.Face.Point.Line, contentRows/2)
	}
	w.Face.TopLine = top
	w.Flags &^= buffer.WFReframe
}
