package buffer

// WFlags are window-redisplay hints, set by edit primitives and cleared by
// the display engine once it has repainted the window (§3.5, §4.2).
type WFlags uint8

const (
	// WFEdit marks a single-line change: only the point's row needs
	// repainting.
	WFEdit WFlags = 1 << iota
	// WFHard marks a multi-line change: the whole window needs
	// recomposing. SetDirty also sets it in place of WFEdit while the
	// buffer is displayed in more than one window (promotion rule, §4.2).
	WFHard
	// WFReframe forces a reframe on the next redisplay regardless of
	// whether point moved on-screen.
	WFReframe
	// WFMode marks the window's mode line as needing recomposition.
	WFMode
)

// Face is the per-window viewport state that must be tracked separately
// for every window displaying a buffer, so dot position is per-window
// (§3.5): topLine, point, and horizontal scroll.
type Face struct {
	TopLine  LineID
	Point    Point
	FirstCol int
	// GoalCol is the target column moveLine/moveUp/moveDown try to
	// return to across a run of line motions; persisted on the window
	// face and reset by any non-line-move command (nav.c's goalCol
	// global, reified here as session state; see Session.NoteNonLineMove).
	GoalCol int
}

// Window is a visible viewport onto a Buffer (§3.5).
type Window struct {
	Buf      *Buffer
	Face     Face
	Rows     int
	TopRow   int
	Flags    WFlags
	lastGoal bool // true if GoalCol was set by the most recent motion
}

// NewWindow opens a window of the given height onto buf, starting at its
// saved face (or the buffer's current head if it has none yet).
func NewWindow(buf *Buffer, rows int) *Window {
	w := &Window{Buf: buf, Rows: rows, Flags: WFHard}
	w.Face = buf.SavedFace
	if w.Face.TopLine == NoLine {
		w.Face.TopLine = buf.Lines.First()
		w.Face.Point = Point{Line: buf.Lines.First(), Offset: 0}
	}
	buf.NWind++
	buf.windows = append(buf.windows, w)
	return w
}

// Close detaches w from its buffer. When this drops the buffer's window
// count to zero, the buffer's most recent face is preserved on the buffer
// itself (§3.5, invariant 6 in §8).
func (w *Window) Close() {
	buf := w.Buf
	for i, other := range buf.windows {
		if other == w {
			buf.windows = append(buf.windows[:i], buf.windows[i+1:]...)
			break
		}
	}
	buf.NWind--
	if buf.NWind == 0 {
		buf.SavedFace = w.Face
	}
}

// SetDirty promotes w's redisplay hint to at least `want`, applying the
// "WFEdit promoted to WFHard when displayed in more than one window" rule
// when want is WFEdit.
func (w *Window) SetDirty(want WFlags) {
	if want == WFEdit && w.Buf.NWind > 1 {
		want = WFHard
	}
	w.Flags |= want
}

// NoteLineMove records col as the goal column for a run of line motions,
// but only if no goal is already pinned (nav.c's goalCol global is set
// once per run, not on every line move). Call before moving point.
func (w *Window) NoteLineMove(col int) {
	if !w.lastGoal {
		w.Face.GoalCol = col
		w.lastGoal = true
	}
}

// NoteNonLineMove resets the pinned goal column; any command other than a
// line-move calls this (the session's command dispatcher does so via
// Session.NoteNonLineMove) so the next line-move run re-pins from its
// starting column.
func (w *Window) NoteNonLineMove() { w.lastGoal = false }

// GoalColumn returns the column a line-move should land on: the pinned
// goal if one is active, else fallback (the column before this move,
// which NoteLineMove will have just pinned).
func (w *Window) GoalColumn(fallback int) int {
	if w.lastGoal {
		return w.Face.GoalCol
	}
	return fallback
}
