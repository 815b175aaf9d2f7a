package varsvc

import "github.com/go-memacs/core/buffer"

// SwapMark atomically exchanges w's point with the named mark's position
// (§4.6). The mark must already exist (MarkHard); the exchange leaves the
// mark's ReframeRow untouched rather than recomputing or zeroing it, so a
// later redisplay still has the row the mark was given when it was set —
// "preserving the mark's reframe row".
func SwapMark(w *buffer.Window, name rune) error {
	m, err := w.Buf.FindMark(name, buffer.MarkHard)
	if err != nil {
		return err
	}
	w.Face.Point, m.Point = m.Point, w.Face.Point
	w.NoteNonLineMove()
	w.SetDirty(buffer.WFReframe)
	return nil
}
