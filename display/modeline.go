package display

import (
	"fmt"
	"strings"

	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
)

// progID is the program-identification field composed into every mode
// line (§4.4 step 6, "program identification").
const progID = "MACE"

var modeNames = []struct {
	bit  config.Mode
	name string
}{
	{config.ModeReadOnly, "ro"},
	{config.ModeOverwrite, "over"},
	{config.ModeWrap, "wrap"},
	{config.ModeTermAttr, "attr"},
	{config.ModeHardTabs, "htab"},
	{config.ModeExact, "exact"},
}

// modeLineOptions carries the pieces of mode-line state that live outside
// Window/Buffer (screen number, macro-recording, line/column display
// toggle), kept separate from config so callers don't need a full Config
// just to render a pop-up's identification line.
type modeLineOptions struct {
	ScreenNum      int
	MacroRecording bool
	ShowLineCol    bool
}

// composeModeLine builds the text of w's mode line (§4.4 step 6): flags
// (narrowed, changed), screen number, macro-recording indicator,
// line/column indicators when enabled, mode list, buffer name, filename,
// working directory, and program identification, padded with fill to
// width.
func composeModeLine(w *buffer.Window, scr *buffer.Screen, fill rune, opts modeLineOptions) Row {
	var b strings.Builder
	b.WriteString("--")
	if w.Buf.Narrowed() {
		b.WriteString("[Narrow]")
	}
	if w.Buf.ChangeCount != 0 {
		b.WriteString("*")
	} else {
		b.WriteString("-")
	}
	fmt.Fprintf(&b, "%d:", opts.ScreenNum)
	if opts.MacroRecording {
		b.WriteString("REC:")
	}
	if opts.ShowLineCol {
		fmt.Fprintf(&b, "L%dC%d:", lineNumber(w), w.Face.Point.Offset)
	}

	var names []string
	for _, m := range modeNames {
		if w.Buf.Modes.Has(m.bit) {
			names = append(names, m.name)
		}
	}
	fmt.Fprintf(&b, "(%s)-", strings.Join(names, " "))

	b.WriteString(w.Buf.Name)
	if w.Buf.Filename != "" {
		fmt.Fprintf(&b, " (%s)", w.Buf.Filename)
	}
	if scr != nil && scr.Cwd != "" {
		fmt.Fprintf(&b, " [%s]", scr.Cwd)
	}
	fmt.Fprintf(&b, " -- %s", progID)

	text := b.String()
	width := 0
	if scr != nil {
		width = scr.Cols
	}
	row := NewRow(width)
	for i, r := range []rune(text) {
		if i >= width {
			break
		}
		row.Set(i, NewCell(r, Attrs{Reverse: true}))
	}
	for i := len([]rune(text)); i < width; i++ {
		row.Set(i, NewCell(fill, Attrs{Reverse: true}))
	}
	return row
}

// lineNumber returns w's point's 1-based line number.
func lineNumber(w *buffer.Window) int {
	ll := w.Buf.Lines
	n := 1
	for id := ll.First(); id != buffer.NoLine && id != w.Face.Point.Line; id = ll.Next(id) {
		n++
	}
	return n
}
