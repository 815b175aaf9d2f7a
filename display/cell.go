// Package display implements the editor's two-screen composition/diff
// engine (§4.4): a virtual screen recomposed from buffer windows on every
// refresh, diffed against the physical screen that mirrors what the
// terminal last showed.
package display

import "github.com/rivo/uniseg"

// Attrs is the inline-attribute state a cell renders with (§4.4 "Terminal
// attributes"): bold, reverse, underline, each independently on/off.
// Adapted from cliofy-govte/terminal/character.go's CharacterStyles,
// narrowed from a full ANSI color/style model to exactly the three
// attributes spec's `~b`/`~r`/`~u` sentinel sequences name.
type Attrs struct {
	Bold      bool
	Reverse   bool
	Underline bool
}

// Off reports whether no attribute is active (the "~0 all off" state).
func (a Attrs) Off() bool { return !a.Bold && !a.Reverse && !a.Underline }

// Cell is one display column: a rune plus the column width it occupies
// and the attributes it renders with. Control and high-bit bytes are
// pre-expanded into their `^X`/`<HH>` glyph cells before reaching this
// type, so a Cell is always exactly what hits the terminal.
type Cell struct {
	Ch    rune
	Width int
	Attrs Attrs
}

// NewCell computes ch's display width via uniseg (replacing
// cliofy-govte/terminal/character.go's placeholder runeWidth, which
// hard-codes every non-control rune to width 1) and returns a Cell with
// the given attributes.
func NewCell(ch rune, attrs Attrs) Cell {
	return Cell{Ch: ch, Width: uniseg.StringWidth(string(ch)), Attrs: attrs}
}

// BlankCell is an unattributed space, the fill cell for padding rows to
// width.
func BlankCell() Cell { return Cell{Ch: ' ', Width: 1} }
