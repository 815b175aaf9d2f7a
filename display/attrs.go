package display

import (
	"fmt"

	"github.com/go-memacs/core/buffer"
)

// expandLine turns a buffer line's raw bytes into display cells (§4.4
// "Composition" step 2 and "Terminal attributes"): plain bytes copy
// through, '\t' expands to the next hard-tab stop, bytes < 0x20 and 0x7F
// render as "^X", high-bit bytes render as "<HH>". When decodeAttrs is
// true, inline `~`-sequences are consumed from the source without
// emitting any display columns for the sentinel itself, updating the
// attribute state carried into every subsequent cell.
//
// decodeAttrs is false whenever the line bears the point, so the raw
// sequences are visible for editing (§4.4: "the current line renders
// raw").
func expandLine(text []byte, tabWidth int, decodeAttrs bool) []Cell {
	cells := make([]Cell, 0, len(text))
	cur := Attrs{}
	col := 0

	emit := func(r rune) {
		c := NewCell(r, cur)
		cells = append(cells, c)
		col += c.Width
	}
	emitString := func(s string) {
		for _, r := range s {
			emit(r)
		}
	}

	i := 0
	for i < len(text) {
		b := text[i]
		if decodeAttrs && b == '~' && i+1 < len(text) {
			switch text[i+1] {
			case 'b':
				cur.Bold = true
				i += 2
				continue
			case 'r':
				cur.Reverse = true
				i += 2
				continue
			case 'u':
				cur.Underline = true
				i += 2
				continue
			case 'B':
				cur.Bold = false
				i += 2
				continue
			case 'R':
				cur.Reverse = false
				i += 2
				continue
			case 'U':
				cur.Underline = false
				i += 2
				continue
			case '0':
				cur = Attrs{}
				i += 2
				continue
			case '~':
				emit('~')
				i += 2
				continue
			}
		}
		switch {
		case b == '\t':
			target := buffer.TabStop(col, 1, tabWidth)
			for col < target {
				emit(' ')
			}
			i++
		case b < 0x20 || b == 0x7f:
			emitString(fmt.Sprintf("^%c", b^0x40))
			i++
		case b >= 0x80:
			emitString(fmt.Sprintf("<%02X>", b))
			i++
		default:
			emit(rune(b))
			i++
		}
	}
	return cells
}
