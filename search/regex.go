package search

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/value"
)

// HuntForward runs m's plain or regex pattern forward from start, never
// crossing more than lineBreakLimit line delimiters (0 = unlimited). On a
// match it records the captured groups on m (group 0 = the whole match)
// and returns the match's start point; Not-found is reported via the
// second return, not an error (§4.3 "Not-found is a quiet result").
func HuntForward(m *Match, buf *buffer.Buffer, start buffer.Point, lineBreakLimit int) (buffer.Point, bool, error) {
	if m.Flags.Has(Fuzzy) {
		text, _ := buf.TextFromPoint(start, lineBreakLimit)
		lo, hi, _, ok := fuzzyMatch(m.Pattern, text, m.MaxEdits, m.IgnoreCase)
		if !ok {
			return buffer.Point{}, false, nil
		}
		m.Groups = []value.Value{value.String(text[lo:hi])}
		return buf.PointAfterBytes(start, lo), true, nil
	}
	if !m.Flags.Has(Regexp) {
		c := newCursor(buf, start)
		mc, ok := SearchForward(m.dt, c, lineBreakLimit)
		if !ok {
			return buffer.Point{}, false, nil
		}
		matchText, _ := buf.TextFromPoint(mc.point(), 0)
		if len(matchText) > len(m.Pattern) {
			matchText = matchText[:len(m.Pattern)]
		}
		m.Groups = []value.Value{value.String(matchText)}
		return mc.point(), true, nil
	}

	text, _ := buf.TextFromPoint(start, lineBreakLimit)
	loc := m.forwardRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return buffer.Point{}, false, nil
	}
	fillGroups(m, buf, start, text, loc)
	return buf.PointAfterBytes(start, loc[0]), true, nil
}

// HuntBackward runs m's pattern backward from start, searching the span
// from (start - lineBreakLimit lines) up to start. On a match it records
// the captured groups and returns the match's start point (the leftmost
// byte of the match in document order).
func HuntBackward(m *Match, buf *buffer.Buffer, start buffer.Point, lineBreakLimit int) (buffer.Point, bool, error) {
	if err := m.backward(); err != nil {
		return buffer.Point{}, false, err
	}
	if !m.Flags.Has(Regexp) {
		c := newCursor(buf, start)
		mc, ok := SearchBackward(m.dtRev, c, lineBreakLimit)
		if !ok {
			return buffer.Point{}, false, nil
		}
		matchText, _ := buf.TextFromPoint(mc.point(), 0)
		if len(matchText) > len(m.Pattern) {
			matchText = matchText[:len(m.Pattern)]
		}
		m.Groups = []value.Value{value.String(matchText)}
		return mc.point(), true, nil
	}

	text, spanStart := buf.TextToPoint(start, lineBreakLimit)
	revText := reverseString(text)
	loc := m.backwardRE.FindStringSubmatchIndex(revText)
	if loc == nil {
		return buffer.Point{}, false, nil
	}
	// loc indexes into revText; translate back to forward-oriented offsets
	// within text, then to a buffer point relative to spanStart. The
	// match's forward-order start is len(text)-loc[1].
	n := len(text)
	fwdLoc := make([]int, len(loc))
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			fwdLoc[i], fwdLoc[i+1] = -1, -1
			continue
		}
		fwdLoc[i] = n - loc[i+1]
		fwdLoc[i+1] = n - loc[i]
	}
	fillGroupsPermuted(m, text, fwdLoc, m.backwardCapOrder)
	return buf.PointAfterBytes(spanStart, fwdLoc[0]), true, nil
}

func fillGroups(m *Match, buf *buffer.Buffer, base buffer.Point, text string, loc []int) {
	groups := make([]value.Value, len(loc)/2)
	for i := range groups {
		lo, hi := loc[2*i], loc[2*i+1]
		if lo < 0 {
			groups[i] = value.Nil
			continue
		}
		groups[i] = value.String(text[lo:hi])
	}
	m.Groups = groups
}

// fillGroupsPermuted is fillGroups plus a remap from compiled group
// number to original group number (capOrder), needed because the
// backward-compiled pattern's groups appear in reversed textual order.
func fillGroupsPermuted(m *Match, text string, loc []int, order []int) {
	groups := make([]value.Value, len(loc)/2)
	if len(loc) >= 2 && loc[0] >= 0 {
		groups[0] = value.String(text[loc[0]:loc[1]])
	} else {
		groups[0] = value.Nil
	}
	for compiledIdx, origGroup := range order {
		lo, hi := loc[2*(compiledIdx+1)], loc[2*(compiledIdx+1)+1]
		if lo < 0 {
			groups[origGroup] = value.Nil
			continue
		}
		groups[origGroup] = value.String(text[lo:hi])
	}
	m.Groups = groups
}
