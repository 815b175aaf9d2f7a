package search

import "bytes"

// deltaTables holds Boyer-Moore's precomputed jump tables for one pattern
// orientation (§4.3): the bad-character table (last occurrence of each
// byte in the pattern, used to drive the scan per Horspool's variant) and
// the good-suffix table (computed alongside for completeness and exposed
// for callers that want the classic two-table shape, though the scan
// below only needs the bad-character table to stay provably safe against
// overshooting a match).
type deltaTables struct {
	pattern    []byte
	ignoreCase bool
	badChar    [256]int
	goodSuffix []int
}

func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func foldUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// buildDeltaTables precomputes both tables for pattern. When ignoreCase is
// set, the bad-character table is built so that both case variants of
// every pattern letter map to the same jump distance (§4.3).
func buildDeltaTables(pattern []byte, ignoreCase bool) *deltaTables {
	m := len(pattern)
	dt := &deltaTables{pattern: pattern, ignoreCase: ignoreCase}
	for i := range dt.badChar {
		dt.badChar[i] = m
	}
	// Classic bad-character rule: for each pattern byte (except the
	// last), the shift needed to align the window's rightmost occurrence
	// of that byte with the pattern's occurrence.
	for i := 0; i < m-1; i++ {
		c := pattern[i]
		shift := m - 1 - i
		if ignoreCase {
			dt.badChar[fold(c)] = shift
			dt.badChar[foldUpper(c)] = shift
		} else {
			dt.badChar[c] = shift
		}
	}
	dt.goodSuffix = buildGoodSuffix(pattern)
	return dt
}

// buildGoodSuffix computes the standard Boyer-Moore good-suffix shift
// table via the pattern's border arrays. Retained for completeness
// (§4.3 names both tables as part of the Match record) even though the
// scan functions below drive shifting off the bad-character table alone.
func buildGoodSuffix(pattern []byte) []int {
	m := len(pattern)
	shift := make([]int, m+1)
	borderPos := make([]int, m+1)

	i, j := m, m+1
	borderPos[i] = j
	for i > 0 {
		for j <= m && (i-1 < 0 || j-1 >= m || pattern[i-1] != pattern[j-1]) {
			if shift[j] == 0 {
				shift[j] = j - i
			}
			j = borderPos[j]
		}
		i--
		j--
		borderPos[i] = j
	}

	j = borderPos[0]
	for i := 0; i <= m; i++ {
		if shift[i] == 0 {
			shift[i] = j
		}
		if i == j {
			j = borderPos[j]
		}
	}
	return shift
}

func byteAt(b byte, ignoreCase bool) byte {
	if ignoreCase {
		return fold(b)
	}
	return b
}

// SearchForward scans forward from the cursor's current position for
// dt's pattern using Horspool's bad-character shift rule, never crossing
// more than lineBreakLimit line delimiters (0 = unlimited). It returns a
// cursor at the match's start, or found=false.
func SearchForward(dt *deltaTables, start *cursor, lineBreakLimit int) (matchStart *cursor, found bool) {
	m := len(dt.pattern)
	if m == 0 {
		c := *start
		return &c, true
	}
	c := *start
	crossings := 0
	for {
		window := c
		ok := true
		var lastByte byte
		haveLast := false
		for k := 0; k < m; k++ {
			wb, exists := window.peek()
			if !exists {
				return nil, false
			}
			if k == m-1 {
				lastByte = wb
				haveLast = true
			}
			if byteAt(wb, dt.ignoreCase) != byteAt(dt.pattern[k], dt.ignoreCase) {
				ok = false
			}
			if k < m-1 {
				window.advance()
			}
		}
		if ok {
			return &c, true
		}
		shift := 1
		if haveLast {
			if s := dt.badChar[lastByte]; s > shift {
				shift = s
			}
		}
		for i := 0; i < shift; i++ {
			if _, exists := c.peek(); !exists {
				return nil, false
			}
			if c.advance() {
				crossings++
				if lineBreakLimit > 0 && crossings > lineBreakLimit {
					return nil, false
				}
			}
		}
	}
}

// SearchBackward scans backward from the cursor's current position using
// the reversed pattern's delta tables, returning a cursor at the match's
// start point (the leftmost byte of the match in document order).
func SearchBackward(dtRev *deltaTables, start *cursor, lineBreakLimit int) (matchStart *cursor, found bool) {
	m := len(dtRev.pattern)
	if m == 0 {
		c := *start
		return &c, true
	}
	c := *start
	crossings := 0
	for {
		if c.atStart() {
			return nil, false
		}
		window := c
		ok := true
		var lastByte byte
		haveLast := false
		for k := 0; k < m; k++ {
			if window.atStart() {
				ok = false
				break
			}
			window.retreat()
			wb, _ := window.peek()
			if k == m-1 {
				lastByte = wb
				haveLast = true
			}
			if byteAt(wb, dtRev.ignoreCase) != byteAt(dtRev.pattern[k], dtRev.ignoreCase) {
				ok = false
			}
		}
		if ok {
			// window sits just before the match's first byte (since each
			// retreat moved one byte further left); the match's start in
			// document order is window's current position.
			return &window, true
		}
		shift := 1
		if haveLast {
			if s := dtRev.badChar[lastByte]; s > shift {
				shift = s
			}
		}
		for i := 0; i < shift; i++ {
			if c.atStart() {
				return nil, false
			}
			if c.retreat() {
				crossings++
				if lineBreakLimit > 0 && crossings > lineBreakLimit {
					return nil, false
				}
			}
		}
	}
}

// ReversePattern returns the byte-reversal of pattern, used to build the
// backward-search delta tables (§4.3: "Two pattern strings are kept: the
// forward pattern and its reversal").
func ReversePattern(pattern []byte) []byte {
	r := make([]byte, len(pattern))
	for i, c := range pattern {
		r[len(pattern)-1-i] = c
	}
	return r
}

// equalFold reports whether a and b are equal, folding case when
// ignoreCase is set.
func equalFold(a, b []byte, ignoreCase bool) bool {
	if !ignoreCase {
		return bytes.Equal(a, b)
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if fold(a[i]) != fold(b[i]) {
			return false
		}
	}
	return true
}
