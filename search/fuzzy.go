package search

// fuzzyMatch finds the leftmost substring of text within maxEdits
// byte-level edit operations (insert/delete/substitute) of pattern, using
// Sellers' bounded edit-distance algorithm (§4.3: "approximate matching
// with cost limits"). Unlike a full Needleman-Wunsch alignment, the first
// DP row is seeded with zeros rather than increasing costs, so a match
// may start at any text column for free ("semi-global" alignment) — only
// the end of the match pays a cost.
//
// Returns the match span [start,end) in text and its edit cost; found is
// false if no span scores maxEdits or fewer.
func fuzzyMatch(pattern, text string, maxEdits int, ignoreCase bool) (start, end, cost int, found bool) {
	p := []byte(pattern)
	t := []byte(text)
	m := len(p)
	n := len(t)
	if m == 0 {
		return 0, 0, 0, true
	}

	// rowCost[j]/rowStart[j] hold the current pattern row's cost and match-
	// start column for ending the match at text column j; prev holds the
	// row above (one fewer pattern byte consumed).
	rowCost := make([]int, n+1)
	rowStart := make([]int, n+1)
	prevCost := make([]int, n+1)
	prevStart := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prevStart[j] = j
	}

	for i := 1; i <= m; i++ {
		rowCost[0] = i
		rowStart[0] = 0
		pc := p[i-1]
		if ignoreCase {
			pc = fold(pc)
		}
		for j := 1; j <= n; j++ {
			tc := t[j-1]
			if ignoreCase {
				tc = fold(tc)
			}
			subCost, subStart := prevCost[j-1], prevStart[j-1]
			if tc != pc {
				subCost++
			}
			delCost, delStart := prevCost[j]+1, prevStart[j]
			insCost, insStart := rowCost[j-1]+1, rowStart[j-1]

			best, bestStart := subCost, subStart
			if delCost < best {
				best, bestStart = delCost, delStart
			}
			if insCost < best {
				best, bestStart = insCost, insStart
			}
			rowCost[j], rowStart[j] = best, bestStart
		}
		rowCost, prevCost = prevCost, rowCost
		rowStart, prevStart = prevStart, rowStart
	}
	// The last swap left row i==m's results in prevCost/prevStart.

	for j := 1; j <= n; j++ {
		if prevCost[j] <= maxEdits {
			return prevStart[j], j, prevCost[j], true
		}
	}
	return 0, 0, 0, false
}

// defaultMaxEdits picks a cost limit proportional to pattern length when
// the caller doesn't supply one explicitly, matching agrep-family tools'
// convention of scaling tolerance with match length rather than using a
// fixed constant.
func defaultMaxEdits(pattern string) int {
	n := len(pattern) / 4
	if n < 1 {
		return 1
	}
	return n
}
