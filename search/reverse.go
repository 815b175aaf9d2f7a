package search

import "regexp/syntax"

// reverseSyntax rewrites re's parse tree so that matching it left-to-right
// against reversed text is equivalent to matching the original re
// right-to-left against the original text (§4.3: "reverses the pattern
// syntactically ... run forward matching against a reversed input view").
//
// Concatenation order is reversed (each operand itself reversed
// recursively), capture groups and repetition wrap their reversed
// sub-expression, literals have their rune order flipped, character
// classes are order-independent and pass through unchanged, and
// line/text anchors swap (^ becomes $ and vice versa) since the text
// they see is itself flipped end-for-end.
func reverseSyntax(re *syntax.Regexp) *syntax.Regexp {
	out := &syntax.Regexp{Op: re.Op, Flags: re.Flags}
	switch re.Op {
	case syntax.OpConcat:
		out.Sub = make([]*syntax.Regexp, len(re.Sub))
		for i, s := range re.Sub {
			out.Sub[len(re.Sub)-1-i] = reverseSyntax(s)
		}
	case syntax.OpAlternate:
		out.Sub = make([]*syntax.Regexp, len(re.Sub))
		for i, s := range re.Sub {
			out.Sub[i] = reverseSyntax(s)
		}
	case syntax.OpCapture:
		out.Sub = []*syntax.Regexp{reverseSyntax(re.Sub[0])}
		out.Cap = re.Cap
		out.Name = re.Name
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest:
		out.Sub = []*syntax.Regexp{reverseSyntax(re.Sub[0])}
	case syntax.OpRepeat:
		out.Sub = []*syntax.Regexp{reverseSyntax(re.Sub[0])}
		out.Min, out.Max = re.Min, re.Max
	case syntax.OpLiteral:
		out.Rune = make([]rune, len(re.Rune))
		for i, r := range re.Rune {
			out.Rune[len(re.Rune)-1-i] = r
		}
	case syntax.OpBeginLine:
		out.Op = syntax.OpEndLine
	case syntax.OpEndLine:
		out.Op = syntax.OpBeginLine
	case syntax.OpBeginText:
		out.Op = syntax.OpEndText
	case syntax.OpEndText:
		out.Op = syntax.OpBeginText
	default:
		// OpCharClass, OpAnyChar, OpAnyCharNotNL, OpEmptyMatch, OpNoMatch,
		// OpWordBoundary, OpNoWordBoundary, OpNoMatch: order-independent or
		// already symmetric, copy verbatim.
		out.Rune = re.Rune
		out.Sub = re.Sub
		out.Min, out.Max = re.Min, re.Max
	}
	return out
}

// capOrder walks re in the same left-to-right order syntax.Regexp.String
// emits "(" tokens, recording each capture's original group number. Since
// reversing a pattern's concatenation order changes which original group
// appears textually first, the regenerated string's compiled group
// numbers (assigned 1..k by appearance order) no longer line up with the
// original pattern's group numbers; capOrder gives the permutation needed
// to translate a reversed-compile match's group slots back to the
// original group numbering (index i of the returned slice holds the
// original group number living at compiled-group-number i+1).
func capOrder(re *syntax.Regexp) []int {
	var order []int
	var walk func(*syntax.Regexp)
	walk = func(r *syntax.Regexp) {
		if r.Op == syntax.OpCapture {
			order = append(order, r.Cap)
		}
		for _, s := range r.Sub {
			walk(s)
		}
	}
	walk(re)
	return order
}

// ReverseRegexSyntax parses pattern, reverses its parse tree, and returns
// the regenerated pattern text suitable for matching against
// end-to-start-reversed input. flags controls syntax.Parse's dialect
// (e.g. syntax.Perl); set syntax.OneLine off to keep Multi-mode control
// in the caller's hands via explicit (?s) prefixes instead.
func ReverseRegexSyntax(pattern string, flags syntax.Flags) (string, error) {
	re, err := syntax.Parse(pattern, flags)
	if err != nil {
		return "", err
	}
	return reverseSyntax(re).String(), nil
}

// reverseString returns s with its bytes reversed. Byte (not rune)
// reversal keeps match-offset arithmetic exact when translating a
// reversed-text match back to a line-list position; it assumes
// single-byte-per-character content for backward regex search,
// consistent with spec's own note that reverse matching's behavior
// around multi-byte/overlapping content is left to the implementer.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
