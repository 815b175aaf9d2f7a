package search

import (
	"regexp"
	"regexp/syntax"

	"github.com/go-memacs/core/status"
	"github.com/go-memacs/core/value"
)

// Match is a compiled search pattern plus its last result (§4.3): pattern
// text, flags, compiled forward/backward forms, captured group values,
// and (for plain search) the forward/reverse delta tables.
type Match struct {
	Pattern    string
	Flags      Flags
	IgnoreCase bool

	// MaxEdits is the cost limit for Fuzzy matching: the maximum number
	// of byte insertions/deletions/substitutions a candidate span may
	// carry and still count as a match. Compile sets a length-scaled
	// default; callers may override it before searching.
	MaxEdits int

	groupCount int
	Groups     []value.Value

	dt    *deltaTables
	dtRev *deltaTables

	forwardRE  *regexp.Regexp
	backwardRE *regexp.Regexp
	// backwardCapOrder[i] holds the original group number living at
	// compiled group number i+1 of backwardRE (see reverse.go's capOrder).
	backwardCapOrder []int
}

// Compile builds a Match for pattern under flags. For a plain-text
// pattern the forward delta table is built eagerly; the reverse table
// and, for regex patterns, the backward-compiled form are built lazily on
// first backward search (§4.3: "compiled-backward (lazily built on first
// backward search)").
//
// Backreferences (`\1`-style) are not supported: the Regexp branch below
// compiles through Go's stdlib regexp, which is RE2-based and rejects
// backreferences at compile time (RE2 guarantees linear-time matching,
// which backreference support is fundamentally incompatible with). This
// is a documented, accepted gap rather than a silent one — see
// DESIGN.md's search section.
func Compile(pattern string, flags Flags, ignoreCase bool) (*Match, error) {
	m := &Match{Pattern: pattern, Flags: flags, IgnoreCase: ignoreCase}
	if flags.Has(Fuzzy) {
		// Fuzzy matches the pattern as a literal against an edit-distance
		// budget rather than as regex syntax (§4.3's regex-engine
		// capability list names Fuzzy as a mode of the regex engine, but
		// Go's RE2-based regexp has no approximate-matching primitive to
		// build it on, so it is implemented here as its own matcher;
		// Regexp+Fuzzy combined is not supported, see DESIGN.md).
		m.MaxEdits = defaultMaxEdits(pattern)
		m.groupCount = 1
		return m, nil
	}
	if flags.Has(Regexp) {
		re, err := regexp.Compile(inlineFlags(ignoreCase, flags.Has(Multi)) + pattern)
		if err != nil {
			return nil, status.Wrap(status.ScriptError, err, "compiling pattern %q", pattern)
		}
		m.forwardRE = re
		m.groupCount = re.NumSubexp() + 1
		return m, nil
	}
	m.dt = buildDeltaTables([]byte(pattern), ignoreCase)
	m.groupCount = 1
	return m, nil
}

func inlineFlags(ignoreCase, multi bool) string {
	f := ""
	if ignoreCase {
		f += "i"
	}
	if multi {
		f += "s"
	}
	if f == "" {
		return ""
	}
	return "(?" + f + ")"
}

// backward lazily builds and caches the pattern's backward-matching form.
func (m *Match) backward() error {
	if m.Flags.Has(Fuzzy) {
		// Reverse fuzzy matching is left implementer-defined by spec
		// itself ("behavior for overlapping inserts/deletes in fuzzy
		// reverse is ambiguous"); only forward fuzzy matching is
		// implemented (see DESIGN.md and HuntBackward).
		return status.New(status.Failure, "fuzzy search: reverse direction not supported")
	}
	if m.Flags.Has(Regexp) {
		if m.backwardRE != nil {
			return nil
		}
		re, err := syntax.Parse(m.Pattern, syntax.Perl)
		if err != nil {
			return status.Wrap(status.ScriptError, err, "compiling pattern %q", m.Pattern)
		}
		rev := reverseSyntax(re)
		reversed := rev.String()
		compiled, err := regexp.Compile(inlineFlags(m.IgnoreCase, m.Flags.Has(Multi)) + reversed)
		if err != nil {
			return status.Wrap(status.ScriptError, err, "compiling reversed pattern %q", reversed)
		}
		m.backwardRE = compiled
		m.backwardCapOrder = capOrder(rev)
		return nil
	}
	if m.dtRev == nil {
		m.dtRev = buildDeltaTables(ReversePattern([]byte(m.Pattern)), m.IgnoreCase)
	}
	return nil
}

// GroupCount returns the number of capture groups, including group 0 (the
// whole match).
func (m *Match) GroupCount() int { return m.groupCount }
