package search

import "regexp"

// MatchText reports whether pattern (with an optional ":xyz" option
// suffix, per ParseOptions) matches anywhere within text. This backs the
// evaluator's `=~`/`!~` operators (§4.5), which test an arbitrary string
// Value rather than scan a buffer, so it bypasses the delta-table/cursor
// machinery entirely and goes straight to stdlib regexp.
func MatchText(text, pattern string) (bool, error) {
	stripped, flags := ParseOptions(pattern)
	prefix := inlineFlags(flags.Has(Ignore), flags.Has(Multi))
	if !flags.Has(Regexp) {
		stripped = regexp.QuoteMeta(stripped)
	}
	re, err := regexp.Compile(prefix + stripped)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}
