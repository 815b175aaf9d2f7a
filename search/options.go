package search

import "strings"

// optionLetters maps a trailing-suffix letter to the Flags bit it sets
// (§4.3 pattern option syntax: "e i r p m f").
var optionLetters = map[byte]Flags{
	'e': Exact,
	'i': Ignore,
	'r': Regexp,
	'p': Plain,
	'm': Multi,
	'f': Fuzzy,
}

// ParseOptions strips a trailing ":xyz" option suffix from pattern, per
// the rule: "if the last ':' is not at index 0 and all characters after
// it are lowercase option letters, it is an options suffix; otherwise the
// suffix is literal pattern bytes." Returns the stripped pattern and the
// parsed flags (zero if no suffix was present).
func ParseOptions(pattern string) (string, Flags) {
	idx := strings.LastIndexByte(pattern, ':')
	if idx <= 0 || idx == len(pattern)-1 {
		return pattern, 0
	}
	suffix := pattern[idx+1:]
	var flags Flags
	for i := 0; i < len(suffix); i++ {
		bit, ok := optionLetters[suffix[i]]
		if !ok {
			return pattern, 0
		}
		flags |= bit
	}
	return pattern[:idx], flags
}
