// Package search implements the editor's plain-text Boyer-Moore search
// and its regular-expression engine, both operating directly over a
// buffer's line list rather than a flattened copy (§4.3).
package search

// Flags classify a single search pattern's compilation and matching mode.
type Flags uint16

const (
	// Exact requests case-sensitive matching.
	Exact Flags = 1 << iota
	// Ignore requests case-insensitive matching.
	Ignore
	// Plain requests Boyer-Moore literal search.
	Plain
	// Regexp requests the regular-expression engine.
	Regexp
	// Multi makes '.' match newline (REG_NEWLINE is off).
	Multi
	// Fuzzy requests approximate (edit-distance-bounded) matching.
	Fuzzy

	// backward is an internal bit that no code in this package sets or
	// reads; the direction of a search is chosen by calling HuntForward
	// or HuntBackward.
	backward
)

// Has reports whether f contains bit.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
