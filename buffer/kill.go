package buffer

import "github.com/go-memacs/core/value"

// KillDisposition selects what deleteChars does with the bytes it removes
// (§4.2's deleteChars `flags` column, supplemented from kill.c).
type KillDisposition int

const (
	// KillDiscard drops the deleted bytes entirely.
	KillDiscard KillDisposition = iota
	// KillSave hands the deleted bytes to the buffer's KillSink together
	// with the deletion's direction, so the sink can prepend backward
	// kills and keep consecutive kills in reading order (§4.1).
	KillSave
	// KillSaveUndelete marks the deleted span for an undelete ring instead
	// of the kill ring proper. DeleteChars does not push it anywhere
	// itself; the caller reads it back with LastDeleted and pushes it onto
	// its own UndeleteRing.
	KillSaveUndelete
)

// KillSink receives deleted byte spans from deleteChars when the
// disposition is KillSave. The kill ring's storage itself is external to
// the core (§1); this is only the hook point plus the prepend-accumulation
// rule.
type KillSink interface {
	// Kill receives a deleted span. forward is true when the deletion
	// ran left-to-right (n > 0 to deleteChars); consecutive backward
	// kills are expected to prepend rather than append, so the sink can
	// tell the direction apart.
	Kill(text []byte, forward bool)
}

// undeleteCapacity bounds the undelete ring so a long editing session
// cannot leak memory into it indefinitely.
const undeleteCapacity = 16

// UndeleteRing is a small bounded ring of recently deleted spans, mirrored
// after kill.c's separate undelete stack (distinct from the kill ring
// proper). A caller that deletes with KillSaveUndelete pushes
// Buffer.LastDeleted onto it; consuming/popping is a command-level concern outside the core, so only
// Push and Peek are exposed here.
type UndeleteRing struct {
	entries []value.Value
}

// NewUndeleteRing returns an empty ring.
func NewUndeleteRing() *UndeleteRing { return &UndeleteRing{} }

// Push records a deleted span, evicting the oldest entry once the ring is
// full.
func (r *UndeleteRing) Push(text []byte) {
	r.entries = append(r.entries, value.String(string(text)))
	if len(r.entries) > undeleteCapacity {
		r.entries = r.entries[len(r.entries)-undeleteCapacity:]
	}
}

// Peek returns the most recently pushed span, or the zero Value if empty.
func (r *UndeleteRing) Peek() (value.Value, bool) {
	if len(r.entries) == 0 {
		return value.Nil, false
	}
	return r.entries[len(r.entries)-1], true
}

// Len reports the number of spans currently held.
func (r *UndeleteRing) Len() int { return len(r.entries) }
