package buffer

import (
	"github.com/go-memacs/core/config"
	"github.com/go-memacs/core/status"
)

// Delim identifies the line-delimiter style detected on read, or chosen
// for write (§6.3).
type Delim int

const (
	DelimLF Delim = iota
	DelimCR
	DelimCRLF
)

func (d Delim) String() string {
	switch d {
	case DelimLF:
		return "\n"
	case DelimCR:
		return "\r"
	case DelimCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// DetectDelim scans the first delimiter in data and returns it, defaulting
// to DelimLF when no delimiter is present (§6.3: "auto-detected on first
// line and enforced for the remainder of the file").
func DetectDelim(data []byte) Delim {
	for i, b := range data {
		if b == '\n' {
			if i > 0 && data[i-1] == '\r' {
				return DelimCRLF
			}
			return DelimLF
		}
		if b == '\r' {
			if i+1 < len(data) && data[i+1] == '\n' {
				return DelimCRLF
			}
			return DelimCR
		}
	}
	return DelimLF
}

// narrowedSide holds the lines hidden by narrowing, preserved until the
// buffer is widened (§3.7).
type narrowedSide struct {
	lines []lineSnapshot
}

type lineSnapshot struct {
	text []byte
}

// Buffer is a named, editable text container (§3.7).
type Buffer struct {
	Name     string
	Filename string

	Lines *LineList

	// RegMarkVal is the embedded region-endpoint mark, always present.
	RegMarkVal Mark
	marks      []*Mark

	SavedFace Face
	Modes     config.Modes

	ChangeCount int
	NWind       int
	windows     []*Window

	// Narrowing state: nil when not narrowed.
	narrowedHead *narrowedSide
	narrowedTail *narrowedSide

	InputDelim  Delim
	OutputDelim Delim
	// FinalLineUnterminated records that the last line on disk had no
	// trailing delimiter, for round-tripping (§6.3).
	FinalLineUnterminated bool

	// MacroName is non-empty when this buffer holds macro source (its
	// name begins with the macro sigil, §4.5 "macros (buffers whose name
	// begins with the macro sigil)").
	MacroName string

	killSink KillSink

	// lastDeleted caches the bytes removed by the most recent DeleteChars
	// call so a KillSaveUndelete disposition can be pushed onto the
	// caller's UndeleteRing (see LastDeleted in edit.go).
	lastDeleted []byte
}

// modeReadOnlyBit is config.ModeReadOnly, referenced from edit.go without
// importing config's Mode constant under a different name in every call
// site.
const modeReadOnlyBit = config.ModeReadOnly

// MacroSigil marks a buffer as holding macro source: any buffer whose
// name begins with this rune is a macro target for call dispatch (§4.5
// "macros: buffers whose name begins with the macro sigil"). Spec leaves
// the literal character unspecified; '&' is this implementation's
// choice, recorded in DESIGN.md.
const MacroSigil = '&'

// NewBuffer creates a buffer with the given name and one empty line. If
// name begins with MacroSigil, MacroName is set to the part after the
// sigil.
func NewBuffer(name string) *Buffer {
	b := &Buffer{
		Name:        name,
		Lines:       NewLineList(),
		InputDelim:  DelimLF,
		OutputDelim: DelimLF,
	}
	b.RegMarkVal = Mark{Name: RegMark, Point: Point{Line: b.Lines.First(), Offset: 0}}
	if r := []rune(name); len(r) > 0 && r[0] == MacroSigil {
		b.MacroName = string(r[1:])
	}
	return b
}

// SetKillSink installs the collaborator that receives deleted spans from
// deleteChars; see KillSink.
func (b *Buffer) SetKillSink(s KillSink) { b.killSink = s }

// Narrowed reports whether the buffer currently hides any lines.
func (b *Buffer) Narrowed() bool { return b.narrowedHead != nil || b.narrowedTail != nil }

// FindMark looks up a mark by name per the four flavors in §4.6. name ==
// RegMark always resolves to the embedded region mark.
func (b *Buffer) FindMark(name rune, mode MarkFindMode) (*Mark, error) {
	if name == RegMark {
		return &b.RegMarkVal, nil
	}
	for _, m := range b.marks {
		if m.Name == name {
			return m, nil
		}
	}
	switch mode {
	case MarkQuery:
		return nil, nil
	case MarkHard:
		return nil, status.New(status.Failure, "no mark ~%c in this buffer", name)
	case MarkCreate, MarkAuto:
		m := &Mark{Name: name, Point: Point{Offset: -1}}
		b.marks = append(b.marks, m)
		return m, nil
	default:
		return nil, status.New(status.Failure, "no mark ~%c in this buffer", name)
	}
}

// DeleteMark removes a named mark (RegMark and WrkMark cannot be
// deleted).
func (b *Buffer) DeleteMark(name rune) error {
	if name == RegMark || name == WrkMark {
		return status.New(status.Failure, "cannot delete reserved mark ~%c", name)
	}
	for i, m := range b.marks {
		if m.Name == name {
			b.marks = append(b.marks[:i], b.marks[i+1:]...)
			return nil
		}
	}
	return status.New(status.NotFound, "no mark ~%c in this buffer", name)
}

// allMarkPoints calls fn for the embedded region mark and every user mark
// in the buffer, so edit.go's relocation pass can patch offsets in place.
func (b *Buffer) allMarkPoints(fn func(p *Point)) {
	fn(&b.RegMarkVal.Point)
	for _, m := range b.marks {
		fn(&m.Point)
	}
}

// allWindowFaces calls fn for every window currently displaying this
// buffer, so edit.go can relocate both point and topLine.
func (b *Buffer) allWindowFaces(fn func(w *Window)) {
	for _, w := range b.windows {
		fn(w)
	}
}

// Windows exposes the buffer's current window list read-only.
func (b *Buffer) Windows() []*Window { return b.windows }
