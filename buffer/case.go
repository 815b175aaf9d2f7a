package buffer

import "unicode"

// CaseTransform selects which case operation ChangeCase applies.
type CaseTransform int

const (
	ToUpper CaseTransform = iota
	ToLower
	ToTitle
)

func apply(ct CaseTransform, r rune, firstOfWord bool) rune {
	switch ct {
	case ToUpper:
		return unicode.ToUpper(r)
	case ToLower:
		return unicode.ToLower(r)
	case ToTitle:
		if firstOfWord {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	default:
		return r
	}
}

// ChangeCaseWords applies ct to wordCount words (or charCount characters,
// whichever bounds first) starting at w's point, scanning forward through
// delimited words using the given word-character predicate (§4.2). Title
// case upcases the first letter of each word and downcases the rest.
// charCount <= 0 means unbounded by character count.
func (b *Buffer) ChangeCaseWords(w *Window, ct CaseTransform, wordCount, charCount int, isWord func(rune) bool) error {
	charsLeft := charCount
	unboundedChars := charCount <= 0

	advance := func() bool {
		if !unboundedChars {
			if charsLeft == 0 {
				return false
			}
			charsLeft--
		}
		p := &w.Face.Point
		l := b.Lines.Line(p.Line)
		if p.Offset >= l.Used() {
			next := b.Lines.Next(p.Line)
			if next == NoLine {
				return false
			}
			*p = Point{Line: next, Offset: 0}
			return true
		}
		p.Offset++
		return true
	}

	currentByte := func() (byte, bool) {
		p := w.Face.Point
		l := b.Lines.Line(p.Line)
		if p.Offset >= l.Used() {
			return 0, false
		}
		return l.text[p.Offset], true
	}

	for word := 0; word < wordCount; word++ {
		// Skip non-word bytes.
		for {
			c, ok := currentByte()
			if !ok || isWord(rune(c)) {
				break
			}
			if !advance() {
				return nil
			}
		}
		first := true
		for {
			c, ok := currentByte()
			if !ok || !isWord(rune(c)) {
				break
			}
			p := w.Face.Point
			l := b.Lines.Line(p.Line)
			l.text[p.Offset] = byte(apply(ct, rune(c), first))
			first = false
			b.ChangeCount++
			if !advance() {
				return nil
			}
		}
	}
	return nil
}

// ChangeCaseLine applies ct to every byte of the line at id.
func (b *Buffer) ChangeCaseLine(id LineID, ct CaseTransform) {
	l := b.Lines.Line(id)
	inWord := false
	for i, c := range l.text {
		r := rune(c)
		isW := unicode.IsLetter(r)
		l.text[i] = byte(apply(ct, r, isW && !inWord))
		inWord = isW
	}
	b.ChangeCount++
}

// ChangeCaseRegion applies ct to every byte within r.
func (b *Buffer) ChangeCaseRegion(r Region, ct CaseTransform) {
	lo := r.Point
	size := r.Size
	if size < 0 {
		lo = stepBack(b.Lines, r.Point, -size)
		size = -size
	}
	id := lo.Line
	offset := lo.Offset
	remaining := size
	inWord := false
	for remaining > 0 {
		l := b.Lines.Line(id)
		for offset < l.Used() && remaining > 0 {
			rr := rune(l.text[offset])
			isW := unicode.IsLetter(rr)
			l.text[offset] = byte(apply(ct, rr, isW && !inWord))
			inWord = isW
			offset++
			remaining--
		}
		if remaining == 0 {
			break
		}
		next := b.Lines.Next(id)
		if next == NoLine {
			break
		}
		remaining--
		inWord = false
		id = next
		offset = 0
	}
	b.ChangeCount++
}
