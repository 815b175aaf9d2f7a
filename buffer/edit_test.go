package buffer

import (
	"testing"

	"github.com/go-memacs/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBuffer(t *testing.T, text string) *Buffer {
	t.Helper()
	b := NewBuffer("scratch")
	w := NewWindow(b, 24)
	require.NoError(t, b.InsertString(w, text))
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 0}
	return b
}

func TestInsertCharsMultiWindow(t *testing.T) {
	// Scenario 3: buffer B in windows W1 (point offset 0, current) and
	// W2 (point offset 5); insertChars(3, 'X') at W1.
	b := NewBuffer("B")
	w1 := NewWindow(b, 10)
	require.NoError(t, b.InsertString(w1, "abcdefghij"))
	w1.Face.Point = Point{Line: b.Lines.First(), Offset: 0}

	w2 := NewWindow(b, 10)
	w2.Face.Point = Point{Line: b.Lines.First(), Offset: 5}

	require.NoError(t, b.InsertChars(w1, 3, 'X'))

	assert.Equal(t, 3, w1.Face.Point.Offset)
	assert.Equal(t, 8, w2.Face.Point.Offset)
	assert.Equal(t, "XXXabcdefghij", string(b.Lines.Line(b.Lines.First()).Bytes()))
}

func TestInsertNewlineAtEndOfBuffer(t *testing.T) {
	b := NewBuffer("scratch")
	w := NewWindow(b, 10)
	require.NoError(t, b.InsertString(w, "abc"))
	require.NoError(t, b.InsertNewline(w))

	assert.Equal(t, 2, b.Lines.Count())
	last := b.Lines.Last()
	assert.Equal(t, 0, b.Lines.Line(last).Used())
}

func TestDeleteCharsSpanningDelimiter(t *testing.T) {
	b := seedBuffer(t, "abc\ndef")
	w := NewWindow(b, 10) // second window of the same buffer, beside seedBuffer's own window
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 3}
	require.NoError(t, b.DeleteChars(w, 1, KillDiscard))

	assert.Equal(t, 1, b.Lines.Count())
	assert.Equal(t, "abcdef", string(b.Lines.Line(b.Lines.First()).Bytes()))
}

func TestDeleteCharsBackward(t *testing.T) {
	b := seedBuffer(t, "hello")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 5}
	require.NoError(t, b.DeleteChars(w, -2, KillDiscard))

	assert.Equal(t, "hel", string(b.Lines.Line(b.Lines.First()).Bytes()))
	assert.Equal(t, 3, w.Face.Point.Offset)
}

func TestDeleteOneForwardAtEndOfBuffer(t *testing.T) {
	b := seedBuffer(t, "ab")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 2}
	_, _, err := b.deleteOneForward(w)
	require.Error(t, err)
	assert.Equal(t, 2, w.Face.Point.Offset)
}

func TestInsertSoftTab(t *testing.T) {
	b := seedBuffer(t, "abc")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 3}
	require.NoError(t, b.InsertSoftTab(w, 1, 4))
	assert.Equal(t, "abc ", string(b.Lines.Line(b.Lines.First()).Bytes()))
}

func TestDetabEntabRoundTrip(t *testing.T) {
	line := []byte("    aligned")
	detabbed := DetabLine(line, 4)
	entabbed := EntabLine(detabbed, 4)
	assert.Equal(t, string(line), string(entabbed))
}

func TestChangeCaseWordsUpper(t *testing.T) {
	b := seedBuffer(t, "hello world foo")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 0}
	require.NoError(t, b.ChangeCaseWords(w, ToUpper, 2, 0, config.DefaultWordChars))
	assert.Equal(t, "HELLO WORLD foo", string(b.Lines.Line(b.Lines.First()).Bytes()))
}

func TestChangeCaseTitle(t *testing.T) {
	b := seedBuffer(t, "hello world")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 0}
	require.NoError(t, b.ChangeCaseWords(w, ToTitle, 2, 0, config.DefaultWordChars))
	assert.Equal(t, "Hello World", string(b.Lines.Line(b.Lines.First()).Bytes()))
}

func TestUpperIdempotent(t *testing.T) {
	b := seedBuffer(t, "hello")
	b.ChangeCaseLine(b.Lines.First(), ToUpper)
	once := string(b.Lines.Line(b.Lines.First()).Bytes())
	b.ChangeCaseLine(b.Lines.First(), ToUpper)
	twice := string(b.Lines.Line(b.Lines.First()).Bytes())
	assert.Equal(t, once, twice)
}

func TestRegionExtraction(t *testing.T) {
	b := seedBuffer(t, "abc\ndef\nghi")
	w := b.windows[0]
	start := Point{Line: b.Lines.First(), Offset: 1}
	b.RegMarkVal.Point = Point{Line: b.Lines.Next(b.Lines.Next(b.Lines.First())), Offset: 2}
	w.Face.Point = start
	r := b.RegionBetween(start)
	text := b.ExtractRegion(r, false)
	assert.Equal(t, "bc\ndef\ngh", text)
	assert.Equal(t, 2, r.LineCount)
}

func TestJoinLines(t *testing.T) {
	b := seedBuffer(t, "abc\ndef")
	w := b.windows[0]
	w.Face.Point = Point{Line: b.Lines.First(), Offset: 1}
	require.NoError(t, b.JoinLines(w, 1))
	assert.Equal(t, "abcdef", string(b.Lines.Line(b.Lines.First()).Bytes()))
}
