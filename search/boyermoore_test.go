package search

import (
	"testing"

	"github.com/go-memacs/core/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBuf(t *testing.T, lines ...string) *buffer.Buffer {
	t.Helper()
	b := buffer.NewBuffer("scratch")
	w := buffer.NewWindow(b, 24)
	for i, s := range lines {
		if i > 0 {
			require.NoError(t, b.InsertNewline(w))
		}
		require.NoError(t, b.InsertString(w, s))
	}
	w.Face.Point = buffer.Point{Line: b.Lines.First(), Offset: 0}
	return b
}

// TestSearchForwardPlain covers §8 Scenario 1: buffer "abc\nabcdef\nabc",
// point at start, pattern "abc". SearchForward returns each match's start,
// so the first three searches (each resumed three bytes past the previous
// match) land on offset 0 of lines 0, 1 and 2; a fourth, resumed at offset
// 3 of line 2, finds nothing and leaves that cursor where it was.
func TestSearchForwardPlain(t *testing.T) {
	b := seedBuf(t, "abc", "abcdef", "abc")
	dt := buildDeltaTables([]byte("abc"), false)

	line0 := b.Lines.First()
	line1 := b.Lines.Next(line0)
	line2 := b.Lines.Next(line1)

	start := newCursor(b, buffer.Point{Line: line0, Offset: 0})
	m1, ok := SearchForward(dt, start, 0)
	require.True(t, ok)
	assert.Equal(t, buffer.Point{Line: line0, Offset: 0}, m1.point())

	after1 := *m1
	after1.advance()
	after1.advance()
	after1.advance()
	m2, ok := SearchForward(dt, &after1, 0)
	require.True(t, ok)
	assert.Equal(t, buffer.Point{Line: line1, Offset: 0}, m2.point())

	after2 := *m2
	after2.advance()
	after2.advance()
	after2.advance()
	m3, ok := SearchForward(dt, &after2, 0)
	require.True(t, ok)
	assert.Equal(t, buffer.Point{Line: line2, Offset: 0}, m3.point())

	after3 := *m3
	after3.advance()
	after3.advance()
	after3.advance()
	_, ok = SearchForward(dt, &after3, 0)
	assert.False(t, ok)
	assert.Equal(t, buffer.Point{Line: line2, Offset: 3}, after3.point())
}

func TestSearchForwardIgnoreCase(t *testing.T) {
	b := seedBuf(t, "Hello World")
	dt := buildDeltaTables([]byte("world"), true)
	start := newCursor(b, buffer.Point{Line: b.Lines.First(), Offset: 0})
	m, ok := SearchForward(dt, start, 0)
	require.True(t, ok)
	assert.Equal(t, 6, m.point().Offset)
}

func TestSearchForwardCrossesLines(t *testing.T) {
	b := seedBuf(t, "one", "two", "three")
	dt := buildDeltaTables([]byte("two"), false)
	start := newCursor(b, buffer.Point{Line: b.Lines.First(), Offset: 0})
	m, ok := SearchForward(dt, start, 0)
	require.True(t, ok)
	assert.Equal(t, 0, m.point().Offset)
	assert.Equal(t, b.Lines.Next(b.Lines.First()), m.point().Line)
}

func TestSearchForwardNoMatch(t *testing.T) {
	b := seedBuf(t, "abc", "def")
	dt := buildDeltaTables([]byte("xyz"), false)
	start := newCursor(b, buffer.Point{Line: b.Lines.First(), Offset: 0})
	_, ok := SearchForward(dt, start, 0)
	assert.False(t, ok)
}

func TestSearchBackwardPlain(t *testing.T) {
	b := seedBuf(t, "abc", "abcdef", "abc")
	forward := []byte("abc")
	dtRev := buildDeltaTables(ReversePattern(forward), false)

	line2 := b.Lines.Last()
	end := newCursor(b, buffer.Point{Line: line2, Offset: 3})
	m, ok := SearchBackward(dtRev, end, 0)
	require.True(t, ok)
	assert.Equal(t, buffer.Point{Line: line2, Offset: 0}, m.point())

	m2, ok := SearchBackward(dtRev, m, 0)
	require.True(t, ok)
	line1 := b.Lines.Prev(line2)
	assert.Equal(t, buffer.Point{Line: line1, Offset: 0}, m2.point())
}

func TestSearchBackwardInsufficientSpan(t *testing.T) {
	b := seedBuf(t, "ab")
	dtRev := buildDeltaTables(ReversePattern([]byte("abcdef")), false)
	start := newCursor(b, buffer.Point{Line: b.Lines.First(), Offset: 2})
	_, ok := SearchBackward(dtRev, start, 0)
	assert.False(t, ok)
}

func TestReversePattern(t *testing.T) {
	assert.Equal(t, []byte("cba"), ReversePattern([]byte("abc")))
	assert.Equal(t, []byte(""), ReversePattern([]byte("")))
}

func TestEqualFold(t *testing.T) {
	assert.True(t, equalFold([]byte("AbC"), []byte("abc"), true))
	assert.False(t, equalFold([]byte("AbC"), []byte("abc"), false))
}
