package varsvc

import (
	"testing"

	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWin(t *testing.T, lines ...string) *buffer.Window {
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
	return w
}

func TestMoveCharForwardCrossesLine(t *testing.T) {
	w := seedWin(t, "ab", "cd")
	line0 := w.Buf.Lines.First()
	line1 := w.Buf.Lines.Next(line0)

	require.True(t, MoveChar(w, 1))
	require.True(t, MoveChar(w, 1))
	// now at end of line0 (offset 2); one more step crosses onto line1.
	require.True(t, MoveChar(w, 1))
	assert.Equal(t, buffer.Point{Line: line1, Offset: 0}, w.Face.Point)
}

func TestMoveCharAtBufferEndReturnsNotFoundAndDoesNotMove(t *testing.T) {
	w := seedWin(t, "ab")
	end := buffer.Point{Line: w.Buf.Lines.First(), Offset: 2}
	w.Face.Point = end

	ok := MoveChar(w, 1)
	assert.False(t, ok)
	assert.Equal(t, end, w.Face.Point)
}

func TestMoveCharBackwardAtBufferStart(t *testing.T) {
	w := seedWin(t, "ab")
	start := w.Face.Point

	ok := MoveChar(w, -1)
	assert.False(t, ok)
	assert.Equal(t, start, w.Face.Point)
}

func TestMoveCharAtomicPartialRunDoesNotMove(t *testing.T) {
	w := seedWin(t, "ab")
	start := w.Face.Point

	ok := MoveChar(w, 5)
	assert.False(t, ok)
	assert.Equal(t, start, w.Face.Point)
}

func TestMoveLinePersistsGoalColumn(t *testing.T) {
	w := seedWin(t, "abcdef", "xy", "ghijkl")
	w.Face.Point.Offset = 4

	require.True(t, MoveLine(w, 1))
	assert.Equal(t, 2, w.Face.Point.Offset, "goal column clamps to short line's length")

	require.True(t, MoveLine(w, 1))
	assert.Equal(t, 4, w.Face.Point.Offset, "goal column is restored once the line is long enough again")
}

func TestMoveLineNonLineMoveResetsGoal(t *testing.T) {
	w := seedWin(t, "abcdef", "xy", "ghijkl")
	w.Face.Point.Offset = 4

	require.True(t, MoveLine(w, 1))
	assert.Equal(t, 2, w.Face.Point.Offset)

	w.NoteNonLineMove()
	require.True(t, MoveLine(w, 1))
	assert.Equal(t, 2, w.Face.Point.Offset, "goal re-pins from the current column, not the stale one")
}

func TestMoveLineRunsOutReturnsFalseAndDoesNotMove(t *testing.T) {
	w := seedWin(t, "abc", "def")
	start := w.Face.Point

	ok := MoveLine(w, 5)
	assert.False(t, ok)
	assert.Equal(t, start, w.Face.Point)
}

func TestMoveWordForward(t *testing.T) {
	w := seedWin(t, "foo bar baz")

	require.True(t, MoveWord(w, 1, config.DefaultWordChars))
	assert.Equal(t, 3, w.Face.Point.Offset)

	require.True(t, MoveWord(w, 1, config.DefaultWordChars))
	assert.Equal(t, 7, w.Face.Point.Offset)
}

func TestMoveWordBackward(t *testing.T) {
	w := seedWin(t, "foo bar")
	w.Face.Point.Offset = 7

	require.True(t, MoveWord(w, -1, config.DefaultWordChars))
	assert.Equal(t, 3, w.Face.Point.Offset)

	require.True(t, MoveWord(w, -1, config.DefaultWordChars))
	assert.Equal(t, 0, w.Face.Point.Offset)
}

func TestTabStopComputesOffsetWithoutMoving(t *testing.T) {
	w := seedWin(t, "ab")
	w.Face.Point.Offset = 2

	got := TabStop(w, 1, 8)
	assert.Equal(t, 8, got)
	assert.Equal(t, 2, w.Face.Point.Offset, "TabStop is a pure computation; it does not move point")
}
