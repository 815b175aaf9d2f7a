package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-memacs/core/buffer"
)

func seedManyLines(t *testing.T, n int) *buffer.Window {
	t.Helper()
	b := buffer.NewBuffer("scratch")
	w := buffer.NewWindow(b, 5)
	for i := 0; i < n; i++ {
		if i > 0 {
			require.NoError(t, b.InsertNewline(w))
		}
		require.NoError(t, b.InsertString(w, "line"))
	}
	return w
}

func nthLine(ll *buffer.LineList, n int) buffer.LineID {
	id := ll.First()
	for i := 0; i < n; i++ {
		id = ll.Next(id)
	}
	return id
}

func TestReframeNoOpWhenPointAlreadyVisible(t *testing.T) {
	w := seedManyLines(t, 20)
	w.Face.TopLine = nthLine(w.Buf.Lines, 5)
	w.Face.Point.Line = nthLine(w.Buf.Lines, 6)
	before := w.Face.TopLine
	Reframe(w, 3, 40)
	assert.Equal(t, before, w.Face.TopLine)
}

func TestReframeMovesTopLineWhenPointOffscreen(t *testing.T) {
	w := seedManyLines(t, 20)
	w.Face.TopLine = nthLine(w.Buf.Lines, 0)
	w.Face.Point.Line = nthLine(w.Buf.Lines, 15)
	Reframe(w, 4, 50)
	row, ok := visible(w.Buf.Lines, w.Face.TopLine, w.Face.Point.Line, 4)
	require.True(t, ok)
	assert.Equal(t, 1, row) // floor(50% of contentRows-1=3) = 1
}

func TestReframeForcedAlwaysRecomputes(t *testing.T) {
	w := seedManyLines(t, 20)
	w.Face.TopLine = nthLine(w.Buf.Lines, 5)
	w.Face.Point.Line = nthLine(w.Buf.Lines, 6)
	w.Flags |= buffer.WFReframe
	Reframe(w, 3, 0)
	assert.Equal(t, w.Face.Point.Line, w.Face.TopLine)
	assert.Equal(t, buffer.WFlags(0), w.Flags&buffer.WFReframe)
}

func TestReframeCentersWhenJumpWouldOvershoot(t *testing.T) {
	w := seedManyLines(t, 20)
	w.Face.TopLine = nthLine(w.Buf.Lines, 5)
	w.Face.Point.Line = nthLine(w.Buf.Lines, 1)
	Reframe(w, 10, 90)
	row, ok := visible(w.Buf.Lines, w.Face.TopLine, w.Face.Point.Line, 10)
	require.True(t, ok)
	assert.Equal(t, 1, row) // centered at contentRows/2 = 5, but clamped to line 1's actual depth
}
