package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
)

func seedPopupBuffer(t *testing.T, n int) *buffer.Buffer {
	t.Helper()
	b := buffer.NewBuffer("help")
	w := buffer.NewWindow(b, 5)
	for i := 0; i < n; i++ {
		if i > 0 {
			require.NoError(t, b.InsertNewline(w))
		}
		require.NoError(t, b.InsertString(w, "entry"))
	}
	w.Close()
	return b
}

func TestPopupForcesReadOnly(t *testing.T) {
	b := seedPopupBuffer(t, 3)
	p := NewPopup(b, 4, 10)
	defer p.Close()
	assert.True(t, b.Modes.Has(config.ModeReadOnly))
}

func TestPopupPageDownAdvancesTopLine(t *testing.T) {
	b := seedPopupBuffer(t, 20)
	p := NewPopup(b, 5, 10) // pageLines = 4
	defer p.Close()
	first := p.win.Face.TopLine
	p.PageDown()
	assert.NotEqual(t, first, p.win.Face.TopLine)
	assert.Equal(t, nthLine(b.Lines, 4), p.win.Face.TopLine)
}

func TestPopupTopAndBottom(t *testing.T) {
	b := seedPopupBuffer(t, 20)
	p := NewPopup(b, 5, 10)
	defer p.Close()
	p.PageDown()
	p.Top()
	assert.Equal(t, b.Lines.First(), p.win.Face.TopLine)
	p.Bottom()
	assert.Equal(t, nthLine(b.Lines, 16), p.win.Face.TopLine)
}

func TestPopupKeyUnboundReturnsNotFound(t *testing.T) {
	b := seedPopupBuffer(t, 3)
	p := NewPopup(b, 4, 10)
	defer p.Close()
	err := p.Key('z')
	assert.Error(t, err)
}

func TestPopupComposeIncludesIdentificationRow(t *testing.T) {
	b := seedPopupBuffer(t, 3)
	p := NewPopup(b, 4, 10)
	defer p.Close()
	out := p.Compose(config.Default(), "help buffer")
	assert.Len(t, out.Rows, 4)
	assert.Equal(t, "help buffe", out.Rows[3].Text())
}

func TestIsQuitKey(t *testing.T) {
	assert.True(t, IsQuitKey('q'))
	assert.True(t, IsQuitKey(27))
	assert.False(t, IsQuitKey('x'))
}
