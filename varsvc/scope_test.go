package varsvc

import (
	"testing"

	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx(t *testing.T) *Context {
	t.Helper()
	b := buffer.NewBuffer("scratch")
	w := buffer.NewWindow(b, 24)
	return &Context{Win: w}
}

func TestGlobalVarRoundTrip(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)

	require.NoError(t, s.SetVar(ctx, "$count", value.Int(5)))
	v, ok, err := s.GetVar(ctx, "$count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), v.Int())
}

func TestLocalVarScopedToFrame(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)

	require.NoError(t, s.SetVar(ctx, "x", value.Int(1)))

	s.PushFrame(nil)
	_, ok, _ := s.GetVar(ctx, "x")
	assert.False(t, ok, "a local defined before the frame is not visible inside it")

	require.NoError(t, s.SetVar(ctx, "x", value.Int(2)))
	v, ok, _ := s.GetVar(ctx, "x")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int())

	s.PopFrame()
	v, ok, _ = s.GetVar(ctx, "x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int(), "the outer local survives the inner frame's local of the same name")
}

func TestMacroArgumentLookup(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)

	s.PushFrame([]value.Value{value.String("a"), value.String("b")})
	defer s.PopFrame()

	v, ok, err := s.GetVar(ctx, "$1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", v.Text())

	_, ok, _ = s.GetVar(ctx, "$3")
	assert.False(t, ok)
}

func TestMacroArgumentNotAssignable(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)
	s.PushFrame([]value.Value{value.Int(1)})
	defer s.PopFrame()

	err := s.SetVar(ctx, "$1", value.Int(2))
	assert.Error(t, err)
}

func TestSysVarBufname(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)
	ctx.Win.Buf.Name = "scratch"

	v, ok, err := s.GetVar(ctx, "$bufname")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "scratch", v.Text())

	err = s.SetVar(ctx, "$bufname", value.String("other"))
	assert.Error(t, err, "bufname is read-only")
}

func TestSysVarReadonlyRoundTrips(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)

	v, _, _ := s.GetVar(ctx, "$readonly")
	assert.False(t, v.Truth())

	require.NoError(t, s.SetVar(ctx, "$readonly", value.Bool(true)))
	v, _, _ = s.GetVar(ctx, "$readonly")
	assert.True(t, v.Truth())
}

func TestGCRootsCoversGlobalsOnly(t *testing.T) {
	s := NewScope()
	ctx := testCtx(t)
	require.NoError(t, s.SetVar(ctx, "$a", value.Int(1)))
	s.PushFrame(nil)
	require.NoError(t, s.SetVar(ctx, "local", value.Int(2)))

	roots := s.GCRoots()
	require.Len(t, roots, 1)
	assert.Equal(t, int64(1), roots[0].Int())
}
