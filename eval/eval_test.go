package eval

import (
	"regexp"
	"testing"

	"github.com/go-memacs/core/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcCallable adapts a plain Go func to the Callable interface for
// tests, mirroring how a real command table entry would wrap a builtin.
type funcCallable struct {
	fn func(args []value.Value, prefix *int64) (value.Value, error)
}

func (f funcCallable) Call(args []value.Value, prefix *int64) (value.Value, error) {
	return f.fn(args, prefix)
}

type fakeEnv struct {
	vars       map[string]value.Value
	heap       *value.Heap
	exitCalled bool
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{vars: map[string]value.Value{}, heap: value.NewHeap()}
}

func (e *fakeEnv) GetVar(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *fakeEnv) SetVar(name string, v value.Value) error {
	e.vars[name] = v
	return nil
}

func (e *fakeEnv) NewArray(elems ...value.Value) *value.Array {
	return value.NewArray(e.heap, elems...)
}

func (e *fakeEnv) ResolveCommand(name string) (Callable, bool) {
	switch name {
	case "exit":
		return funcCallable{func(args []value.Value, prefix *int64) (value.Value, error) {
			e.exitCalled = true
			return value.Nil, nil
		}}, true
	case "clone":
		return funcCallable{func(args []value.Value, prefix *int64) (value.Value, error) {
			return args[0].Clone(), nil
		}}, true
	case "double":
		return funcCallable{func(args []value.Value, prefix *int64) (value.Value, error) {
			n := int64(1)
			if prefix != nil {
				n = *prefix
			}
			return value.Int(args[0].Int() * n * 2), nil
		}}, true
	}
	return nil, false
}

func (e *fakeEnv) ResolveAlias(name string) (string, bool) { return "", false }
func (e *fakeEnv) ResolveMacro(name string) (Callable, bool) { return nil, false }

func (e *fakeEnv) RegexMatch(text, pattern string) (bool, error) {
	return regexp.MatchString(pattern, text)
}

func evalSrc(t *testing.T, env *fakeEnv, src string) value.Value {
	t.Helper()
	n, err := ParseStatement(src)
	require.NoError(t, err)
	v, err := NewInterp(env).Eval(n)
	require.NoError(t, err)
	return v
}

// TestShortCircuitAndSkipsCall covers §8 Scenario 5: `false and exit()`
// evaluates to false without invoking exit.
func TestShortCircuitAndSkipsCall(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `false and exit()`)
	assert.False(t, v.Truth())
	assert.False(t, env.exitCalled)
}

func TestShortCircuitOrReturnsSecondOperandValue(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `nil || 5 + 3`)
	assert.Equal(t, int64(8), v.Int())
}

func TestShortCircuitAndTrueEvaluatesSecond(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `true && 7`)
	assert.Equal(t, int64(7), v.Int())
}

func TestTernaryShortCircuit(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `1 ? 10 : exit()`)
	assert.Equal(t, int64(10), v.Int())
	assert.False(t, env.exitCalled)
}

// TestArrayAliasing covers §8 Scenario 6: assigning an array Value copies
// the handle, so mutating through the alias is visible via the original;
// cloning first breaks the aliasing.
func TestArrayAliasing(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `$a = [1,2,3]`)
	evalSrc(t, env, `$b = $a`)
	evalSrc(t, env, `$b[0] = 99`)

	a, ok := env.GetVar("$a")
	require.True(t, ok)
	assert.Equal(t, int64(99), a.ArrayVal().Get(0).Int())
}

func TestArrayCloneBreaksAliasing(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `$a = [1,2,3]`)
	evalSrc(t, env, `$b = clone($a)`)
	evalSrc(t, env, `$b[0] = 99`)

	a, ok := env.GetVar("$a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.ArrayVal().Get(0).Int())
}

func TestArithmeticPrecedence(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `2 + 3 * 4`)
	assert.Equal(t, int64(14), v.Int())
}

func TestStringConcat(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `"n=" & 5`)
	assert.Equal(t, "n=5", v.Text())
}

func TestCompoundAssignment(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `x = 10`)
	v := evalSrc(t, env, `x += 5`)
	assert.Equal(t, int64(15), v.Int())
}

func TestPostIncrement(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `x = 1`)
	v := evalSrc(t, env, `x++`)
	assert.Equal(t, int64(1), v.Int())
	after, _ := env.GetVar("x")
	assert.Equal(t, int64(2), after.Int())
}

func TestParallelAssignment(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `a,b,c = [1,2,3]`)
	av, _ := env.GetVar("a")
	bv, _ := env.GetVar("b")
	cv, _ := env.GetVar("c")
	assert.Equal(t, int64(1), av.Int())
	assert.Equal(t, int64(2), bv.Int())
	assert.Equal(t, int64(3), cv.Int())
}

func TestWhitespaceArgsCall(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `double 21`)
	assert.Equal(t, int64(42), v.Int())
}

func TestNumericPrefixCall(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `3 => double(10)`)
	assert.Equal(t, int64(60), v.Int())
}

func TestRegexMatchOperator(t *testing.T) {
	env := newFakeEnv()
	v := evalSrc(t, env, `"hello123" =~ "[0-9]+"`)
	assert.True(t, v.Truth())
	v2 := evalSrc(t, env, `"hello123" !~ "[0-9]+"`)
	assert.False(t, v2.Truth())
}

func TestTernaryOperator(t *testing.T) {
	env := newFakeEnv()
	assert.Equal(t, int64(1), evalSrc(t, env, `true ? 1 : 2`).Int())
	assert.Equal(t, int64(2), evalSrc(t, env, `false ? 1 : 2`).Int())
}

func TestIndexSlice(t *testing.T) {
	env := newFakeEnv()
	evalSrc(t, env, `$a = [1,2,3,4,5]`)
	v := evalSrc(t, env, `$a[1,3]`)
	require.Equal(t, value.KindArray, v.Kind())
	assert.Equal(t, 2, v.ArrayVal().Len())
	assert.Equal(t, int64(2), v.ArrayVal().Get(0).Int())
	assert.Equal(t, int64(3), v.ArrayVal().Get(1).Int())
}
