package eval

import "github.com/go-memacs/core/value"

// Callable is anything the call-dispatch resolution order in §4.5 can
// invoke: a built-in command/function, a resolved alias target, or a
// macro buffer. The call target itself is external to this package (the
// resolution *order* is core, the targets are supplied by the host); see
// SPEC_FULL.md's domain-stack note on call dispatch.
type Callable interface {
	Call(args []value.Value, prefix *int64) (value.Value, error)
}

// Env is the interpreter's host hook: variable storage, array allocation
// (so arrays built by literals/evaluation are GC-tracked on the host's
// heap), and call-target resolution in the exact order §4.5 specifies
// (commands/built-ins, then aliases resolved transitively, then macros).
type Env interface {
	GetVar(name string) (value.Value, bool)
	SetVar(name string, v value.Value) error
	NewArray(elems ...value.Value) *value.Array

	ResolveCommand(name string) (Callable, bool)
	ResolveAlias(name string) (target string, ok bool)
	ResolveMacro(name string) (Callable, bool)

	// RegexMatch evaluates `text =~ pattern`. The evaluator depends only
	// on this narrow hook rather than importing the search package
	// directly, so the expression language stays decoupled from the
	// search engine's compilation/caching concerns; the host (session)
	// wires the two together.
	RegexMatch(text, pattern string) (bool, error)
}

// resolveCall implements §4.5's call-dispatch resolution order: commands
// and built-in functions first, then aliases (followed transitively),
// then macros.
func resolveCall(env Env, name string) (Callable, error) {
	if c, ok := env.ResolveCommand(name); ok {
		return c, nil
	}
	seen := map[string]bool{name: true}
	cur := name
	for {
		target, ok := env.ResolveAlias(cur)
		if !ok {
			break
		}
		if seen[target] {
			return nil, errCircularAlias(cur)
		}
		seen[target] = true
		if c, ok := env.ResolveCommand(target); ok {
			return c, nil
		}
		cur = target
	}
	if c, ok := env.ResolveMacro(cur); ok {
		return c, nil
	}
	return nil, errUndefinedCall(name)
}
