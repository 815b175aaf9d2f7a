package session

import (
	"github.com/go-memacs/core/eval"
	"github.com/go-memacs/core/search"
	"github.com/go-memacs/core/value"
)

// Session implements eval.Env directly: the evaluator's only coupling to
// the rest of the editor is this interface, composed here from varsvc
// (variable scopes), the command table (commands.go), and search
// (regexp matching).

// GetVar implements eval.Env. A sysvar read failure (there is no
// not-found/error distinction in this interface) is treated as
// not-found; none of the registered sysvar getters can actually fail in
// practice, since they read plain struct fields.
func (s *Session) GetVar(name string) (value.Value, bool) {
	v, ok, err := s.Vars.GetVar(s.varCtx(), name)
	if err != nil {
		return value.Nil, false
	}
	return v, ok
}

// SetVar implements eval.Env.
func (s *Session) SetVar(name string, v value.Value) error {
	return s.Vars.SetVar(s.varCtx(), name, v)
}

// NewArray implements eval.Env, allocating the array on the session's
// heap so it participates in garbage collection.
func (s *Session) NewArray(elems ...value.Value) *value.Array {
	return value.NewArray(s.Heap, elems...)
}

// ResolveCommand implements eval.Env.
func (s *Session) ResolveCommand(name string) (eval.Callable, bool) {
	id, ok := s.commands[name]
	if !ok {
		return nil, false
	}
	return commandCallable{sess: s, id: id}, true
}

// ResolveAlias implements eval.Env.
func (s *Session) ResolveAlias(name string) (string, bool) {
	target, ok := s.aliases[name]
	return target, ok
}

// ResolveMacro implements eval.Env. Per §4.5, a macro is a buffer whose
// name begins with MacroSigil; invoking it runs the buffer's text as a
// statement sequence in a fresh local-variable frame. The registry
// lookup is by the sigil-prefixed name, but b.MacroName (set once by
// buffer.NewBuffer) is what actually marks the buffer as a macro target;
// checking it here rather than re-deriving the prefix keeps the two in
// sync if a buffer is ever renamed into or out of macro form.
func (s *Session) ResolveMacro(name string) (eval.Callable, bool) {
	bufName := string(MacroSigil) + name
	b, ok := s.Buffers.Lookup(bufName)
	if !ok || b.MacroName != name {
		return nil, false
	}
	return macroCallable{sess: s, buf: b}, true
}

// RegexMatch implements eval.Env.
func (s *Session) RegexMatch(text, pattern string) (bool, error) {
	return search.MatchText(text, pattern)
}
