// Package varsvc implements the editor's variable scopes, mark services,
// and navigation primitives (§4.6): the glue between the expression
// evaluator's bare identifiers/globals and the buffer/window state they
// read and write.
package varsvc

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/status"
	"github.com/go-memacs/core/value"
)

// Context supplies a sysvar getter/setter the window and buffer it acts
// on. A Scope is otherwise independent of any particular buffer, so
// Context is passed per call rather than stored.
type Context struct {
	Win *buffer.Window
}

// sysVarEntry pairs a system variable's read path with its optional write
// path; a nil Set means the variable is read-only, matching var.c's
// svar[] dispatch-table shape (SPEC_FULL.md §C) rather than a generic map.
type sysVarEntry struct {
	Get func(ctx *Context) (value.Value, error)
	Set func(ctx *Context, v value.Value) error
}

var sysVars = map[string]sysVarEntry{}

// RegisterSysVar installs a system variable under name (without the '$'
// sigil). Called from package init in sysvars.go; exported so a host can
// extend the table with its own read-only diagnostics.
func RegisterSysVar(name string, get func(ctx *Context) (value.Value, error), set func(ctx *Context, v value.Value) error) {
	sysVars[name] = sysVarEntry{Get: get, Set: set}
}

type localEntry struct {
	name string
	val  value.Value
}

// frame records the local-list stack pointer and the argument vector in
// effect for one macro invocation, per §4.6: "local macro variables ...
// scoped to the currently running macro invocation via a 'stack pointer'
// into the local list."
type frame struct {
	base int
	args []value.Value
}

// Scope holds the three variable scopes of §4.6: system (sysVars, above),
// global ($name, a flat map), and local (bare name, a single list shared
// across nested macro frames with each frame remembering where its own
// locals begin).
type Scope struct {
	globals map[string]value.Value
	locals  []localEntry
	frames  []frame
}

// NewScope returns an empty variable scope with no macro frame active.
func NewScope() *Scope {
	return &Scope{globals: map[string]value.Value{}}
}

// PushFrame opens a new macro invocation with the given argument vector;
// locals created before this call are invisible to lookups until PopFrame.
func (s *Scope) PushFrame(args []value.Value) {
	s.frames = append(s.frames, frame{base: len(s.locals), args: args})
}

// PopFrame closes the most recently pushed macro invocation, discarding
// every local variable it created.
func (s *Scope) PopFrame() {
	n := len(s.frames)
	if n == 0 {
		return
	}
	f := s.frames[n-1]
	s.locals = s.locals[:f.base]
	s.frames = s.frames[:n-1]
}

func (s *Scope) base() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].base
}

// GetVar resolves name per §4.6's walk: $-digit is a macro argument,
// $-name checks the system-variable table then falls back to a global, a
// bare name searches the local list above the current frame.
func (s *Scope) GetVar(ctx *Context, name string) (value.Value, bool, error) {
	if len(name) > 0 && name[0] == '$' {
		rest := name[1:]
		if n, ok := digitIndex(rest); ok {
			v, ok := s.macroArg(n)
			return v, ok, nil
		}
		if sv, ok := sysVars[rest]; ok {
			v, err := sv.Get(ctx)
			return v, true, err
		}
		v, ok := s.globals[rest]
		return v, ok, nil
	}
	v, ok := s.getLocal(name)
	return v, ok, nil
}

// SetVar assigns name per the same scope walk. A $-digit argument is not
// assignable. An undefined global or local is created in its own scope on
// first plain assignment, per §4.5's defineOrAssign rule (the evaluator
// calls SetVar directly for that case; this method never refuses an
// unknown $name or bare name).
func (s *Scope) SetVar(ctx *Context, name string, v value.Value) error {
	if len(name) > 0 && name[0] == '$' {
		rest := name[1:]
		if _, ok := digitIndex(rest); ok {
			return status.New(status.Failure, "macro argument $%s is read-only", rest)
		}
		if sv, ok := sysVars[rest]; ok {
			if sv.Set == nil {
				return status.New(status.Failure, "system variable $%s is read-only", rest)
			}
			return sv.Set(ctx, v)
		}
		s.globals[rest] = v
		return nil
	}
	s.setLocal(name, v)
	return nil
}

func (s *Scope) getLocal(name string) (value.Value, bool) {
	base := s.base()
	for i := len(s.locals) - 1; i >= base; i-- {
		if s.locals[i].name == name {
			return s.locals[i].val, true
		}
	}
	return value.Nil, false
}

func (s *Scope) setLocal(name string, v value.Value) {
	base := s.base()
	for i := len(s.locals) - 1; i >= base; i-- {
		if s.locals[i].name == name {
			s.locals[i].val = v
			return
		}
	}
	s.locals = append(s.locals, localEntry{name: name, val: v})
}

func (s *Scope) macroArg(n int) (value.Value, bool) {
	if len(s.frames) == 0 {
		return value.Nil, false
	}
	args := s.frames[len(s.frames)-1].args
	if n < 1 || n > len(args) {
		return value.Nil, false
	}
	return args[n-1], true
}

// digitIndex reports whether s is a non-empty run of decimal digits, and
// if so its value (used to recognize $1, $2, ... macro-argument refs).
func digitIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// GCRoots implements value.RootProvider: every global variable's Value is
// a GC root (SPEC_FULL.md §C "Variable table structure" / §4.1 mark-sweep
// pass). Locals are not roots: per the concurrency model (§5), the
// collector only runs between top-level commands, a point at which no
// macro frame is left on the stack.
func (s *Scope) GCRoots() []value.Value {
	roots := make([]value.Value, 0, len(s.globals))
	for _, v := range s.globals {
		roots = append(roots, v)
	}
	return roots
}
