// Package session re-architects the editor's global mutable state (spec
// Design Notes §9 "Global mutable state") as an explicit struct threaded
// through every entry point: current screen, current window, current
// buffer, current return code, and the config knobs that used to be
// scattered option flags.
package session

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
	"github.com/go-memacs/core/eval"
	"github.com/go-memacs/core/status"
	"github.com/go-memacs/core/value"
	"github.com/go-memacs/core/varsvc"
)

// MacroSigil re-exports buffer.MacroSigil for callers that only import
// session (§4.5: "macros (buffers whose name begins with the macro
// sigil)"); spec leaves the exact character unspecified, so '&' is
// picked in buffer.MacroSigil and documented in DESIGN.md rather than
// inferred from an unavailable source table.
const MacroSigil = buffer.MacroSigil

// Session is the explicit state bundle every command, motion, and
// evaluation runs against.
type Session struct {
	Buffers *buffer.Registry
	Config  *config.Config
	Heap    *value.Heap
	Vars    *varsvc.Scope

	screens    []*buffer.Screen
	curScreen  *buffer.Screen
	nextScreen int

	aliases  map[string]string
	commands map[string]CommandID

	// Abort is the cooperative cancellation flag of §5: long loops check
	// it between iterations, and the input path sets it on the reserved
	// abort keystroke.
	Abort bool

	// Done and ExitCode record a pending clean/dirty exit (§6.4); the
	// top-level loop checks Done after every dispatch.
	Done     bool
	ExitCode int
}

// New creates a session with one screen and no buffers.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	heap := value.NewHeap()
	s := &Session{
		Buffers:  buffer.NewRegistry(),
		Config:   cfg,
		Heap:     heap,
		Vars:     varsvc.NewScope(),
		aliases:  map[string]string{},
		commands: map[string]CommandID{},
	}
	heap.AddRoot(s.Vars)
	registerDefaultCommands(s)
	s.curScreen = s.NewScreen(24, 80)
	return s
}

// NewScreen creates and registers a new screen of the given dimensions,
// without making it current.
func (s *Session) NewScreen(rows, cols int) *buffer.Screen {
	s.nextScreen++
	scr := buffer.NewScreen(s.nextScreen, rows, cols)
	s.screens = append(s.screens, scr)
	if s.curScreen == nil {
		s.curScreen = scr
	}
	return scr
}

// CurScreen returns the current screen.
func (s *Session) CurScreen() *buffer.Screen { return s.curScreen }

// SetCurScreen makes scr current, if it belongs to this session.
func (s *Session) SetCurScreen(scr *buffer.Screen) bool {
	for _, other := range s.screens {
		if other == scr {
			s.curScreen = scr
			return true
		}
	}
	return false
}

// CurWindow returns the current screen's current window, or nil if the
// screen has none.
func (s *Session) CurWindow() *buffer.Window {
	if s.curScreen == nil {
		return nil
	}
	return s.curScreen.Current()
}

// CurBuffer returns the current window's buffer, or nil if there is no
// current window.
func (s *Session) CurBuffer() *buffer.Buffer {
	w := s.CurWindow()
	if w == nil {
		return nil
	}
	return w.Buf
}

// OpenBuffer creates (or reuses) a buffer named name, opens a window onto
// it sized to the current screen, and tiles that window onto the current
// screen.
func (s *Session) OpenBuffer(name string) (*buffer.Buffer, *buffer.Window) {
	b := s.Buffers.Create(name)
	rows := 24
	if s.curScreen != nil {
		rows = s.curScreen.Rows
	}
	w := buffer.NewWindow(b, rows)
	if s.curScreen != nil {
		s.curScreen.AddWindow(w)
	}
	return b, w
}

// SetAlias installs an alias, per §4.5's resolution order
// (commands→aliases→macros); target may itself be another alias, which
// resolveCall (eval/env.go) follows transitively with cycle detection.
func (s *Session) SetAlias(name, target string) { s.aliases[name] = target }

// NewInterp builds an evaluator bound to this session.
func (s *Session) NewInterp() *eval.Interp { return eval.NewInterp(s) }

// varCtx builds the varsvc.Context for the current window; several
// sysvars (e.g. $bufname) read/write window-relative state.
func (s *Session) varCtx() *varsvc.Context {
	return &varsvc.Context{Win: s.CurWindow()}
}

// NoteNonLineMove resets the current window's pinned goal column; the
// command dispatcher calls this before running any command that isn't a
// line motion (window.go's nav.c-derived goalCol reset rule).
func (s *Session) NoteNonLineMove() {
	if w := s.CurWindow(); w != nil {
		w.NoteNonLineMove()
	}
}

// status helper shared by command implementations.
func failuref(format string, args ...interface{}) error {
	return status.New(status.Failure, format, args...)
}
