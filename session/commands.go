package session

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/value"
	"github.com/go-memacs/core/varsvc"
)

// CommandID names a built-in editor command (Design Notes §9 "Dynamic
// dispatch": an enum variant per command plus a single dispatch function,
// rather than a map of closures scattered across the codebase). The
// commandSpecs table below is the per-variant data table the dispatcher
// consults for argument validation.
type CommandID int

const (
	CmdForwardChar CommandID = iota
	CmdBackwardChar
	CmdForwardLine
	CmdBackwardLine
	CmdForwardWord
	CmdBackwardWord
	CmdSetMark
	CmdSwapMark
	CmdClone
	CmdExit
)

// commandSpec validates a command's argument count before Fn runs, per
// §9's "a per-variant data table consulted by the dispatcher".
type commandSpec struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 means unbounded
	Fn      func(s *Session, args []value.Value, prefix *int64) (value.Value, error)
}

var commandSpecs = map[CommandID]commandSpec{
	CmdForwardChar:  {Name: "forwardChar", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveChar(1)},
	CmdBackwardChar: {Name: "backwardChar", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveChar(-1)},
	CmdForwardLine:  {Name: "forwardLine", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveLine(1)},
	CmdBackwardLine: {Name: "backwardLine", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveLine(-1)},
	CmdForwardWord:  {Name: "forwardWord", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveWord(1)},
	CmdBackwardWord: {Name: "backwardWord", MinArgs: 0, MaxArgs: 0, Fn: cmdMoveWord(-1)},
	CmdSetMark:      {Name: "setMark", MinArgs: 1, MaxArgs: 1, Fn: cmdSetMark},
	CmdSwapMark:     {Name: "swapMark", MinArgs: 1, MaxArgs: 1, Fn: cmdSwapMark},
	CmdClone:        {Name: "clone", MinArgs: 1, MaxArgs: 1, Fn: cmdClone},
	CmdExit:         {Name: "exit", MinArgs: 0, MaxArgs: 1, Fn: cmdExit},
}

// registerDefaultCommands installs the built-in name→CommandID table,
// called once from New.
func registerDefaultCommands(s *Session) {
	for id, spec := range commandSpecs {
		s.commands[spec.Name] = id
	}
}

// commandCallable adapts a CommandID to eval.Callable, validating argument
// counts against commandSpecs before dispatching (§9's dispatcher).
type commandCallable struct {
	sess *Session
	id   CommandID
}

func (c commandCallable) Call(args []value.Value, prefix *int64) (value.Value, error) {
	spec, ok := commandSpecs[c.id]
	if !ok {
		return value.Nil, failuref("unknown command")
	}
	if len(args) < spec.MinArgs || (spec.MaxArgs >= 0 && len(args) > spec.MaxArgs) {
		return value.Nil, failuref("%s: wrong number of arguments", spec.Name)
	}
	if c.id != CmdForwardLine && c.id != CmdBackwardLine {
		c.sess.NoteNonLineMove()
	}
	return spec.Fn(c.sess, args, prefix)
}

func repeatCount(prefix *int64) int {
	if prefix == nil {
		return 1
	}
	return int(*prefix)
}

func cmdMoveChar(dir int) func(*Session, []value.Value, *int64) (value.Value, error) {
	return func(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
		w := s.CurWindow()
		if w == nil {
			return value.Nil, failuref("no current window")
		}
		ok := varsvc.MoveChar(w, dir*repeatCount(prefix))
		return value.Bool(ok), nil
	}
}

func cmdMoveLine(dir int) func(*Session, []value.Value, *int64) (value.Value, error) {
	return func(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
		w := s.CurWindow()
		if w == nil {
			return value.Nil, failuref("no current window")
		}
		ok := varsvc.MoveLine(w, dir*repeatCount(prefix))
		return value.Bool(ok), nil
	}
}

func cmdMoveWord(dir int) func(*Session, []value.Value, *int64) (value.Value, error) {
	return func(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
		w := s.CurWindow()
		if w == nil {
			return value.Nil, failuref("no current window")
		}
		isWord := func(r rune) bool { return s.Config.WordChars(r) }
		ok := varsvc.MoveWord(w, dir*repeatCount(prefix), isWord)
		return value.Bool(ok), nil
	}
}

func cmdSetMark(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
	w := s.CurWindow()
	if w == nil {
		return value.Nil, failuref("no current window")
	}
	name := []rune(args[0].Text())
	if len(name) != 1 {
		return value.Nil, failuref("setMark: mark name must be one character")
	}
	m, err := w.Buf.FindMark(name[0], buffer.MarkCreate)
	if err != nil {
		return value.Nil, err
	}
	m.Point = w.Face.Point
	m.ReframeRow = w.TopRow
	return value.Nil, nil
}

func cmdSwapMark(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
	w := s.CurWindow()
	if w == nil {
		return value.Nil, failuref("no current window")
	}
	name := []rune(args[0].Text())
	if len(name) != 1 {
		return value.Nil, failuref("swapMark: mark name must be one character")
	}
	if err := varsvc.SwapMark(w, name[0]); err != nil {
		return value.Nil, err
	}
	return value.Nil, nil
}

func cmdClone(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
	return args[0].Clone(), nil
}

func cmdExit(s *Session, args []value.Value, prefix *int64) (value.Value, error) {
	s.Done = true
	if len(args) == 1 {
		s.ExitCode = int(args[0].Int())
	}
	return value.Nil, nil
}
