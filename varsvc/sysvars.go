package varsvc

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/config"
	"github.com/go-memacs/core/value"
)

// init registers the built-in system variables, modeled after var.c's
// svar[] table (SPEC_FULL.md §C): a fixed set of name -> typed
// getter/setter pairs rather than a generic map, most of them read-only
// reflections of the current window/buffer.
func init() {
	RegisterSysVar("bufname", func(ctx *Context) (value.Value, error) {
		return value.String(ctx.Win.Buf.Name), nil
	}, nil)

	RegisterSysVar("filename", func(ctx *Context) (value.Value, error) {
		return value.String(ctx.Win.Buf.Filename), nil
	}, nil)

	RegisterSysVar("lineno", func(ctx *Context) (value.Value, error) {
		return value.Int(int64(lineNumber(ctx.Win))), nil
	}, nil)

	RegisterSysVar("curcol", func(ctx *Context) (value.Value, error) {
		return value.Int(int64(ctx.Win.Face.Point.Offset)), nil
	}, nil)

	RegisterSysVar("changed", func(ctx *Context) (value.Value, error) {
		return value.Bool(ctx.Win.Buf.ChangeCount != 0), nil
	}, nil)

	RegisterSysVar("readonly", func(ctx *Context) (value.Value, error) {
		return value.Bool(ctx.Win.Buf.Modes.Has(config.ModeReadOnly)), nil
	}, func(ctx *Context, v value.Value) error {
		if v.Truth() {
			ctx.Win.Buf.Modes.Set(config.ModeReadOnly)
		} else {
			ctx.Win.Buf.Modes.Clear(config.ModeReadOnly)
		}
		return nil
	})
}

// lineNumber walks from the buffer's first line to the point's line,
// counting 1-based; used only by the read-only $lineno reflection, not by
// any hot edit path.
func lineNumber(w *buffer.Window) int {
	ll := w.Buf.Lines
	n := 1
	for id := ll.First(); id != buffer.NoLine && id != w.Face.Point.Line; id = ll.Next(id) {
		n++
	}
	return n
}
