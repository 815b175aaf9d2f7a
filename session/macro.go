package session

import (
	"github.com/go-memacs/core/buffer"
	"github.com/go-memacs/core/eval"
	"github.com/go-memacs/core/value"
)

// macroCallable runs a macro buffer's text as a sequence of statements
// (§4.5), one per line, in a fresh local-variable frame seeded with the
// call's arguments ($1, $2, ...). The macro's value is its last
// statement's value, mirroring the evaluator's own sequence semantics.
type macroCallable struct {
	sess *Session
	buf  *buffer.Buffer
}

func (m macroCallable) Call(args []value.Value, prefix *int64) (value.Value, error) {
	m.sess.Vars.PushFrame(args)
	defer m.sess.Vars.PopFrame()

	interp := m.sess.NewInterp()
	result := value.Nil
	for id := m.buf.Lines.First(); id != buffer.NoLine; id = m.buf.Lines.Next(id) {
		line := string(m.buf.Lines.Line(id).Bytes())
		if line == "" {
			continue
		}
		node, err := eval.ParseStatement(line)
		if err != nil {
			return value.Nil, err
		}
		result, err = interp.Eval(node)
		if err != nil {
			return value.Nil, err
		}
		if m.sess.Abort || m.sess.Done {
			break
		}
	}
	return result, nil
}
