package eval

import "github.com/go-memacs/core/value"

// evalCall resolves and invokes a call node. prefix, when non-nil, is the
// numeric prefix threaded in by a NumericPrefixNode (`n => call(...)`).
func (it *Interp) evalCall(t *CallNode, prefix *int64, live bool) (value.Value, error) {
	name, isArrayLit := calleeName(t.Callee)

	args := make([]value.Value, len(t.Args))
	for i, a := range t.Args {
		v, err := it.eval(a, live)
		if err != nil {
			return value.Nil, err
		}
		args[i] = v
	}
	if !live {
		return value.Nil, nil
	}

	if isArrayLit {
		return value.FromArray(it.env.NewArray(args...)), nil
	}

	callee, err := resolveCall(it.env, name)
	if err != nil {
		return value.Nil, err
	}
	return callee.Call(args, prefix)
}

// calleeName extracts the callable's name from a CallNode's Callee,
// reporting whether it is the synthetic array-literal marker produced by
// parseArrayLiteral.
func calleeName(n Node) (name string, isArrayLit bool) {
	id, ok := n.(*IdentNode)
	if !ok {
		return "", false
	}
	if id.Name == "#array" {
		return "", true
	}
	return id.Name, false
}

func (it *Interp) evalNumericPrefix(t *NumericPrefixNode, live bool) (value.Value, error) {
	n, err := it.eval(t.N, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		_, err := it.eval(t.Call, false)
		return value.Nil, err
	}
	prefix := n.Int()
	if call, ok := t.Call.(*CallNode); ok {
		return it.evalCall(call, &prefix, live)
	}
	return it.eval(t.Call, live)
}
