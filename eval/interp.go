package eval

import (
	"strings"

	"github.com/go-memacs/core/value"
)

// Interp is a tree-walking interpreter over a parsed Node, holding the
// host Env it reads/writes variables and dispatches calls through.
type Interp struct {
	env Env
}

func NewInterp(env Env) *Interp { return &Interp{env: env} }

// Eval evaluates n fully (not inside any dead short-circuit branch).
func (it *Interp) Eval(n Node) (value.Value, error) { return it.eval(n, true) }

// eval walks n. live=false means n sits in a dead short-circuit branch:
// its subtree is still walked, but variables are not read, calls are not
// invoked and assignments are not committed, per §4.5's "parsed but not
// evaluated" rule.
func (it *Interp) eval(n Node, live bool) (value.Value, error) {
	switch t := n.(type) {
	case *LitNode:
		return litValue(t.Value), nil

	case *IdentNode:
		return it.evalIdent(t, live)

	case *GlobalNode:
		return it.evalGlobal(t, live)

	case *UnaryNode:
		return it.evalUnary(t, live)

	case *BinaryNode:
		return it.evalBinary(t, live)

	case *TernaryNode:
		cond, err := it.eval(t.Cond, live)
		if err != nil {
			return value.Nil, err
		}
		if cond.Truth() {
			then, err := it.eval(t.Then, live)
			if err != nil {
				return value.Nil, err
			}
			if live {
				if _, err := it.eval(t.Else, false); err != nil {
					return value.Nil, err
				}
			}
			return then, nil
		}
		els, err := it.eval(t.Else, live)
		if err != nil {
			return value.Nil, err
		}
		if live {
			if _, err := it.eval(t.Then, false); err != nil {
				return value.Nil, err
			}
		}
		return els, nil

	case *AssignNode:
		return it.evalAssign(t, live)

	case *ParallelAssignNode:
		return it.evalParallelAssign(t, live)

	case *IndexNode:
		return it.evalIndex(t, live)

	case *CallNode:
		return it.evalCall(t, nil, live)

	case *NumericPrefixNode:
		return it.evalNumericPrefix(t, live)

	case *CommaNode:
		var last value.Value
		for _, e := range t.Exprs {
			v, err := it.eval(e, live)
			if err != nil {
				return value.Nil, err
			}
			last = v
		}
		return last, nil
	}
	return value.Nil, errNotLvalue(n)
}

func litValue(v interface{}) value.Value {
	switch x := v.(type) {
	case nil:
		return value.Nil
	case bool:
		return value.Bool(x)
	case int64:
		return value.Int(x)
	case string:
		return value.String(x)
	}
	return value.Nil
}

func (it *Interp) evalIdent(t *IdentNode, live bool) (value.Value, error) {
	if !live {
		return value.Nil, nil
	}
	if v, ok := it.env.GetVar(t.Name); ok {
		return v, nil
	}
	callee, err := resolveCall(it.env, t.Name)
	if err != nil {
		return value.Nil, errUndefinedVar(t.Name)
	}
	return callee.Call(nil, nil)
}

func (it *Interp) evalGlobal(t *GlobalNode, live bool) (value.Value, error) {
	if !live {
		return value.Nil, nil
	}
	if v, ok := it.env.GetVar("$" + t.Name); ok {
		return v, nil
	}
	return value.Nil, errUndefinedVar("$" + t.Name)
}

func (it *Interp) evalUnary(t *UnaryNode, live bool) (value.Value, error) {
	if t.Op == "++" || t.Op == "--" {
		cur, err := it.eval(t.X, live)
		if err != nil {
			return value.Nil, err
		}
		if !live {
			return cur, nil
		}
		delta := int64(1)
		if t.Op == "--" {
			delta = -1
		}
		next := value.Int(cur.Int() + delta)
		if err := it.assign(t.X, next); err != nil {
			return value.Nil, err
		}
		if t.Post {
			return cur, nil
		}
		return next, nil
	}

	x, err := it.eval(t.X, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		return value.Nil, nil
	}
	switch t.Op {
	case "+":
		return value.Int(x.Int()), nil
	case "-":
		return value.Int(-x.Int()), nil
	case "!", "not":
		return value.Bool(!x.Truth()), nil
	case "~":
		return value.Int(^x.Int()), nil
	}
	return value.Nil, errNotLvalue(t)
}

func (it *Interp) evalBinary(t *BinaryNode, live bool) (value.Value, error) {
	switch t.Op {
	case "&&", "and":
		x, err := it.eval(t.X, live)
		if err != nil {
			return value.Nil, err
		}
		if live && !x.Truth() {
			_, err := it.eval(t.Y, false)
			return x, err
		}
		return it.eval(t.Y, live)

	case "||", "or":
		x, err := it.eval(t.X, live)
		if err != nil {
			return value.Nil, err
		}
		if live && x.Truth() {
			_, err := it.eval(t.Y, false)
			return x, err
		}
		return it.eval(t.Y, live)
	}

	x, err := it.eval(t.X, live)
	if err != nil {
		return value.Nil, err
	}
	y, err := it.eval(t.Y, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		return value.Nil, nil
	}
	return applyBinary(it.env, t.Op, x, y)
}

func applyBinary(env Env, op string, x, y value.Value) (value.Value, error) {
	switch op {
	case "+":
		return value.Int(x.Int() + y.Int()), nil
	case "-":
		return value.Int(x.Int() - y.Int()), nil
	case "*":
		return value.Int(x.Int() * y.Int()), nil
	case "/":
		d := y.Int()
		if d == 0 {
			return value.Nil, errDivByZero()
		}
		return value.Int(x.Int() / d), nil
	case "%":
		if x.Kind() == value.KindString {
			return value.String(sprintfValue(x.Text(), y)), nil
		}
		d := y.Int()
		if d == 0 {
			return value.Nil, errDivByZero()
		}
		return value.Int(x.Int() % d), nil
	case "fmt%":
		return value.String(sprintfValue(x.Text(), y)), nil
	case "<<":
		return value.Int(x.Int() << uint(y.Int())), nil
	case ">>":
		return value.Int(x.Int() >> uint(y.Int())), nil
	case "bit&":
		if x.Kind() == value.KindString || x.Kind() == value.KindArray {
			return concat(x, y), nil
		}
		return value.Int(x.Int() & y.Int()), nil
	case "|":
		return value.Int(x.Int() | y.Int()), nil
	case "^":
		return value.Int(x.Int() ^ y.Int()), nil
	case "&":
		return concat(x, y), nil
	case "<":
		return value.Bool(compare(x, y) < 0), nil
	case "<=":
		return value.Bool(compare(x, y) <= 0), nil
	case ">":
		return value.Bool(compare(x, y) > 0), nil
	case ">=":
		return value.Bool(compare(x, y) >= 0), nil
	case "==":
		return value.Bool(value.Equal(x, y)), nil
	case "!=":
		return value.Bool(!value.Equal(x, y)), nil
	case "=~", "!~":
		ok, err := env.RegexMatch(x.Text(), y.Text())
		if err != nil {
			return value.Nil, err
		}
		if op == "!~" {
			ok = !ok
		}
		return value.Bool(ok), nil
	}
	return value.Nil, errNotLvalue(nil)
}

// concat implements the '&' operator (§4.5 level 10): appends y onto x,
// promoting int/nil/bool to their textual form when x is a string, or
// appending y as a new element when x is an array.
func concat(x, y value.Value) value.Value {
	if x.Kind() == value.KindArray {
		a := x.ArrayVal()
		out := a.Clone()
		out.Append(y)
		return value.FromArray(out)
	}
	return value.String(x.Text() + y.Text())
}

// compare orders two Values for relational operators: numeric comparison
// when both coerce meaningfully to int (bool/int), lexical comparison of
// their textual form otherwise.
func compare(x, y value.Value) int {
	if x.Kind() == value.KindInt || x.Kind() == value.KindBool {
		if y.Kind() == value.KindInt || y.Kind() == value.KindBool {
			a, b := x.Int(), y.Int()
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(x.Text(), y.Text())
}

// sprintfValue implements the printf-like '%' string-format operator
// (§4.1 "put-formatted"): a single conversion against a single Value
// argument (the common case invoked via this binary operator; a call
// with multiple arguments goes through the string-builder's PutFormatted
// directly rather than this operator).
func sprintfValue(format string, arg value.Value) string {
	var sb strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i == len(format)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch format[i] {
		case 'd', 'u':
			sb.WriteString(value.Int(arg.Int()).Text())
		case 's':
			sb.WriteString(arg.Text())
		case 'c':
			sb.WriteByte(byte(arg.Int()))
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[i])
		}
	}
	return sb.String()
}
