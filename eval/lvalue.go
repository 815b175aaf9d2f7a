package eval

import "github.com/go-memacs/core/value"

// assign commits v to the lvalue denoted by n. §4.5: an assignment
// operator re-examines its LHS after the subtree is built; a LHS that
// isn't an identifier, global, or index expression is a syntax error,
// and an undefined bare/global identifier is created on first plain
// assignment (handled by the caller, evalAssign, which knows whether the
// operator was plain '=').
func (it *Interp) assign(n Node, v value.Value) error {
	switch t := n.(type) {
	case *IdentNode:
		return it.env.SetVar(t.Name, v)
	case *GlobalNode:
		return it.env.SetVar("$"+t.Name, v)
	case *IndexNode:
		return it.assignIndex(t, v)
	}
	return errNotLvalue(n)
}

func (it *Interp) assignIndex(t *IndexNode, v value.Value) error {
	xv, err := it.eval(t.X, true)
	if err != nil {
		return err
	}
	if xv.Kind() != value.KindArray {
		return errNotLvalue(t)
	}
	idx, err := it.eval(t.Lo, true)
	if err != nil {
		return err
	}
	if !xv.ArrayVal().Set(int(idx.Int()), v) {
		return errIndexRange(int(idx.Int()))
	}
	return nil
}

func (it *Interp) evalAssign(t *AssignNode, live bool) (value.Value, error) {
	rhs, err := it.eval(t.RHS, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		return value.Nil, nil
	}
	if t.Op == "" {
		if err := it.defineOrAssign(t.LHS, rhs); err != nil {
			return value.Nil, err
		}
		return rhs, nil
	}
	cur, err := it.eval(t.LHS, true)
	if err != nil {
		return value.Nil, err
	}
	next, err := applyBinary(it.env, t.Op, cur, rhs)
	if err != nil {
		return value.Nil, err
	}
	if err := it.assign(t.LHS, next); err != nil {
		return value.Nil, err
	}
	return next, nil
}

// defineOrAssign implements plain '=' assignment's variable-creation
// rule: an undefined bare identifier becomes a new local variable, an
// undefined global ($name) becomes a new global, and any other lvalue is
// assigned through normally.
func (it *Interp) defineOrAssign(lhs Node, v value.Value) error {
	switch t := lhs.(type) {
	case *IdentNode:
		return it.env.SetVar(t.Name, v)
	case *GlobalNode:
		return it.env.SetVar("$"+t.Name, v)
	case *IndexNode:
		return it.assignIndex(t, v)
	}
	return errNotLvalue(lhs)
}

func (it *Interp) evalParallelAssign(t *ParallelAssignNode, live bool) (value.Value, error) {
	rhs, err := it.eval(t.RHS, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		return value.Nil, nil
	}
	var elems []value.Value
	if rhs.Kind() == value.KindArray {
		elems = rhs.ArrayVal().Elems()
	} else {
		elems = []value.Value{rhs}
	}
	for i, target := range t.Targets {
		var v value.Value
		if i < len(elems) {
			v = elems[i]
		}
		if err := it.defineOrAssign(target, v); err != nil {
			return value.Nil, err
		}
	}
	return rhs, nil
}

func (it *Interp) evalIndex(t *IndexNode, live bool) (value.Value, error) {
	xv, err := it.eval(t.X, live)
	if err != nil {
		return value.Nil, err
	}
	lo, err := it.eval(t.Lo, live)
	if err != nil {
		return value.Nil, err
	}
	if !live {
		return value.Nil, nil
	}
	if xv.Kind() != value.KindArray {
		return value.Nil, errNotLvalue(t)
	}
	if t.Hi != nil {
		hi, err := it.eval(t.Hi, live)
		if err != nil {
			return value.Nil, err
		}
		return value.FromArray(xv.ArrayVal().Slice(int(lo.Int()), int(hi.Int()))), nil
	}
	return xv.ArrayVal().Get(int(lo.Int())), nil
}
