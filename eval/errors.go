package eval

import "fmt"

func errCircularAlias(name string) error {
	return fmt.Errorf("eval: alias %q resolves in a cycle", name)
}

func errUndefinedCall(name string) error {
	return fmt.Errorf("eval: %q is not a command, alias, or macro", name)
}

func errNotLvalue(n Node) error {
	return fmt.Errorf("eval: %T is not assignable", n)
}

func errUndefinedVar(name string) error {
	return fmt.Errorf("eval: undefined variable %q", name)
}

func errIndexRange(i int) error {
	return fmt.Errorf("eval: array index %d out of range", i)
}

func errDivByZero() error {
	return fmt.Errorf("eval: division by zero")
}
