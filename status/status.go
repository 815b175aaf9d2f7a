// Package status defines the editor's return-code model: every fallible
// core operation returns a *status.Error (or nil) rather than panicking.
package status

import "fmt"

// Code classifies the severity and propagation of a result, per the
// editor's return-code table.
type Code int

const (
	// Success indicates normal completion; operations return nil, not
	// a Success-coded error, but the constant exists for record-keeping.
	Success Code = iota

	// NotFound means a search or lookup failed; not an error, callers
	// check for it explicitly rather than treating it as Failure.
	NotFound

	// Cancelled means the user declined a prompt.
	Cancelled

	// UserAbort means the user pressed the abort key.
	UserAbort

	// Failure is a recoverable command failure (bad argument, required
	// lookup came back empty, etc). The message is shown; the loop
	// continues.
	Failure

	// ScriptError is an error raised while a macro is executing; it
	// unwinds the macro call stack.
	ScriptError

	// FatalError is a library or invariant violation; the terminal is
	// restored and the process exits.
	FatalError

	// OSError wraps an errno-bearing OS failure.
	OSError

	// Panic is an allocation failure or an impossible condition.
	Panic
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case NotFound:
		return "not found"
	case Cancelled:
		return "cancelled"
	case UserAbort:
		return "user abort"
	case Failure:
		return "failure"
	case ScriptError:
		return "script error"
	case FatalError:
		return "fatal error"
	case OSError:
		return "os error"
	case Panic:
		return "panic"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error is the concrete error type carried through the editor. It pairs a
// Code with a human-readable message, and optionally wraps a lower-level
// cause (e.g. an OSError wrapping a syscall error).
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a status error with the given code and formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a status error that carries an underlying cause.
func Wrap(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a *Error with the given code. NotFound results
// are frequently checked this way instead of via a boolean return, mirroring
// the editor's "quiet result" treatment of search misses.
func Is(err error, code Code) bool {
	se, ok := err.(*Error)
	return ok && se.Code == code
}

// IsNotFound is shorthand for Is(err, NotFound).
func IsNotFound(err error) bool { return Is(err, NotFound) }
