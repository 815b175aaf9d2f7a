package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(Failure, "bad argument %q", "n")
	require.Error(t, err)
	assert.Equal(t, Failure, err.Code)
	assert.Contains(t, err.Error(), "bad argument")
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(OSError, cause, "writing buffer")
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsNotFound(t *testing.T) {
	err := New(NotFound, "pattern not found")
	assert.True(t, IsNotFound(err))
	assert.False(t, Is(err, Failure))

	assert.False(t, IsNotFound(errors.New("plain error")))
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		Success:    "success",
		NotFound:   "not found",
		Cancelled:  "cancelled",
		UserAbort:  "user abort",
		Failure:    "failure",
		ScriptError: "script error",
		FatalError: "fatal error",
		OSError:    "os error",
		Panic:      "panic",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.String())
	}
}
