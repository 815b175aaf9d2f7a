package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTextPlainIsLiteral(t *testing.T) {
	ok, err := MatchText("a.b.c", "a.b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchText("axbyc", "a.b")
	require.NoError(t, err)
	assert.False(t, ok, "plain (non-regexp) pattern's '.' is literal")
}

func TestMatchTextRegexSuffix(t *testing.T) {
	ok, err := MatchText("axbyc", "a.b:r")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchTextIgnoreCase(t *testing.T) {
	ok, err := MatchText("HELLO", "hello:i")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchText("HELLO", "hello")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchTextNoMatch(t *testing.T) {
	ok, err := MatchText("hello", "xyz")
	require.NoError(t, err)
	assert.False(t, ok)
}
