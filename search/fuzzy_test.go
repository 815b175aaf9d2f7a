package search

import (
	"testing"

	"github.com/go-memacs/core/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyMatchExactIsZeroCost(t *testing.T) {
	start, end, cost, ok := fuzzyMatch("brown", "the quick brown fox", 0, false)
	require.True(t, ok)
	assert.Equal(t, 0, cost)
	assert.Equal(t, "brown", "the quick brown fox"[start:end])
}

func TestFuzzyMatchToleratesOneSubstitution(t *testing.T) {
	_, _, cost, ok := fuzzyMatch("brown", "the quick brawn fox", 1, false)
	require.True(t, ok)
	assert.Equal(t, 1, cost)
}

func TestFuzzyMatchRejectsBeyondCostLimit(t *testing.T) {
	_, _, _, ok := fuzzyMatch("brown", "the quick zzzzz fox", 1, false)
	assert.False(t, ok)
}

func TestFuzzyMatchIgnoreCase(t *testing.T) {
	_, _, cost, ok := fuzzyMatch("BROWN", "the quick brown fox", 0, true)
	require.True(t, ok)
	assert.Equal(t, 0, cost)
}

func TestHuntForwardFuzzy(t *testing.T) {
	b := seedBuf(t, "the quick brawn fox")
	m, err := Compile("brown", Fuzzy, false)
	require.NoError(t, err)

	pt, found, err := HuntForward(m, b, buffer.Point{Line: b.Lines.First(), Offset: 0}, 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 10, pt.Offset)
	assert.Equal(t, "brawn", m.Groups[0].Text())
}

func TestHuntBackwardFuzzyUnsupported(t *testing.T) {
	b := seedBuf(t, "the quick braun fox")
	m, err := Compile("brown", Fuzzy, false)
	require.NoError(t, err)

	_, _, err = HuntBackward(m, b, buffer.Point{Line: b.Lines.First(), Offset: 19}, 0)
	assert.Error(t, err)
}
