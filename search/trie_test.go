package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/core"
)

func buildIndex() *PrefixIndex {
	idx := NewPrefixIndex()
	idx.Insert(0, "Alice")
	idx.Insert(1, "Alicia")
	idx.Insert(2, "Albert")
	idx.Insert(3, "Bob")
	return idx
}

func TestPrefixIndexLookup(t *testing.T) {
	idx := buildIndex()

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []core.LocalID{0, 1, 2}, idx.Lookup("al"))
	assert.Equal(t, []core.LocalID{0, 1}, idx.Lookup("ali"))
	assert.Equal(t, []core.LocalID{0}, idx.Lookup("alice"))
	assert.Equal(t, []core.LocalID{3}, idx.Lookup("b"))
	assert.Empty(t, idx.Lookup("z"))
}

func TestPrefixIndexCaseFolding(t *testing.T) {
	idx := buildIndex()
	assert.Equal(t, idx.Lookup("AL"), idx.Lookup("al"))
}

func TestPrefixIndexEmptyPrefixReturnsAll(t *testing.T) {
	idx := buildIndex()
	assert.Equal(t, []core.LocalID{0, 1, 2, 3}, idx.Lookup(""))
}

func TestPrefixIndexSnapshotRoundTrip(t *testing.T) {
	idx := buildIndex()

	var buf bytes.Buffer
	n, err := idx.WriteTo(&buf)
	require.NoError(t, err)
	require.Positive(t, n)

	restored := NewPrefixIndex()
	_, err = restored.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, idx.Len(), restored.Len())
	for _, prefix := range []string{"", "a", "al", "ali", "alice", "b", "z"} {
		assert.Equal(t, idx.Lookup(prefix), restored.Lookup(prefix), "prefix %q", prefix)
	}
}

func TestPrefixIndexEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewPrefixIndex().WriteTo(&buf)
	require.NoError(t, err)

	restored := NewPrefixIndex()
	_, err = restored.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Zero(t, restored.Len())
	assert.Empty(t, restored.Lookup("a"))
}
