package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/wildmatch/classify"
)

func openTestStore(t *testing.T, revision string) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"), revision)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t, "")

	want := classify.Result{
		Category: classify.CategoryMarketing,
		Score:    0.75,
		Scores:   map[string]float64{classify.CategoryMarketing: 0.75},
		Signals:  []string{"marketing/promotional-language"},
	}
	require.NoError(t, s.Put("msg-1", want))

	got, ok, err := s.Get("msg-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t, "")

	_, ok, err := s.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t, "")

	require.NoError(t, s.Put("msg-1", classify.Result{Category: "spam", Score: 0.9}))
	require.NoError(t, s.Put("msg-1", classify.Result{Category: "work", Score: 0.4}))

	got, ok, err := s.Get("msg-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "work", got.Category)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPutEmptyID(t *testing.T) {
	s := openTestStore(t, "")
	assert.Error(t, s.Put("", classify.Result{}))
}

// Different revisions must not see each other's entries.
func TestRevisionIsolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	s1, err := Open(path, "rules-a")
	require.NoError(t, err)
	require.NoError(t, s1.Put("msg-1", classify.Result{Category: "spam"}))
	require.NoError(t, s1.Close())

	s2, err := Open(path, "rules-b")
	require.NoError(t, err)
	defer s2.Close()

	_, ok, err := s2.Get("msg-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

// Entries survive reopening the database.
func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	s1, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, s1.Put("msg-1", classify.Result{Category: "social", Score: 1}))
	require.NoError(t, s1.Close())

	s2, err := Open(path, "")
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Get("msg-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "social", got.Category)
}
