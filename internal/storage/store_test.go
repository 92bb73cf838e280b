package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	_, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyTheme, "dark"))
	require.NoError(t, s.Set(KeyTheme, "light"))
	v, ok, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, s.Remove(KeyTheme))
	_, ok, err = s.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, SetJSON(s, KeyUserData, user{ID: 3, Name: "Sari"}))
	var u user
	ok, err = GetJSON(s, KeyUserData, &u)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, user{ID: 3, Name: "Sari"}, u)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()
	testStore(t, s)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "riwayat_12", HistoryKeyFor(12))
	assert.Equal(t, "temp-rating-5", RatingDraftKey(5))
}
