package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lumera.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var sync string
	require.NoError(t, s.db.QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, "1", sync) // NORMAL = 1
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	v, ok, err := s.GetItem("auth_token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSetGetOverwrite(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetItems(map[string]string{"auth_token": "first"}))
	require.NoError(t, s.SetItems(map[string]string{"auth_token": "second"}))

	v, ok, err := s.GetItem("auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetItems(map[string]string{"auth_user": `{"id":1}`}))
	require.NoError(t, s.RemoveItems("auth_user"))
	require.NoError(t, s.RemoveItems("auth_user"))

	_, ok, err := s.GetItem("auth_user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetItemsAndRemoveItems(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetItems(map[string]string{
		"auth_token": "tok",
		"auth_user":  `{"id":7}`,
	}))

	for _, k := range []string{"auth_token", "auth_user"} {
		_, ok, err := s.GetItem(k)
		require.NoError(t, err)
		assert.True(t, ok, k)
	}

	require.NoError(t, s.RemoveItems("auth_token", "auth_user"))
	for _, k := range []string{"auth_token", "auth_user"} {
		_, ok, err := s.GetItem(k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumera.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItems(map[string]string{"auth_token": "persisted"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.GetItem("auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "x.db")
	t.Setenv("LUMERA_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUMERA_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lumera", "lumera.db"), got)
}
