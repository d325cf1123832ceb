package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewTokenStore(path)
	assert.Equal(t, path, store.Path())

	require.NoError(t, store.Save("abc.def.ghi"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, tokenFileMode, info.Mode().Perm())
}

func TestTokenStore_NarrowsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	store := NewTokenStore(path)
	require.NoError(t, store.Save("new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, tokenFileMode, info.Mode().Perm())
}

func TestTokenStore_Load(t *testing.T) {
	dir := t.TempDir()

	_, err := NewTokenStore(filepath.Join(dir, "missing")).Load()
	assert.ErrorIs(t, err, ErrNoSavedToken)

	blank := filepath.Join(dir, "blank")
	require.NoError(t, os.WriteFile(blank, []byte("  \n"), 0o600))
	_, err = NewTokenStore(blank).Load()
	assert.ErrorIs(t, err, ErrNoSavedToken)
}

func TestTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewTokenStore(path)

	require.NoError(t, store.Clear())

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
