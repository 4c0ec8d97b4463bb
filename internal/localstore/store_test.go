package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("Get missing key", func(t *testing.T) {
		f, err := OpenFile(t.TempDir())
		require.NoError(t, err)

		_, ok, err := f.Get("cart")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Set then Get", func(t *testing.T) {
		f, err := OpenFile(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, f.Set(KeyIsAdmin, "true"))
		v, ok, err := f.Get(KeyIsAdmin)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "true", v)
	})

	t.Run("Survives reopen", func(t *testing.T) {
		dir := t.TempDir()

		f, err := OpenFile(dir)
		require.NoError(t, err)
		require.NoError(t, f.Set(KeyCart, `[{"id":1,"quantity":2}]`))
		require.NoError(t, f.Set(KeyMyOrderIDs, `["a","b"]`))

		reopened, err := OpenFile(dir)
		require.NoError(t, err)

		v, ok, err := reopened.Get(KeyCart)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1,"quantity":2}]`, v)

		v, ok, err = reopened.Get(KeyMyOrderIDs)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `["a","b"]`, v)
	})

	t.Run("Delete", func(t *testing.T) {
		dir := t.TempDir()
		f, err := OpenFile(dir)
		require.NoError(t, err)

		require.NoError(t, f.Set(KeyIsAdmin, "true"))
		require.NoError(t, f.Delete(KeyIsAdmin))
		_, ok, err := f.Get(KeyIsAdmin)
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting an absent key is fine.
		require.NoError(t, f.Delete("nope"))
	})

	t.Run("Corrupt state file treated as empty", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte("{corrupt"), 0o644))

		f, err := OpenFile(dir)
		require.NoError(t, err)
		_, ok, err := f.Get(KeyCart)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", "v"))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Delete("k"))
	_, ok, err = m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
