package admin

import (
	"testing"

	"suseli-shop/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("Wrong PIN leaves flag unset", func(t *testing.T) {
		store := localstore.NewMemory()
		g, err := NewGate("3690", store)
		require.NoError(t, err)

		assert.False(t, g.Login("0000"))
		assert.False(t, g.IsAdmin())
		_, ok, err := store.Get(localstore.KeyIsAdmin)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Correct PIN sets and persists", func(t *testing.T) {
		store := localstore.NewMemory()
		g, err := NewGate("3690", store)
		require.NoError(t, err)

		assert.True(t, g.Login("3690"))
		assert.True(t, g.IsAdmin())

		v, ok, err := store.Get(localstore.KeyIsAdmin)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "true", v)
	})

	t.Run("Throttled after burst", func(t *testing.T) {
		store := localstore.NewMemory()
		g, err := NewGate("3690", store)
		require.NoError(t, err)

		for i := 0; i < attemptBurst; i++ {
			assert.False(t, g.Login("9999"))
		}
		// Budget exhausted: even the right PIN is refused now.
		assert.False(t, g.Login("3690"))
		assert.False(t, g.IsAdmin())
	})
}

func TestLogout(t *testing.T) {
	store := localstore.NewMemory()
	g, err := NewGate("3690", store)
	require.NoError(t, err)

	require.True(t, g.Login("3690"))
	g.Logout()

	assert.False(t, g.IsAdmin())
	_, ok, err := store.Get(localstore.KeyIsAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersistedFlagRestored(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.Set(localstore.KeyIsAdmin, "true"))

	g, err := NewGate("3690", store)
	require.NoError(t, err)
	assert.True(t, g.IsAdmin())

	t.Run("Non-true value ignored", func(t *testing.T) {
		store := localstore.NewMemory()
		require.NoError(t, store.Set(localstore.KeyIsAdmin, "yes"))

		g, err := NewGate("3690", store)
		require.NoError(t, err)
		assert.False(t, g.IsAdmin())
	})
}
