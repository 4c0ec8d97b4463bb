package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)

	// Mutating the returned slice must not touch the catalog.
	all[0].Name = "changed"
	fresh := All()
	assert.Equal(t, "Artisan Croissant", fresh[0].Name)
}

func TestByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		p, ok := ByID(2)
		require.True(t, ok)
		assert.Equal(t, "Sourdough Loaf", p.Name)
		assert.Equal(t, "$8.00", p.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ok := ByID(99)
		assert.False(t, ok)
	})
}

func TestByCategory(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		assert.Len(t, ByCategory("All"), 8)
		assert.Len(t, ByCategory(""), 8)
	})

	t.Run("Filtered", func(t *testing.T) {
		pastries := ByCategory("Pastries")
		assert.Len(t, pastries, 3)
		for _, p := range pastries {
			assert.Equal(t, "Pastries", p.Category)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Empty(t, ByCategory("Sandwiches"))
	})
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []string{"All", "Pastries", "Breads", "Cakes", "Cookies"}, cats)
}
