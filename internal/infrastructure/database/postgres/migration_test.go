package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-cart/internal/domain/cart"
	"github.com/your-org/storefront-cart/internal/domain/catalog"
)

func TestSeedProducts_AreCartReady(t *testing.T) {
	seen := map[string]bool{}
	perCategory := map[catalog.Category]int{}

	for _, p := range SeedProducts() {
		assert.False(t, seen[p.Name], "duplicate product %q", p.Name)
		seen[p.Name] = true

		_, err := cart.ParsePrice(p.Price)
		assert.NoError(t, err, "price of %q", p.Name)

		_, ok := catalog.ParseCategory(string(p.Category))
		assert.True(t, ok, "category of %q", p.Name)
		perCategory[p.Category]++
	}

	for _, c := range catalog.Categories {
		assert.Positive(t, perCategory[c], "category %s has products", c)
	}
}
