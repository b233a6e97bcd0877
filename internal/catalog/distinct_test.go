package catalog

import (
	"testing"

	"ecommerce-store/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistinctFacets(t *testing.T) {
	products := []entity.Product{
		product("p1", "Nike", "Shoes", "", 10, 4.5, "Red"),
		product("p2", "Adidas", "Shoes", "", 10, 3.0, "Red", "Blue"),
		product("p3", "Nike", "Bags", "", 10, 4.5),
		product("p4", "", "", "", 10, 3.0),
	}

	// First-seen order, empties dropped
	assert.Equal(t, []string{"Nike", "Adidas"}, Brands(products))
	assert.Equal(t, []string{"Shoes", "Bags"}, Categories(products))
	assert.Equal(t, []string{"Red", "Blue"}, Colors(products))

	// Ratings are unique and sorted descending
	assert.Equal(t, []float64{4.5, 3.0}, Ratings(products))
}

func TestDistinctFacetsEmptyDataset(t *testing.T) {
	assert.Empty(t, Brands(nil))
	assert.Empty(t, Categories(nil))
	assert.Empty(t, Colors(nil))
	assert.Empty(t, Ratings(nil))
}
