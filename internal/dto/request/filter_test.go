package request

import (
	"math"
	"net/url"
	"testing"

	"ecommerce-store/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterQueryDefaults(t *testing.T) {
	spec, page := ParseFilterQuery(url.Values{})

	assert.Empty(t, spec.Statuses)
	assert.Empty(t, spec.Brands)
	assert.Empty(t, spec.Categories)
	assert.Empty(t, spec.Colors)
	assert.Empty(t, spec.RatingBuckets)
	assert.Zero(t, spec.PriceMin)
	assert.Equal(t, math.MaxFloat64, spec.PriceMax)
	assert.Equal(t, catalog.SortDefault, spec.Sort)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPerPage, page.PerPage)
}

func TestParseFilterQueryFull(t *testing.T) {
	q, err := url.ParseQuery("min_price=40&max_price=1500&tags=Featured,On+Sale&brands=Nike,Adidas&categories=Shoes&ratings=4-5,3-4&colors=Red,Blue&sort=price_desc&page=3&per_page=12")
	require.NoError(t, err)

	spec, page := ParseFilterQuery(q)

	assert.Equal(t, 40.0, spec.PriceMin)
	assert.Equal(t, 1500.0, spec.PriceMax)
	assert.Equal(t, []string{"Featured", "On Sale"}, spec.Statuses)
	assert.Equal(t, []string{"Nike", "Adidas"}, spec.Brands)
	assert.Equal(t, []string{"Shoes"}, spec.Categories)
	assert.Equal(t, []string{"Red", "Blue"}, spec.Colors)
	assert.Equal(t, []catalog.RatingBucket{{Min: 4, Max: 5}, {Min: 3, Max: 4}}, spec.RatingBuckets)
	assert.Equal(t, catalog.SortPriceDesc, spec.Sort)

	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 12, page.PerPage)
}

func TestParseFilterQueryIgnoresGarbage(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "cheap")
	q.Set("ratings", "4,high-low,-")
	q.Set("sort", "alphabetical")
	q.Set("page", "first")

	spec, page := ParseFilterQuery(q)

	assert.Zero(t, spec.PriceMin)
	assert.Empty(t, spec.RatingBuckets)
	assert.Equal(t, catalog.SortDefault, spec.Sort)
	assert.Equal(t, 1, page.Page)
}

func TestParseFilterQueryCapsPerPage(t *testing.T) {
	q := url.Values{}
	q.Set("per_page", "5000")

	_, page := ParseFilterQuery(q)
	assert.Equal(t, 100, page.PerPage)
}
