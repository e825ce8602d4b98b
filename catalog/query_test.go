package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
)

func TestParseQueryFull(t *testing.T) {
	d := catalog.ParseQuery("filters.price$lte=3000&filters.category$equals=Shoes&sort=lowPrice&page=2")

	require.Len(t, d.Filters, 2)
	assert.Equal(t, catalog.Filter{Field: "price", Operator: "lte", Value: 3000}, d.Filters[0])
	assert.Equal(t, catalog.Filter{Field: "category", Operator: "equals", Value: "Shoes"}, d.Filters[1])
	assert.Equal(t, catalog.SortLowPrice, d.Sort)
	assert.Equal(t, 2, d.Page)
}

func TestParseQueryDefaults(t *testing.T) {
	d := catalog.ParseQuery("")

	assert.Empty(t, d.Filters)
	assert.Equal(t, catalog.SortDefault, d.Sort)
	assert.Equal(t, 1, d.Page)
}

func TestParseQueryPageFallsBackToOne(t *testing.T) {
	for _, raw := range []string{"page=abc", "page=0", "page=-3", "page="} {
		d := catalog.ParseQuery(raw)
		assert.Equal(t, 1, d.Page, "query %q", raw)
	}
}

func TestParseQueryUnrecognizedSortFallsBack(t *testing.T) {
	d := catalog.ParseQuery("sort=cheapestFirst")
	assert.Equal(t, catalog.SortDefault, d.Sort)

	d = catalog.ParseQuery("sort=titleDesc")
	assert.Equal(t, catalog.SortTitleDesc, d.Sort)
}

func TestParseQueryIgnoresUnknownKeys(t *testing.T) {
	d := catalog.ParseQuery("mode=storefront&foo=bar&filters.rating$gte=3")

	require.Len(t, d.Filters, 1)
	assert.Equal(t, "rating", d.Filters[0].Field)
}

func TestParseQueryUnknownOperatorPassesThrough(t *testing.T) {
	d := catalog.ParseQuery("filters.price$around=100")

	require.Len(t, d.Filters, 1)
	assert.Equal(t, catalog.Filter{Field: "price", Operator: "around", Value: 100}, d.Filters[0])
}

func TestParseQueryDropsNonNumericValues(t *testing.T) {
	// every field except category coerces to int
	d := catalog.ParseQuery("filters.price$lte=cheap")
	assert.Empty(t, d.Filters)
}

func TestParseQueryCategoryStaysString(t *testing.T) {
	d := catalog.ParseQuery("filters.category$equals=Running%20Shoes")

	require.Len(t, d.Filters, 1)
	assert.Equal(t, "Running Shoes", d.Filters[0].Value)
}

func TestParseQueryPreservesFilterOrder(t *testing.T) {
	d := catalog.ParseQuery("filters.rating$gte=2&filters.price$lt=500&filters.inStock$equals=1")

	require.Len(t, d.Filters, 3)
	assert.Equal(t, "rating", d.Filters[0].Field)
	assert.Equal(t, "price", d.Filters[1].Field)
	assert.Equal(t, "inStock", d.Filters[2].Field)
}

func TestParseQueryMalformedFilterKeys(t *testing.T) {
	// no operator, empty field, empty operator
	for _, raw := range []string{"filters.price=3", "filters.$lte=3", "filters.price$=3"} {
		d := catalog.ParseQuery(raw)
		assert.Empty(t, d.Filters, "query %q", raw)
	}
}
