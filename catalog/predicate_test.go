package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
)

func TestCompileCategoryOnly(t *testing.T) {
	p := catalog.Compile([]catalog.Filter{
		{Field: "category", Operator: "equals", Value: "Shoes"},
	})

	assert.Equal(t, "Shoes", p.CategoryName)
	assert.Empty(t, p.Product)
	assert.Empty(t, p.Variant)
	assert.False(t, p.Empty())
}

func TestCompilePriceAndStockShareOneVariant(t *testing.T) {
	// both conditions land in the variant conjunction: a single variant
	// has to satisfy them simultaneously
	p := catalog.Compile([]catalog.Filter{
		{Field: "price", Operator: "lte", Value: 3000},
		{Field: "inStock", Operator: "equals", Value: 1},
	})

	assert.Empty(t, p.Product)
	require.Len(t, p.Variant, 2)
	assert.Equal(t, catalog.Condition{Field: "price", Operator: "lte", Value: 3000}, p.Variant[0])
	assert.Equal(t, catalog.Condition{Field: "inStock", Operator: "equals", Value: 1}, p.Variant[1])
}

func TestCompilePartitionsByEntity(t *testing.T) {
	p := catalog.Compile([]catalog.Filter{
		{Field: "rating", Operator: "gte", Value: 3},
		{Field: "price", Operator: "lt", Value: 500},
		{Field: "manufacturer", Operator: "equals", Value: 7},
		{Field: "category", Operator: "equals", Value: "Laptops"},
	})

	require.Len(t, p.Product, 2)
	assert.Equal(t, "rating", p.Product[0].Field)
	assert.Equal(t, "manufacturer", p.Product[1].Field)
	require.Len(t, p.Variant, 1)
	assert.Equal(t, "price", p.Variant[0].Field)
	assert.Equal(t, "Laptops", p.CategoryName)
}

func TestCompileDropsUnknownFields(t *testing.T) {
	p := catalog.Compile([]catalog.Filter{
		{Field: "outOfStock", Operator: "equals", Value: 1},
		{Field: "color", Operator: "equals", Value: 3},
	})

	assert.True(t, p.Empty())
}

func TestCompileDropsUnknownOperators(t *testing.T) {
	p := catalog.Compile([]catalog.Filter{
		{Field: "price", Operator: "around", Value: 100},
	})

	assert.True(t, p.Empty())
}

func TestCompileCategoryRequiresEquals(t *testing.T) {
	p := catalog.Compile([]catalog.Filter{
		{Field: "category", Operator: "lte", Value: "Shoes"},
	})

	assert.Empty(t, p.CategoryName)
	assert.True(t, p.Empty())
}

func TestCompileEmptyInput(t *testing.T) {
	assert.True(t, catalog.Compile(nil).Empty())
}
