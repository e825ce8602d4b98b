package models

import (
	"github.com/google/uuid"
)

// ProductVariant is one purchasable configuration of a product. Price is
// stored in whole currency units; in_stock is the 0/1 flag the storefront
// filters on.
type ProductVariant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Price     int       `json:"price" db:"price"`
	InStock   int       `json:"inStock" db:"in_stock"`

	// Populated when the query includes the parent product
	Product *Product `json:"product,omitempty"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func (ProductVariant) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS product_variants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		in_stock INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_product_variants_product ON product_variants(product_id);
	CREATE INDEX IF NOT EXISTS idx_product_variants_price ON product_variants(price);`
}
