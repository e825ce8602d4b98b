package models

import (
	"github.com/google/uuid"
)

// OrderLine links a customer order to a product variant with a quantity.
type OrderLine struct {
	ID               uuid.UUID `json:"id" db:"id"`
	CustomerOrderID  uuid.UUID `json:"customerOrderId" db:"customer_order_id"`
	ProductVariantID uuid.UUID `json:"productVariantId" db:"product_variant_id"`
	Quantity         int       `json:"quantity" db:"quantity"`

	// Populated when the query includes related records
	CustomerOrder  *CustomerOrder  `json:"customerOrder,omitempty"`
	ProductVariant *ProductVariant `json:"productVariant,omitempty"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}

func (OrderLine) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS order_lines (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_order_id UUID NOT NULL REFERENCES customer_orders(id),
		product_variant_id UUID NOT NULL REFERENCES product_variants(id),
		quantity INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(customer_order_id);
	CREATE INDEX IF NOT EXISTS idx_order_lines_variant ON order_lines(product_variant_id);`
}
