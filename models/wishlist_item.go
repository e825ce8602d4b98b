package models

import (
	"github.com/google/uuid"
)

// WishlistItem is one product variant saved by a user. A user can save a
// given variant only once.
type WishlistItem struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"userId" db:"user_id"`
	ProductVariantID uuid.UUID `json:"productVariantId" db:"product_variant_id"`

	// Populated when the query includes the variant and its product
	ProductVariant *ProductVariant `json:"productVariant,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

func (WishlistItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS wishlist_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		product_variant_id UUID NOT NULL REFERENCES product_variants(id)
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_user_variant ON wishlist_items(user_id, product_variant_id);
	CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist_items(user_id);`
}
