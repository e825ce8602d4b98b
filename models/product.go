package models

import (
	"github.com/google/uuid"
)

type Product struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Slug         string    `json:"slug" db:"slug"`
	Title        string    `json:"title" db:"title"`
	MainImage    string    `json:"mainImage" db:"main_image"`
	Rating       int       `json:"rating" db:"rating"`
	Description  string    `json:"description" db:"description"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer"`
	CategoryID   uuid.UUID `json:"categoryId" db:"category_id"`

	// Populated when the query includes related records
	Category *Category        `json:"category,omitempty"`
	Variants []ProductVariant `json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		main_image TEXT NOT NULL DEFAULT '',
		rating INTEGER NOT NULL DEFAULT 5,
		description TEXT NOT NULL DEFAULT '',
		manufacturer TEXT NOT NULL DEFAULT '',
		category_id UUID REFERENCES categories(id)
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
	CREATE INDEX IF NOT EXISTS idx_products_title ON products(title);`
}
