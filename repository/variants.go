package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

type PostgresVariantRepository struct {
	db *database.DB
}

func NewPostgresVariantRepository(db *database.DB) *PostgresVariantRepository {
	return &PostgresVariantRepository{db: db}
}

func (r *PostgresVariantRepository) Get(id uuid.UUID) (*models.ProductVariant, error) {
	row := r.db.QueryRow(
		`SELECT v.id, v.product_id, v.name, v.price, v.in_stock,
		        p.id, p.slug, p.title, p.main_image, p.rating, p.description, p.manufacturer, p.category_id
		 FROM product_variants v
		 JOIN products p ON p.id = v.product_id
		 WHERE v.id = $1`, id)

	var v models.ProductVariant
	var p models.Product
	var categoryID uuid.NullUUID
	err := row.Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock,
		&p.ID, &p.Slug, &p.Title, &p.MainImage, &p.Rating, &p.Description, &p.Manufacturer, &categoryID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get variant")
	}
	p.CategoryID = categoryID.UUID
	v.Product = &p
	return &v, nil
}

func (r *PostgresVariantRepository) ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	rows, err := r.db.Query(
		`SELECT id, product_id, name, price, in_stock FROM product_variants WHERE product_id = $1`,
		productID)
	if err != nil {
		return nil, errors.Wrap(err, "query variants")
	}
	defer rows.Close()

	var variants []models.ProductVariant
	for rows.Next() {
		var v models.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock); err != nil {
			return nil, errors.Wrap(err, "scan variant")
		}
		variants = append(variants, v)
	}
	return variants, errors.Wrap(rows.Err(), "iterate variants")
}
