package repository

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolation = "23505"

type PostgresWishlistRepository struct {
	db *database.DB
}

func NewPostgresWishlistRepository(db *database.DB) *PostgresWishlistRepository {
	return &PostgresWishlistRepository{db: db}
}

func (r *PostgresWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	_, err := r.db.Exec(
		`INSERT INTO wishlist_items (id, user_id, product_variant_id) VALUES ($1, $2, $3)`,
		item.ID, item.UserID, item.ProductVariantID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return errors.Wrap(err, "insert wishlist item")
}

const wishlistSelect = `SELECT w.id, w.user_id, w.product_variant_id,
	       v.id, v.product_id, v.name, v.price, v.in_stock,
	       p.id, p.slug, p.title, p.main_image, p.rating, p.description, p.manufacturer, p.category_id
	FROM wishlist_items w
	JOIN product_variants v ON v.id = w.product_variant_id
	JOIN products p ON p.id = v.product_id`

func (r *PostgresWishlistRepository) queryItems(query string, args ...interface{}) ([]models.WishlistItem, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query wishlist")
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var w models.WishlistItem
		var v models.ProductVariant
		var p models.Product
		var categoryID uuid.NullUUID
		err := rows.Scan(
			&w.ID, &w.UserID, &w.ProductVariantID,
			&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock,
			&p.ID, &p.Slug, &p.Title, &p.MainImage, &p.Rating, &p.Description, &p.Manufacturer, &categoryID,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan wishlist item")
		}
		p.CategoryID = categoryID.UUID
		v.Product = &p
		w.ProductVariant = &v
		items = append(items, w)
	}
	return items, errors.Wrap(rows.Err(), "iterate wishlist")
}

func (r *PostgresWishlistRepository) ListAll() ([]models.WishlistItem, error) {
	return r.queryItems(wishlistSelect)
}

func (r *PostgresWishlistRepository) ListByUser(userID uuid.UUID) ([]models.WishlistItem, error) {
	return r.queryItems(wishlistSelect+` WHERE w.user_id = $1`, userID)
}

func (r *PostgresWishlistRepository) GetByUserAndVariant(userID, variantID uuid.UUID) ([]models.WishlistItem, error) {
	return r.queryItems(wishlistSelect+` WHERE w.user_id = $1 AND w.product_variant_id = $2`, userID, variantID)
}

func (r *PostgresWishlistRepository) Delete(userID, variantID uuid.UUID) error {
	_, err := r.db.Exec(
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_variant_id = $2`, userID, variantID)
	return errors.Wrap(err, "delete wishlist item")
}

func (r *PostgresWishlistRepository) DeleteByUser(userID uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM wishlist_items WHERE user_id = $1`, userID)
	return errors.Wrap(err, "delete wishlist items")
}

func (r *PostgresWishlistRepository) CountByVariant(variantID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM wishlist_items WHERE product_variant_id = $1`, variantID).Scan(&count)
	return count, errors.Wrap(err, "count wishlist items")
}
