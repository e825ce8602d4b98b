// Package repository provides data access for the storefront entities.
// Each entity gets a small interface so services can be exercised against
// in-memory fakes; the Postgres implementations live alongside them.
package repository

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ListOptions carries the compiled predicate plus sorting and pagination
// for a product listing.
type ListOptions struct {
	Predicate catalog.Predicate
	Sort      catalog.SortOrder
	Offset    int
	Limit     int
}

type ProductRepository interface {
	// List returns a page of products with category name and variants attached.
	List(opts ListOptions) ([]models.Product, error)
	// ListAll returns every product without filtering or pagination.
	// Variants are attached when withVariants is set.
	ListAll(withVariants bool) ([]models.Product, error)
	// Get returns a product with its category and variants, or ErrNotFound.
	Get(id uuid.UUID) (*models.Product, error)
	// Search matches the query against title and description.
	Search(query string) ([]models.Product, error)
	Delete(id uuid.UUID) error
	// InTx runs fn against a transaction-scoped view of the repository,
	// committing on nil and rolling back on error or panic.
	InTx(fn func(tx ProductTx) error) error
}

// ProductTx is the transaction-scoped slice of product persistence used
// by create and by the update-with-variant-reconciliation flow.
type ProductTx interface {
	Create(p *models.Product) error
	Update(p *models.Product) error
	Variants(productID uuid.UUID) ([]models.ProductVariant, error)
	CreateVariant(v *models.ProductVariant) error
	UpdateVariant(v *models.ProductVariant) error
	DeleteVariant(id uuid.UUID) error
}

type VariantRepository interface {
	// Get returns a variant with its parent product attached, or ErrNotFound.
	Get(id uuid.UUID) (*models.ProductVariant, error)
	ListByProduct(productID uuid.UUID) ([]models.ProductVariant, error)
}

type CustomerOrderRepository interface {
	Create(o *models.CustomerOrder) error
	Get(id uuid.UUID) (*models.CustomerOrder, error)
	List() ([]models.CustomerOrder, error)
	Update(o *models.CustomerOrder) error
	Delete(id uuid.UUID) error
}

type OrderLineRepository interface {
	Create(l *models.OrderLine) error
	Get(id uuid.UUID) (*models.OrderLine, error)
	Update(l *models.OrderLine) error
	// ListByOrder returns the lines of one order with variant and product attached.
	ListByOrder(orderID uuid.UUID) ([]models.OrderLine, error)
	// ListWithOrders returns every line with its parent order attached.
	ListWithOrders() ([]models.OrderLine, error)
	DeleteByOrder(orderID uuid.UUID) error
	CountByVariant(variantID uuid.UUID) (int, error)
}

type WishlistRepository interface {
	Create(item *models.WishlistItem) error
	// ListAll returns every wishlist item with variant and product attached.
	ListAll() ([]models.WishlistItem, error)
	ListByUser(userID uuid.UUID) ([]models.WishlistItem, error)
	GetByUserAndVariant(userID, variantID uuid.UUID) ([]models.WishlistItem, error)
	Delete(userID, variantID uuid.UUID) error
	DeleteByUser(userID uuid.UUID) error
	CountByVariant(variantID uuid.UUID) (int, error)
}

type CategoryRepository interface {
	Create(c *models.Category) error
	Get(id uuid.UUID) (*models.Category, error)
	List() ([]models.Category, error)
	Update(c *models.Category) error
	Delete(id uuid.UUID) error
}
