package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

// defaultRating is assigned to every newly created product.
const defaultRating = 5

// VariantInput is one submitted variant. Price and InStock are pointers so
// a missing field can be told apart from a zero value.
type VariantInput struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name"`
	Price   *int       `json:"price"`
	InStock *int       `json:"inStock"`
}

// ProductInput is the create/update request body for a product and its
// full variant list.
type ProductInput struct {
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	MainImage    string         `json:"mainImage"`
	Rating       *int           `json:"rating"`
	Description  string         `json:"description"`
	Manufacturer string         `json:"manufacturer"`
	CategoryID   uuid.UUID      `json:"categoryId"`
	Variants     []VariantInput `json:"variants"`
}

type ProductService struct {
	products   repository.ProductRepository
	variants   repository.VariantRepository
	orderLines repository.OrderLineRepository
	wishlist   repository.WishlistRepository
	log        *logrus.Logger
}

func NewProductService(
	products repository.ProductRepository,
	variants repository.VariantRepository,
	orderLines repository.OrderLineRepository,
	wishlist repository.WishlistRepository,
	log *logrus.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		variants:   variants,
		orderLines: orderLines,
		wishlist:   wishlist,
		log:        log,
	}
}

func validateVariants(variants []VariantInput) error {
	if len(variants) == 0 {
		return &ValidationError{Message: "Product variants are required"}
	}
	for _, v := range variants {
		if v.Name == "" {
			return &ValidationError{Message: "Name field is required in variant"}
		}
		if v.Price == nil {
			return &ValidationError{Message: "Price field is required in variant"}
		}
		if v.InStock == nil {
			return &ValidationError{Message: "inStock field is required in variant"}
		}
	}
	return nil
}

// Create stores a new product together with its variants and returns the
// product re-read with variants attached. New products always start with
// the default rating.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	if err := validateVariants(in.Variants); err != nil {
		return nil, err
	}

	p := &models.Product{
		Slug:         in.Slug,
		Title:        in.Title,
		MainImage:    in.MainImage,
		Rating:       defaultRating,
		Description:  in.Description,
		Manufacturer: in.Manufacturer,
		CategoryID:   in.CategoryID,
	}

	err := s.products.InTx(func(tx repository.ProductTx) error {
		if err := tx.Create(p); err != nil {
			return err
		}
		for _, v := range in.Variants {
			variant := models.ProductVariant{
				ProductID: p.ID,
				Name:      v.Name,
				Price:     *v.Price,
				InStock:   *v.InStock,
			}
			if err := tx.CreateVariant(&variant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("failed to create product")
		return nil, &StoreError{Op: "creating product", Err: err}
	}

	created, err := s.products.Get(p.ID)
	if err != nil {
		s.log.WithError(err).Error("failed to re-read created product")
		return nil, &StoreError{Op: "creating product", Err: err}
	}
	return created, nil
}

// Get returns one product with its category and variants.
func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	p, err := s.products.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Product"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to get product")
		return nil, &StoreError{Op: "fetching product", Err: err}
	}
	return p, nil
}

// Search matches the query against product titles and descriptions.
func (s *ProductService) Search(query string) ([]models.Product, error) {
	if query == "" {
		return nil, &ValidationError{Message: "Query parameter is required"}
	}
	products, err := s.products.Search(query)
	if err != nil {
		s.log.WithError(err).Error("failed to search products")
		return nil, &StoreError{Op: "searching products", Err: err}
	}
	return products, nil
}

// Update rewrites the product's fields and reconciles the submitted
// variant list against the stored one: variants absent from the new list
// are deleted, variants with an id are updated, variants without an id are
// created. The whole sequence runs in one transaction.
func (s *ProductService) Update(id uuid.UUID, in ProductInput) (*models.Product, error) {
	if err := validateVariants(in.Variants); err != nil {
		return nil, err
	}

	existing, err := s.products.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Product"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to load product for update")
		return nil, &StoreError{Op: "updating product", Err: err}
	}

	rating := existing.Rating
	if in.Rating != nil {
		rating = *in.Rating
	}

	err = s.products.InTx(func(tx repository.ProductTx) error {
		p := &models.Product{
			ID:           id,
			Slug:         in.Slug,
			Title:        in.Title,
			MainImage:    in.MainImage,
			Rating:       rating,
			Description:  in.Description,
			Manufacturer: in.Manufacturer,
			CategoryID:   in.CategoryID,
		}
		if err := tx.Update(p); err != nil {
			return err
		}

		stored, err := tx.Variants(id)
		if err != nil {
			return err
		}

		submitted := make(map[uuid.UUID]bool, len(in.Variants))
		for _, v := range in.Variants {
			if v.ID != nil {
				submitted[*v.ID] = true
			}
		}

		for _, old := range stored {
			if !submitted[old.ID] {
				if err := tx.DeleteVariant(old.ID); err != nil {
					return err
				}
			}
		}

		for _, v := range in.Variants {
			variant := models.ProductVariant{
				ProductID: id,
				Name:      v.Name,
				Price:     *v.Price,
				InStock:   *v.InStock,
			}
			if v.ID != nil {
				variant.ID = *v.ID
				if err := tx.UpdateVariant(&variant); err != nil {
					return err
				}
			} else if err := tx.CreateVariant(&variant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("failed to update product")
		return nil, &StoreError{Op: "updating product", Err: err}
	}

	updated, err := s.products.Get(id)
	if err != nil {
		s.log.WithError(err).Error("failed to re-read updated product")
		return nil, &StoreError{Op: "updating product", Err: err}
	}
	return updated, nil
}

// Delete removes a product together with its variants. The delete is
// refused, naming the offending variant, when any variant is still
// referenced from an order line or a wishlist item.
func (s *ProductService) Delete(id uuid.UUID) error {
	variants, err := s.variants.ListByProduct(id)
	if err != nil {
		s.log.WithError(err).Error("failed to list variants for delete")
		return &StoreError{Op: "deleting product", Err: err}
	}

	for _, v := range variants {
		orderRefs, err := s.orderLines.CountByVariant(v.ID)
		if err != nil {
			s.log.WithError(err).Error("failed to count order references")
			return &StoreError{Op: "deleting product", Err: err}
		}
		if orderRefs > 0 {
			return &ConflictError{Message: fmt.Sprintf(
				"Cannot delete product because variant '%s' is referenced in customer orders.", v.Name)}
		}

		wishRefs, err := s.wishlist.CountByVariant(v.ID)
		if err != nil {
			s.log.WithError(err).Error("failed to count wishlist references")
			return &StoreError{Op: "deleting product", Err: err}
		}
		if wishRefs > 0 {
			return &ConflictError{Message: fmt.Sprintf(
				"Cannot delete product because variant '%s' is referenced in wishlists.", v.Name)}
		}
	}

	err = s.products.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: "Product"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to delete product")
		return &StoreError{Op: "deleting product", Err: err}
	}
	return nil
}
