package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

// PageSize is the number of products per storefront listing page. The
// pagination offset advances by the same amount.
const PageSize = 12

// CatalogQueryService answers product listing requests: it compiles the
// parsed descriptor into a predicate and applies sorting and pagination
// through the product repository.
type CatalogQueryService struct {
	products repository.ProductRepository
	log      *logrus.Logger
}

func NewCatalogQueryService(products repository.ProductRepository, log *logrus.Logger) *CatalogQueryService {
	return &CatalogQueryService{products: products, log: log}
}

// ListProducts returns one page of products matching the descriptor, each
// with its category name and variants attached.
func (s *CatalogQueryService) ListProducts(d catalog.Descriptor) ([]models.Product, error) {
	page := d.Page
	if page < 1 {
		page = 1
	}

	opts := repository.ListOptions{
		Predicate: catalog.Compile(d.Filters),
		Sort:      d.Sort,
		Offset:    (page - 1) * PageSize,
		Limit:     PageSize,
	}

	products, err := s.products.List(opts)
	if err != nil {
		s.log.WithError(err).Error("failed to list products")
		return nil, &StoreError{Op: "fetching products", Err: err}
	}
	return products, nil
}

// ListAdmin returns the complete product list with no filtering, sorting
// or pagination, for the admin panel.
func (s *CatalogQueryService) ListAdmin(withVariants bool) ([]models.Product, error) {
	products, err := s.products.ListAll(withVariants)
	if err != nil {
		s.log.WithError(err).Error("failed to list products for admin")
		return nil, &StoreError{Op: "fetching products", Err: err}
	}
	return products, nil
}
