package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

// OrderDetails carries every customer order field except the id, which the
// grouped-orders response exposes separately.
type OrderDetails struct {
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Address     string    `json:"address"`
	Apartment   string    `json:"apartment"`
	PostalCode  string    `json:"postalCode"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	OrderNotice string    `json:"orderNotice"`
	Status      string    `json:"status"`
	Total       int       `json:"total"`
	DateTime    time.Time `json:"dateTime"`
}

// OrderedProduct is a product variant (with its parent product) plus the
// quantity ordered.
type OrderedProduct struct {
	models.ProductVariant
	Quantity int `json:"quantity"`
}

// GroupedOrder is one customer order with all of its ordered products.
type GroupedOrder struct {
	CustomerOrderID uuid.UUID        `json:"customerOrderId"`
	CustomerOrder   OrderDetails     `json:"customerOrder"`
	Products        []OrderedProduct `json:"products"`
}

// OrderService covers customer order CRUD, order line CRUD and the
// grouped-orders aggregation.
type OrderService struct {
	orders   repository.CustomerOrderRepository
	lines    repository.OrderLineRepository
	variants repository.VariantRepository
	log      *logrus.Logger
}

func NewOrderService(
	orders repository.CustomerOrderRepository,
	lines repository.OrderLineRepository,
	variants repository.VariantRepository,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{orders: orders, lines: lines, variants: variants, log: log}
}

func detailsOf(o models.CustomerOrder) OrderDetails {
	return OrderDetails{
		Name:        o.Name,
		Lastname:    o.Lastname,
		Phone:       o.Phone,
		Email:       o.Email,
		Company:     o.Company,
		Address:     o.Address,
		Apartment:   o.Apartment,
		PostalCode:  o.PostalCode,
		City:        o.City,
		Country:     o.Country,
		OrderNotice: o.OrderNotice,
		Status:      o.Status,
		Total:       o.Total,
		DateTime:    o.DateTime,
	}
}

// GroupOrders flattens every order line and regroups the lines by order
// identity, in first-seen order. Each line costs one variant lookup; fine
// at this data volume. Any lookup failure aborts the whole aggregation.
func (s *OrderService) GroupOrders() ([]GroupedOrder, error) {
	lines, err := s.lines.ListWithOrders()
	if err != nil {
		s.log.WithError(err).Error("failed to list order lines")
		return nil, &StoreError{Op: "fetching all product orders", Err: err}
	}

	index := make(map[uuid.UUID]int)
	grouped := []GroupedOrder{}

	for _, line := range lines {
		variant, err := s.variants.Get(line.ProductVariantID)
		if err != nil {
			s.log.WithError(err).WithField("variant_id", line.ProductVariantID).
				Error("failed to look up ordered variant")
			return nil, &StoreError{Op: "fetching all product orders", Err: err}
		}

		product := OrderedProduct{ProductVariant: *variant, Quantity: line.Quantity}

		if i, ok := index[line.CustomerOrderID]; ok {
			grouped[i].Products = append(grouped[i].Products, product)
			continue
		}
		index[line.CustomerOrderID] = len(grouped)
		grouped = append(grouped, GroupedOrder{
			CustomerOrderID: line.CustomerOrderID,
			CustomerOrder:   detailsOf(*line.CustomerOrder),
			Products:        []OrderedProduct{product},
		})
	}

	return grouped, nil
}

func (s *OrderService) CreateOrder(o *models.CustomerOrder) (*models.CustomerOrder, error) {
	if o.Name == "" {
		return nil, &ValidationError{Message: "Name field is required"}
	}
	if o.Email == "" {
		return nil, &ValidationError{Message: "Email field is required"}
	}
	if err := s.orders.Create(o); err != nil {
		s.log.WithError(err).Error("failed to create order")
		return nil, &StoreError{Op: "creating order", Err: err}
	}
	return o, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.CustomerOrder, error) {
	o, err := s.orders.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Order"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to get order")
		return nil, &StoreError{Op: "fetching order", Err: err}
	}
	return o, nil
}

func (s *OrderService) ListOrders() ([]models.CustomerOrder, error) {
	orders, err := s.orders.List()
	if err != nil {
		s.log.WithError(err).Error("failed to list orders")
		return nil, &StoreError{Op: "fetching orders", Err: err}
	}
	return orders, nil
}

func (s *OrderService) UpdateOrder(o *models.CustomerOrder) (*models.CustomerOrder, error) {
	err := s.orders.Update(o)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Order"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to update order")
		return nil, &StoreError{Op: "updating order", Err: err}
	}
	return s.GetOrder(o.ID)
}

// DeleteOrder removes an order together with its lines.
func (s *OrderService) DeleteOrder(id uuid.UUID) error {
	if err := s.lines.DeleteByOrder(id); err != nil {
		s.log.WithError(err).Error("failed to delete order lines")
		return &StoreError{Op: "deleting order", Err: err}
	}
	if err := s.orders.Delete(id); err != nil {
		s.log.WithError(err).Error("failed to delete order")
		return &StoreError{Op: "deleting order", Err: err}
	}
	return nil
}

func (s *OrderService) CreateLine(l *models.OrderLine) (*models.OrderLine, error) {
	if l.Quantity < 1 {
		return nil, &ValidationError{Message: "Quantity field must be at least 1"}
	}
	if err := s.lines.Create(l); err != nil {
		s.log.WithError(err).Error("failed to create order line")
		return nil, &StoreError{Op: "creating product order", Err: err}
	}
	return l, nil
}

// LinesByOrder returns the lines of one order with variant and product
// attached. An order without lines yields an empty slice, not an error.
func (s *OrderService) LinesByOrder(orderID uuid.UUID) ([]models.OrderLine, error) {
	lines, err := s.lines.ListByOrder(orderID)
	if err != nil {
		s.log.WithError(err).Error("failed to list order lines")
		return nil, &StoreError{Op: "fetching product order", Err: err}
	}
	return lines, nil
}

func (s *OrderService) UpdateLine(l *models.OrderLine) (*models.OrderLine, error) {
	if _, err := s.lines.Get(l.ID); errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Order"}
	} else if err != nil {
		s.log.WithError(err).Error("failed to load order line for update")
		return nil, &StoreError{Op: "updating order", Err: err}
	}

	if err := s.lines.Update(l); err != nil {
		s.log.WithError(err).Error("failed to update order line")
		return nil, &StoreError{Op: "updating order", Err: err}
	}
	return l, nil
}

// DeleteLines removes every line belonging to the given order.
func (s *OrderService) DeleteLines(orderID uuid.UUID) error {
	if err := s.lines.DeleteByOrder(orderID); err != nil {
		s.log.WithError(err).Error("failed to delete order lines")
		return &StoreError{Op: "deleting product orders", Err: err}
	}
	return nil
}
