package repository

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

const orderColumns = `id, name, lastname, phone, email, company, address, apartment, postal_code, city, country, order_notice, status, total, date_time`

// prefixed qualifies each column in a comma-separated list with a table alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i := range parts {
		parts[i] = alias + "." + strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

type PostgresCustomerOrderRepository struct {
	db *database.DB
}

func NewPostgresCustomerOrderRepository(db *database.DB) *PostgresCustomerOrderRepository {
	return &PostgresCustomerOrderRepository{db: db}
}

func scanOrder(row interface{ Scan(...interface{}) error }, o *models.CustomerOrder) error {
	return row.Scan(
		&o.ID, &o.Name, &o.Lastname, &o.Phone, &o.Email, &o.Company,
		&o.Address, &o.Apartment, &o.PostalCode, &o.City, &o.Country,
		&o.OrderNotice, &o.Status, &o.Total, &o.DateTime,
	)
}

func (r *PostgresCustomerOrderRepository) Create(o *models.CustomerOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	_, err := r.db.Exec(
		`INSERT INTO customer_orders (id, name, lastname, phone, email, company, address, apartment, postal_code, city, country, order_notice, status, total)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.Name, o.Lastname, o.Phone, o.Email, o.Company,
		o.Address, o.Apartment, o.PostalCode, o.City, o.Country,
		o.OrderNotice, o.Status, o.Total)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	return scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM customer_orders WHERE id = $1`, o.ID), o)
}

func (r *PostgresCustomerOrderRepository) Get(id uuid.UUID) (*models.CustomerOrder, error) {
	var o models.CustomerOrder
	err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM customer_orders WHERE id = $1`, id), &o)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	return &o, nil
}

func (r *PostgresCustomerOrderRepository) List() ([]models.CustomerOrder, error) {
	rows, err := r.db.Query(`SELECT ` + orderColumns + ` FROM customer_orders ORDER BY date_time DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	orders := []models.CustomerOrder{}
	for rows.Next() {
		var o models.CustomerOrder
		if err := scanOrder(rows, &o); err != nil {
			return nil, errors.Wrap(err, "scan order")
		}
		orders = append(orders, o)
	}
	return orders, errors.Wrap(rows.Err(), "iterate orders")
}

func (r *PostgresCustomerOrderRepository) Update(o *models.CustomerOrder) error {
	res, err := r.db.Exec(
		`UPDATE customer_orders SET name = $2, lastname = $3, phone = $4, email = $5, company = $6, address = $7,
		 apartment = $8, postal_code = $9, city = $10, country = $11, order_notice = $12, status = $13, total = $14
		 WHERE id = $1`,
		o.ID, o.Name, o.Lastname, o.Phone, o.Email, o.Company,
		o.Address, o.Apartment, o.PostalCode, o.City, o.Country,
		o.OrderNotice, o.Status, o.Total)
	if err != nil {
		return errors.Wrap(err, "update order")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCustomerOrderRepository) Delete(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM customer_orders WHERE id = $1`, id)
	return errors.Wrap(err, "delete order")
}

type PostgresOrderLineRepository struct {
	db *database.DB
}

func NewPostgresOrderLineRepository(db *database.DB) *PostgresOrderLineRepository {
	return &PostgresOrderLineRepository{db: db}
}

func (r *PostgresOrderLineRepository) Create(l *models.OrderLine) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := r.db.Exec(
		`INSERT INTO order_lines (id, customer_order_id, product_variant_id, quantity) VALUES ($1, $2, $3, $4)`,
		l.ID, l.CustomerOrderID, l.ProductVariantID, l.Quantity)
	return errors.Wrap(err, "insert order line")
}

func (r *PostgresOrderLineRepository) Get(id uuid.UUID) (*models.OrderLine, error) {
	var l models.OrderLine
	err := r.db.QueryRow(
		`SELECT id, customer_order_id, product_variant_id, quantity FROM order_lines WHERE id = $1`, id).
		Scan(&l.ID, &l.CustomerOrderID, &l.ProductVariantID, &l.Quantity)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get order line")
	}
	return &l, nil
}

func (r *PostgresOrderLineRepository) Update(l *models.OrderLine) error {
	res, err := r.db.Exec(
		`UPDATE order_lines SET customer_order_id = $2, product_variant_id = $3, quantity = $4 WHERE id = $1`,
		l.ID, l.CustomerOrderID, l.ProductVariantID, l.Quantity)
	if err != nil {
		return errors.Wrap(err, "update order line")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresOrderLineRepository) ListByOrder(orderID uuid.UUID) ([]models.OrderLine, error) {
	rows, err := r.db.Query(
		`SELECT l.id, l.customer_order_id, l.product_variant_id, l.quantity,
		        v.id, v.product_id, v.name, v.price, v.in_stock,
		        p.id, p.slug, p.title, p.main_image, p.rating, p.description, p.manufacturer, p.category_id
		 FROM order_lines l
		 JOIN product_variants v ON v.id = l.product_variant_id
		 JOIN products p ON p.id = v.product_id
		 WHERE l.customer_order_id = $1`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "query order lines")
	}
	defer rows.Close()

	lines := []models.OrderLine{}
	for rows.Next() {
		var l models.OrderLine
		var v models.ProductVariant
		var p models.Product
		var categoryID uuid.NullUUID
		err := rows.Scan(
			&l.ID, &l.CustomerOrderID, &l.ProductVariantID, &l.Quantity,
			&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock,
			&p.ID, &p.Slug, &p.Title, &p.MainImage, &p.Rating, &p.Description, &p.Manufacturer, &categoryID,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan order line")
		}
		p.CategoryID = categoryID.UUID
		v.Product = &p
		l.ProductVariant = &v
		lines = append(lines, l)
	}
	return lines, errors.Wrap(rows.Err(), "iterate order lines")
}

func (r *PostgresOrderLineRepository) ListWithOrders() ([]models.OrderLine, error) {
	rows, err := r.db.Query(
		`SELECT l.id, l.customer_order_id, l.product_variant_id, l.quantity, ` + prefixed("o", orderColumns) + `
		 FROM order_lines l
		 JOIN customer_orders o ON o.id = l.customer_order_id
		 ORDER BY o.date_time, l.id`)
	if err != nil {
		return nil, errors.Wrap(err, "query order lines")
	}
	defer rows.Close()

	lines := []models.OrderLine{}
	for rows.Next() {
		var l models.OrderLine
		var o models.CustomerOrder
		err := rows.Scan(
			&l.ID, &l.CustomerOrderID, &l.ProductVariantID, &l.Quantity,
			&o.ID, &o.Name, &o.Lastname, &o.Phone, &o.Email, &o.Company,
			&o.Address, &o.Apartment, &o.PostalCode, &o.City, &o.Country,
			&o.OrderNotice, &o.Status, &o.Total, &o.DateTime,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan order line")
		}
		l.CustomerOrder = &o
		lines = append(lines, l)
	}
	return lines, errors.Wrap(rows.Err(), "iterate order lines")
}

func (r *PostgresOrderLineRepository) DeleteByOrder(orderID uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM order_lines WHERE customer_order_id = $1`, orderID)
	return errors.Wrap(err, "delete order lines")
}

func (r *PostgresOrderLineRepository) CountByVariant(variantID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM order_lines WHERE product_variant_id = $1`, variantID).Scan(&count)
	return count, errors.Wrap(err, "count order lines")
}
