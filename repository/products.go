package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

type PostgresProductRepository struct {
	db *database.DB
}

func NewPostgresProductRepository(db *database.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

var productColumns = map[string]string{
	"rating":       "rating",
	"title":        "title",
	"manufacturer": "manufacturer",
}

var variantColumns = map[string]string{
	"price":   "price",
	"inStock": "in_stock",
}

var sqlOperators = map[string]string{
	catalog.OpEquals: "=",
	catalog.OpLt:     "<",
	catalog.OpLte:    "<=",
	catalog.OpGt:     ">",
	catalog.OpGte:    ">=",
}

const productSelect = `SELECT p.id, p.slug, p.title, p.main_image, p.rating, p.description, p.manufacturer, p.category_id, c.id, c.name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// buildWhere renders the compiled predicate as a WHERE clause. Variant
// conditions become a single EXISTS subquery so one variant has to satisfy
// all of them at once.
func buildWhere(p catalog.Predicate) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, c := range p.Product {
		clauses = append(clauses, fmt.Sprintf("p.%s %s %s", productColumns[c.Field], sqlOperators[c.Operator], next(c.Value)))
	}

	if len(p.Variant) > 0 {
		var inner []string
		for _, c := range p.Variant {
			inner = append(inner, fmt.Sprintf("v.%s %s %s", variantColumns[c.Field], sqlOperators[c.Operator], next(c.Value)))
		}
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND %s)",
			strings.Join(inner, " AND ")))
	}

	if p.CategoryName != "" {
		clauses = append(clauses, fmt.Sprintf("c.name = %s", next(p.CategoryName)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderBy(sort catalog.SortOrder) string {
	switch sort {
	case catalog.SortTitleAsc:
		return " ORDER BY p.title ASC"
	case catalog.SortTitleDesc:
		return " ORDER BY p.title DESC"
	case catalog.SortLowPrice:
		return " ORDER BY (SELECT MIN(v.price) FROM product_variants v WHERE v.product_id = p.id) ASC NULLS LAST"
	case catalog.SortHighPrice:
		return " ORDER BY (SELECT MAX(v.price) FROM product_variants v WHERE v.product_id = p.id) DESC NULLS LAST"
	default:
		return ""
	}
}

func (r *PostgresProductRepository) List(opts ListOptions) ([]models.Product, error) {
	where, args := buildWhere(opts.Predicate)
	query := productSelect + where + orderBy(opts.Sort)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, opts.Limit, opts.Offset)

	products, err := r.queryProducts(query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attachVariants(products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresProductRepository) ListAll(withVariants bool) ([]models.Product, error) {
	products, err := r.queryProducts(productSelect)
	if err != nil {
		return nil, err
	}
	if withVariants {
		if err := r.attachVariants(products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *PostgresProductRepository) Get(id uuid.UUID) (*models.Product, error) {
	products, err := r.queryProducts(productSelect+" WHERE p.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	if err := r.attachVariants(products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *PostgresProductRepository) Search(query string) ([]models.Product, error) {
	return r.queryProducts(
		productSelect+" WHERE p.title ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%'",
		query)
}

func (r *PostgresProductRepository) Delete(id uuid.UUID) error {
	// variants go with the product via ON DELETE CASCADE
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProductRepository) InTx(fn func(tx ProductTx) error) error {
	sqlTx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}

	if err := fn(&postgresProductTx{tx: sqlTx}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

func (r *PostgresProductRepository) queryProducts(query string, args ...interface{}) ([]models.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var categoryID uuid.NullUUID
		var catID uuid.NullUUID
		var catName sql.NullString
		err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.MainImage, &p.Rating,
			&p.Description, &p.Manufacturer, &categoryID, &catID, &catName,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		p.CategoryID = categoryID.UUID
		if catID.Valid {
			p.Category = &models.Category{ID: catID.UUID, Name: catName.String}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate products")
	}
	return products, nil
}

// attachVariants fills Variants for every product in one query.
func (r *PostgresProductRepository) attachVariants(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	index := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID.String()
		index[products[i].ID] = &products[i]
		products[i].Variants = []models.ProductVariant{}
	}

	rows, err := r.db.Query(
		`SELECT id, product_id, name, price, in_stock FROM product_variants WHERE product_id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return errors.Wrap(err, "query variants")
	}
	defer rows.Close()

	for rows.Next() {
		var v models.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.InStock); err != nil {
			return errors.Wrap(err, "scan variant")
		}
		if p, ok := index[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return errors.Wrap(rows.Err(), "iterate variants")
}

type postgresProductTx struct {
	tx *sql.Tx
}

// nullableID maps the zero UUID to NULL so uncategorized products don't
// trip the category foreign key.
func nullableID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func (t *postgresProductTx) Create(p *models.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := t.tx.Exec(
		`INSERT INTO products (id, slug, title, main_image, rating, description, manufacturer, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Slug, p.Title, p.MainImage, p.Rating, p.Description, p.Manufacturer, nullableID(p.CategoryID))
	return errors.Wrap(err, "insert product")
}

func (t *postgresProductTx) Update(p *models.Product) error {
	_, err := t.tx.Exec(
		`UPDATE products SET slug = $2, title = $3, main_image = $4, rating = $5, description = $6, manufacturer = $7, category_id = $8
		 WHERE id = $1`,
		p.ID, p.Slug, p.Title, p.MainImage, p.Rating, p.Description, p.Manufacturer, nullableID(p.CategoryID))
	return errors.Wrap(err, "update product")
}

func (t *postgresProductTx) Variants(productID uuid.UUID) ([]models.ProductVariant, error) {
	rows, err := t.tx.Query(
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

func (t *postgresProductTx) CreateVariant(v *models.ProductVariant) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	_, err := t.tx.Exec(
		`INSERT INTO product_variants (id, product_id, name, price, in_stock) VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.ProductID, v.Name, v.Price, v.InStock)
	return errors.Wrap(err, "insert variant")
}

func (t *postgresProductTx) UpdateVariant(v *models.ProductVariant) error {
	_, err := t.tx.Exec(
		`UPDATE product_variants SET product_id = $2, name = $3, price = $4, in_stock = $5 WHERE id = $1`,
		v.ID, v.ProductID, v.Name, v.Price, v.InStock)
	return errors.Wrap(err, "update variant")
}

func (t *postgresProductTx) DeleteVariant(id uuid.UUID) error {
	_, err := t.tx.Exec(`DELETE FROM product_variants WHERE id = $1`, id)
	return errors.Wrap(err, "delete variant")
}
