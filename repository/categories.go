package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Ameer12348/wacky-commerce-backend/database"
	"github.com/Ameer12348/wacky-commerce-backend/models"
)

type PostgresCategoryRepository struct {
	db *database.DB
}

func NewPostgresCategoryRepository(db *database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c *models.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.db.Exec(`INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	return errors.Wrap(err, "insert category")
}

func (r *PostgresCategoryRepository) Get(id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(`SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get category")
	}
	return &c, nil
}

func (r *PostgresCategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db.Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query categories")
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		categories = append(categories, c)
	}
	return categories, errors.Wrap(rows.Err(), "iterate categories")
}

func (r *PostgresCategoryRepository) Update(c *models.Category) error {
	res, err := r.db.Exec(`UPDATE categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return errors.Wrap(err, "update category")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCategoryRepository) Delete(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return errors.Wrap(err, "delete category")
}
