package database

import (
	"database/sql"
	"fmt"

	"github.com/Ameer12348/wacky-commerce-backend/models"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

// Connect opens a connection to the PostgreSQL database and verifies it.
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

type tableModel interface {
	TableName() string
	CreateTableSQL() string
}

// InitializeTables creates all tables if they don't exist
func (db *DB) InitializeTables() error {
	// Enable pgcrypto extension for gen_random_uuid()
	if _, err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`); err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	// Order matters: foreign key dependencies
	tables := []tableModel{
		models.Category{},
		models.Product{},
		models.ProductVariant{},
		models.CustomerOrder{},
		models.OrderLine{},
		models.WishlistItem{},
	}

	for _, m := range tables {
		if _, err := db.Exec(m.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", m.TableName(), err)
		}
	}

	return nil
}
