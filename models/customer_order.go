package models

import (
	"time"

	"github.com/google/uuid"
)

type CustomerOrder struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Lastname    string    `json:"lastname" db:"lastname"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	Company     string    `json:"company" db:"company"`
	Address     string    `json:"address" db:"address"`
	Apartment   string    `json:"apartment" db:"apartment"`
	PostalCode  string    `json:"postalCode" db:"postal_code"`
	City        string    `json:"city" db:"city"`
	Country     string    `json:"country" db:"country"`
	OrderNotice string    `json:"orderNotice" db:"order_notice"`
	Status      string    `json:"status" db:"status"`
	Total       int       `json:"total" db:"total"`
	DateTime    time.Time `json:"dateTime" db:"date_time"`
}

func (CustomerOrder) TableName() string {
	return "customer_orders"
}

func (CustomerOrder) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS customer_orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		lastname TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL,
		apartment TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		order_notice TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'processing',
		total INTEGER NOT NULL DEFAULT 0,
		date_time TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
