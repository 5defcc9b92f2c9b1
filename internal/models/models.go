package models

import (
	"time"
)

// Sale represents one sales transaction. Rows are immutable once written.
// ProductName and Category are copies taken at sale time and may diverge
// from the current products row.
type Sale struct {
	ID          int64     `json:"id" db:"id"`
	Date        string    `json:"date" db:"date"` // YYYY-MM-DD
	ProductID   int64     `json:"product_id" db:"product_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Category    string    `json:"category" db:"category"`
	Quantity    int       `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	CustomerID  int64     `json:"customer_id" db:"customer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Product represents a catalog entry.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Price     float64   `json:"price" db:"price"`
	StockQty  int       `json:"stock_qty" db:"stock_qty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Customer represents a registered customer. Country and SignupDate are
// optional and empty when unset.
type Customer struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Country    string    `json:"country,omitempty" db:"country"`
	SignupDate string    `json:"signup_date,omitempty" db:"signup_date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Product categories used by the seeded catalog.
const (
	CategoryElectronics = "electronics"
	CategoryBooks       = "books"
	CategoryClothing    = "clothing"
	CategoryHome        = "home"
	CategorySports      = "sports"
)
