package reports

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/mnavarro/salesboard/internal/database"
	"github.com/mnavarro/salesboard/internal/models"
)

// Service runs the read-only report queries. Every method executes a single
// parameterized statement and reads all rows before returning.
type Service struct {
	db     *database.DB
	logger *zap.Logger
}

// NewService creates a new report service.
func NewService(db *database.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		db:     db,
		logger: logger,
	}
}

// ListSales returns the raw matching sale rows, newest date first.
func (s *Service) ListSales(f Filter) ([]models.Sale, error) {
	where, args := f.whereClause()
	query := `SELECT id, date, product_id, product_name, category, quantity,
	       unit_price, total_amount, customer_id, created_at
	FROM sales` + where + `
	ORDER BY date DESC
	LIMIT ?`
	args = append(args, f.limitOr(DefaultSalesLimit))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("sales query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.Date, &sale.ProductID, &sale.ProductName,
			&sale.Category, &sale.Quantity, &sale.UnitPrice, &sale.TotalAmount,
			&sale.CustomerID, &sale.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

// Summary aggregates every matching sale into a single row. COALESCE keeps
// the zero-row case at zeros instead of NULLs, so an empty range is a valid
// summary rather than a missing one.
func (s *Service) Summary(f Filter) (*models.SalesSummary, error) {
	where, args := f.whereClause()
	query := `SELECT COALESCE(SUM(total_amount), 0),
	       COUNT(*),
	       COALESCE(AVG(total_amount), 0)
	FROM sales` + where

	var summary models.SalesSummary
	err := s.db.QueryRow(query, args...).Scan(
		&summary.TotalSales, &summary.TransactionCount, &summary.AverageTransaction)
	if err != nil {
		s.logger.Error("summary query failed", zap.Error(err))
		return nil, err
	}

	summary.Period = f.Period()
	return &summary, nil
}

// DailySales rolls matching sales up by date, newest first.
func (s *Service) DailySales(f Filter) ([]models.DailySales, error) {
	where, args := f.whereClause()
	query := `SELECT date,
	       SUM(total_amount) AS total_sales,
	       COUNT(*) AS transaction_count,
	       SUM(quantity) AS total_quantity
	FROM sales` + where + `
	GROUP BY date
	ORDER BY date DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("daily sales query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	days := []models.DailySales{}
	for rows.Next() {
		var d models.DailySales
		if err := rows.Scan(&d.Date, &d.TotalSales, &d.TransactionCount, &d.TotalQuantity); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// CategorySales rolls matching sales up by category, highest revenue first.
func (s *Service) CategorySales(f Filter) ([]models.CategorySales, error) {
	where, args := f.whereClause()
	query := `SELECT category,
	       COUNT(*) AS transaction_count,
	       SUM(total_amount) AS total_sales,
	       SUM(quantity) AS total_quantity,
	       AVG(total_amount) AS average_sale
	FROM sales` + where + `
	GROUP BY category
	ORDER BY total_sales DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("category sales query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategorySales{}
	for rows.Next() {
		var c models.CategorySales
		if err := rows.Scan(&c.Category, &c.TransactionCount, &c.TotalSales,
			&c.TotalQuantity, &c.AverageSale); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ProductSales rolls matching sales up by the sale rows' product id and
// denormalized name, highest revenue first.
func (s *Service) ProductSales(f Filter) ([]models.ProductSales, error) {
	where, args := f.whereClause()
	query := `SELECT product_id,
	       product_name,
	       COUNT(*) AS transaction_count,
	       SUM(total_amount) AS total_sales,
	       SUM(quantity) AS total_quantity,
	       AVG(unit_price) AS average_price
	FROM sales` + where + `
	GROUP BY product_id, product_name
	ORDER BY total_sales DESC
	LIMIT ?`
	args = append(args, f.limitOr(DefaultProductLimit))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("product sales query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []models.ProductSales{}
	for rows.Next() {
		var p models.ProductSales
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.TransactionCount,
			&p.TotalSales, &p.TotalQuantity, &p.AveragePrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// TopProducts returns the highest-revenue product names.
func (s *Service) TopProducts(f Filter) ([]models.TopProduct, error) {
	where, args := f.whereClause()
	query := `SELECT product_name,
	       SUM(total_amount) AS revenue,
	       SUM(quantity) AS units_sold
	FROM sales` + where + `
	GROUP BY product_name
	ORDER BY revenue DESC
	LIMIT ?`
	args = append(args, f.limitOr(DefaultTopLimit))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("top products query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	top := []models.TopProduct{}
	for rows.Next() {
		var t models.TopProduct
		if err := rows.Scan(&t.ProductName, &t.Revenue, &t.UnitsSold); err != nil {
			return nil, err
		}
		top = append(top, t)
	}

	return top, rows.Err()
}

// ListProducts returns catalog rows, optionally restricted to one category.
func (s *Service) ListProducts(category string, limit int) ([]models.Product, error) {
	query := `SELECT id, name, category, price, stock_qty, created_at FROM products`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id LIMIT ?`
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error("products query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.StockQty, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Categories returns the distinct product categories in ascending order.
func (s *Service) Categories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		s.logger.Error("categories query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ListCustomers returns customer rows in insertion order.
func (s *Service) ListCustomers(limit int) ([]models.Customer, error) {
	if limit <= 0 {
		limit = DefaultCustomerLimit
	}

	rows, err := s.db.Query(`SELECT id, name, email, country, signup_date, created_at
	FROM customers
	ORDER BY id
	LIMIT ?`, limit)
	if err != nil {
		s.logger.Error("customers query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		var country, signup sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &country, &signup, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Country = country.String
		c.SignupDate = signup.String
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// CustomerCount returns the total number of customers.
func (s *Service) CustomerCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		s.logger.Error("customer count query failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}
