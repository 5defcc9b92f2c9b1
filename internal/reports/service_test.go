package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mnavarro/salesboard/internal/config"
	"github.com/mnavarro/salesboard/internal/database"
)

func newTestService(t *testing.T) (*Service, *database.DB) {
	t.Helper()

	db, err := database.NewConnection(&config.DBConfig{
		Driver:       "sqlite3",
		DSN:          ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.SetupSchema())

	return NewService(db, zaptest.NewLogger(t)), db
}

func insertSale(t *testing.T, db *database.DB, date string, productID int64, name, category string, qty int, unitPrice float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO sales (date, product_id, product_name, category, quantity, unit_price, total_amount, customer_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, date, productID, name, category, qty, unitPrice, float64(qty)*unitPrice, int64(1))
	require.NoError(t, err)
}

func insertProduct(t *testing.T, db *database.DB, name, category string, price float64, stock int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO products (name, category, price, stock_qty)
		VALUES (?, ?, ?, ?)
	`, name, category, price, stock)
	require.NoError(t, err)
}

func seedSales(t *testing.T, db *database.DB) {
	// Three days, three categories, two products sold twice.
	insertSale(t, db, "2024-01-01", 1, "Laptop", "electronics", 1, 1000.00)
	insertSale(t, db, "2024-01-01", 2, "Novel", "books", 2, 10.00)
	insertSale(t, db, "2024-01-02", 1, "Laptop", "electronics", 1, 1000.00)
	insertSale(t, db, "2024-01-02", 3, "T-Shirt", "clothing", 3, 20.00)
	insertSale(t, db, "2024-01-03", 2, "Novel", "books", 1, 10.00)
}

func TestListSalesDateRange(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	sales, err := svc.ListSales(Filter{StartDate: "2024-01-01", EndDate: "2024-01-02"})
	require.NoError(t, err)
	require.Len(t, sales, 4)

	for _, sale := range sales {
		assert.GreaterOrEqual(t, sale.Date, "2024-01-01")
		assert.LessOrEqual(t, sale.Date, "2024-01-02")
	}

	// Newest date first.
	for i := 1; i < len(sales); i++ {
		assert.GreaterOrEqual(t, sales[i-1].Date, sales[i].Date)
	}
}

func TestListSalesCategoryFilter(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	sales, err := svc.ListSales(Filter{Category: "books"})
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, sale := range sales {
		assert.Equal(t, "books", sale.Category)
	}
}

func TestListSalesLimit(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	sales, err := svc.ListSales(Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestSummary(t *testing.T) {
	svc, db := newTestService(t)
	insertSale(t, db, "2024-01-01", 1, "Widget", "A", 1, 10.00)
	insertSale(t, db, "2024-01-02", 2, "Gadget", "B", 1, 20.00)

	summary, err := svc.Summary(Filter{})
	require.NoError(t, err)
	assert.Equal(t, 30.0, summary.TotalSales)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, 15.0, summary.AverageTransaction)
	assert.Equal(t, "all", summary.Period.StartDate)
	assert.Equal(t, "all", summary.Period.EndDate)
}

func TestSummaryEmptyRange(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	// No rows match: aggregates come back as zeros, not an error.
	summary, err := svc.Summary(Filter{StartDate: "2030-01-01", EndDate: "2030-12-31"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Equal(t, 0.0, summary.AverageTransaction)
	assert.Equal(t, "2030-01-01", summary.Period.StartDate)
	assert.Equal(t, "2030-12-31", summary.Period.EndDate)
}

func TestDailySales(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	days, err := svc.DailySales(Filter{})
	require.NoError(t, err)
	require.Len(t, days, 3)

	// Newest first.
	assert.Equal(t, "2024-01-03", days[0].Date)
	assert.Equal(t, "2024-01-01", days[2].Date)

	assert.Equal(t, 2, days[2].TransactionCount)
	assert.Equal(t, 1020.0, days[2].TotalSales)
	assert.Equal(t, 3, days[2].TotalQuantity)

	// Per-day transaction counts add up to the raw row count.
	total := 0
	for _, d := range days {
		total += d.TransactionCount
	}
	assert.Equal(t, 5, total)
}

func TestCategorySales(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	categories, err := svc.CategorySales(Filter{})
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Ordered by revenue, electronics first (2000).
	assert.Equal(t, "electronics", categories[0].Category)
	assert.Equal(t, 2000.0, categories[0].TotalSales)
	assert.Equal(t, 2, categories[0].TransactionCount)
	assert.Equal(t, 1000.0, categories[0].AverageSale)

	for i := 1; i < len(categories); i++ {
		assert.GreaterOrEqual(t, categories[i-1].TotalSales, categories[i].TotalSales)
	}

	total := 0
	for _, c := range categories {
		total += c.TransactionCount
	}
	assert.Equal(t, 5, total)
}

func TestProductSales(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	products, err := svc.ProductSales(Filter{})
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, int64(1), products[0].ProductID)
	assert.Equal(t, "Laptop", products[0].ProductName)
	assert.Equal(t, 2, products[0].TransactionCount)
	assert.Equal(t, 2000.0, products[0].TotalSales)
	assert.Equal(t, 1000.0, products[0].AveragePrice)

	total := 0
	for _, p := range products {
		total += p.TransactionCount
	}
	assert.Equal(t, 5, total)
}

func TestTopProducts(t *testing.T) {
	svc, db := newTestService(t)
	seedSales(t, db)

	top, err := svc.TopProducts(Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Laptop", top[0].ProductName)
	assert.Equal(t, 2000.0, top[0].Revenue)
	assert.Equal(t, 2, top[0].UnitsSold)
	assert.GreaterOrEqual(t, top[0].Revenue, top[1].Revenue)
}

func TestReportsOnEmptyTables(t *testing.T) {
	svc, _ := newTestService(t)

	sales, err := svc.ListSales(Filter{})
	require.NoError(t, err)
	assert.Empty(t, sales)

	days, err := svc.DailySales(Filter{})
	require.NoError(t, err)
	assert.Empty(t, days)

	top, err := svc.TopProducts(Filter{})
	require.NoError(t, err)
	assert.Empty(t, top)

	summary, err := svc.Summary(Filter{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.TransactionCount)
}

func TestListProducts(t *testing.T) {
	svc, db := newTestService(t)
	insertProduct(t, db, "Laptop", "electronics", 999.99, 10)
	insertProduct(t, db, "Novel", "books", 9.99, 50)
	insertProduct(t, db, "Mouse", "electronics", 19.99, 100)

	all, err := svc.ListProducts("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	electronics, err := svc.ListProducts("electronics", 0)
	require.NoError(t, err)
	require.Len(t, electronics, 2)
	for _, p := range electronics {
		assert.Equal(t, "electronics", p.Category)
	}

	limited, err := svc.ListProducts("", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCategoriesSortedDistinct(t *testing.T) {
	svc, db := newTestService(t)
	insertProduct(t, db, "Racket", "sports", 199.99, 5)
	insertProduct(t, db, "Laptop", "electronics", 999.99, 10)
	insertProduct(t, db, "Mouse", "electronics", 19.99, 100)
	insertProduct(t, db, "Novel", "books", 9.99, 50)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"books", "electronics", "sports"}, categories)
}

func TestCustomers(t *testing.T) {
	svc, db := newTestService(t)

	_, err := db.Exec(`INSERT INTO customers (name, email, country, signup_date) VALUES (?, ?, ?, ?)`,
		"John Doe", "john@example.com", "USA", "2024-01-15")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO customers (name, email) VALUES (?, ?)`,
		"Jane Smith", "jane@example.com")
	require.NoError(t, err)

	customers, err := svc.ListCustomers(0)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "USA", customers[0].Country)
	assert.Empty(t, customers[1].Country)
	assert.Empty(t, customers[1].SignupDate)

	count, err := svc.CustomerCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
