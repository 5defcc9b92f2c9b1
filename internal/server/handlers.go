package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mnavarro/salesboard/internal/models"
	"github.com/mnavarro/salesboard/internal/reports"
)

// dateFilter reads the optional start_date/end_date parameters and validates
// them before anything touches the database. On a malformed date it writes
// the 400 response itself and reports false.
func dateFilter(c *gin.Context) (reports.Filter, bool) {
	f := reports.Filter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if err := f.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return reports.Filter{}, false
	}
	return f, true
}

// parseLimit returns the limit query parameter, falling back to def when it
// is absent, non-numeric or not positive.
func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (s *Server) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": timestamp,
	})
}

// GET /api/sales
func (s *Server) listSales(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}
	f.Category = c.Query("category")
	f.Limit = parseLimit(c.Query("limit"), reports.DefaultSalesLimit)

	sales, err := s.reports.ListSales(f)
	if err != nil {
		// Storage failures degrade to an empty result set.
		respondList(c, 0, []models.Sale{})
		return
	}
	respondList(c, len(sales), sales)
}

// GET /api/sales/summary
func (s *Server) salesSummary(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}

	summary, err := s.reports.Summary(f)
	if err != nil {
		respondError(c, http.StatusNotFound, "No sales data found")
		return
	}
	respondData(c, summary)
}

// GET /api/sales/daily
func (s *Server) dailySales(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}

	days, err := s.reports.DailySales(f)
	if err != nil {
		respondList(c, 0, []models.DailySales{})
		return
	}
	respondList(c, len(days), days)
}

// GET /api/sales/category
func (s *Server) categorySales(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}

	categories, err := s.reports.CategorySales(f)
	if err != nil {
		respondList(c, 0, []models.CategorySales{})
		return
	}
	respondList(c, len(categories), categories)
}

// GET /api/sales/product
func (s *Server) productSales(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}
	f.Limit = parseLimit(c.Query("limit"), reports.DefaultProductLimit)

	products, err := s.reports.ProductSales(f)
	if err != nil {
		respondList(c, 0, []models.ProductSales{})
		return
	}
	respondList(c, len(products), products)
}

// GET /api/sales/top-products
func (s *Server) topProducts(c *gin.Context) {
	f, ok := dateFilter(c)
	if !ok {
		return
	}
	f.Limit = parseLimit(c.Query("limit"), reports.DefaultTopLimit)

	top, err := s.reports.TopProducts(f)
	if err != nil {
		respondList(c, 0, []models.TopProduct{})
		return
	}
	respondList(c, len(top), top)
}

// GET /api/products
func (s *Server) listProducts(c *gin.Context) {
	category := c.Query("category")
	limit := parseLimit(c.Query("limit"), reports.DefaultCatalogLimit)

	products, err := s.reports.ListProducts(category, limit)
	if err != nil {
		respondList(c, 0, []models.Product{})
		return
	}
	respondList(c, len(products), products)
}

// GET /api/products/categories
func (s *Server) productCategories(c *gin.Context) {
	categories, err := s.reports.Categories()
	if err != nil {
		respondList(c, 0, []string{})
		return
	}
	respondList(c, len(categories), categories)
}

// GET /api/customers
func (s *Server) listCustomers(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), reports.DefaultCustomerLimit)

	customers, err := s.reports.ListCustomers(limit)
	if err != nil {
		respondList(c, 0, []models.Customer{})
		return
	}
	respondList(c, len(customers), customers)
}

// GET /api/customers/count
func (s *Server) customerCount(c *gin.Context) {
	count, err := s.reports.CustomerCount()
	if err != nil {
		respondError(c, http.StatusNotFound, "No customer data found")
		return
	}
	respondData(c, gin.H{"total_customers": count})
}
