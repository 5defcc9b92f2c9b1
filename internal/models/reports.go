package models

// Report result rows. One explicit struct per report so response shapes are
// typed rather than assembled from untyped maps.

// Period describes the date range a summary was computed over. An absent
// bound is reported as "all".
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SalesSummary aggregates every matched sale into a single row. An empty
// matched set yields zeros, not an error.
type SalesSummary struct {
	TotalSales         float64 `json:"total_sales"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
	Period             Period  `json:"period"`
}

// DailySales is one per-date rollup row.
type DailySales struct {
	Date             string  `json:"date"`
	TotalSales       float64 `json:"total_sales"`
	TransactionCount int     `json:"transaction_count"`
	TotalQuantity    int     `json:"total_quantity"`
}

// CategorySales is one per-category rollup row.
type CategorySales struct {
	Category         string  `json:"category"`
	TransactionCount int     `json:"transaction_count"`
	TotalSales       float64 `json:"total_sales"`
	TotalQuantity    int     `json:"total_quantity"`
	AverageSale      float64 `json:"average_sale"`
}

// ProductSales is one per-product rollup row, grouped by the sale rows'
// denormalized product id and name.
type ProductSales struct {
	ProductID        int64   `json:"product_id"`
	ProductName      string  `json:"product_name"`
	TransactionCount int     `json:"transaction_count"`
	TotalSales       float64 `json:"total_sales"`
	TotalQuantity    int     `json:"total_quantity"`
	AveragePrice     float64 `json:"average_price"`
}

// TopProduct is one revenue-ranked product row.
type TopProduct struct {
	ProductName string  `json:"product_name"`
	Revenue     float64 `json:"revenue"`
	UnitsSold   int     `json:"units_sold"`
}
