package database

// Schema statements per dialect. Sale rows carry a denormalized copy of the
// product name and category: reports must reflect what was sold at the time
// of the transaction, not a later-edited product row.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS sales (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    date TEXT NOT NULL,
	    product_id INTEGER NOT NULL,
	    product_name TEXT NOT NULL,
	    category TEXT NOT NULL,
	    quantity INTEGER NOT NULL,
	    unit_price REAL NOT NULL,
	    total_amount REAL NOT NULL,
	    customer_id INTEGER NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_category ON sales(category)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales(product_id)`,

	`CREATE TABLE IF NOT EXISTS products (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    category TEXT NOT NULL,
	    price REAL NOT NULL,
	    stock_qty INTEGER NOT NULL DEFAULT 0,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,

	`CREATE TABLE IF NOT EXISTS customers (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    email TEXT NOT NULL UNIQUE,
	    country TEXT,
	    signup_date TEXT,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS sales (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    date CHAR(10) NOT NULL,
	    product_id BIGINT NOT NULL,
	    product_name VARCHAR(255) NOT NULL,
	    category VARCHAR(100) NOT NULL,
	    quantity INT NOT NULL,
	    unit_price DOUBLE NOT NULL,
	    total_amount DOUBLE NOT NULL,
	    customer_id BIGINT NOT NULL,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_sales_date (date),
	    INDEX idx_sales_category (category),
	    INDEX idx_sales_product_id (product_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS products (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(255) NOT NULL,
	    category VARCHAR(100) NOT NULL,
	    price DOUBLE NOT NULL,
	    stock_qty INT NOT NULL DEFAULT 0,
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_products_category (category)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS customers (
	    id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(255) NOT NULL,
	    email VARCHAR(255) NOT NULL,
	    country VARCHAR(100),
	    signup_date CHAR(10),
	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    UNIQUE KEY uk_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// SetupSchema creates the sales, products and customers tables if they do
// not exist yet. Safe to run on every startup.
func (db *DB) SetupSchema() error {
	statements := sqliteSchema
	if db.driver == "mysql" {
		statements = mysqlSchema
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all tables.
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS sales",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// CleanupData removes all rows but keeps the schema.
func (db *DB) CleanupData() error {
	queries := []string{
		"DELETE FROM sales",
		"DELETE FROM products",
		"DELETE FROM customers",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
