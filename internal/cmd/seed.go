package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mnavarro/salesboard/internal/config"
	"github.com/mnavarro/salesboard/internal/database"
	"github.com/mnavarro/salesboard/internal/models"
)

var (
	dropFirst  bool
	schemaOnly bool
	salesCount int
	seedDays   int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Set up the database schema and sample data",
	Long: `Creates the sales, products and customers tables and populates
them with a sample dataset: a small product catalog, a handful of customers
and randomized sales spread over a trailing date window.

The schema creation is idempotent; use --drop-first to start from scratch.`,
	RunE: seedDatabase,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	seedCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create schema only, skip sample data")
	seedCmd.Flags().IntVar(&salesCount, "sales", 500, "Number of sample sales to generate")
	seedCmd.Flags().IntVar(&seedDays, "days", 90, "Trailing window in days to spread sales over")
}

func seedDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	if !schemaOnly {
		fmt.Println("📊 Populating with sample data...")
		if err := populateSampleData(db); err != nil {
			return fmt.Errorf("failed to populate sample data: %w", err)
		}
	}

	fmt.Println("✅ Database setup complete!")
	return nil
}

func populateSampleData(db *database.DB) error {
	fmt.Println("   📦 Creating products...")
	if err := createProducts(db); err != nil {
		return err
	}

	fmt.Println("   👥 Creating customers...")
	if err := createCustomers(db); err != nil {
		return err
	}

	fmt.Printf("   🛒 Creating %d sales...\n", salesCount)
	if err := createSales(db); err != nil {
		return err
	}

	return nil
}

func createProducts(db *database.DB) error {
	products := []struct {
		name, category string
		price          float64
		stockQty       int
	}{
		{"Laptop Pro 15\"", models.CategoryElectronics, 1299.99, 50},
		{"Wireless Mouse", models.CategoryElectronics, 29.99, 200},
		{"Smartphone Case", models.CategoryElectronics, 24.99, 400},
		{"Tablet Stand", models.CategoryElectronics, 19.99, 180},
		{"LED Desk Lamp", models.CategoryHome, 59.99, 60},
		{"Coffee Mug", models.CategoryHome, 9.99, 300},
		{"Programming Book", models.CategoryBooks, 49.99, 100},
		{"Mystery Novel", models.CategoryBooks, 12.99, 250},
		{"Cookbook Collection", models.CategoryBooks, 34.99, 75},
		{"Cotton T-Shirt", models.CategoryClothing, 19.99, 500},
		{"Winter Jacket", models.CategoryClothing, 129.99, 80},
		{"Business Shirt", models.CategoryClothing, 39.99, 200},
		{"Running Shoes", models.CategorySports, 89.99, 150},
		{"Yoga Mat", models.CategorySports, 39.99, 120},
		{"Tennis Racket", models.CategorySports, 199.99, 40},
	}

	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (name, category, price, stock_qty)
			VALUES (?, ?, ?, ?)
		`, p.name, p.category, p.price, p.stockQty)
		if err != nil {
			return err
		}
	}

	return nil
}

func createCustomers(db *database.DB) error {
	customers := []struct {
		name, email, country, signupDate string
	}{
		{"John Doe", "john.doe@email.com", "USA", "2023-03-14"},
		{"Jane Smith", "jane.smith@gmail.com", "UK", "2023-06-02"},
		{"Bob Wilson", "bob.wilson@yahoo.com", "Canada", "2023-09-21"},
		{"Alice Brown", "alice.brown@hotmail.com", "Australia", "2024-01-08"},
		{"Charlie Davis", "charlie.davis@outlook.com", "Germany", "2024-02-17"},
		{"Diana Miller", "diana.miller@company.com", "Japan", "2024-04-30"},
		{"Frank Garcia", "frank.garcia@startup.io", "USA", "2024-05-11"},
		{"Grace Lee", "grace.lee@enterprise.com", "South Korea", "2024-07-23"},
		{"Henry Taylor", "henry.taylor@business.net", "France", "2024-08-05"},
		{"Ivy Anderson", "ivy.anderson@firm.org", "Sweden", "2024-10-19"},
	}

	for _, c := range customers {
		_, err := db.Exec(`
			INSERT INTO customers (name, email, country, signup_date)
			VALUES (?, ?, ?, ?)
		`, c.name, c.email, c.country, c.signupDate)
		if err != nil {
			return err
		}
	}

	return nil
}

func createSales(db *database.DB) error {
	type catalogRow struct {
		id       int64
		name     string
		category string
		price    float64
	}

	rows, err := db.Query(`SELECT id, name, category, price FROM products`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var catalog []catalogRow
	for rows.Next() {
		var p catalogRow
		if err := rows.Scan(&p.id, &p.name, &p.category, &p.price); err != nil {
			return err
		}
		catalog = append(catalog, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	custRows, err := db.Query(`SELECT id FROM customers`)
	if err != nil {
		return err
	}
	defer custRows.Close()

	var customerIDs []int64
	for custRows.Next() {
		var id int64
		if err := custRows.Scan(&id); err != nil {
			return err
		}
		customerIDs = append(customerIDs, id)
	}
	if err := custRows.Err(); err != nil {
		return err
	}

	if len(catalog) == 0 || len(customerIDs) == 0 {
		return fmt.Errorf("cannot generate sales without products and customers")
	}

	now := time.Now()
	for i := 0; i < salesCount; i++ {
		p := catalog[rand.Intn(len(catalog))]
		quantity := 1 + rand.Intn(5)
		date := now.AddDate(0, 0, -rand.Intn(seedDays)).Format("2006-01-02")
		total := float64(quantity) * p.price
		customerID := customerIDs[rand.Intn(len(customerIDs))]

		_, err := db.Exec(`
			INSERT INTO sales (date, product_id, product_name, category, quantity, unit_price, total_amount, customer_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, date, p.id, p.name, p.category, quantity, p.price, total, customerID)
		if err != nil {
			return err
		}
	}

	return nil
}
