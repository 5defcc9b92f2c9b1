package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mnavarro/salesboard/internal/config"
	"github.com/mnavarro/salesboard/internal/database"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity and dataset contents",
	Long: `Connects to the configured database, verifies it responds, and
prints per-table row counts plus the distinct product categories. Useful to
verify that "salesboard seed" produced the expected dataset.`,
	RunE: checkDatabase,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Printf("✅ Connected (%s)\n", db.Driver())

	for _, table := range []string{"sales", "products", "customers"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			fmt.Printf("   ⚠️  %s: %v\n", table, err)
			continue
		}
		fmt.Printf("   📊 %s: %d rows\n", table, count)
	}

	rows, err := db.Query(`SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("📭 No product categories found")
		fmt.Println("💡 Try running: salesboard seed")
		return nil
	}

	fmt.Printf("   🏷️  Categories: %s\n", strings.Join(categories, ", "))
	return nil
}
