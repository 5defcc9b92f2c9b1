package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mnavarro/salesboard/internal/config"
	"github.com/mnavarro/salesboard/internal/database"
	"github.com/mnavarro/salesboard/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Salesboard API server",
	Long: `Start the Salesboard API server which provides:
- REST API for sales reports and rollups
- Product and customer listings
- A minimal dashboard page at /

The schema is created on startup if it does not exist yet.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Salesboard Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("📋 Ensuring schema exists...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(db, logger)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
