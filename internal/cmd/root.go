package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salesboard",
	Short: "Salesboard - Sales Analytics API",
	Long: `Salesboard serves read-only analytics over a small relational
dataset of sales, products and customers. It exposes JSON report endpoints
(raw sales, summary, daily/category/product rollups, top products) plus a
minimal dashboard page.

Run "salesboard seed" once to create the schema and sample data, then
"salesboard run" to start the API server.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
