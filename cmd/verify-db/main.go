package main

import (
	"context"
	"fmt"
	"os"

	"showroom-payments/internal/db"

	"github.com/joho/godotenv"
)

// Smoke check: confirms connectivity and prints row counts for every table
// the service touches. Useful after pointing DATABASE_URL at a new warehouse.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		fmt.Printf("Failed to connect to warehouse: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	tables := []string{
		"dealers",
		"vehicles",
		"showroom_payments",
		"discount_eligibility",
		"discount_quotes",
	}

	failed := false
	for _, table := range tables {
		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			fmt.Printf("  %-22s MISSING (%v)\n", table, err)
			failed = true
			continue
		}
		fmt.Printf("  %-22s %d rows\n", table, count)
	}

	if failed {
		fmt.Println("Schema incomplete — run cmd/migrate first.")
		os.Exit(1)
	}
	fmt.Println("Warehouse OK.")
}
