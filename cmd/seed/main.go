package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"wms/internal/core"
	"wms/internal/db"
)

// seed creates the schema if needed, then wipes every table and reloads the
// reference dataset. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.WaitForDatabase(ctx, 10, 2*time.Second)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := core.NewSchemaManager(pool).EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	log.Println("schema ready")

	if err := core.NewSeedLoader(pool).ResetAndSeed(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed data loaded")
}
