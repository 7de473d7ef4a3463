package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "wms/internal/adapters/web"
	"wms/internal/app"
	"wms/internal/core"
	"wms/internal/db"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := core.NewSchemaManager(pool).EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	users := core.NewUserService(pool)
	queries := core.NewQueryService(pool)
	orders := core.NewOrderService(pool)
	reporting := core.NewReportingService(pool)

	svc := app.NewAppService(users, queries, orders, reporting)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
