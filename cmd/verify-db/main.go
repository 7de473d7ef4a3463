package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"wms/internal/core"
	"wms/internal/db"
)

// verify-db runs read-only checks against a seeded database: every table is
// reachable, no foreign key dangles, and sale order totals match their line
// items. Exits non-zero on the first failure.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()

	failed := false

	queries := core.NewQueryService(pool)
	for _, table := range core.AllTables() {
		rs, err := queries.ReadTable(ctx, string(table))
		if err != nil {
			log.Printf("[FAIL] read %s: %v", table, err)
			failed = true
			continue
		}
		log.Printf("[OK] %s: %d rows", table, len(rs.Rows))
	}

	orphanChecks := []struct {
		name string
		sql  string
	}{
		{"inventory -> product", `SELECT COUNT(*) FROM inventory i LEFT JOIN product p ON p.product_id = i.product_id WHERE p.product_id IS NULL`},
		{"inventory -> warehouse", `SELECT COUNT(*) FROM inventory i LEFT JOIN warehouse w ON w.warehouse_id = i.warehouse_id WHERE w.warehouse_id IS NULL`},
		{"sale_item -> sale_order", `SELECT COUNT(*) FROM sale_item si LEFT JOIN sale_order so ON so.sale_id = si.sale_id WHERE so.sale_id IS NULL`},
		{"purchase_item -> purchase_order", `SELECT COUNT(*) FROM purchase_item pi LEFT JOIN purchase_order po ON po.purchase_id = pi.purchase_id WHERE po.purchase_id IS NULL`},
		{"payment -> sale_order", `SELECT COUNT(*) FROM payment pay LEFT JOIN sale_order so ON so.sale_id = pay.sale_id WHERE so.sale_id IS NULL`},
	}
	for _, check := range orphanChecks {
		var orphans int
		if err := pool.QueryRow(ctx, check.sql).Scan(&orphans); err != nil {
			log.Printf("[FAIL] %s: %v", check.name, err)
			failed = true
			continue
		}
		if orphans > 0 {
			log.Printf("[FAIL] %s: %d orphan rows", check.name, orphans)
			failed = true
		} else {
			log.Printf("[OK] %s", check.name)
		}
	}

	var mismatched int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM sale_order so
		JOIN (
			SELECT sale_id, SUM(sale_price * quantity) AS line_total
			FROM sale_item
			GROUP BY sale_id
		) li ON li.sale_id = so.sale_id
		WHERE so.total_amount <> li.line_total`).Scan(&mismatched)
	if err != nil {
		log.Printf("[FAIL] order totals: %v", err)
		failed = true
	} else if mismatched > 0 {
		log.Printf("[FAIL] order totals: %d orders disagree with their line items", mismatched)
		failed = true
	} else {
		log.Println("[OK] order totals match line items")
	}

	if failed {
		os.Exit(1)
	}
	log.Println("[DONE] all checks passed")
}
