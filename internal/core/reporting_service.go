package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

// LowStockAlert is an inventory position below its reorder level.
type LowStockAlert struct {
	WarehouseID    int    `json:"warehouse_id"`
	WarehouseName  string `json:"warehouse_name"`
	ProductID      int    `json:"product_id"`
	ProductName    string `json:"product_name"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ReorderLevel   int    `json:"reorder_level"`
}

// ProductSales is total units sold for one product.
type ProductSales struct {
	ProductName string `json:"product_name"`
	UnitsSold   int64  `json:"total_units_sold"`
}

// RevenueLine is revenue attributed to one group (product, store, or month).
type RevenueLine struct {
	Group   string          `json:"group"`
	Revenue decimal.Decimal `json:"revenue"`
}

// HistoryLine is one purchased line item in a client's history.
type HistoryLine struct {
	SaleDate    string          `json:"sale_date"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// Bounds for the Top-N report; out-of-range values are clamped.
const (
	TopProductsMin     = 1
	TopProductsMax     = 20
	TopProductsDefault = 5
)

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService provides the read-only aggregate views over the schema.
// Every method is a single deterministic query; none mutates state.
type ReportingService interface {
	// LowStock returns every inventory row with quantity_on_hand below its
	// reorder level, joined to warehouse and product names. An empty slice
	// means no alerts, not an error.
	LowStock(ctx context.Context) ([]LowStockAlert, error)

	// TopSellingProducts returns up to n products by total units sold,
	// descending, ties broken by product name for a stable order. n is
	// clamped to [TopProductsMin, TopProductsMax].
	TopSellingProducts(ctx context.Context, n int) ([]ProductSales, error)

	// RevenueByProduct returns Σ quantity × sale_price per product.
	RevenueByProduct(ctx context.Context) ([]RevenueLine, error)

	// RevenueByStore returns Σ quantity × sale_price per store, attributed
	// through the sale_order → store join.
	RevenueByStore(ctx context.Context) ([]RevenueLine, error)

	// RevenueByMonth returns Σ quantity × sale_price per calendar month of
	// the sale date, chronologically ascending. Group is YYYY-MM.
	RevenueByMonth(ctx context.Context) ([]RevenueLine, error)

	// ClientHistory returns all line items bought by one client, sale date
	// ascending. An unknown client id yields an empty slice.
	ClientHistory(ctx context.Context, clientID int) ([]HistoryLine, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type reportingService struct {
	pool *pgxpool.Pool
}

// NewReportingService constructs a ReportingService backed by the given pool.
func NewReportingService(pool *pgxpool.Pool) ReportingService {
	return &reportingService{pool: pool}
}

func (s *reportingService) LowStock(ctx context.Context) ([]LowStockAlert, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.warehouse_id, w.warehouse_name, i.product_id, p.product_name,
		       i.quantity_on_hand, i.reorder_level
		FROM inventory i
		JOIN warehouse w ON i.warehouse_id = w.warehouse_id
		JOIN product p   ON i.product_id = p.product_id
		WHERE i.quantity_on_hand < i.reorder_level
		ORDER BY i.warehouse_id, i.product_id
	`)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	alerts := []LowStockAlert{}
	for rows.Next() {
		var a LowStockAlert
		if err := rows.Scan(&a.WarehouseID, &a.WarehouseName, &a.ProductID, &a.ProductName,
			&a.QuantityOnHand, &a.ReorderLevel); err != nil {
			return nil, fmt.Errorf("failed to scan low stock row: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *reportingService) TopSellingProducts(ctx context.Context, n int) ([]ProductSales, error) {
	if n < TopProductsMin {
		n = TopProductsMin
	}
	if n > TopProductsMax {
		n = TopProductsMax
	}

	rows, err := s.pool.Query(ctx, `
		SELECT p.product_name, SUM(si.quantity) AS total_units_sold
		FROM sale_item si
		JOIN product p ON si.product_id = p.product_id
		GROUP BY p.product_name
		ORDER BY total_units_sold DESC, p.product_name
		LIMIT $1
	`, n)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	var top []ProductSales
	for rows.Next() {
		var ps ProductSales
		if err := rows.Scan(&ps.ProductName, &ps.UnitsSold); err != nil {
			return nil, fmt.Errorf("failed to scan product sales row: %w", err)
		}
		top = append(top, ps)
	}
	return top, rows.Err()
}

func (s *reportingService) RevenueByProduct(ctx context.Context) ([]RevenueLine, error) {
	return s.revenueQuery(ctx, `
		SELECT p.product_name, SUM(si.quantity * si.sale_price) AS revenue
		FROM sale_item si
		JOIN product p ON si.product_id = p.product_id
		GROUP BY p.product_name
		ORDER BY p.product_name
	`)
}

func (s *reportingService) RevenueByStore(ctx context.Context) ([]RevenueLine, error) {
	return s.revenueQuery(ctx, `
		SELECT st.store_name, SUM(si.quantity * si.sale_price) AS revenue
		FROM sale_item si
		JOIN sale_order so ON si.sale_id = so.sale_id
		JOIN store st      ON so.store_id = st.store_id
		GROUP BY st.store_name
		ORDER BY st.store_name
	`)
}

func (s *reportingService) RevenueByMonth(ctx context.Context) ([]RevenueLine, error) {
	return s.revenueQuery(ctx, `
		SELECT to_char(DATE_TRUNC('month', so.sale_date), 'YYYY-MM') AS month,
		       SUM(si.quantity * si.sale_price) AS revenue
		FROM sale_item si
		JOIN sale_order so ON si.sale_id = so.sale_id
		GROUP BY month
		ORDER BY month
	`)
}

// revenueQuery runs one of the three grouped revenue statements. All three
// project (group label, revenue sum).
func (s *reportingService) revenueQuery(ctx context.Context, q string) ([]RevenueLine, error) {
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	var lines []RevenueLine
	for rows.Next() {
		var rl RevenueLine
		if err := rows.Scan(&rl.Group, &rl.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		lines = append(lines, rl)
	}
	return lines, rows.Err()
}

func (s *reportingService) ClientHistory(ctx context.Context, clientID int) ([]HistoryLine, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT so.sale_date::text, p.product_name, si.quantity, si.sale_price
		FROM sale_order so
		JOIN sale_item si ON so.sale_id = si.sale_id
		JOIN product p    ON si.product_id = p.product_id
		WHERE so.client_id = $1
		ORDER BY so.sale_date, so.sale_id, p.product_name
	`, clientID)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	history := []HistoryLine{}
	for rows.Next() {
		var hl HistoryLine
		if err := rows.Scan(&hl.SaleDate, &hl.ProductName, &hl.Quantity, &hl.SalePrice); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, hl)
	}
	return history, rows.Err()
}
