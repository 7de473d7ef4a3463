package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OrderService covers the caller-issued write paths of the sale side:
// creating sale orders with their line items and settling them with a
// payment. Purchase orders enter only through the seed dataset for now.
type OrderService interface {
	// CreateSaleOrder inserts a sale order and its lines in one transaction.
	// total_amount is computed as Σ quantity × sale_price.
	CreateSaleOrder(ctx context.Context, date string, clientID, storeID, userID int, lines []SaleLineInput) (*SaleOrder, error)

	// RecordPayment settles a sale order in full. The amount is taken from
	// the order's total_amount and the reference number is generated. A
	// second payment for the same sale violates the payment.sale_id unique
	// constraint and surfaces as *ConstraintViolationError.
	RecordPayment(ctx context.Context, saleID int, method, date string) (*Payment, error)

	// GetSaleOrder returns one sale order with its line items.
	GetSaleOrder(ctx context.Context, saleID int) (*SaleOrder, []SaleItem, error)

	// ListClients returns all clients ordered by id.
	ListClients(ctx context.Context) ([]Client, error)
}

type orderService struct {
	pool *pgxpool.Pool
}

func NewOrderService(pool *pgxpool.Pool) OrderService {
	return &orderService{pool: pool}
}

func (s *orderService) CreateSaleOrder(ctx context.Context, date string, clientID, storeID, userID int, lines []SaleLineInput) (*SaleOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("sale order must have at least one line")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid sale date %q: %w", date, err)
	}

	total := decimal.Zero
	seen := make(map[int]bool, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive for product %d, got %d", line.ProductID, line.Quantity)
		}
		if line.SalePrice.IsNegative() {
			return nil, fmt.Errorf("sale price cannot be negative for product %d, got %s", line.ProductID, line.SalePrice)
		}
		if seen[line.ProductID] {
			return nil, fmt.Errorf("duplicate product %d in sale order", line.ProductID)
		}
		seen[line.ProductID] = true
		total = total.Add(line.SalePrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer tx.Rollback(ctx)

	order := &SaleOrder{Date: date, TotalAmount: total, ClientID: clientID, StoreID: storeID, UserID: userID}
	err = tx.QueryRow(ctx, `
		INSERT INTO sale_order (sale_date, total_amount, client_id, store_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING sale_id`,
		date, total, clientID, storeID, userID,
	).Scan(&order.ID)
	if err != nil {
		return nil, classifyWriteError(err)
	}

	for _, line := range lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO sale_item (sale_id, product_id, sale_price, quantity)
			VALUES ($1, $2, $3, $4)`,
			order.ID, line.ProductID, line.SalePrice, line.Quantity,
		)
		if err != nil {
			return nil, classifyWriteError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return order, nil
}

func (s *orderService) RecordPayment(ctx context.Context, saleID int, method, date string) (*Payment, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid payment date %q: %w", date, err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer tx.Rollback(ctx)

	var amount decimal.Decimal
	err = tx.QueryRow(ctx, "SELECT total_amount FROM sale_order WHERE sale_id = $1", saleID).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sale order %d not found", saleID)
	}
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	p := &Payment{
		Date:      date,
		Amount:    amount,
		Method:    method,
		Reference: uuid.NewString(),
		SaleID:    saleID,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO payment (payment_date, amount, payment_method, reference_number, sale_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id`,
		p.Date, p.Amount, p.Method, p.Reference, p.SaleID,
	).Scan(&p.ID)
	if err != nil {
		return nil, classifyWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return p, nil
}

func (s *orderService) GetSaleOrder(ctx context.Context, saleID int) (*SaleOrder, []SaleItem, error) {
	order := &SaleOrder{}
	err := s.pool.QueryRow(ctx, `
		SELECT sale_id, sale_date::text, total_amount, client_id, store_id, user_id
		FROM sale_order
		WHERE sale_id = $1`,
		saleID,
	).Scan(&order.ID, &order.Date, &order.TotalAmount, &order.ClientID, &order.StoreID, &order.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, fmt.Errorf("sale order %d not found", saleID)
	}
	if err != nil {
		return nil, nil, &ConnectionError{Err: err}
	}

	rows, err := s.pool.Query(ctx, `
		SELECT sale_id, product_id, sale_price, quantity
		FROM sale_item
		WHERE sale_id = $1
		ORDER BY product_id`,
		saleID,
	)
	if err != nil {
		return nil, nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	var items []SaleItem
	for rows.Next() {
		var it SaleItem
		if err := rows.Scan(&it.SaleID, &it.ProductID, &it.SalePrice, &it.Quantity); err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return order, items, nil
}

func (s *orderService) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT client_id, client_name, COALESCE(email, ''), COALESCE(phone, '')
		FROM client
		ORDER BY client_id`,
	)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, nil
}
