package app

import (
	"fmt"

	"wms/internal/core"
)

// RegisterRequest carries a new-account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RevenueKind selects one of the three revenue breakdowns.
type RevenueKind string

const (
	RevenueByProduct RevenueKind = "product"
	RevenueByStore   RevenueKind = "store"
	RevenueByMonth   RevenueKind = "month"
)

// ParseRevenueKind validates a caller-supplied report selector.
func ParseRevenueKind(s string) (RevenueKind, error) {
	switch RevenueKind(s) {
	case RevenueByProduct, RevenueByStore, RevenueByMonth:
		return RevenueKind(s), nil
	}
	return "", fmt.Errorf("unknown revenue report kind %q (want product, store, or month)", s)
}

// CreateOrderRequest carries a new sale order with its lines.
type CreateOrderRequest struct {
	Date     string               `json:"sale_date"` // YYYY-MM-DD
	ClientID int                  `json:"client_id"`
	StoreID  int                  `json:"store_id"`
	UserID   int                  `json:"user_id"`
	Lines    []core.SaleLineInput `json:"lines"`
}

// PaymentRequest settles an existing sale order.
type PaymentRequest struct {
	SaleID int    `json:"sale_id"`
	Method string `json:"payment_method"`
	Date   string `json:"payment_date"` // YYYY-MM-DD
}
