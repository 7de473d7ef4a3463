package app

import "wms/internal/core"

// UserSession identifies an authenticated user. It never carries the
// password hash.
type UserSession struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type UserResult struct {
	User *core.User `json:"user"`
}

type TableResult struct {
	Table string       `json:"table"`
	Data  *core.RowSet `json:"data"`
}

type LowStockResult struct {
	Alerts []core.LowStockAlert `json:"alerts"`
}

type TopProductsResult struct {
	Products []core.ProductSales `json:"products"`
}

type RevenueResult struct {
	Kind  RevenueKind        `json:"kind"`
	Lines []core.RevenueLine `json:"lines"`
}

type ClientHistoryResult struct {
	ClientID int                `json:"client_id"`
	Lines    []core.HistoryLine `json:"lines"`
}

type ClientListResult struct {
	Clients []core.Client `json:"clients"`
}

type OrderResult struct {
	Order *core.SaleOrder `json:"order"`
}

type PaymentResult struct {
	Payment *core.Payment `json:"payment"`
}
