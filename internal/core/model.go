package core

import "github.com/shopspring/decimal"

// Product is a stocked item with catalog pricing.
type Product struct {
	ID          int             `json:"product_id"`
	Name        string          `json:"product_name"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Warehouse struct {
	ID       int    `json:"warehouse_id"`
	Name     string `json:"warehouse_name"`
	Location string `json:"warehouse_location"`
}

// InventoryItem is one (warehouse, product) stock position.
// The pair is the primary key — a product appears at most once per warehouse.
type InventoryItem struct {
	WarehouseID    int `json:"warehouse_id"`
	ProductID      int `json:"product_id"`
	QuantityOnHand int `json:"quantity_on_hand"`
	ReorderLevel   int `json:"reorder_level"`
}

// User is a system account. PasswordHash is a bcrypt hash for accounts
// created through RegisterUser; seeded accounts carry placeholder strings
// that never verify.
type User struct {
	ID           int    `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         string `json:"user_role"`
}

type Client struct {
	ID    int    `json:"client_id"`
	Name  string `json:"client_name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Store struct {
	ID       int    `json:"store_id"`
	Name     string `json:"store_name"`
	Location string `json:"store_location"`
}

// PurchaseOrder is a restock order against a warehouse. Date is YYYY-MM-DD.
type PurchaseOrder struct {
	ID          int             `json:"purchase_id"`
	Date        string          `json:"purchase_date"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	WarehouseID int             `json:"warehouse_id"`
	UserID      int             `json:"user_id"`
}

// PurchaseItem is one line of a purchase order, keyed by (purchase, product).
type PurchaseItem struct {
	PurchaseID int             `json:"purchase_id"`
	ProductID  int             `json:"product_id"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Quantity   int             `json:"quantity"`
}

// SaleOrder is a client sale issued from a store. Date is YYYY-MM-DD.
type SaleOrder struct {
	ID          int             `json:"sale_id"`
	Date        string          `json:"sale_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ClientID    int             `json:"client_id"`
	StoreID     int             `json:"store_id"`
	UserID      int             `json:"user_id"`
}

// SaleItem is one line of a sale order, keyed by (sale, product).
type SaleItem struct {
	SaleID    int             `json:"sale_id"`
	ProductID int             `json:"product_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Quantity  int             `json:"quantity"`
}

// Payment settles exactly one sale order (payment.sale_id is UNIQUE).
type Payment struct {
	ID        int             `json:"payment_id"`
	Date      string          `json:"payment_date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"payment_method"`
	Reference string          `json:"reference_number"`
	SaleID    int             `json:"sale_id"`
}

// SaleLineInput is a caller-supplied order line for CreateSaleOrder.
type SaleLineInput struct {
	ProductID int             `json:"product_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Quantity  int             `json:"quantity"`
}
