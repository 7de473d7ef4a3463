package app

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned by AuthenticateUser for an unknown
// username or wrong password. Adapters map it to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ApplicationService is the single interface UI adapters call. It decouples
// presentation from the core services; implementations contain no display
// logic of any kind.
type ApplicationService interface {
	// AuthenticateUser verifies credentials and returns a session on success,
	// ErrInvalidCredentials otherwise.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// RegisterUser creates a new account. A taken username surfaces as
	// *core.DuplicateUsernameError.
	RegisterUser(ctx context.Context, req RegisterRequest) (*UserResult, error)

	// BrowseTable returns the full contents of one of the eleven schema
	// tables, ordered by primary key.
	BrowseTable(ctx context.Context, name string) (*TableResult, error)

	// LowStockReport returns inventory positions below their reorder level.
	LowStockReport(ctx context.Context) (*LowStockResult, error)

	// TopProducts returns the top n products by units sold.
	TopProducts(ctx context.Context, n int) (*TopProductsResult, error)

	// Revenue returns a revenue breakdown for the given kind
	// (product, store, or month).
	Revenue(ctx context.Context, kind RevenueKind) (*RevenueResult, error)

	// ClientHistory returns everything one client has bought, oldest first.
	ClientHistory(ctx context.Context, clientID int) (*ClientHistoryResult, error)

	// ListClients returns all clients.
	ListClients(ctx context.Context) (*ClientListResult, error)

	// CreateOrder creates a sale order with its line items.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error)

	// RecordPayment settles a sale order in full.
	RecordPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}
