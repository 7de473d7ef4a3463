package app

import (
	"context"

	"wms/internal/core"
)

type appService struct {
	users     core.UserService
	queries   core.QueryService
	orders    core.OrderService
	reporting core.ReportingService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	users core.UserService,
	queries core.QueryService,
	orders core.OrderService,
	reporting core.ReportingService,
) ApplicationService {
	return &appService{
		users:     users,
		queries:   queries,
		orders:    orders,
		reporting: reporting,
	}
}

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return &UserSession{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (s *appService) RegisterUser(ctx context.Context, req RegisterRequest) (*UserResult, error) {
	user, err := s.users.RegisterUser(ctx, req.Username, req.Password, req.FullName, req.Role)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: user}, nil
}

func (s *appService) BrowseTable(ctx context.Context, name string) (*TableResult, error) {
	data, err := s.queries.ReadTable(ctx, name)
	if err != nil {
		return nil, err
	}
	return &TableResult{Table: name, Data: data}, nil
}

func (s *appService) LowStockReport(ctx context.Context) (*LowStockResult, error) {
	alerts, err := s.reporting.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &LowStockResult{Alerts: alerts}, nil
}

func (s *appService) TopProducts(ctx context.Context, n int) (*TopProductsResult, error) {
	products, err := s.reporting.TopSellingProducts(ctx, n)
	if err != nil {
		return nil, err
	}
	return &TopProductsResult{Products: products}, nil
}

func (s *appService) Revenue(ctx context.Context, kind RevenueKind) (*RevenueResult, error) {
	var (
		lines []core.RevenueLine
		err   error
	)
	switch kind {
	case RevenueByStore:
		lines, err = s.reporting.RevenueByStore(ctx)
	case RevenueByMonth:
		lines, err = s.reporting.RevenueByMonth(ctx)
	default:
		lines, err = s.reporting.RevenueByProduct(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &RevenueResult{Kind: kind, Lines: lines}, nil
}

func (s *appService) ClientHistory(ctx context.Context, clientID int) (*ClientHistoryResult, error) {
	lines, err := s.reporting.ClientHistory(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &ClientHistoryResult{ClientID: clientID, Lines: lines}, nil
}

func (s *appService) ListClients(ctx context.Context) (*ClientListResult, error) {
	clients, err := s.orders.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return &ClientListResult{Clients: clients}, nil
}

func (s *appService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error) {
	order, err := s.orders.CreateSaleOrder(ctx, req.Date, req.ClientID, req.StoreID, req.UserID, req.Lines)
	if err != nil {
		return nil, err
	}
	return &OrderResult{Order: order}, nil
}

func (s *appService) RecordPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	payment, err := s.orders.RecordPayment(ctx, req.SaleID, req.Method, req.Date)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: payment}, nil
}
