package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wms/internal/adapters/web"
	"wms/internal/app"
	"wms/internal/core"
)

// stubService returns canned results so handler behavior can be tested
// without a database.
type stubService struct{}

func (stubService) AuthenticateUser(_ context.Context, username, password string) (*app.UserSession, error) {
	if username != "pat" || password != "s3cret" {
		return nil, app.ErrInvalidCredentials
	}
	return &app.UserSession{UserID: 7, Username: "pat", FullName: "Pat Example", Role: "clerk"}, nil
}

func (stubService) RegisterUser(context.Context, app.RegisterRequest) (*app.UserResult, error) {
	return &app.UserResult{User: &core.User{ID: 8, Username: "new"}}, nil
}

func (stubService) BrowseTable(_ context.Context, name string) (*app.TableResult, error) {
	if _, err := core.ParseTable(name); err != nil {
		return nil, err
	}
	return &app.TableResult{Table: name, Data: &core.RowSet{Columns: []string{"product_id"}}}, nil
}

func (stubService) LowStockReport(context.Context) (*app.LowStockResult, error) {
	return &app.LowStockResult{}, nil
}

func (stubService) TopProducts(context.Context, int) (*app.TopProductsResult, error) {
	return &app.TopProductsResult{}, nil
}

func (stubService) Revenue(_ context.Context, kind app.RevenueKind) (*app.RevenueResult, error) {
	return &app.RevenueResult{Kind: kind}, nil
}

func (stubService) ClientHistory(_ context.Context, clientID int) (*app.ClientHistoryResult, error) {
	return &app.ClientHistoryResult{ClientID: clientID}, nil
}

func (stubService) ListClients(context.Context) (*app.ClientListResult, error) {
	return &app.ClientListResult{}, nil
}

func (stubService) CreateOrder(context.Context, app.CreateOrderRequest) (*app.OrderResult, error) {
	return &app.OrderResult{Order: &core.SaleOrder{ID: 1}}, nil
}

func (stubService) RecordPayment(context.Context, app.PaymentRequest) (*app.PaymentResult, error) {
	return &app.PaymentResult{Payment: &core.Payment{ID: 1, SaleID: 1}}, nil
}

func newTestHandler() http.Handler {
	return web.NewHandler(stubService{}, "", "test-secret")
}

func login(t *testing.T, handler http.Handler) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"pat","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("login did not set auth_token cookie")
	return nil
}

func TestLogin_WrongCredentials(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"pat","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNAUTHORIZED") {
		t.Errorf("body missing error code: %s", rec.Body.String())
	}
}

func TestProtectedRoute_RequiresAuth(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/low-stock", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestProtectedRoute_WithToken(t *testing.T) {
	handler := newTestHandler()
	cookie := login(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"username":"pat"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestProtectedRoute_RejectsTamperedToken(t *testing.T) {
	handler := newTestHandler()
	cookie := login(t, handler)
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestBrowseTable_UnknownTable(t *testing.T) {
	handler := newTestHandler()
	cookie := login(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tables/not_a_table", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNKNOWN_TABLE") {
		t.Errorf("body missing error code: %s", rec.Body.String())
	}
}

func TestRevenue_BadKind(t *testing.T) {
	handler := newTestHandler()
	cookie := login(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/revenue?kind=weekly", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateOrder_Created(t *testing.T) {
	handler := newTestHandler()
	cookie := login(t, handler)

	body := `{"sale_date":"2024-06-01","client_id":1,"store_id":1,"lines":[{"product_id":1,"sale_price":"5.00","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealth_NoAuthRequired(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
