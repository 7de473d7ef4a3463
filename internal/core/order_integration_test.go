package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"wms/internal/core"
)

func TestOrderService_CreateSaleOrder(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	orders := core.NewOrderService(pool)
	lines := []core.SaleLineInput{
		{ProductID: 1, SalePrice: decimal.RequireFromString("10.50"), Quantity: 2},
		{ProductID: 2, SalePrice: decimal.RequireFromString("3.25"), Quantity: 4},
	}

	order, err := orders.CreateSaleOrder(ctx, "2024-06-01", 1, 1, 1, lines)
	if err != nil {
		t.Fatalf("CreateSaleOrder failed: %v", err)
	}
	if order.ID == 0 {
		t.Error("expected a non-zero sale id")
	}

	// 2×10.50 + 4×3.25 = 34.00
	if want := decimal.RequireFromString("34.00"); !order.TotalAmount.Equal(want) {
		t.Errorf("total_amount = %s, want %s", order.TotalAmount, want)
	}

	stored, items, err := orders.GetSaleOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetSaleOrder failed: %v", err)
	}
	if !stored.TotalAmount.Equal(order.TotalAmount) {
		t.Errorf("stored total %s != computed %s", stored.TotalAmount, order.TotalAmount)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 line items, got %d", len(items))
	}
}

func TestOrderService_CreateSaleOrder_Validation(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	orders := core.NewOrderService(pool)
	price := decimal.RequireFromString("5.00")

	cases := []struct {
		name  string
		date  string
		lines []core.SaleLineInput
	}{
		{"no lines", "2024-06-01", nil},
		{"bad date", "01/06/2024", []core.SaleLineInput{{ProductID: 1, SalePrice: price, Quantity: 1}}},
		{"zero quantity", "2024-06-01", []core.SaleLineInput{{ProductID: 1, SalePrice: price, Quantity: 0}}},
		{"negative price", "2024-06-01", []core.SaleLineInput{{ProductID: 1, SalePrice: decimal.RequireFromString("-1"), Quantity: 1}}},
		{"duplicate product", "2024-06-01", []core.SaleLineInput{
			{ProductID: 1, SalePrice: price, Quantity: 1},
			{ProductID: 1, SalePrice: price, Quantity: 2},
		}},
	}
	for _, tc := range cases {
		if _, err := orders.CreateSaleOrder(ctx, tc.date, 1, 1, 1, tc.lines); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestOrderService_CreateSaleOrder_UnknownClient(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	orders := core.NewOrderService(pool)
	lines := []core.SaleLineInput{
		{ProductID: 1, SalePrice: decimal.RequireFromString("5.00"), Quantity: 1},
	}
	_, err := orders.CreateSaleOrder(context.Background(), "2024-06-01", 999999, 1, 1, lines)
	if err == nil {
		t.Fatal("expected foreign key failure for unknown client")
	}
	var cv *core.ConstraintViolationError
	if !errors.As(err, &cv) {
		t.Fatalf("got %T, want *ConstraintViolationError", err)
	}
}

func TestOrderService_RecordPayment(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	orders := core.NewOrderService(pool)
	lines := []core.SaleLineInput{
		{ProductID: 3, SalePrice: decimal.RequireFromString("12.00"), Quantity: 3},
	}
	order, err := orders.CreateSaleOrder(ctx, "2024-06-02", 2, 1, 1, lines)
	if err != nil {
		t.Fatalf("CreateSaleOrder failed: %v", err)
	}

	payment, err := orders.RecordPayment(ctx, order.ID, "card", "2024-06-03")
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if !payment.Amount.Equal(order.TotalAmount) {
		t.Errorf("payment amount %s != order total %s", payment.Amount, order.TotalAmount)
	}
	if payment.Reference == "" {
		t.Error("expected a generated reference number")
	}

	// The payment.sale_id unique constraint blocks settling twice.
	_, err = orders.RecordPayment(ctx, order.ID, "cash", "2024-06-04")
	if err == nil {
		t.Fatal("expected second payment to fail")
	}
	var cv *core.ConstraintViolationError
	if !errors.As(err, &cv) {
		t.Fatalf("got %T, want *ConstraintViolationError", err)
	}
}

func TestOrderService_RecordPayment_UnknownOrder(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	orders := core.NewOrderService(pool)
	if _, err := orders.RecordPayment(context.Background(), 999999, "card", "2024-06-03"); err == nil {
		t.Fatal("expected unknown sale order to fail")
	}
}

func TestOrderService_ListClients(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	orders := core.NewOrderService(pool)
	clients, err := orders.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients) != 10 {
		t.Errorf("expected 10 seeded clients, got %d", len(clients))
	}
	for i := 1; i < len(clients); i++ {
		if clients[i].ID <= clients[i-1].ID {
			t.Errorf("clients not id-ascending at %d", i)
		}
	}
}
