package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"pos-backend/internal/model"
)

func TestValidateOrder_StatusEnum(t *testing.T) {
	in := OrderInput{Status: "unknown"}
	_, errs := ValidateOrder(in)
	if !errs.Has("status") {
		t.Fatalf("expected status rejection, got %v", errs)
	}
	if errs[0].Code != CodeInvalidEnum {
		t.Errorf("expected code %s, got %s", CodeInvalidEnum, errs[0].Code)
	}
	if !strings.Contains(errs[0].Message, "pending") || !strings.Contains(errs[0].Message, "cancelled") {
		t.Errorf("expected message to name the allowed set, got %q", errs[0].Message)
	}

	in.Status = "pending"
	order, errs := ValidateOrder(in)
	if errs != nil {
		t.Fatalf("expected accept with pending, got %v", errs)
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("expected status pending, got %q", order.Status)
	}
}

func TestValidateOrder_Defaults(t *testing.T) {
	order, errs := ValidateOrder(OrderInput{})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("expected default status pending, got %q", order.Status)
	}
	if order.PaymentStatus != model.PaymentStatusPending {
		t.Errorf("expected default payment status pending, got %q", order.PaymentStatus)
	}
	if order.SalesChannel != model.ChannelTable {
		t.Errorf("expected default channel table, got %q", order.SalesChannel)
	}
	if order.EInvoiceStatus != model.EInvoiceStatusNone {
		t.Errorf("expected e-invoice status 0, got %d", order.EInvoiceStatus)
	}
}

func TestValidateOrder_EInvoiceStatusRange(t *testing.T) {
	for _, code := range []int{-1, 11, 99} {
		_, errs := ValidateOrder(OrderInput{EInvoiceStatus: code})
		if !errs.Has("eInvoiceStatus") {
			t.Errorf("expected rejection for e-invoice status %d", code)
		}
	}
	for code := 0; code <= 10; code++ {
		if _, errs := ValidateOrder(OrderInput{EInvoiceStatus: code}); errs != nil {
			t.Errorf("expected accept for e-invoice status %d, got %v", code, errs)
		}
	}
}

func TestValidateOrderItem_FractionalQuantity(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"0.25", "0.25"},
		{"1.2345", "1.2345"},
		{float64(0.5), "0.5"},
		{"2", "2"},
		{"0.123456", "0.1234"}, // excess precision truncated to scale 4
	}
	for _, tc := range cases {
		item, errs := ValidateOrderItem(OrderItemInput{ProductID: 1, Quantity: tc.in, UnitPrice: "1000"})
		if errs != nil {
			t.Fatalf("quantity %v: unexpected errors %v", tc.in, errs)
		}
		if !item.Quantity.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("quantity %v: expected %s, got %s", tc.in, tc.want, item.Quantity)
		}
	}
}

func TestValidateOrderItem_Rejections(t *testing.T) {
	_, errs := ValidateOrderItem(OrderItemInput{Quantity: "0", UnitPrice: "x", Status: "done"})
	for _, field := range []string{"productId", "quantity", "unitPrice", "status"} {
		if !errs.Has(field) {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateOrderItem_EmptyStatusIsValid(t *testing.T) {
	item, errs := ValidateOrderItem(OrderItemInput{ProductID: 1, Quantity: "1", UnitPrice: "1000"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if item.Status != model.OrderItemStatusNone {
		t.Errorf("expected empty status preserved, got %q", item.Status)
	}
}

func TestValidateOrder_NestedItemErrorsCarryIndex(t *testing.T) {
	_, errs := ValidateOrder(OrderInput{
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: "1", UnitPrice: "1000"},
			{ProductID: 2, Quantity: "-1", UnitPrice: "1000"},
		},
	})
	if !errs.Has("items[1].quantity") {
		t.Fatalf("expected indexed item error, got %v", errs)
	}
}
