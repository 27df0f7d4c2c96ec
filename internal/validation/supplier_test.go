package validation

import (
	"testing"

	"github.com/shopspring/decimal"

	"pos-backend/internal/model"
)

func TestValidateSupplier(t *testing.T) {
	s, errs := ValidateSupplier(SupplierInput{Code: "SUP01", Name: "Đại lý A", PaymentTerms: "NET30"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if s.Status != model.SupplierActive {
		t.Errorf("expected default status active, got %q", s.Status)
	}

	_, errs = ValidateSupplier(SupplierInput{Code: "SUP01", Name: "A", Status: "paused"})
	if !errs.Has("status") {
		t.Fatalf("expected status rejection, got %v", errs)
	}

	_, errs = ValidateSupplier(SupplierInput{})
	if !errs.Has("code") || !errs.Has("name") {
		t.Fatalf("expected code and name errors, got %v", errs)
	}
}

func TestValidatePurchaseReceipt_PartialDelivery(t *testing.T) {
	r, errs := ValidatePurchaseReceipt(PurchaseReceiptInput{
		SupplierID:  1,
		ReceiptDate: "2025-06-01",
		Subtotal:    "500000",
		Total:       "500000",
		Items: []PurchaseReceiptItemInput{
			{ProductID: 1, Quantity: "10", ReceivedQuantity: "4.5", UnitPrice: "50000", RowOrder: 1},
			{ProductID: 2, Quantity: "2.25", UnitPrice: "100000", DiscountPercent: "10", RowOrder: 2},
		},
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !r.Items[0].ReceivedQuantity.Equal(decimal.RequireFromString("4.5")) {
		t.Errorf("expected received quantity 4.5, got %s", r.Items[0].ReceivedQuantity)
	}
	if !r.Items[1].ReceivedQuantity.IsZero() {
		t.Errorf("expected absent received quantity to default to 0, got %s", r.Items[1].ReceivedQuantity)
	}
	if r.ReceiptDate == nil {
		t.Error("expected receipt date normalized from ISO string")
	}
}

func TestValidatePurchaseReceipt_ItemRejections(t *testing.T) {
	_, errs := ValidatePurchaseReceipt(PurchaseReceiptInput{
		SupplierID: 1,
		Items: []PurchaseReceiptItemInput{
			{ProductID: 1, Quantity: "1", UnitPrice: "100", DiscountPercent: "150"},
		},
	})
	if !errs.Has("items[0].discountPercent") {
		t.Fatalf("expected discountPercent rejection, got %v", errs)
	}
}
