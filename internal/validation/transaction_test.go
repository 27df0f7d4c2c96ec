package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTransaction(t *testing.T) {
	orderID := uint(7)
	in := TransactionInput{
		TransactionID: "TXN-20260828-00001",
		OrderID:       &orderID,
		Subtotal:      decimal.NewFromInt(90_000),
		Tax:           "9000",
		Total:         99_000,
		PaymentMethod: "cash",
		CashierName:   "  Lan  ",
		StoreCode:     "S01",
		Items: []TransactionItemInput{
			{ProductID: 1, Name: "Pho bo", Quantity: "2", UnitPrice: "45000", Total: "90000"},
		},
	}
	tx, errs := ValidateTransaction(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tx.TransactionID != "TXN-20260828-00001" {
		t.Errorf("transaction id = %q", tx.TransactionID)
	}
	if tx.OrderID == nil || *tx.OrderID != orderID {
		t.Errorf("order id not carried, got %v", tx.OrderID)
	}
	if tx.CashierName != "Lan" {
		t.Errorf("expected trimmed cashier name, got %q", tx.CashierName)
	}
	if !tx.Total.Equal(decimal.NewFromInt(99_000)) {
		t.Errorf("total = %s", tx.Total)
	}
	if len(tx.Items) != 1 || !tx.Items[0].Quantity.Equal(decimal.NewFromInt(2)) {
		t.Errorf("items not normalized: %+v", tx.Items)
	}
}

func TestValidateTransaction_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		in    TransactionInput
		field string
	}{
		{"missing payment method", TransactionInput{Subtotal: "10", Total: "10"}, "paymentMethod"},
		{"missing subtotal", TransactionInput{Total: "10", PaymentMethod: "cash"}, "subtotal"},
		{"negative total", TransactionInput{Subtotal: "10", Total: "-1", PaymentMethod: "cash"}, "total"},
		{"malformed tax", TransactionInput{Subtotal: "10", Tax: "abc", Total: "10", PaymentMethod: "cash"}, "tax"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateTransaction(tc.in)
			if !errs.Has(tc.field) {
				t.Fatalf("expected %s rejection, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidateTransactionItem_NestedErrorsCarryIndex(t *testing.T) {
	in := TransactionInput{
		Subtotal:      "10",
		Total:         "10",
		PaymentMethod: "cash",
		Items: []TransactionItemInput{
			{ProductID: 1, Name: "ok", Quantity: "1", UnitPrice: "10", Total: "10"},
			{ProductID: 0, Name: "", Quantity: "0", UnitPrice: "10", Total: "10"},
		},
	}
	_, errs := ValidateTransaction(in)
	for _, field := range []string{"items[1].productId", "items[1].name", "items[1].quantity"} {
		if !errs.Has(field) {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
	for _, fe := range errs {
		if len(fe.Field) >= 8 && fe.Field[:8] == "items[0]" {
			t.Errorf("valid line reported an error: %v", fe)
		}
	}
}
