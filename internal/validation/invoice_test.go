package validation

import (
	"testing"

	"pos-backend/internal/model"
)

func TestValidateInvoiceItem_TaxRateSentinels(t *testing.T) {
	cases := []struct {
		name      string
		taxRate   any
		wantRate  string
		wantLabel string
	}{
		{"numeric rate", 8, "8", ""},
		{"numeric string", "10", "10", ""},
		{"exempt", model.TaxRateExempt, "0", model.TaxRateExempt},
		{"not declared", model.TaxRateNotDeclare, "0", model.TaxRateNotDeclare},
		{"absent", nil, model.DefaultTaxRate, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, errs := ValidateInvoiceItem(InvoiceItemInput{
				Name:      "Pho bo",
				Quantity:  "1",
				UnitPrice: "45000",
				Total:     "45000",
				TaxRate:   tc.taxRate,
			})
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if item.TaxRate != tc.wantRate {
				t.Errorf("rate = %q, want %q", item.TaxRate, tc.wantRate)
			}
			if item.TaxRateLabel != tc.wantLabel {
				t.Errorf("label = %q, want %q", item.TaxRateLabel, tc.wantLabel)
			}
		})
	}
}

func TestValidateInvoiceItem_Rejections(t *testing.T) {
	_, errs := ValidateInvoiceItem(InvoiceItemInput{Quantity: "0", UnitPrice: "-1", TaxRate: 101})
	for _, field := range []string{"name", "quantity", "unitPrice", "taxRate"} {
		if !errs.Has(field) {
			t.Errorf("expected rejection on %s, got %v", field, errs)
		}
	}
}
