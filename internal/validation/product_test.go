package validation

import (
	"testing"

	"pos-backend/internal/model"
)

func TestValidateProduct_Defaults(t *testing.T) {
	p, errs := ValidateProduct(ProductInput{
		Name:        "Coffee",
		SKU:         "C001",
		Price:       "45000",
		CategoryID:  uintPtr(1),
		Stock:       100,
		ProductType: 1,
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !p.IsActive {
		t.Error("expected is_active default true")
	}
	if p.TaxRate != "0.00" {
		t.Errorf("expected default tax rate 0.00, got %q", p.TaxRate)
	}
	if p.Unit != "Cái" {
		t.Errorf("expected default unit Cái, got %q", p.Unit)
	}
	if p.Floor != "1" || p.Zone != "A" {
		t.Errorf("expected placement defaults 1/A, got %q/%q", p.Floor, p.Zone)
	}
	if p.Price.String() != "45000" {
		t.Errorf("expected price 45000, got %s", p.Price)
	}
}

func TestValidateProduct_PriceRange(t *testing.T) {
	cases := []struct {
		name  string
		price any
		ok    bool
		code  string
	}{
		{"zero", "0", true, ""},
		{"upper bound minus one", 99999999.99, true, ""},
		{"string number", "45000", true, ""},
		{"numeric", float64(45000), true, ""},
		{"negative", "-1", false, CodeOutOfRange},
		{"at bound", "100000000", false, CodeOutOfRange},
		{"above bound", float64(150000000), false, CodeOutOfRange},
		{"garbage", "abc", false, CodeMalformed},
		{"missing", nil, false, CodeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateProduct(ProductInput{Name: "X", SKU: "X1", Price: tc.price})
			if tc.ok {
				if errs != nil {
					t.Fatalf("expected accept, got %v", errs)
				}
				return
			}
			if !errs.Has("price") {
				t.Fatalf("expected price error, got %v", errs)
			}
			if errs[0].Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, errs[0].Code)
			}
		})
	}
}

func TestValidateProduct_TaxRate(t *testing.T) {
	cases := []struct {
		name      string
		input     any
		wantRate  string
		wantLabel string
	}{
		{"absent defaults", nil, "0.00", ""},
		{"integer", float64(10), "10", ""},
		{"string integer", "8", "8", ""},
		{"truncated not rounded", 8.7, "8", ""},
		{"string decimal truncated", "5.25", "5", ""},
		{"zero", "0", "0", ""},
		{"hundred", float64(100), "100", ""},
		{"exempt label", model.TaxRateExempt, "0", model.TaxRateExempt},
		{"no-declare label", model.TaxRateNotDeclare, "0", model.TaxRateNotDeclare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, errs := ValidateProduct(ProductInput{Name: "X", SKU: "X1", Price: "1000", TaxRate: tc.input})
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if p.TaxRate != tc.wantRate {
				t.Errorf("rate: expected %q, got %q", tc.wantRate, p.TaxRate)
			}
			if p.TaxRateLabel != tc.wantLabel {
				t.Errorf("label: expected %q, got %q", tc.wantLabel, p.TaxRateLabel)
			}
		})
	}

	for _, bad := range []any{"-1", float64(101), "abc"} {
		_, errs := ValidateProduct(ProductInput{Name: "X", SKU: "X1", Price: "1000", TaxRate: bad})
		if !errs.Has("taxRate") {
			t.Errorf("expected taxRate rejection for %v", bad)
		}
	}
}

func TestValidateProduct_Placement(t *testing.T) {
	p, errs := ValidateProduct(ProductInput{Name: "X", SKU: "X1", Price: "1000", Floor: float64(2), Zone: "B"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if p.Floor != "2" {
		t.Errorf("expected numeric floor normalized to \"2\", got %q", p.Floor)
	}
	if p.Zone != "B" {
		t.Errorf("expected zone B, got %q", p.Zone)
	}
}

func TestValidateProduct_RequiredFields(t *testing.T) {
	_, errs := ValidateProduct(ProductInput{Price: "1000"})
	if !errs.Has("name") || !errs.Has("sku") {
		t.Fatalf("expected name and sku errors, got %v", errs)
	}
}

func uintPtr(v uint) *uint { return &v }
