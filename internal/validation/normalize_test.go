package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMoney_StringOrNumeric(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"45000", "45000"},
		{" 45000 ", "45000"},
		{float64(45000), "45000"},
		{int(100), "100"},
		{"0", "0"},
		{"1234.567", "1234.57"}, // monetary scale is 2
	}
	for _, tc := range cases {
		d, ferr := money("amount", tc.in)
		if ferr != nil {
			t.Fatalf("money(%v): unexpected error %v", tc.in, ferr)
		}
		if !d.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("money(%v): expected %s, got %s", tc.in, tc.want, d)
		}
	}
}

func TestMoney_Rejections(t *testing.T) {
	if _, ferr := money("amount", "12,5"); ferr == nil || ferr.Code != CodeMalformed {
		t.Errorf("expected malformed for \"12,5\", got %v", ferr)
	}
	if _, ferr := money("amount", "-10"); ferr == nil || ferr.Code != CodeOutOfRange {
		t.Errorf("expected out_of_range for negative, got %v", ferr)
	}
	if _, ferr := money("amount", nil); ferr == nil || ferr.Code != CodeRequired {
		t.Errorf("expected required for nil, got %v", ferr)
	}
	if _, ferr := money("amount", true); ferr == nil || ferr.Code != CodeMalformed {
		t.Errorf("expected malformed for bool, got %v", ferr)
	}
}

func TestOptionalMoney_AbsentIsZero(t *testing.T) {
	for _, in := range []any{nil, ""} {
		d, ferr := optionalMoney("amount", in)
		if ferr != nil {
			t.Fatalf("unexpected error: %v", ferr)
		}
		if !d.IsZero() {
			t.Errorf("expected zero for %v, got %s", in, d)
		}
	}
}

func TestOptionalDate_Normalization(t *testing.T) {
	native := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	cases := []any{
		native,
		"2025-03-14",
		"2025-03-14T15:09:26Z",
		"2025-03-14T15:09:26",
	}
	for _, in := range cases {
		got, ferr := optionalDate("date", in)
		if ferr != nil {
			t.Fatalf("optionalDate(%v): unexpected error %v", in, ferr)
		}
		if got == nil || !got.Equal(want) {
			t.Errorf("optionalDate(%v): expected %s, got %v", in, want, got)
		}
	}
}

func TestOptionalDate_AbsentPassesThroughNil(t *testing.T) {
	for _, in := range []any{nil, "", "   ", time.Time{}} {
		got, ferr := optionalDate("date", in)
		if ferr != nil {
			t.Fatalf("unexpected error for %v: %v", in, ferr)
		}
		if got != nil {
			t.Errorf("expected nil for %v, got %v", in, got)
		}
	}
}

func TestOptionalDate_Malformed(t *testing.T) {
	_, ferr := optionalDate("date", "14/03/2025")
	if ferr == nil || ferr.Code != CodeMalformed {
		t.Fatalf("expected malformed date error, got %v", ferr)
	}
}

func TestPlacement_Defaults(t *testing.T) {
	cases := []struct {
		in   any
		def  string
		want string
	}{
		{nil, "1", "1"},
		{"", "A", "A"},
		{"  ", "A", "A"},
		{"3", "1", "3"},
		{float64(2), "1", "2"},
		{int(5), "1", "5"},
		{"B", "A", "B"},
	}
	for _, tc := range cases {
		if got := placement(tc.in, tc.def); got != tc.want {
			t.Errorf("placement(%v, %q): expected %q, got %q", tc.in, tc.def, tc.want, got)
		}
	}
}

func TestTaxRate_SentinelsAndTruncation(t *testing.T) {
	rate, label, ferr := taxRate("taxRate", "KCT")
	if ferr != nil || rate != "0" || label != "KCT" {
		t.Fatalf("KCT: expected rate 0 with label, got %q/%q err %v", rate, label, ferr)
	}
	rate, label, ferr = taxRate("taxRate", "KKKNNT")
	if ferr != nil || rate != "0" || label != "KKKNNT" {
		t.Fatalf("KKKNNT: expected rate 0 with label, got %q/%q err %v", rate, label, ferr)
	}
	rate, label, ferr = taxRate("taxRate", 99.99)
	if ferr != nil || rate != "99" || label != "" {
		t.Fatalf("99.99: expected truncated 99, got %q/%q err %v", rate, label, ferr)
	}
}
