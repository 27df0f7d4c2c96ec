package model

import (
	"testing"
	"time"
)

func TestPriceListActiveAt(t *testing.T) {
	day := func(s string) *time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return &parsed
	}
	at := func(s string) time.Time { return *day(s) }

	cases := []struct {
		name string
		list PriceList
		t    time.Time
		want bool
	}{
		{"open ended", PriceList{}, at("2026-01-15"), true},
		{"inside window", PriceList{ValidFrom: day("2026-01-01"), ValidTo: day("2026-01-31")}, at("2026-01-15"), true},
		{"on lower bound", PriceList{ValidFrom: day("2026-01-01")}, at("2026-01-01"), true},
		{"before lower bound", PriceList{ValidFrom: day("2026-01-01")}, at("2025-12-31"), false},
		{"on upper bound", PriceList{ValidTo: day("2026-01-31")}, at("2026-01-31"), true},
		{"after upper bound", PriceList{ValidTo: day("2026-01-31")}, at("2026-02-01"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.list.ActiveAt(tc.t); got != tc.want {
				t.Errorf("ActiveAt(%s) = %v, want %v", tc.t.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}
