package model

import "testing"

func TestOrderIsTerminal(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{OrderStatusPending, false},
		{OrderStatusConfirmed, false},
		{OrderStatusPreparing, false},
		{OrderStatusReady, false},
		{OrderStatusServed, false},
		{OrderStatusPaid, true},
		{OrderStatusCancelled, true},
	}
	for _, tc := range cases {
		o := Order{Status: tc.status}
		if got := o.IsTerminal(); got != tc.want {
			t.Errorf("IsTerminal() with status %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}
