package service

import (
	"testing"

	"pos-backend/internal/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.OrderStatusPending, model.OrderStatusConfirmed, true},
		{model.OrderStatusConfirmed, model.OrderStatusPreparing, true},
		{model.OrderStatusPreparing, model.OrderStatusReady, true},
		{model.OrderStatusReady, model.OrderStatusServed, true},
		{model.OrderStatusServed, model.OrderStatusPaid, true},

		// any non-terminal status can be cancelled
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusConfirmed, model.OrderStatusCancelled, true},
		{model.OrderStatusPreparing, model.OrderStatusCancelled, true},
		{model.OrderStatusReady, model.OrderStatusCancelled, true},
		{model.OrderStatusServed, model.OrderStatusCancelled, true},

		// no skipping forward
		{model.OrderStatusPending, model.OrderStatusPreparing, false},
		{model.OrderStatusPending, model.OrderStatusPaid, false},
		{model.OrderStatusConfirmed, model.OrderStatusPaid, false},

		// no moving backward
		{model.OrderStatusReady, model.OrderStatusPreparing, false},
		{model.OrderStatusServed, model.OrderStatusConfirmed, false},

		// terminal statuses go nowhere
		{model.OrderStatusPaid, model.OrderStatusCancelled, false},
		{model.OrderStatusPaid, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusPaid, false},

		{"bogus", model.OrderStatusPaid, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
