package validation

import (
	"testing"

	"pos-backend/internal/model"
)

func TestValidateCustomer_MembershipLevels(t *testing.T) {
	for _, level := range model.AllowedMembershipLevels {
		c, errs := ValidateCustomer(CustomerInput{Name: "A", MembershipLevel: level})
		if errs != nil {
			t.Fatalf("level %s: unexpected errors %v", level, errs)
		}
		if c.MembershipLevel != level {
			t.Errorf("level %s not preserved, got %s", level, c.MembershipLevel)
		}
	}

	_, errs := ValidateCustomer(CustomerInput{Name: "A", MembershipLevel: "DIAMOND"})
	if !errs.Has("membershipLevel") {
		t.Fatalf("expected membershipLevel rejection, got %v", errs)
	}

	c, errs := ValidateCustomer(CustomerInput{Name: "A"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.MembershipLevel != model.MembershipBronze {
		t.Errorf("expected default BRONZE, got %s", c.MembershipLevel)
	}
}

func TestValidatePointTransaction_BalanceInvariant(t *testing.T) {
	cases := []struct {
		name     string
		typ      string
		points   int
		prev, nw int
		ok       bool
	}{
		{"earn", model.PointEarned, 50, 100, 150, true},
		{"redeem", model.PointRedeemed, -30, 150, 120, true},
		{"adjust down", model.PointAdjusted, -120, 120, 0, true},
		{"expire", model.PointExpired, -10, 10, 0, true},
		{"mismatch", model.PointEarned, 50, 100, 140, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt, errs := ValidatePointTransaction(PointTransactionInput{
				CustomerRef:     1,
				Type:            tc.typ,
				Points:          tc.points,
				PreviousBalance: tc.prev,
				NewBalance:      tc.nw,
			})
			if tc.ok {
				if errs != nil {
					t.Fatalf("unexpected errors: %v", errs)
				}
				if pt.NewBalance-pt.PreviousBalance != pt.Points {
					t.Error("invariant broken after normalization")
				}
				return
			}
			if !errs.Has("newBalance") {
				t.Fatalf("expected newBalance rejection, got %v", errs)
			}
		})
	}
}

func TestValidatePointTransaction_TypeEnum(t *testing.T) {
	_, errs := ValidatePointTransaction(PointTransactionInput{CustomerRef: 1, Type: "bonus"})
	if !errs.Has("type") {
		t.Fatalf("expected type rejection, got %v", errs)
	}
	_, errs = ValidatePointTransaction(PointTransactionInput{CustomerRef: 1})
	if !errs.Has("type") {
		t.Fatalf("expected missing type rejection, got %v", errs)
	}
}
