package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"pos-backend/internal/model"
)

func TestMembershipLevelFor(t *testing.T) {
	cases := []struct {
		spent int64
		want  string
	}{
		{0, model.MembershipBronze},
		{1_999_999, model.MembershipBronze},
		{2_000_000, model.MembershipSilver},
		{9_999_999, model.MembershipSilver},
		{10_000_000, model.MembershipGold},
		{29_999_999, model.MembershipGold},
		{30_000_000, model.MembershipPlatinum},
		{100_000_000, model.MembershipPlatinum},
	}
	for _, tc := range cases {
		if got := MembershipLevelFor(decimal.NewFromInt(tc.spent)); got != tc.want {
			t.Errorf("MembershipLevelFor(%d) = %q, want %q", tc.spent, got, tc.want)
		}
	}
}
