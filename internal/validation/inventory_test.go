package validation

import (
	"testing"

	"pos-backend/internal/model"
)

func TestValidateInventoryTransaction_Snapshots(t *testing.T) {
	cases := []struct {
		name          string
		typ           string
		qty, prev, nw int
		ok            bool
	}{
		{"add", model.InventoryAdd, 10, 5, 15, true},
		{"subtract", model.InventorySubtract, -3, 15, 12, true},
		{"sale", model.InventorySale, -2, 12, 10, true},
		{"return", model.InventoryReturn, 1, 10, 11, true},
		{"set", model.InventorySet, 50, 11, 50, true},
		{"add mismatch", model.InventoryAdd, 10, 5, 14, false},
		{"set mismatch", model.InventorySet, 50, 11, 49, false},
		{"negative result", model.InventorySubtract, -20, 10, -10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateInventoryTransaction(InventoryTransactionInput{
				ProductID:     1,
				Type:          tc.typ,
				Quantity:      tc.qty,
				PreviousStock: tc.prev,
				NewStock:      tc.nw,
			})
			if tc.ok && errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if !tc.ok && !errs.Has("newStock") {
				t.Fatalf("expected newStock rejection, got %v", errs)
			}
		})
	}
}

func TestValidateInventoryTransaction_TypeEnum(t *testing.T) {
	_, errs := ValidateInventoryTransaction(InventoryTransactionInput{ProductID: 1, Type: "restock"})
	if !errs.Has("type") {
		t.Fatalf("expected type rejection, got %v", errs)
	}
}

func TestValidateTable(t *testing.T) {
	tbl, errs := ValidateTable(TableInput{Number: "T01", Floor: float64(2)})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tbl.Status != model.TableStatusAvailable {
		t.Errorf("expected default status available, got %q", tbl.Status)
	}
	if tbl.Capacity != 4 {
		t.Errorf("expected default capacity 4, got %d", tbl.Capacity)
	}
	if tbl.Floor != "2" || tbl.Zone != "A" {
		t.Errorf("expected placement 2/A, got %q/%q", tbl.Floor, tbl.Zone)
	}

	_, errs = ValidateTable(TableInput{Number: "T01", Status: "broken"})
	if !errs.Has("status") {
		t.Fatalf("expected status rejection, got %v", errs)
	}
}
