package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// InventoryTransactionInput is a loose stock change candidate.
// Quantity is the signed delta for add/subtract/sale/return and the
// absolute target level for set.
type InventoryTransactionInput struct {
	ProductID     uint   `json:"productId"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	Reference     string `json:"reference"`
	Note          string `json:"note"`
	EmployeeID    *uint  `json:"employeeId"`
	StoreCode     string `json:"storeCode"`
}

// ValidateInventoryTransaction checks the stock snapshot consistency so
// the audit trail can be replayed.
func ValidateInventoryTransaction(in InventoryTransactionInput) (model.InventoryTransaction, Errors) {
	var errs Errors

	if in.ProductID == 0 {
		errs = append(errs, required("productId"))
	}
	typ, ferr := enum("type", in.Type, "", model.AllowedInventoryTransactionTypes)
	if ferr != nil {
		errs = append(errs, *ferr)
	} else if typ == "" {
		errs = append(errs, required("type"))
	}

	switch typ {
	case model.InventorySet:
		if in.NewStock != in.Quantity {
			errs = append(errs, FieldError{Field: "newStock", Code: CodeOutOfRange, Message: "newStock must equal quantity for set transactions"})
		}
	case model.InventoryAdd, model.InventorySubtract, model.InventorySale, model.InventoryReturn:
		if in.NewStock != in.PreviousStock+in.Quantity {
			errs = append(errs, FieldError{Field: "newStock", Code: CodeOutOfRange, Message: "newStock must equal previousStock + quantity"})
		}
	}
	if in.NewStock < 0 {
		errs = append(errs, FieldError{Field: "newStock", Code: CodeOutOfRange, Message: "newStock must not be negative"})
	}

	if errs != nil {
		return model.InventoryTransaction{}, errs
	}

	return model.InventoryTransaction{
		ProductID:     in.ProductID,
		Type:          typ,
		Quantity:      in.Quantity,
		PreviousStock: in.PreviousStock,
		NewStock:      in.NewStock,
		Reference:     in.Reference,
		Note:          in.Note,
		EmployeeID:    in.EmployeeID,
		StoreCode:     strings.TrimSpace(in.StoreCode),
	}, nil
}
