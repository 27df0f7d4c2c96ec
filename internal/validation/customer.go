package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// CustomerInput is a loose customer creation candidate.
type CustomerInput struct {
	CustomerID      string `json:"customerId"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Points          int    `json:"points"`
	MembershipLevel string `json:"membershipLevel"`
	TotalSpent      any    `json:"totalSpent"`
	StoreCode       string `json:"storeCode"`
}

// ValidateCustomer normalizes a customer candidate.
func ValidateCustomer(in CustomerInput) (model.Customer, Errors) {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, required("name"))
	}
	level, ferr := enum("membershipLevel", in.MembershipLevel, model.MembershipBronze, model.AllowedMembershipLevels)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	if in.Points < 0 {
		errs = append(errs, FieldError{Field: "points", Code: CodeOutOfRange, Message: "points must not be negative"})
	}
	totalSpent, ferr := optionalMoney("totalSpent", in.TotalSpent)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.Customer{}, errs
	}

	return model.Customer{
		CustomerID:      strings.TrimSpace(in.CustomerID),
		Name:            name,
		Phone:           strings.TrimSpace(in.Phone),
		Email:           strings.TrimSpace(in.Email),
		Points:          in.Points,
		MembershipLevel: level,
		TotalSpent:      totalSpent,
		StoreCode:       strings.TrimSpace(in.StoreCode),
	}, nil
}

// PointTransactionInput is a loose point movement candidate.
type PointTransactionInput struct {
	CustomerRef     uint   `json:"customerRef"`
	Type            string `json:"type"`
	Points          int    `json:"points"`
	PreviousBalance int    `json:"previousBalance"`
	NewBalance      int    `json:"newBalance"`
	Reference       string `json:"reference"`
	Note            string `json:"note"`
	StoreCode       string `json:"storeCode"`
}

// ValidatePointTransaction enforces the balance snapshot invariant:
// newBalance = previousBalance + points.
func ValidatePointTransaction(in PointTransactionInput) (model.PointTransaction, Errors) {
	var errs Errors

	if in.CustomerRef == 0 {
		errs = append(errs, required("customerRef"))
	}
	typ, ferr := enum("type", in.Type, "", model.AllowedPointTransactionTypes)
	if ferr != nil {
		errs = append(errs, *ferr)
	} else if typ == "" {
		errs = append(errs, required("type"))
	}
	if in.NewBalance != in.PreviousBalance+in.Points {
		errs = append(errs, FieldError{
			Field:   "newBalance",
			Code:    CodeOutOfRange,
			Message: "newBalance must equal previousBalance + points",
		})
	}

	if errs != nil {
		return model.PointTransaction{}, errs
	}

	return model.PointTransaction{
		CustomerRef:     in.CustomerRef,
		Type:            typ,
		Points:          in.Points,
		PreviousBalance: in.PreviousBalance,
		NewBalance:      in.NewBalance,
		Reference:       in.Reference,
		Note:            in.Note,
		StoreCode:       strings.TrimSpace(in.StoreCode),
	}, nil
}
