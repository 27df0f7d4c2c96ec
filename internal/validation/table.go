package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// TableInput is a loose dining table candidate.
type TableInput struct {
	Number    string `json:"number"`
	Capacity  any    `json:"capacity"`
	Status    string `json:"status"`
	Floor     any    `json:"floor"`
	Zone      any    `json:"zone"`
	StoreCode string `json:"storeCode"`
}

// ValidateTable normalizes a dining table candidate.
func ValidateTable(in TableInput) (model.DiningTable, Errors) {
	var errs Errors

	number := strings.TrimSpace(in.Number)
	if number == "" {
		errs = append(errs, required("number"))
	}
	capacity, ferr := optionalInt("capacity", in.Capacity, 4)
	if ferr != nil {
		errs = append(errs, *ferr)
	} else if capacity < 1 {
		errs = append(errs, FieldError{Field: "capacity", Code: CodeOutOfRange, Message: "capacity must be at least 1"})
	}
	status, ferr := enum("status", in.Status, model.TableStatusAvailable, model.AllowedTableStatuses)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.DiningTable{}, errs
	}

	return model.DiningTable{
		Number:    number,
		Capacity:  capacity,
		Status:    status,
		Floor:     placement(in.Floor, "1"),
		Zone:      placement(in.Zone, "A"),
		StoreCode: strings.TrimSpace(in.StoreCode),
	}, nil
}
