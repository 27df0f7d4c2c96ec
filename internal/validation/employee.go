package validation

import (
	"strings"

	"pos-backend/internal/model"
)

// EmployeeInput is a loose employee creation candidate.
type EmployeeInput struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsActive   *bool  `json:"isActive"`
	StoreCode  string `json:"storeCode"`
}

// ValidateEmployee normalizes an employee candidate.
func ValidateEmployee(in EmployeeInput) (model.Employee, Errors) {
	var errs Errors

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		errs = append(errs, required("employeeId"))
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, required("name"))
	}
	role, ferr := enum("role", in.Role, model.RoleCashier, model.AllowedEmployeeRoles)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	if errs != nil {
		return model.Employee{}, errs
	}

	return model.Employee{
		EmployeeID: employeeID,
		Name:       name,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Role:       role,
		IsActive:   isActive,
		StoreCode:  strings.TrimSpace(in.StoreCode),
	}, nil
}

// AttendanceInput is a loose attendance record candidate. Date-like
// fields accept a native time or an ISO string.
type AttendanceInput struct {
	EmployeeRef uint   `json:"employeeRef"`
	WorkDate    any    `json:"workDate"`
	ClockIn     any    `json:"clockIn"`
	ClockOut    any    `json:"clockOut"`
	BreakStart  any    `json:"breakStart"`
	BreakEnd    any    `json:"breakEnd"`
	Status      string `json:"status"`
	StoreCode   string `json:"storeCode"`
}

// ValidateAttendance normalizes an attendance candidate.
func ValidateAttendance(in AttendanceInput) (model.AttendanceRecord, Errors) {
	var errs Errors

	if in.EmployeeRef == 0 {
		errs = append(errs, required("employeeRef"))
	}
	workDate, ferr := optionalDate("workDate", in.WorkDate)
	if ferr != nil {
		errs = append(errs, *ferr)
	} else if workDate == nil {
		errs = append(errs, required("workDate"))
	}
	status, ferr := enum("status", in.Status, model.AttendancePresent, model.AllowedAttendanceStatuses)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	clockIn, ferr := optionalTime("clockIn", in.ClockIn)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	clockOut, ferr := optionalTime("clockOut", in.ClockOut)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	breakStart, ferr := optionalTime("breakStart", in.BreakStart)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	breakEnd, ferr := optionalTime("breakEnd", in.BreakEnd)
	if ferr != nil {
		errs = append(errs, *ferr)
	}

	if errs != nil {
		return model.AttendanceRecord{}, errs
	}

	return model.AttendanceRecord{
		EmployeeRef: in.EmployeeRef,
		WorkDate:    *workDate,
		ClockIn:     clockIn,
		ClockOut:    clockOut,
		BreakStart:  breakStart,
		BreakEnd:    breakEnd,
		Status:      status,
		StoreCode:   strings.TrimSpace(in.StoreCode),
	}, nil
}
