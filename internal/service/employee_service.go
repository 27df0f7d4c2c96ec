package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shift policy: clock-in after lateCutoff is marked late; a day under
// halfDayHours counts as half_day.
var (
	lateCutoffHour = 9
	halfDayHours   = decimal.NewFromInt(4)
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, in validation.EmployeeInput) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, in validation.EmployeeInput) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	ListEmployees(ctx context.Context, storeCode string, activeOnly bool) ([]model.Employee, error)

	ClockIn(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error)
	ClockOut(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error)
	StartBreak(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error)
	EndBreak(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error)
	RecordAttendance(ctx context.Context, in validation.AttendanceInput) (*model.AttendanceRecord, error)
	ListAttendance(ctx context.Context, employeeID uint, from, to time.Time) ([]model.AttendanceRecord, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, in validation.EmployeeInput) (*model.Employee, error) {
	employee, verrs := validation.ValidateEmployee(in)
	if verrs != nil {
		return nil, verrs
	}

	if existing, err := s.employeeRepo.FindByEmployeeID(ctx, employee.EmployeeID); err == nil && existing != nil {
		return nil, fmt.Errorf("employee code %s already in use", employee.EmployeeID)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check employee code: %w", err)
	}

	if err := s.employeeRepo.Create(ctx, &employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id uint, in validation.EmployeeInput) (*model.Employee, error) {
	existing, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}

	normalized, verrs := validation.ValidateEmployee(in)
	if verrs != nil {
		return nil, verrs
	}
	normalized.ID = existing.ID
	normalized.CreatedAt = existing.CreatedAt

	if err := s.employeeRepo.Update(ctx, &normalized); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return &normalized, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("employee not found: %w", err)
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context, storeCode string, activeOnly bool) ([]model.Employee, error) {
	return s.employeeRepo.List(ctx, storeCode, activeOnly)
}

func (s *employeeService) ClockIn(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("employee %s is inactive", employee.EmployeeID)
	}

	day := dateOf(at)
	if existing, findErr := s.employeeRepo.FindAttendanceForDay(ctx, employeeID, day); findErr == nil && existing.ClockIn != nil {
		return nil, fmt.Errorf("employee %s already clocked in on %s", employee.EmployeeID, day.Format("2006-01-02"))
	} else if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up attendance: %w", findErr)
	}

	status := model.AttendancePresent
	if at.Hour() >= lateCutoffHour && !(at.Hour() == lateCutoffHour && at.Minute() == 0) {
		status = model.AttendanceLate
	}

	record := model.AttendanceRecord{
		EmployeeRef: employeeID,
		WorkDate:    day,
		ClockIn:     &at,
		Status:      status,
		StoreCode:   employee.StoreCode,
	}
	if err := s.employeeRepo.CreateAttendance(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to record clock-in: %w", err)
	}
	return &record, nil
}

// ClockOut closes the day and computes TotalHours as the worked window
// minus the break window, kept at 2 decimal places.
func (s *employeeService) ClockOut(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error) {
	record, err := s.openRecord(ctx, employeeID, at)
	if err != nil {
		return nil, err
	}
	if record.ClockOut != nil {
		return nil, fmt.Errorf("already clocked out at %s", record.ClockOut.Format(time.RFC3339))
	}
	if at.Before(*record.ClockIn) {
		return nil, fmt.Errorf("clock-out before clock-in")
	}

	worked := at.Sub(*record.ClockIn)
	if record.BreakStart != nil && record.BreakEnd != nil {
		worked -= record.BreakEnd.Sub(*record.BreakStart)
	}
	hours := decimal.NewFromFloat(worked.Hours()).Round(2)

	record.ClockOut = &at
	record.TotalHours = hours
	if hours.LessThan(halfDayHours) && record.Status == model.AttendancePresent {
		record.Status = model.AttendanceHalfDay
	}

	if err := s.employeeRepo.UpdateAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record clock-out: %w", err)
	}
	return record, nil
}

func (s *employeeService) StartBreak(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error) {
	record, err := s.openRecord(ctx, employeeID, at)
	if err != nil {
		return nil, err
	}
	if record.BreakStart != nil {
		return nil, fmt.Errorf("break already started")
	}
	record.BreakStart = &at
	if err := s.employeeRepo.UpdateAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record break start: %w", err)
	}
	return record, nil
}

func (s *employeeService) EndBreak(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error) {
	record, err := s.openRecord(ctx, employeeID, at)
	if err != nil {
		return nil, err
	}
	if record.BreakStart == nil {
		return nil, fmt.Errorf("break not started")
	}
	if record.BreakEnd != nil {
		return nil, fmt.Errorf("break already ended")
	}
	if at.Before(*record.BreakStart) {
		return nil, fmt.Errorf("break end before break start")
	}
	record.BreakEnd = &at
	if err := s.employeeRepo.UpdateAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record break end: %w", err)
	}
	return record, nil
}

// RecordAttendance writes a full day in one call, for back-office
// corrections rather than live clocking.
func (s *employeeService) RecordAttendance(ctx context.Context, in validation.AttendanceInput) (*model.AttendanceRecord, error) {
	record, verrs := validation.ValidateAttendance(in)
	if verrs != nil {
		return nil, verrs
	}

	if _, err := s.employeeRepo.FindByID(ctx, record.EmployeeRef); err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}

	if record.ClockIn != nil && record.ClockOut != nil {
		worked := record.ClockOut.Sub(*record.ClockIn)
		if record.BreakStart != nil && record.BreakEnd != nil {
			worked -= record.BreakEnd.Sub(*record.BreakStart)
		}
		record.TotalHours = decimal.NewFromFloat(worked.Hours()).Round(2)
	}

	if existing, err := s.employeeRepo.FindAttendanceForDay(ctx, record.EmployeeRef, record.WorkDate); err == nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if err := s.employeeRepo.UpdateAttendance(ctx, &record); err != nil {
			return nil, fmt.Errorf("failed to update attendance: %w", err)
		}
		return &record, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up attendance: %w", err)
	}

	if err := s.employeeRepo.CreateAttendance(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}
	return &record, nil
}

func (s *employeeService) ListAttendance(ctx context.Context, employeeID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	return s.employeeRepo.ListAttendance(ctx, employeeID, from, to)
}

func (s *employeeService) openRecord(ctx context.Context, employeeID uint, at time.Time) (*model.AttendanceRecord, error) {
	record, err := s.employeeRepo.FindAttendanceForDay(ctx, employeeID, dateOf(at))
	if err != nil {
		return nil, fmt.Errorf("no clock-in found for today: %w", err)
	}
	if record.ClockIn == nil {
		return nil, fmt.Errorf("no clock-in found for today")
	}
	return record, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
