package repository

import (
	"context"
	"time"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	List(ctx context.Context, storeCode string, activeOnly bool) ([]model.Employee, error)
	CreateAttendance(ctx context.Context, record *model.AttendanceRecord) error
	UpdateAttendance(ctx context.Context, record *model.AttendanceRecord) error
	FindAttendanceForDay(ctx context.Context, employeeID uint, day time.Time) (*model.AttendanceRecord, error)
	ListAttendance(ctx context.Context, employeeID uint, from, to time.Time) ([]model.AttendanceRecord, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return GetDB(ctx, r.db).Create(employee).Error
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return GetDB(ctx, r.db).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Employee{}).Error
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context, storeCode string, activeOnly bool) ([]model.Employee, error) {
	var employees []model.Employee
	db := GetDB(ctx, r.db)
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	if err := db.Order("name asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) CreateAttendance(ctx context.Context, record *model.AttendanceRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *employeeRepository) UpdateAttendance(ctx context.Context, record *model.AttendanceRecord) error {
	return GetDB(ctx, r.db).Save(record).Error
}

func (r *employeeRepository) FindAttendanceForDay(ctx context.Context, employeeID uint, day time.Time) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := GetDB(ctx, r.db).
		Where("employee_ref = ? AND work_date = ?", employeeID, day.Format("2006-01-02")).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *employeeRepository) ListAttendance(ctx context.Context, employeeID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := GetDB(ctx, r.db).
		Where("employee_ref = ? AND work_date >= ? AND work_date <= ?", employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("work_date asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
