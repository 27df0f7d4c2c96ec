package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeRole enum constants
const (
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

// AllowedEmployeeRoles lists every valid employee role.
var AllowedEmployeeRoles = []string{RoleManager, RoleCashier, RoleAdmin}

// AttendanceStatus enum constants
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half_day"
)

// AllowedAttendanceStatuses lists every valid attendance status.
var AllowedAttendanceStatuses = []string{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLate,
	AttendanceHalfDay,
}

// Employee is a staff member who can open orders and run the till.
type Employee struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	EmployeeID string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"employee_id"`
	Name       string             `gorm:"type:varchar(255);not null" json:"name"`
	Phone      string             `gorm:"type:varchar(20)" json:"phone"`
	Email      string             `gorm:"type:varchar(255)" json:"email"`
	Role       string             `gorm:"type:varchar(20);not null;default:'cashier'" json:"role"`
	IsActive   bool               `gorm:"default:true" json:"is_active"`
	StoreCode  string             `gorm:"type:varchar(50);index" json:"store_code"`
	Attendance []AttendanceRecord `gorm:"foreignKey:EmployeeRef" json:"attendance,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`
}

// AttendanceRecord tracks one working day. TotalHours is computed at
// clock-out as (clock_out - clock_in) minus the break window.
type AttendanceRecord struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EmployeeRef uint            `gorm:"column:employee_ref;not null;index" json:"employee_ref"`
	WorkDate    time.Time       `gorm:"type:date;not null;index" json:"work_date"`
	ClockIn     *time.Time      `json:"clock_in"`
	ClockOut    *time.Time      `json:"clock_out"`
	BreakStart  *time.Time      `json:"break_start"`
	BreakEnd    *time.Time      `json:"break_end"`
	TotalHours  decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"total_hours"`
	Status      string          `gorm:"type:varchar(20);default:'present'" json:"status"`
	StoreCode   string          `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
