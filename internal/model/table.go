package model

import "time"

// TableStatus enum constants
const (
	TableStatusAvailable   = "available"
	TableStatusOccupied    = "occupied"
	TableStatusReserved    = "reserved"
	TableStatusMaintenance = "maintenance"
)

// AllowedTableStatuses lists every valid dining table status.
var AllowedTableStatuses = []string{
	TableStatusAvailable,
	TableStatusOccupied,
	TableStatusReserved,
	TableStatusMaintenance,
}

// DiningTable is a physical table in the venue
type DiningTable struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"type:varchar(50);not null" json:"number"`
	Capacity  int       `gorm:"default:4" json:"capacity"`
	Status    string    `gorm:"type:varchar(20);default:'available'" json:"status"`
	Floor     string    `gorm:"type:varchar(20);default:'1'" json:"floor"`
	Zone      string    `gorm:"type:varchar(20);default:'A'" json:"zone"`
	StoreCode string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
