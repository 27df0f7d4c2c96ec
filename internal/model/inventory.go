package model

import "time"

// InventoryTransactionType enum constants
const (
	InventoryAdd      = "add"
	InventorySubtract = "subtract"
	InventorySet      = "set"
	InventorySale     = "sale"
	InventoryReturn   = "return"
)

// AllowedInventoryTransactionTypes lists every valid stock change type.
var AllowedInventoryTransactionTypes = []string{
	InventoryAdd,
	InventorySubtract,
	InventorySet,
	InventorySale,
	InventoryReturn,
}

// InventoryTransaction is an audit row for every stock mutation, with
// before/after snapshots so stock history can be replayed.
type InventoryTransaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Product       *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Quantity      int       `gorm:"not null" json:"quantity"` // signed for add/subtract, absolute for set
	PreviousStock int       `gorm:"not null" json:"previous_stock"`
	NewStock      int       `gorm:"not null" json:"new_stock"`
	Reference     string    `gorm:"type:varchar(100)" json:"reference"` // order number, receipt number
	Note          string    `gorm:"type:varchar(255)" json:"note"`
	EmployeeID    *uint     `gorm:"index" json:"employee_id"`
	StoreCode     string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}
