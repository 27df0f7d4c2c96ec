package model

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products on the sell screen
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Icon      string         `gorm:"type:varchar(100)" json:"icon"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	StoreCode string         `gorm:"type:varchar(50);index" json:"store_code"`
	Products  []Product      `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
