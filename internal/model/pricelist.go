package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList is a named, time-bounded set of product price overrides.
// A store resolves effective prices against its configured default list.
type PriceList struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	ValidFrom *time.Time      `gorm:"type:date" json:"valid_from"`
	ValidTo   *time.Time      `gorm:"type:date" json:"valid_to"`
	IsDefault bool            `gorm:"default:false" json:"is_default"`
	StoreCode string          `gorm:"type:varchar(50);index" json:"store_code"`
	Items     []PriceListItem `gorm:"foreignKey:PriceListID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ActiveAt reports whether the list is valid at the given time. A nil
// bound is open-ended on that side.
func (p *PriceList) ActiveAt(t time.Time) bool {
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidTo != nil && t.After(*p.ValidTo) {
		return false
	}
	return true
}

// PriceListItem overrides one product's price. Deleting the list or the
// product removes the override (cascade both ways).
type PriceListItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	PriceListID uint            `gorm:"not null;index" json:"price_list_id"`
	ProductID   uint            `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"product_id"`
	Product     *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}
