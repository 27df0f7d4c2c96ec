package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tax rate sentinel labels (Vietnamese e-invoice regime).
// Both are stored with rate "0"; the label is kept separately for invoice rendering.
const (
	TaxRateExempt     = "KCT"    // không chịu thuế (not subject to VAT)
	TaxRateNotDeclare = "KKKNNT" // không kê khai nộp thuế (no VAT declaration)
)

// DefaultTaxRate is stored when a product is created without a tax rate.
const DefaultTaxRate = "0.00"

// Product is a sellable item. Price bounds are enforced by validation,
// not by the column definition: 0 <= price < 100,000,000.
type Product struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SKU              string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Price            decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	PriceBeforeTax   decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"price_before_tax"`
	PriceAfterTax    decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"price_after_tax"`
	PriceIncludesTax bool            `gorm:"default:false" json:"price_includes_tax"`
	TaxRate          string          `gorm:"type:varchar(10);default:'0.00'" json:"tax_rate"`       // "0".."100" or "0" for sentinel labels
	TaxRateLabel     string          `gorm:"type:varchar(20)" json:"tax_rate_label"`                // KCT / KKKNNT, empty for numeric rates
	Stock            int             `gorm:"default:0" json:"stock"`
	TrackStock       bool            `gorm:"default:true" json:"track_stock"`
	CategoryID       *uint           `gorm:"index" json:"category_id"`
	Category         *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ProductType      int             `gorm:"default:1" json:"product_type"`
	Unit             string          `gorm:"type:varchar(50);default:'Cái'" json:"unit"`
	Floor            string          `gorm:"type:varchar(20);default:'1'" json:"floor"`
	Zone             string          `gorm:"type:varchar(20);default:'A'" json:"zone"`
	SortOrder        int             `gorm:"default:0" json:"sort_order"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	StoreCode        string          `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}
