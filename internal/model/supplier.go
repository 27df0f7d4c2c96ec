package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplierStatus enum constants
const (
	SupplierActive   = "active"
	SupplierInactive = "inactive"
)

// AllowedSupplierStatuses lists every valid supplier status.
var AllowedSupplierStatuses = []string{SupplierActive, SupplierInactive}

// Supplier is a goods vendor.
type Supplier struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Code         string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name         string            `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string            `gorm:"type:varchar(20)" json:"phone"`
	Email        string            `gorm:"type:varchar(255)" json:"email"`
	Address      string            `gorm:"type:text" json:"address"`
	PaymentTerms string            `gorm:"type:varchar(100)" json:"payment_terms"`
	Status       string            `gorm:"type:varchar(20);default:'active'" json:"status"`
	StoreCode    string            `gorm:"type:varchar(50);index" json:"store_code"`
	Receipts     []PurchaseReceipt `gorm:"foreignKey:SupplierID" json:"receipts,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
}

// PurchaseReceipt records incoming stock from a supplier.
type PurchaseReceipt struct {
	ID            uint                      `gorm:"primaryKey" json:"id"`
	ReceiptNumber string                    `gorm:"type:varchar(50);uniqueIndex;not null" json:"receipt_number"`
	SupplierID    uint                      `gorm:"not null;index" json:"supplier_id"`
	Supplier      *Supplier                 `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	ReceiptDate   *time.Time                `gorm:"type:date" json:"receipt_date"`
	IsPaid        bool                      `gorm:"default:false" json:"is_paid"`
	Subtotal      decimal.Decimal           `gorm:"type:decimal(18,2);default:0" json:"subtotal"`
	Discount      decimal.Decimal           `gorm:"type:decimal(18,2);default:0" json:"discount"`
	Tax           decimal.Decimal           `gorm:"type:decimal(18,2);default:0" json:"tax"`
	Total         decimal.Decimal           `gorm:"type:decimal(18,2);default:0" json:"total"`
	Note          string                    `gorm:"type:text" json:"note"`
	StoreCode     string                    `gorm:"type:varchar(50);index" json:"store_code"`
	Items         []PurchaseReceiptItem     `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items"`
	Documents     []PurchaseReceiptDocument `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// PurchaseReceiptItem tracks ordered vs received quantity so partial
// deliveries stay visible until the receipt is closed out.
type PurchaseReceiptItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ReceiptID        uint            `gorm:"not null;index" json:"receipt_id"`
	ProductID        uint            `gorm:"not null;index" json:"product_id"`
	Product          *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"received_quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	DiscountPercent  decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	DiscountAmount   decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"discount_amount"`
	RowOrder         int             `gorm:"default:0" json:"row_order"`
}

// PurchaseReceiptDocument is uploaded file metadata attached to a receipt.
type PurchaseReceiptDocument struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReceiptID uint      `gorm:"not null;index" json:"receipt_id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType  string    `gorm:"type:varchar(100)" json:"file_type"`
	FileSize  int64     `gorm:"default:0" json:"file_size"`
	FilePath  string    `gorm:"type:varchar(500);not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}
