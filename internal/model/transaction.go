package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a completed sale, written once at checkout.
type Transaction struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	TransactionID string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"transaction_id"`
	OrderID       *uint             `gorm:"index" json:"order_id"`
	InvoiceID     *uint             `gorm:"index" json:"invoice_id"`
	Subtotal      decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	Tax           decimal.Decimal   `gorm:"type:decimal(18,2);default:0" json:"tax"`
	Total         decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"total"`
	PaymentMethod string            `gorm:"type:varchar(50)" json:"payment_method"`
	CashierName   string            `gorm:"type:varchar(100)" json:"cashier_name"`
	StoreCode     string            `gorm:"type:varchar(50);index" json:"store_code"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionRef;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TransactionItem snapshots a sold line: name and price are copied from
// the product at checkout so later catalog edits don't rewrite history.
type TransactionItem struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	TransactionRef uint            `gorm:"column:transaction_ref;not null;index" json:"transaction_ref"`
	ProductID      uint            `gorm:"not null;index" json:"product_id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Total          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
}
