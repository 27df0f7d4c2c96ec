package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EInvoiceStatus lifecycle codes (0-10), mirroring the Vietnamese
// e-invoice regime. Orders and invoices carry the same codes.
const (
	EInvoiceStatusNone        = 0  // no e-invoice requested
	EInvoiceStatusDraft       = 1  // created locally, not sent
	EInvoiceStatusPendingSign = 2  // submitted to provider, awaiting signature
	EInvoiceStatusSigned      = 3  // digitally signed by provider
	EInvoiceStatusIssued      = 4  // issued with official number
	EInvoiceStatusSendingTax  = 5  // forwarding to tax authority
	EInvoiceStatusAccepted    = 6  // accepted by tax authority
	EInvoiceStatusRejected    = 7  // rejected by tax authority
	EInvoiceStatusReplaced    = 8  // replaced by a new invoice
	EInvoiceStatusAdjusted    = 9  // adjusted by a supplementary invoice
	EInvoiceStatusCancelled   = 10 // cancelled
)

// ValidEInvoiceStatus reports whether code is inside the lifecycle range.
func ValidEInvoiceStatus(code int) bool {
	return code >= EInvoiceStatusNone && code <= EInvoiceStatusCancelled
}

// Invoice is a formal tax invoice derived from an order or transaction.
type Invoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	InvoiceNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	OrderID         *uint           `gorm:"index" json:"order_id"`
	Order           *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	TransactionRef  *uint           `gorm:"column:transaction_ref;index" json:"transaction_ref"`
	CustomerName    string          `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerTaxCode string          `gorm:"type:varchar(50)" json:"customer_tax_code"`
	BuyerAddress    string          `gorm:"type:text" json:"buyer_address"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	Tax             decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"tax"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
	EInvoiceStatus  int             `gorm:"default:0;index" json:"e_invoice_status"`
	EInvoiceCode    string          `gorm:"type:varchar(100)" json:"e_invoice_code"` // provider lookup code
	StoreCode       string          `gorm:"type:varchar(50);index" json:"store_code"`
	Items           []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InvoiceItem is a line on a tax invoice. Product fields are snapshotted
// because invoices must render the same after catalog edits.
type InvoiceItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	InvoiceID    uint            `gorm:"not null;index" json:"invoice_id"`
	ProductID    *uint           `gorm:"index" json:"product_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Unit         string          `gorm:"type:varchar(50)" json:"unit"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	TaxRate      string          `gorm:"type:varchar(10)" json:"tax_rate"`
	TaxRateLabel string          `gorm:"type:varchar(20)" json:"tax_rate_label"` // KCT / KKKNNT, empty for numeric rates
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
}

// EInvoiceConnection holds per-store credentials for the external
// e-invoice signing provider.
type EInvoiceConnection struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Provider     string    `gorm:"type:varchar(100);not null" json:"provider"`
	BaseURL      string    `gorm:"type:varchar(500);not null" json:"base_url"`
	Username     string    `gorm:"type:varchar(255)" json:"username"`
	Password     string    `gorm:"type:varchar(255)" json:"-"`
	TaxCode      string    `gorm:"type:varchar(50)" json:"tax_code"`
	TemplateCode string    `gorm:"type:varchar(50)" json:"template_code"`
	SerialSymbol string    `gorm:"type:varchar(50)" json:"serial_symbol"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	StoreCode    string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
