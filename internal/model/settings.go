package model

import "time"

// PrinterType enum constants
const (
	PrinterReceipt = "receipt"
	PrinterKitchen = "kitchen"
	PrinterLabel   = "label"
)

// AllowedPrinterTypes lists every valid printer type.
var AllowedPrinterTypes = []string{PrinterReceipt, PrinterKitchen, PrinterLabel}

// StoreSettings holds one row per store (tenant).
type StoreSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	StoreCode          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"store_code"`
	Name               string    `gorm:"type:varchar(255);not null" json:"name"`
	Address            string    `gorm:"type:text" json:"address"`
	Phone              string    `gorm:"type:varchar(20)" json:"phone"`
	TaxCode            string    `gorm:"type:varchar(50)" json:"tax_code"`
	Currency           string    `gorm:"type:varchar(10);default:'VND'" json:"currency"`
	DefaultPriceListID *uint     `json:"default_price_list_id"`
	ReceiptFooter      string    `gorm:"type:text" json:"receipt_footer"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// PrinterConfig describes a network printer used by the POS terminals.
type PrinterConfig struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);default:'receipt'" json:"type"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	Port      int       `gorm:"default:9100" json:"port"`
	PaperSize string    `gorm:"type:varchar(10);default:'80mm'" json:"paper_size"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	StoreCode string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceTemplate is a print/e-invoice layout registered with the store.
type InvoiceTemplate struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	TemplateCode string    `gorm:"type:varchar(50)" json:"template_code"`
	SerialSymbol string    `gorm:"type:varchar(50)" json:"serial_symbol"`
	Content      string    `gorm:"type:text" json:"content"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	StoreCode    string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PaymentMethod is a tender type offered at checkout (cash, card, QR...).
type PaymentMethod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(50);not null" json:"code"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	StoreCode string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneralSetting is a free-form key/value setting scoped to a store.
type GeneralSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_setting_store_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	StoreCode string    `gorm:"type:varchar(50);uniqueIndex:idx_setting_store_key" json:"store_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
