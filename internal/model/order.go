package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enum constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// AllowedOrderStatuses lists every valid order status.
var AllowedOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusPaid,
	OrderStatusCancelled,
}

// PaymentStatus enum constants
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// AllowedPaymentStatuses lists every valid payment status.
var AllowedPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

// SalesChannel enum constants
const (
	ChannelTable    = "table"
	ChannelPOS      = "pos"
	ChannelOnline   = "online"
	ChannelDelivery = "delivery"
)

// AllowedSalesChannels lists every valid sales channel.
var AllowedSalesChannels = []string{
	ChannelTable,
	ChannelPOS,
	ChannelOnline,
	ChannelDelivery,
}

// OrderItemStatus enum constants. The empty string is a valid value:
// items start unrouted until the kitchen picks them up.
const (
	OrderItemStatusNone      = ""
	OrderItemStatusPending   = "pending"
	OrderItemStatusProgress  = "progress"
	OrderItemStatusCompleted = "completed"
)

// AllowedOrderItemStatuses lists every valid order item status.
var AllowedOrderItemStatuses = []string{
	OrderItemStatusNone,
	OrderItemStatusPending,
	OrderItemStatusProgress,
	OrderItemStatusCompleted,
}

// Order is a sale in progress. Terminal statuses are paid and cancelled.
type Order struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	OrderNumber    string               `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	TableID        *uint                `gorm:"index" json:"table_id"`
	Table          *DiningTable         `gorm:"foreignKey:TableID" json:"table,omitempty"`
	EmployeeID     *uint                `gorm:"index" json:"employee_id"`
	Employee       *Employee            `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	CustomerID     *uint                `gorm:"index" json:"customer_id"`
	Customer       *Customer            `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status         string               `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentStatus  string               `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	Subtotal       decimal.Decimal      `gorm:"type:decimal(18,2);default:0" json:"subtotal"`
	Tax            decimal.Decimal      `gorm:"type:decimal(18,2);default:0" json:"tax"`
	Discount       decimal.Decimal      `gorm:"type:decimal(18,2);default:0" json:"discount"`
	Total          decimal.Decimal      `gorm:"type:decimal(18,2);default:0" json:"total"`
	EInvoiceStatus int                  `gorm:"default:0" json:"e_invoice_status"` // see EInvoiceStatus* constants
	SalesChannel   string               `gorm:"type:varchar(20);default:'table'" json:"sales_channel"`
	Note           string               `gorm:"type:text" json:"note"`
	StoreCode      string               `gorm:"type:varchar(50);index" json:"store_code"`
	Items          []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	History        []OrderChangeHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"history,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// IsTerminal reports whether the order can no longer change status.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusCancelled
}

// OrderItem is a line item. Quantity keeps 4 decimal places for
// weight/volume sold items (e.g. 0.2500 kg).
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Discount  decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"discount"`
	Tax       decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"tax"`
	Status    string          `gorm:"type:varchar(20);default:''" json:"status"`
	Note      string          `gorm:"type:varchar(255)" json:"note"`
}

// OrderChangeHistory is an append-only audit row for order mutations.
// Rows are removed only when the parent order is deleted (cascade).
type OrderChangeHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	Actor       string    `gorm:"type:varchar(100)" json:"actor"`
	IPAddress   string    `gorm:"type:varchar(45)" json:"ip_address"`
	Description string    `gorm:"type:jsonb" json:"description"` // JSON-encoded field diff
	StoreCode   string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
