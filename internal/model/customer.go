package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MembershipLevel enum constants
const (
	MembershipBronze   = "BRONZE"
	MembershipSilver   = "SILVER"
	MembershipGold     = "GOLD"
	MembershipPlatinum = "PLATINUM"
)

// AllowedMembershipLevels lists every valid membership level.
var AllowedMembershipLevels = []string{
	MembershipBronze,
	MembershipSilver,
	MembershipGold,
	MembershipPlatinum,
}

// PointTransactionType enum constants
const (
	PointEarned   = "earned"
	PointRedeemed = "redeemed"
	PointAdjusted = "adjusted"
	PointExpired  = "expired"
)

// AllowedPointTransactionTypes lists every valid point transaction type.
var AllowedPointTransactionTypes = []string{
	PointEarned,
	PointRedeemed,
	PointAdjusted,
	PointExpired,
}

// Customer is a loyalty member.
type Customer struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	CustomerID        string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"customer_id"`
	Name              string             `gorm:"type:varchar(255);not null" json:"name"`
	Phone             string             `gorm:"type:varchar(20);index" json:"phone"`
	Email             string             `gorm:"type:varchar(255)" json:"email"`
	Points            int                `gorm:"default:0" json:"points"`
	MembershipLevel   string             `gorm:"type:varchar(20);default:'BRONZE'" json:"membership_level"`
	TotalSpent        decimal.Decimal    `gorm:"type:decimal(18,2);default:0" json:"total_spent"`
	StoreCode         string             `gorm:"type:varchar(50);index" json:"store_code"`
	PointTransactions []PointTransaction `gorm:"foreignKey:CustomerRef" json:"point_transactions,omitempty"`
	Orders            []Order            `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
}

// PointTransaction records one signed point movement with balance
// snapshots. Invariant: NewBalance = PreviousBalance + Points.
type PointTransaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerRef     uint      `gorm:"column:customer_ref;not null;index" json:"customer_ref"`
	Type            string    `gorm:"type:varchar(20);not null" json:"type"`
	Points          int       `gorm:"not null" json:"points"` // signed delta
	PreviousBalance int       `gorm:"not null" json:"previous_balance"`
	NewBalance      int       `gorm:"not null" json:"new_balance"`
	Reference       string    `gorm:"type:varchar(100)" json:"reference"` // e.g. order number
	Note            string    `gorm:"type:varchar(255)" json:"note"`
	StoreCode       string    `gorm:"type:varchar(50);index" json:"store_code"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}
