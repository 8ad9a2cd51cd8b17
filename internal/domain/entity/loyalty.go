package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoyaltyAccount tracks a buyer's reward point balance
type LoyaltyAccount struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BuyerID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"buyer_id"`
	Balance   int64          `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Buyer User `gorm:"foreignKey:BuyerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new loyalty account
func (a *LoyaltyAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LoyaltyAccount model
func (LoyaltyAccount) TableName() string {
	return "loyalty_accounts"
}

// Loyalty transaction kinds
const (
	LoyaltyTxnEarn   = "earn"
	LoyaltyTxnRedeem = "redeem"
)

// LoyaltyTransaction is one ledger entry against a buyer's point balance.
// Points are positive for earns and negative for redemptions.
type LoyaltyTransaction struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Kind      string     `gorm:"size:20;not null" json:"kind"`
	Points    int64      `gorm:"not null" json:"points"`
	CreatedAt time.Time  `json:"created_at"`

	// Relationships
	Account LoyaltyAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new loyalty transaction
func (t *LoyaltyTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LoyaltyTransaction model
func (LoyaltyTransaction) TableName() string {
	return "loyalty_transactions"
}
