package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

// Order is a confirmed purchase with its pricing snapshot. Monetary fields
// are written once at order confirmation and never recomputed afterwards.
// TotalAmount is the pre-discount value (subtotal + shipping); the
// loyalty-adjusted payable amount is derived, not stored over it.
type Order struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo             string              `gorm:"size:100;unique;not null" json:"order_no"`
	BuyerID             uuid.UUID           `gorm:"type:uuid;not null;index" json:"buyer_id"`
	ProductID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	LogisticsProviderID *uuid.UUID          `gorm:"type:uuid;index" json:"logistics_provider_id,omitempty"`
	Status              enum.OrderStatus    `gorm:"default:0" json:"status"`
	ShippingMethod      enum.ShippingMethod `gorm:"default:0" json:"shipping_method"`
	QuantityKg          int                 `gorm:"not null" json:"quantity_kg"`
	UnitPrice           int64               `gorm:"not null" json:"-"` // cents
	Subtotal            int64               `gorm:"not null" json:"-"` // cents
	ShippingCost        int64               `gorm:"not null" json:"-"` // cents
	TotalAmount         int64               `gorm:"not null" json:"-"` // cents, pre-discount
	RedeemedPoints      int64               `gorm:"default:0" json:"redeemed_points"`
	DiscountRM          int64               `gorm:"default:0" json:"-"` // cents
	Currency            string              `gorm:"size:10;default:'MYR'" json:"currency"`
	ShippingDistanceKm  *float64            `json:"shipping_distance_km,omitempty"`
	EstimatedDays       string              `gorm:"size:100" json:"estimated_days"`
	DeliveryAddress     string              `gorm:"type:text;not null" json:"delivery_address"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	DeletedAt           gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Buyer             User               `gorm:"foreignKey:BuyerID" json:"-"`
	Product           Product            `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	LogisticsProvider *LogisticsProvider `gorm:"foreignKey:LogisticsProviderID" json:"logistics_provider,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		UnitPrice     float64 `json:"unit_price"`
		Subtotal      float64 `json:"subtotal"`
		ShippingCost  float64 `json:"shipping_cost"`
		TotalAmount   float64 `json:"total_amount"`
		DiscountRM    float64 `json:"discount_rm"`
		AdjustedTotal float64 `json:"adjusted_total"`
	}{
		Alias:         Alias(o),
		UnitPrice:     float64(o.UnitPrice) / 100,
		Subtotal:      float64(o.Subtotal) / 100,
		ShippingCost:  float64(o.ShippingCost) / 100,
		TotalAmount:   float64(o.TotalAmount) / 100,
		DiscountRM:    float64(o.DiscountRM) / 100,
		AdjustedTotal: o.GetAdjustedTotalDecimal(),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalAmountDecimal returns the pre-discount total as a decimal
func (o *Order) GetTotalAmountDecimal() float64 {
	return float64(o.TotalAmount) / 100
}

// GetAdjustedTotalDecimal returns the payable amount after the loyalty
// discount, floored at zero
func (o *Order) GetAdjustedTotalDecimal() float64 {
	adjusted := o.TotalAmount - o.DiscountRM
	if adjusted < 0 {
		adjusted = 0
	}
	return float64(adjusted) / 100
}
