package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/pkg/money"
)

// Product represents a produce listing on the marketplace. Quantities are in
// kilograms; the order quantity doubles as shipment weight when quoting
// third-party shipping.
type Product struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	SellerID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name               string              `gorm:"size:255;not null" json:"name"`
	Slug               string              `gorm:"size:255;unique;not null" json:"slug"`
	Code               string              `gorm:"size:100;unique;not null" json:"code"`
	Category           string              `gorm:"size:100" json:"category"`
	UnitPrice          int64               `gorm:"not null" json:"-"` // RM per kg, stored in cents
	StockKg            int                 `gorm:"default:0" json:"stock_kg"`
	MinOrderQuantityKg int                 `gorm:"default:1" json:"min_order_quantity_kg"`
	Location           string              `gorm:"type:text;not null" json:"location"` // shipping origin address
	Description        *string             `gorm:"type:text" json:"description,omitempty"`
	ShippingMethod     enum.ShippingMethod `gorm:"default:1" json:"shipping_method"`
	DirectShippingCost int64               `gorm:"default:0" json:"-"` // cents, used when ShippingMethod is direct
	DirectShippingDays string              `gorm:"size:100" json:"direct_shipping_days"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		UnitPrice          float64 `json:"unit_price"`
		DirectShippingCost float64 `json:"direct_shipping_cost"`
	}{
		Alias:              Alias(p),
		UnitPrice:          money.FromCents(p.UnitPrice),
		DirectShippingCost: money.FromCents(p.DirectShippingCost),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetUnitPriceDecimal returns the unit price as a decimal
func (p *Product) GetUnitPriceDecimal() float64 {
	return money.FromCents(p.UnitPrice)
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetUnitPriceFromDecimal(price float64) {
	p.UnitPrice = money.ToCents(price)
}

// GetDirectShippingCostDecimal returns the direct shipping cost as a decimal
func (p *Product) GetDirectShippingCostDecimal() float64 {
	return money.FromCents(p.DirectShippingCost)
}

// SetDirectShippingCostFromDecimal sets the direct shipping cost from a decimal value
func (p *Product) SetDirectShippingCostFromDecimal(cost float64) {
	p.DirectShippingCost = money.ToCents(cost)
}
