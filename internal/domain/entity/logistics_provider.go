package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

// LogisticsProvider is a logistics partner's pricing profile. PricingConfig
// is the serialized tier table (or flat rate) edited at profile-update time
// and parsed by the pricing package on every quote. The pricing model is
// immutable once the profile is created.
type LogisticsProvider struct {
	ID                    uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName           string            `gorm:"size:255;not null" json:"company_name"`
	CarrierName           string            `gorm:"size:100" json:"carrier_name"`
	PricingModel          enum.PricingModel `gorm:"default:0" json:"pricing_model"`
	PricingConfig         string            `gorm:"type:text" json:"pricing_config"`
	EstimatedDeliveryTime string            `gorm:"size:100" json:"estimated_delivery_time"`
	ServiceAreas          *string           `gorm:"type:text" json:"service_areas,omitempty"`
	Active                bool              `gorm:"default:true" json:"active"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	DeletedAt             gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new logistics provider
func (p *LogisticsProvider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LogisticsProvider model
func (LogisticsProvider) TableName() string {
	return "logistics_providers"
}
