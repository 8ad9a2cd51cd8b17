package request

import "github.com/farmgate/farmgate-api/internal/domain/enum"

// CreateLogisticsProfileRequest represents a logistics profile creation
// request. PricingConfig entries use the serialized tier form, e.g.
// "0-10@0.06" or "50-+@0.02"; a flat-rate profile sends a single rate.
type CreateLogisticsProfileRequest struct {
	CompanyName           string            `json:"company_name" binding:"required,min=2,max=255"`
	CarrierName           string            `json:"carrier_name" binding:"omitempty,max=100"`
	PricingModel          enum.PricingModel `json:"pricing_model"`
	PricingConfig         []string          `json:"pricing_config" binding:"required,min=1"`
	EstimatedDeliveryTime string            `json:"estimated_delivery_time" binding:"omitempty,max=50"`
	ServiceAreas          *string           `json:"service_areas"`
}

// UpdateLogisticsProfileRequest represents a logistics profile update.
// The pricing model is fixed at creation and cannot be changed here.
type UpdateLogisticsProfileRequest struct {
	CompanyName           string   `json:"company_name" binding:"omitempty,min=2,max=255"`
	CarrierName           string   `json:"carrier_name" binding:"omitempty,max=100"`
	PricingConfig         []string `json:"pricing_config"`
	EstimatedDeliveryTime string   `json:"estimated_delivery_time" binding:"omitempty,max=50"`
	ServiceAreas          *string  `json:"service_areas"`
	Active                *bool    `json:"active"`
}
