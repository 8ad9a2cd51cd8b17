package request

import (
	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

// QuoteCheckoutRequest represents a checkout quote request
type QuoteCheckoutRequest struct {
	ProductID           uuid.UUID  `json:"product_id" binding:"required"`
	QuantityKg          int        `json:"quantity_kg" binding:"required,gt=0"`
	DeliveryAddress     string     `json:"delivery_address" binding:"required,max=500"`
	LogisticsProviderID *uuid.UUID `json:"logistics_provider_id"`
	RedeemPoints        int64      `json:"redeem_points" binding:"min=0"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	ProductID           uuid.UUID  `json:"product_id" binding:"required"`
	QuantityKg          int        `json:"quantity_kg" binding:"required,gt=0"`
	DeliveryAddress     string     `json:"delivery_address" binding:"required,max=500"`
	LogisticsProviderID *uuid.UUID `json:"logistics_provider_id"`
	RedeemPoints        int64      `json:"redeem_points" binding:"min=0"`
}

// UpdateOrderStatusRequest represents an order status transition
type UpdateOrderStatusRequest struct {
	Status enum.OrderStatus `json:"status"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Status    string `form:"status"`
	ProductID string `form:"product_id"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// RedemptionPreviewRequest represents a loyalty redemption preview request
type RedemptionPreviewRequest struct {
	RequestedPoints int64   `json:"requested_points" binding:"min=0"`
	OrderTotal      float64 `json:"order_total" binding:"required,gt=0"`
}
