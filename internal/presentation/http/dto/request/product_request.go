package request

import "github.com/farmgate/farmgate-api/internal/domain/enum"

// CreateProductRequest represents a produce listing creation request
type CreateProductRequest struct {
	Name               string              `json:"name" binding:"required,min=2,max=255"`
	Category           string              `json:"category" binding:"omitempty,max=100"`
	UnitPrice          float64             `json:"unit_price" binding:"required,gt=0"`
	StockKg            int                 `json:"stock_kg" binding:"min=0"`
	MinOrderQuantityKg int                 `json:"min_order_quantity_kg" binding:"omitempty,min=1"`
	Location           string              `json:"location" binding:"required,max=255"`
	Description        *string             `json:"description"`
	ShippingMethod     enum.ShippingMethod `json:"shipping_method"`
	DirectShippingCost float64             `json:"direct_shipping_cost" binding:"min=0"`
	DirectShippingDays string              `json:"direct_shipping_days" binding:"omitempty,max=50"`
}

// UpdateProductRequest represents a produce listing update request
type UpdateProductRequest struct {
	Name               *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category           *string  `json:"category" binding:"omitempty,max=100"`
	UnitPrice          *float64 `json:"unit_price" binding:"omitempty,gt=0"`
	StockKg            *int     `json:"stock_kg" binding:"omitempty,min=0"`
	MinOrderQuantityKg *int     `json:"min_order_quantity_kg" binding:"omitempty,min=1"`
	Description        *string  `json:"description"`
	DirectShippingCost *float64 `json:"direct_shipping_cost" binding:"omitempty,min=0"`
	DirectShippingDays *string  `json:"direct_shipping_days" binding:"omitempty,max=50"`
}

// ProductFilterRequest represents listing filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	SellerID  string `form:"seller_id"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
