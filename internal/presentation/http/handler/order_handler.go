package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/request"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/response"
	"github.com/farmgate/farmgate-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles placing an order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		BuyerID:             *userID,
		ProductID:           req.ProductID,
		QuantityKg:          req.QuantityKg,
		DeliveryAddress:     req.DeliveryAddress,
		LogisticsProviderID: req.LogisticsProviderID,
		RedeemPoints:        req.RedeemPoints,
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// ListMine handles listing the buyer's own orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.orderService.ListBuyerOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// ListSales handles listing orders against the seller's listings
func (h *OrderHandler) ListSales(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.orderService.ListSellerOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// UpdateStatus handles a seller-side order status transition
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), *userID, orderID, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// Cancel handles a buyer cancelling a pending order
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), *userID, orderID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", nil)
}

func (h *OrderHandler) bindFilter(c *gin.Context) (*repository.OrderFilterParams, bool) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, false
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != "" {
		status, err := enum.ParseOrderStatus(filter.Status)
		if err != nil {
			response.BadRequest(c, "Invalid order status")
			return nil, false
		}
		params.Status = &status
	}

	if filter.ProductID != "" {
		productID, err := uuid.Parse(filter.ProductID)
		if err == nil {
			params.ProductID = &productID
		}
	}

	return params, true
}
