package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/request"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout quote HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Quote handles computing a checkout quote without creating an order
func (h *CheckoutHandler) Quote(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.QuoteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quote, err := h.checkoutService.QuoteCheckout(c.Request.Context(), &service.QuoteInput{
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

	response.OK(c, "Checkout quote computed successfully", quote)
}
