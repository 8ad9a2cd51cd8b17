package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/request"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/response"
)

// LoyaltyHandler handles loyalty point HTTP requests
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// GetBalance handles retrieving the buyer's point balance
func (h *LoyaltyHandler) GetBalance(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	balance, err := h.loyaltyService.GetBalance(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Loyalty balance retrieved successfully", gin.H{"balance": balance})
}

// ListTransactions handles listing the buyer's ledger entries
func (h *LoyaltyHandler) ListTransactions(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	txns, err := h.loyaltyService.ListTransactions(c.Request.Context(), *userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Loyalty transactions retrieved successfully", txns)
}

// PreviewRedemption handles previewing a redemption against an order total
func (h *LoyaltyHandler) PreviewRedemption(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RedemptionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	preview, err := h.loyaltyService.PreviewRedemption(c.Request.Context(), *userID, req.RequestedPoints, req.OrderTotal)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.OK(c, "Redemption preview computed successfully", preview)
}
