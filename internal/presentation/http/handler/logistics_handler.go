package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/request"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/response"
)

// LogisticsHandler handles logistics provider profile HTTP requests
type LogisticsHandler struct {
	logisticsService *service.LogisticsService
}

// NewLogisticsHandler creates a new logistics handler
func NewLogisticsHandler(logisticsService *service.LogisticsService) *LogisticsHandler {
	return &LogisticsHandler{logisticsService: logisticsService}
}

// CreateProfile handles registering a logistics provider profile
func (h *LogisticsHandler) CreateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateLogisticsProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	provider, err := h.logisticsService.CreateProfile(c.Request.Context(), &service.CreateProfileInput{
		UserID:                *userID,
		CompanyName:           req.CompanyName,
		CarrierName:           req.CarrierName,
		PricingModel:          req.PricingModel,
		PricingConfig:         req.PricingConfig,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		ServiceAreas:          req.ServiceAreas,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Logistics profile created successfully", provider)
}

// UpdateProfile handles editing the caller's logistics profile
func (h *LogisticsHandler) UpdateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateLogisticsProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	provider, err := h.logisticsService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		UserID:                *userID,
		CompanyName:           req.CompanyName,
		CarrierName:           req.CarrierName,
		PricingConfig:         req.PricingConfig,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		ServiceAreas:          req.ServiceAreas,
		Active:                req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logistics profile updated successfully", provider)
}

// GetProfile handles retrieving the caller's logistics profile
func (h *LogisticsHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	provider, err := h.logisticsService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logistics profile retrieved successfully", provider)
}

// ListActive handles listing providers available at checkout
func (h *LogisticsHandler) ListActive(c *gin.Context) {
	providers, err := h.logisticsService.ListActiveProviders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logistics providers retrieved successfully", providers)
}
