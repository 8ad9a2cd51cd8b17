package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/application/service"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/request"
	"github.com/farmgate/farmgate-api/internal/presentation/http/dto/response"
	"github.com/farmgate/farmgate-api/pkg/pagination"
)

// ProductHandler handles produce listing HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles browsing listings. Open to any authenticated user.
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.SellerID != "" {
		sellerID, err := uuid.Parse(filter.SellerID)
		if err == nil {
			params.SellerID = &sellerID
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Mine handles listing the authenticated seller's own listings
func (h *ProductHandler) Mine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		SellerID:  userID,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a listing
func (h *ProductHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		SellerID:           *userID,
		Name:               req.Name,
		Category:           req.Category,
		UnitPrice:          req.UnitPrice,
		StockKg:            req.StockKg,
		MinOrderQuantityKg: req.MinOrderQuantityKg,
		Location:           req.Location,
		Description:        req.Description,
		ShippingMethod:     req.ShippingMethod,
		DirectShippingCost: req.DirectShippingCost,
		DirectShippingDays: req.DirectShippingDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single listing
func (h *ProductHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a listing
func (h *ProductHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		SellerID:           *userID,
		Slug:               slug,
		Name:               req.Name,
		Category:           req.Category,
		UnitPrice:          req.UnitPrice,
		StockKg:            req.StockKg,
		MinOrderQuantityKg: req.MinOrderQuantityKg,
		Description:        req.Description,
		DirectShippingCost: req.DirectShippingCost,
		DirectShippingDays: req.DirectShippingDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a listing by slug
func (h *ProductHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Product slug is required")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), *userID, slug); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
