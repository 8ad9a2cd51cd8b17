package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/pkg/apperror"
	"github.com/farmgate/farmgate-api/pkg/money"
	"github.com/farmgate/farmgate-api/pkg/pagination"
	"github.com/farmgate/farmgate-api/pkg/utils"
)

// ProductService handles produce listing operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create listing input
type CreateProductInput struct {
	SellerID           uuid.UUID
	Name               string
	Category           string
	UnitPrice          float64
	StockKg            int
	MinOrderQuantityKg int
	Location           string
	Description        *string
	ShippingMethod     enum.ShippingMethod
	DirectShippingCost float64
	DirectShippingDays string
}

// CreateProduct creates a new produce listing
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if !money.IsValidAmount(input.UnitPrice) || input.UnitPrice == 0 {
		return nil, apperror.NewBadRequestError("Unit price must be positive")
	}
	if input.StockKg < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}
	if input.MinOrderQuantityKg < 1 {
		input.MinOrderQuantityKg = 1
	}
	if input.Location == "" {
		return nil, apperror.NewBadRequestError("Listing location is required")
	}
	if input.ShippingMethod == enum.ShippingMethodDirect && !money.IsValidAmount(input.DirectShippingCost) {
		return nil, apperror.NewBadRequestError("Direct shipping cost must be non-negative")
	}

	product := &entity.Product{
		SellerID:           input.SellerID,
		Name:               input.Name,
		Slug:               utils.Slugify(input.Name) + "-" + utils.GenerateListingCode(),
		Code:               utils.GenerateListingCode(),
		Category:           input.Category,
		StockKg:            input.StockKg,
		MinOrderQuantityKg: input.MinOrderQuantityKg,
		Location:           input.Location,
		Description:        input.Description,
		ShippingMethod:     input.ShippingMethod,
		DirectShippingDays: input.DirectShippingDays,
	}
	product.SetUnitPriceFromDecimal(input.UnitPrice)
	product.SetDirectShippingCostFromDecimal(input.DirectShippingCost)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductInput represents the update listing input
type UpdateProductInput struct {
	SellerID           uuid.UUID
	Slug               string
	Name               *string
	Category           *string
	UnitPrice          *float64
	StockKg            *int
	MinOrderQuantityKg *int
	Description        *string
	DirectShippingCost *float64
	DirectShippingDays *string
}

// UpdateProduct edits a listing owned by the seller
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.SellerID != input.SellerID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.UnitPrice != nil {
		if !money.IsValidAmount(*input.UnitPrice) || *input.UnitPrice == 0 {
			return nil, apperror.NewBadRequestError("Unit price must be positive")
		}
		product.SetUnitPriceFromDecimal(*input.UnitPrice)
	}
	if input.StockKg != nil {
		if *input.StockKg < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		product.StockKg = *input.StockKg
	}
	if input.MinOrderQuantityKg != nil && *input.MinOrderQuantityKg >= 1 {
		product.MinOrderQuantityKg = *input.MinOrderQuantityKg
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.DirectShippingCost != nil {
		if !money.IsValidAmount(*input.DirectShippingCost) {
			return nil, apperror.NewBadRequestError("Direct shipping cost must be non-negative")
		}
		product.SetDirectShippingCostFromDecimal(*input.DirectShippingCost)
	}
	if input.DirectShippingDays != nil {
		product.DirectShippingDays = *input.DirectShippingDays
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a listing by slug
func (s *ProductService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists listings with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// DeleteProduct removes a listing owned by the seller
func (s *ProductService) DeleteProduct(ctx context.Context, sellerID uuid.UUID, slug string) error {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	if product.SellerID != sellerID {
		return apperror.ErrForbidden
	}

	return s.productRepo.Delete(ctx, product.ID)
}
