package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/pkg/pagination"
)

// ProductFilterParams contains filtering parameters for listing queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SellerID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for produce listing data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// AtomicDecrementStock decrements stock only if enough remains,
	// returning false when the listing has insufficient stock
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, quantityKg int) (bool, error)
	AtomicIncrementStock(ctx context.Context, id uuid.UUID, quantityKg int) error
}
