package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/pkg/pagination"
)

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	ProductID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
}
