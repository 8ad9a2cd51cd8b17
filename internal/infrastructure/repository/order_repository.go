package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID retrieves an order by ID
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo retrieves an order by its order number
func (r *orderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Where("order_no = ?", orderNo).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetWithRelations retrieves an order with its product and logistics provider
func (r *orderRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("LogisticsProvider").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Update updates an existing order
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Delete removes an order. Used to unwind a snapshot whose loyalty debit
// failed after creation.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}

// UpdateStatus updates only the status of an order
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListByBuyer lists a buyer's orders
func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("buyer_id = ?", buyerID)
	return r.list(query, params)
}

// ListBySeller lists orders against a seller's listings
func (r *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.seller_id = ?", sellerID)
	return r.list(query, params)
}

func (r *orderRepository) list(query *gorm.DB, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	if params.Status != nil {
		query = query.Where("orders.status = ?", *params.Status)
	}
	if params.ProductID != nil {
		query = query.Where("orders.product_id = ?", *params.ProductID)
	}
	if params.StartDate != nil {
		query = query.Where("orders.created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("orders.created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "orders.created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	params.Pagination.Validate()
	err := query.
		Preload("Product").
		Preload("LogisticsProvider").
		Order(sortBy + " " + sortOrder).
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
