package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new produce listing
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID retrieves a listing by ID
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug retrieves a listing by slug
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Update updates an existing listing
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete soft-deletes a listing
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

// List lists listings with filtering and pagination
func (r *productRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", search, search)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.SellerID != nil {
		query = query.Where("seller_id = ?", *params.SellerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	params.Pagination.Validate()
	err := query.
		Order(sortBy + " " + sortOrder).
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// AtomicDecrementStock decrements stock only when enough remains.
// The conditional update makes concurrent order creation race-safe.
func (r *productRepository) AtomicDecrementStock(ctx context.Context, id uuid.UUID, quantityKg int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ? AND stock_kg >= ?", id, quantityKg).
		UpdateColumn("stock_kg", gorm.Expr("stock_kg - ?", quantityKg))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AtomicIncrementStock restores stock, used on order failure or cancellation
func (r *productRepository) AtomicIncrementStock(ctx context.Context, id uuid.UUID, quantityKg int) error {
	return r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_kg", gorm.Expr("stock_kg + ?", quantityKg)).Error
}
