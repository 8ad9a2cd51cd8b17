package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

type logisticsProviderRepository struct {
	db *gorm.DB
}

// NewLogisticsProviderRepository creates a new logistics provider repository
func NewLogisticsProviderRepository(db *gorm.DB) repository.LogisticsProviderRepository {
	return &logisticsProviderRepository{db: db}
}

// Create creates a new logistics provider profile
func (r *logisticsProviderRepository) Create(ctx context.Context, provider *entity.LogisticsProvider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

// GetByID retrieves a provider by ID
func (r *logisticsProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogisticsProvider, error) {
	var provider entity.LogisticsProvider
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// GetByUserID retrieves the profile owned by a user account
func (r *logisticsProviderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.LogisticsProvider, error) {
	var provider entity.LogisticsProvider
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&provider).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// Update updates an existing profile
func (r *logisticsProviderRepository) Update(ctx context.Context, provider *entity.LogisticsProvider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

// ListActive lists providers available for checkout
func (r *logisticsProviderRepository) ListActive(ctx context.Context) ([]entity.LogisticsProvider, error) {
	var providers []entity.LogisticsProvider
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("company_name asc").
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}
