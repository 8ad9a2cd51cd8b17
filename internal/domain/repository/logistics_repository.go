package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
)

// LogisticsProviderRepository defines the interface for logistics profile
// data operations
type LogisticsProviderRepository interface {
	Create(ctx context.Context, provider *entity.LogisticsProvider) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LogisticsProvider, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.LogisticsProvider, error)
	Update(ctx context.Context, provider *entity.LogisticsProvider) error
	ListActive(ctx context.Context) ([]entity.LogisticsProvider, error)
}
