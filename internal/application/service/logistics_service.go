package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/pricing"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/pkg/apperror"
)

// LogisticsService manages logistics partner pricing profiles. Raw tier
// strings are parsed and validated here, at the system boundary; everything
// past this point works with the typed pricing.Config.
type LogisticsService struct {
	logisticsRepo repository.LogisticsProviderRepository
}

// NewLogisticsService creates a new logistics service
func NewLogisticsService(logisticsRepo repository.LogisticsProviderRepository) *LogisticsService {
	return &LogisticsService{logisticsRepo: logisticsRepo}
}

// CreateProfileInput represents a new logistics profile
type CreateProfileInput struct {
	UserID                uuid.UUID
	CompanyName           string
	CarrierName           string
	PricingModel          enum.PricingModel
	PricingConfig         []string // serialized entries, e.g. "0-10@0.06"
	EstimatedDeliveryTime string
	ServiceAreas          *string
}

// CreateProfile registers a logistics provider profile. The pricing model is
// fixed at creation time.
func (s *LogisticsService) CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.LogisticsProvider, error) {
	existing, err := s.logisticsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Logistics profile already exists")
	}

	cfg, err := s.parseAndValidate(input.PricingModel, input.PricingConfig)
	if err != nil {
		return nil, err
	}

	provider := &entity.LogisticsProvider{
		UserID:                input.UserID,
		CompanyName:           input.CompanyName,
		CarrierName:           input.CarrierName,
		PricingModel:          input.PricingModel,
		PricingConfig:         pricing.SerializeConfigString(cfg),
		EstimatedDeliveryTime: input.EstimatedDeliveryTime,
		ServiceAreas:          input.ServiceAreas,
		Active:                true,
	}

	if err := s.logisticsRepo.Create(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// UpdateProfileInput represents updatable profile fields. The pricing model
// itself is immutable; only the config within the model can change.
type UpdateProfileInput struct {
	UserID                uuid.UUID
	CompanyName           string
	CarrierName           string
	PricingConfig         []string
	EstimatedDeliveryTime string
	ServiceAreas          *string
	Active                *bool
}

// UpdateProfile edits a provider's profile, re-validating the pricing config
func (s *LogisticsService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.LogisticsProvider, error) {
	provider, err := s.logisticsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Logistics profile")
	}

	if input.PricingConfig != nil {
		cfg, err := s.parseAndValidate(provider.PricingModel, input.PricingConfig)
		if err != nil {
			return nil, err
		}
		provider.PricingConfig = pricing.SerializeConfigString(cfg)
	}

	if input.CompanyName != "" {
		provider.CompanyName = input.CompanyName
	}
	if input.CarrierName != "" {
		provider.CarrierName = input.CarrierName
	}
	if input.EstimatedDeliveryTime != "" {
		provider.EstimatedDeliveryTime = input.EstimatedDeliveryTime
	}
	if input.ServiceAreas != nil {
		provider.ServiceAreas = input.ServiceAreas
	}
	if input.Active != nil {
		provider.Active = *input.Active
	}

	if err := s.logisticsRepo.Update(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// GetProfile retrieves the caller's logistics profile
func (s *LogisticsService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.LogisticsProvider, error) {
	provider, err := s.logisticsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Logistics profile")
	}
	return provider, nil
}

// ListActiveProviders lists providers buyers can pick at checkout
func (s *LogisticsService) ListActiveProviders(ctx context.Context) ([]entity.LogisticsProvider, error) {
	return s.logisticsRepo.ListActive(ctx)
}

// parseAndValidate converts profile-edit errors into seller-facing 422s,
// keeping the strict path here while quote-time parsing stays lenient
func (s *LogisticsService) parseAndValidate(model enum.PricingModel, entries []string) (*pricing.Config, error) {
	cfg, err := pricing.ParseConfig(model, entries)
	if err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, apperror.NewUnprocessableError(err.Error())
	}
	return cfg, nil
}
