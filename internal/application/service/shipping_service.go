package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/geo"
	"github.com/farmgate/farmgate-api/internal/domain/pricing"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/pkg/apperror"
	"github.com/farmgate/farmgate-api/pkg/money"
)

// carrierDefaultDays maps known carrier names to their published delivery
// estimates, used when a logistics profile has no configured estimate
var carrierDefaultDays = map[string]string{
	"poslaju":   "1-3 days",
	"gdex":      "2-4 days",
	"j&t":       "2-3 days",
	"citylink":  "2-5 days",
	"dhl":       "1-2 days",
	"ninja van": "2-4 days",
}

// ShippingService computes shipping quotes for checkout attempts. It is
// stateless; concurrent quotes need no coordination.
type ShippingService struct {
	logisticsRepo    repository.LogisticsProviderRepository
	distanceProvider geo.DistanceProvider
}

// NewShippingService creates a new shipping service
func NewShippingService(
	logisticsRepo repository.LogisticsProviderRepository,
	distanceProvider geo.DistanceProvider,
) *ShippingService {
	return &ShippingService{
		logisticsRepo:    logisticsRepo,
		distanceProvider: distanceProvider,
	}
}

// DirectShippingInput describes a seller-managed shipment: a fixed price
// regardless of buyer location
type DirectShippingInput struct {
	Cost          float64
	EstimatedDays string
}

// ThirdPartyShippingInput describes a shipment priced by a logistics partner
type ThirdPartyShippingInput struct {
	ProviderID  uuid.UUID
	Origin      string // product location
	Destination string // buyer delivery address
	WeightKg    float64
}

// ComputeDirectShippingCost returns the seller's configured price without any
// distance lookup or tier resolution. Direct-shipping sellers set a fixed
// price, so the distance provider is never consulted.
func (s *ShippingService) ComputeDirectShippingCost(input *DirectShippingInput) (*pricing.ShippingQuote, error) {
	if !money.IsValidAmount(input.Cost) {
		return nil, &pricing.InvalidAmountError{Field: "direct_shipping_cost", Value: input.Cost}
	}

	return &pricing.ShippingQuote{
		Cost:          money.Round2(input.Cost),
		EstimatedDays: input.EstimatedDays,
	}, nil
}

// ComputeThirdPartyShippingCost resolves the provider's rate for the shipment
// and prices it as distance x weight x rate, rounded half-up to cents. The
// resolved distance is returned alongside the quote so order snapshots can
// record it without a second lookup.
//
// A failed distance lookup propagates as DistanceUnavailableError; the quote
// never silently falls back to zero distance, since undercharging shipping
// costs the seller money.
func (s *ShippingService) ComputeThirdPartyShippingCost(ctx context.Context, input *ThirdPartyShippingInput) (*pricing.ShippingQuote, float64, error) {
	if input.WeightKg < 0 {
		return nil, 0, &pricing.InvalidAmountError{Field: "weight", Value: input.WeightKg}
	}

	provider, err := s.logisticsRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		return nil, 0, err
	}
	if provider == nil {
		return nil, 0, apperror.NewNotFoundError("Logistics provider")
	}

	cfg, err := pricing.ParseConfigString(provider.PricingModel, provider.PricingConfig)
	if err != nil {
		return nil, 0, err
	}

	distanceKm, err := s.distanceProvider.LookupDistanceKm(ctx, input.Origin, input.Destination)
	if err != nil {
		return nil, 0, &pricing.DistanceUnavailableError{
			Origin:      input.Origin,
			Destination: input.Destination,
			Err:         err,
		}
	}
	if distanceKm <= 0 {
		return nil, 0, &pricing.DistanceUnavailableError{
			Origin:      input.Origin,
			Destination: input.Destination,
		}
	}

	rate, err := pricing.ResolveRate(provider.PricingModel, cfg, pricing.RateContext{
		WeightKg:   input.WeightKg,
		DistanceKm: distanceKm,
	})
	if err != nil {
		return nil, 0, err
	}

	quote := &pricing.ShippingQuote{
		Cost:          money.Round2(distanceKm * input.WeightKg * rate),
		EstimatedDays: s.estimatedDays(provider.EstimatedDeliveryTime, provider.CarrierName),
	}
	return quote, distanceKm, nil
}

// estimatedDays prefers the provider's configured delivery time, then the
// named-carrier default, then unknown
func (s *ShippingService) estimatedDays(configured, carrierName string) string {
	if configured != "" {
		return configured
	}
	if days, ok := carrierDefaultDays[strings.ToLower(carrierName)]; ok {
		return days
	}
	return ""
}
