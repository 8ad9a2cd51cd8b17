package pricing

import (
	"math"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

// RateContext carries the shipment attributes a rate resolution keys on
type RateContext struct {
	WeightKg   float64
	DistanceKm float64
}

// ResolveRate resolves the applicable per-unit rate (RM per kg per km) for a
// shipment given a provider's pricing model and parsed configuration.
//
// FlatRate returns the configured rate unconditionally; the caller multiplies
// in weight and distance. Tiered models select the first tier (ascending Min)
// whose [Min, Max) range contains the keyed value, weight for TieredByWeight
// and distance for TieredByDistance. A gap in the tier table yields
// NoMatchingTierError so checkout fails closed instead of guessing.
//
// Pure function of its inputs.
func ResolveRate(model enum.PricingModel, cfg *Config, rc RateContext) (float64, error) {
	if rc.WeightKg < 0 || math.IsNaN(rc.WeightKg) {
		return 0, &InvalidAmountError{Field: "weight", Value: rc.WeightKg}
	}
	if rc.DistanceKm < 0 || math.IsNaN(rc.DistanceKm) {
		return 0, &InvalidAmountError{Field: "distance", Value: rc.DistanceKm}
	}

	if cfg == nil {
		return 0, NewConfigurationError("missing configuration")
	}
	if cfg.Model != model {
		return 0, NewConfigurationError("configuration does not match pricing model " + model.String())
	}

	switch model {
	case enum.PricingModelFlatRate:
		// A missing rate must never resolve to a free shipment; only an
		// explicitly configured zero does
		if cfg.FlatRate == nil {
			return 0, NewConfigurationError("flat rate is not configured")
		}
		if *cfg.FlatRate < 0 {
			return 0, NewConfigurationError("flat rate must be non-negative")
		}
		return *cfg.FlatRate, nil

	case enum.PricingModelTieredByWeight:
		return selectTier(cfg.Tiers, "weight", rc.WeightKg)

	case enum.PricingModelTieredByDistance:
		return selectTier(cfg.Tiers, "distance", rc.DistanceKm)

	default:
		return 0, NewConfigurationError("unknown pricing model")
	}
}

// selectTier scans tiers in ascending Min order; first match wins
func selectTier(tiers []Tier, dimension string, value float64) (float64, error) {
	for _, tier := range tiers {
		if tier.Contains(value) {
			return tier.Rate, nil
		}
	}
	return 0, &NoMatchingTierError{Dimension: dimension, Value: value}
}
