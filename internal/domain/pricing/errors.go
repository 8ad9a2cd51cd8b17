package pricing

import "fmt"

// ConfigurationError indicates a pricing model/config mismatch or a missing
// or invalid provider configuration. It is not retryable and is surfaced to
// the seller or logistics provider who owns the profile, never to a buyer
// mid-checkout.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "pricing configuration invalid: " + e.Reason
}

// NewConfigurationError creates a configuration error with a reason
func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// NoMatchingTierError indicates the configured tier table has a gap for the
// given weight or distance. Checkout fails closed rather than guessing a rate.
type NoMatchingTierError struct {
	Dimension string // "weight" or "distance"
	Value     float64
}

func (e *NoMatchingTierError) Error() string {
	return fmt.Sprintf("no pricing tier matches %s %.2f", e.Dimension, e.Value)
}

// DistanceUnavailableError indicates the external geolocation lookup failed.
// Retryable by the caller; a quote must never fall back to zero distance.
type DistanceUnavailableError struct {
	Origin      string
	Destination string
	Err         error
}

func (e *DistanceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("distance unavailable for %q -> %q: %v", e.Origin, e.Destination, e.Err)
	}
	return fmt.Sprintf("distance unavailable for %q -> %q", e.Origin, e.Destination)
}

func (e *DistanceUnavailableError) Unwrap() error {
	return e.Err
}

// InvalidAmountError indicates a negative or NaN monetary input.
// This is a programmer error and should never occur from a valid flow.
type InvalidAmountError struct {
	Field string
	Value float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount for %s: %v", e.Field, e.Value)
}
