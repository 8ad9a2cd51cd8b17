package geo

import "context"

// DistanceProvider resolves driving distance in km between two free-form
// addresses. Implementations call out to an external geolocation service;
// they are injected so quoting stays deterministic under test.
//
// A failed or ambiguous lookup returns an error, never a zero distance.
type DistanceProvider interface {
	LookupDistanceKm(ctx context.Context, origin, destination string) (float64, error)
}
