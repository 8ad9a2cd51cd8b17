package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingModelString(t *testing.T) {
	assert.Equal(t, "FlatRate", PricingModelFlatRate.String())
	assert.Equal(t, "TieredByWeight", PricingModelTieredByWeight.String())
	assert.Equal(t, "TieredByDistance", PricingModelTieredByDistance.String())

	// Out-of-range values (a corrupt stored row) must render, not panic
	assert.Equal(t, "Unknown", PricingModel(99).String())
	assert.Equal(t, "Unknown", PricingModel(-1).String())
}

func TestOrderStatusString(t *testing.T) {
	assert.Equal(t, "Pending", OrderStatusPending.String())
	assert.Equal(t, "Cancelled", OrderStatusCancelled.String())
	assert.Equal(t, "Unknown", OrderStatus(42).String())
}

func TestShippingMethodString(t *testing.T) {
	assert.Equal(t, "direct", ShippingMethodDirect.String())
	assert.Equal(t, "third-party", ShippingMethodThirdParty.String())
	assert.Equal(t, "Unknown", ShippingMethod(7).String())
}
