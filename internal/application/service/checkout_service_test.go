package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

type checkoutFixture struct {
	productRepo   *fakeProductRepo
	loyaltyRepo   *fakeLoyaltyRepo
	logisticsRepo *fakeLogisticsRepo
	distance      *fakeDistanceProvider
	svc           *CheckoutService
}

func newCheckoutFixture(distanceKm float64) *checkoutFixture {
	productRepo := newFakeProductRepo()
	loyaltyRepo := newFakeLoyaltyRepo()
	logisticsRepo := newFakeLogisticsRepo()
	distance := &fakeDistanceProvider{km: distanceKm}
	shipping := NewShippingService(logisticsRepo, distance)

	return &checkoutFixture{
		productRepo:   productRepo,
		loyaltyRepo:   loyaltyRepo,
		logisticsRepo: logisticsRepo,
		distance:      distance,
		svc:           NewCheckoutService(productRepo, loyaltyRepo, shipping, 0.01),
	}
}

func (fx *checkoutFixture) seedProduct(method enum.ShippingMethod, unitPrice float64) *entity.Product {
	product := &entity.Product{
		ID:                 uuid.New(),
		SellerID:           uuid.New(),
		Name:               "Highland Tomatoes",
		Slug:               "highland-tomatoes",
		StockKg:            1000,
		MinOrderQuantityKg: 10,
		Location:           "Cameron Highlands, Pahang",
		ShippingMethod:     method,
	}
	product.SetUnitPriceFromDecimal(unitPrice)
	if method == enum.ShippingMethodDirect {
		product.SetDirectShippingCostFromDecimal(25.00)
		product.DirectShippingDays = "2-3 days"
	}
	fx.productRepo.products[product.ID] = product
	return product
}

func TestQuoteCheckoutDirectShipping(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	quote, err := fx.svc.QuoteCheckout(context.Background(), &QuoteInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ShippingMethodDirect, quote.ShippingMethod)
	assert.Equal(t, 25.00, quote.Shipping.Cost)
	assert.Equal(t, "2-3 days", quote.Shipping.EstimatedDays)
	assert.Nil(t, quote.DistanceKm)
	assert.Equal(t, 450.00, quote.Totals.Subtotal)
	assert.Equal(t, 475.00, quote.Totals.TotalAmount)
	// Distance provider must not be consulted for seller-managed shipping
	assert.Equal(t, 0, fx.distance.calls)
}

func TestQuoteCheckoutThirdPartyShipping(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodThirdParty, 4.50)
	provider := seedProvider(fx.logisticsRepo, enum.PricingModelFlatRate, "0.05")
	buyerID := uuid.New()

	quote, err := fx.svc.QuoteCheckout(context.Background(), &QuoteInput{
		BuyerID:             buyerID,
		ProductID:           product.ID,
		QuantityKg:          500,
		DeliveryAddress:     "Petaling Jaya, Selangor",
		LogisticsProviderID: &provider.ID,
	})
	require.NoError(t, err)

	// 120 km x 500 kg x RM0.05
	assert.Equal(t, 3000.00, quote.Shipping.Cost)
	require.NotNil(t, quote.DistanceKm)
	assert.Equal(t, 120.0, *quote.DistanceKm)
	assert.Equal(t, 2250.00, quote.Totals.Subtotal)
	assert.Equal(t, 5250.00, quote.Totals.TotalAmount)
	assert.Equal(t, 1, fx.distance.calls)
}

func TestQuoteCheckoutThirdPartyRequiresProvider(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodThirdParty, 4.50)

	_, err := fx.svc.QuoteCheckout(context.Background(), &QuoteInput{
		BuyerID:         uuid.New(),
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logistics provider")
}

func TestQuoteCheckoutValidation(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)

	tests := []struct {
		name  string
		input *QuoteInput
	}{
		{
			"unknown product",
			&QuoteInput{BuyerID: uuid.New(), ProductID: uuid.New(), QuantityKg: 100, DeliveryAddress: "PJ"},
		},
		{
			"below minimum order quantity",
			&QuoteInput{BuyerID: uuid.New(), ProductID: product.ID, QuantityKg: 5, DeliveryAddress: "PJ"},
		},
		{
			"exceeds stock",
			&QuoteInput{BuyerID: uuid.New(), ProductID: product.ID, QuantityKg: 5000, DeliveryAddress: "PJ"},
		},
		{
			"missing delivery address",
			&QuoteInput{BuyerID: uuid.New(), ProductID: product.ID, QuantityKg: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.QuoteCheckout(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}
}

func TestQuoteCheckoutLoyaltyRedemption(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodDirect, 10.00)
	buyerID := uuid.New()

	require.NoError(t, fx.loyaltyRepo.Credit(context.Background(), buyerID, 1000, nil))

	quote, err := fx.svc.QuoteCheckout(context.Background(), &QuoteInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      10,
		DeliveryAddress: "Petaling Jaya, Selangor",
		RedeemPoints:    5000, // more than the balance, clamps to 1000
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), quote.LoyaltyBalance)
	assert.Equal(t, 125.00, quote.Totals.TotalAmount) // 100 + 25 shipping
	assert.Equal(t, int64(1000), quote.Totals.RedeemedPoints)
	assert.Equal(t, 10.00, quote.Totals.DiscountRM)
	assert.Equal(t, 115.00, quote.Totals.AdjustedTotal)
}

func TestQuoteCheckoutNoRedemptionRequested(t *testing.T) {
	fx := newCheckoutFixture(120)
	product := fx.seedProduct(enum.ShippingMethodDirect, 10.00)
	buyerID := uuid.New()

	require.NoError(t, fx.loyaltyRepo.Credit(context.Background(), buyerID, 1000, nil))

	quote, err := fx.svc.QuoteCheckout(context.Background(), &QuoteInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      10,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), quote.Totals.RedeemedPoints)
	assert.Equal(t, quote.Totals.TotalAmount, quote.Totals.AdjustedTotal)
}
