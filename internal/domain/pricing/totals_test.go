package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsWithoutLoyalty(t *testing.T) {
	totals, err := ComputeTotals(4.50, 100, 120.00, nil)
	require.NoError(t, err)

	assert.Equal(t, 450.00, totals.Subtotal)
	assert.Equal(t, 570.00, totals.TotalAmount)
	assert.Equal(t, int64(0), totals.RedeemedPoints)
	assert.Equal(t, 0.00, totals.DiscountRM)
	assert.Equal(t, 570.00, totals.AdjustedTotal)
}

func TestComputeTotalsZeroQuantity(t *testing.T) {
	totals, err := ComputeTotals(4.50, 0, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.TotalAmount)
	assert.Equal(t, 0.00, totals.AdjustedTotal)
}

func TestComputeTotalsFullRedemption(t *testing.T) {
	// 1000 points at RM0.01 each against a RM50 order
	totals, err := ComputeTotals(10.00, 5, 0, &LoyaltyRedemption{
		Balance:         1000,
		RequestedPoints: 1000,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, 50.00, totals.TotalAmount)
	assert.Equal(t, int64(1000), totals.RedeemedPoints)
	assert.Equal(t, 10.00, totals.DiscountRM)
	assert.Equal(t, 40.00, totals.AdjustedTotal)
}

func TestComputeTotalsClampedByBalance(t *testing.T) {
	totals, err := ComputeTotals(10.00, 5, 0, &LoyaltyRedemption{
		Balance:         300,
		RequestedPoints: 1000,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(300), totals.RedeemedPoints)
	assert.Equal(t, 3.00, totals.DiscountRM)
	assert.Equal(t, 47.00, totals.AdjustedTotal)
}

func TestComputeTotalsClampedByOrderValue(t *testing.T) {
	// Order worth 500 points; a huge balance cannot push the payable below zero
	totals, err := ComputeTotals(1.00, 5, 0, &LoyaltyRedemption{
		Balance:         100000,
		RequestedPoints: 100000,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, 5.00, totals.TotalAmount)
	assert.Equal(t, int64(500), totals.RedeemedPoints)
	assert.Equal(t, 5.00, totals.DiscountRM)
	assert.Equal(t, 0.00, totals.AdjustedTotal)
}

func TestComputeTotalsNegativeRequestTreatedAsZero(t *testing.T) {
	totals, err := ComputeTotals(10.00, 5, 0, &LoyaltyRedemption{
		Balance:         1000,
		RequestedPoints: -50,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), totals.RedeemedPoints)
	assert.Equal(t, 50.00, totals.AdjustedTotal)
}

func TestComputeTotalsZeroRequestNoDiscount(t *testing.T) {
	totals, err := ComputeTotals(10.00, 5, 25.00, &LoyaltyRedemption{
		Balance:         1000,
		RequestedPoints: 0,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, 75.00, totals.TotalAmount)
	assert.Equal(t, int64(0), totals.RedeemedPoints)
	assert.Equal(t, 75.00, totals.AdjustedTotal)
}

func TestComputeTotalsTotalAmountNeverMutated(t *testing.T) {
	totals, err := ComputeTotals(10.00, 5, 0, &LoyaltyRedemption{
		Balance:         1000,
		RequestedPoints: 1000,
		PointValueRM:    0.01,
	})
	require.NoError(t, err)

	// The discount lands on AdjustedTotal only
	assert.Equal(t, 50.00, totals.TotalAmount)
	assert.Equal(t, 40.00, totals.AdjustedTotal)
}

func TestComputeTotalsInvalidInputs(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    float64
		quantity     int
		shippingCost float64
		loyalty      *LoyaltyRedemption
	}{
		{"negative unit price", -1, 5, 0, nil},
		{"NaN unit price", math.NaN(), 5, 0, nil},
		{"negative quantity", 10, -1, 0, nil},
		{"negative shipping", 10, 5, -1, nil},
		{"infinite shipping", 10, 5, math.Inf(1), nil},
		{"zero point value", 10, 5, 0, &LoyaltyRedemption{Balance: 100, RequestedPoints: 10, PointValueRM: 0}},
		{"negative point value", 10, 5, 0, &LoyaltyRedemption{Balance: 100, RequestedPoints: 10, PointValueRM: -0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.unitPrice, tt.quantity, tt.shippingCost, tt.loyalty)
			require.Error(t, err)

			var amtErr *InvalidAmountError
			assert.ErrorAs(t, err, &amtErr)
		})
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	// 3 x 3.333 = 9.999 -> 10.00 after half-up rounding
	totals, err := ComputeTotals(3.333, 3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.00, totals.Subtotal)
}
