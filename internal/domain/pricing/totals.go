package pricing

import (
	"math"

	"github.com/farmgate/farmgate-api/pkg/money"
)

// ShippingQuote is the ephemeral result of a shipping cost computation.
// Computed per checkout attempt, never persisted as-is.
type ShippingQuote struct {
	Cost          float64 `json:"cost"`
	EstimatedDays string  `json:"estimated_days,omitempty"`
}

// LoyaltyRedemption describes a buyer's request to redeem reward points
// against the current order.
type LoyaltyRedemption struct {
	Balance         int64   // available points, >= 0
	RequestedPoints int64   // points the buyer asked to redeem
	PointValueRM    float64 // fixed conversion constant, e.g. 0.01
}

// Totals is the order pricing breakdown. TotalAmount is the pre-discount
// order value; AdjustedTotal is the loyalty-adjusted payable amount, a
// derived display value that never overwrites TotalAmount.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	TotalAmount    float64 `json:"total_amount"`
	RedeemedPoints int64   `json:"redeemed_points"`
	DiscountRM     float64 `json:"discount_rm"`
	AdjustedTotal  float64 `json:"adjusted_total"`
}

// ComputeTotals combines unit price, quantity, shipping cost and an optional
// loyalty redemption into the final payable breakdown.
//
// Redemption is clamped simultaneously by the buyer's balance and by the
// point-equivalent of the order total, so the redeemed points never exceed
// either bound and the adjusted total stays within [0, TotalAmount].
//
// The engine only computes numbers; crediting or debiting the buyer's
// loyalty ledger and persisting the snapshot is the caller's job.
func ComputeTotals(unitPrice float64, quantity int, shippingCost float64, loyalty *LoyaltyRedemption) (*Totals, error) {
	if !money.IsValidAmount(unitPrice) {
		return nil, &InvalidAmountError{Field: "unit_price", Value: unitPrice}
	}
	if quantity < 0 {
		return nil, &InvalidAmountError{Field: "quantity", Value: float64(quantity)}
	}
	if !money.IsValidAmount(shippingCost) {
		return nil, &InvalidAmountError{Field: "shipping_cost", Value: shippingCost}
	}

	subtotal := money.Round2(unitPrice * float64(quantity))
	totalAmount := money.Round2(subtotal + shippingCost)

	totals := &Totals{
		Subtotal:      subtotal,
		TotalAmount:   totalAmount,
		AdjustedTotal: totalAmount,
	}

	if loyalty == nil {
		return totals, nil
	}

	if !money.IsValidAmount(loyalty.PointValueRM) || loyalty.PointValueRM == 0 {
		return nil, &InvalidAmountError{Field: "point_value_rm", Value: loyalty.PointValueRM}
	}

	maxByTotal := int64(math.Floor(totalAmount / loyalty.PointValueRM))
	redeemed := loyalty.RequestedPoints
	if redeemed < 0 {
		redeemed = 0
	}
	if redeemed > loyalty.Balance {
		redeemed = loyalty.Balance
	}
	if redeemed > maxByTotal {
		redeemed = maxByTotal
	}
	if redeemed < 0 {
		redeemed = 0
	}

	discount := money.Round2(float64(redeemed) * loyalty.PointValueRM)
	adjusted := money.Round2(totalAmount - discount)
	if adjusted < 0 {
		adjusted = 0
	}

	totals.RedeemedPoints = redeemed
	totals.DiscountRM = discount
	totals.AdjustedTotal = adjusted

	return totals, nil
}
