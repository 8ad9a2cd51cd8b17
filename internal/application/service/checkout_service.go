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

// CheckoutService produces the full pricing quote a buyer sees before
// confirming an order: shipping cost, order totals and the loyalty-adjusted
// payable amount. It computes numbers only; persisting the snapshot and
// moving loyalty points is OrderService's job.
type CheckoutService struct {
	productRepo     repository.ProductRepository
	loyaltyRepo     repository.LoyaltyRepository
	shippingService *ShippingService
	pointValueRM    float64
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	productRepo repository.ProductRepository,
	loyaltyRepo repository.LoyaltyRepository,
	shippingService *ShippingService,
	pointValueRM float64,
) *CheckoutService {
	return &CheckoutService{
		productRepo:     productRepo,
		loyaltyRepo:     loyaltyRepo,
		shippingService: shippingService,
		pointValueRM:    pointValueRM,
	}
}

// QuoteInput represents a checkout quote request
type QuoteInput struct {
	BuyerID             uuid.UUID
	ProductID           uuid.UUID
	QuantityKg          int
	DeliveryAddress     string
	LogisticsProviderID *uuid.UUID // required for third-party shipping
	RedeemPoints        int64
}

// Quote is the computed checkout breakdown surfaced to the buyer
type Quote struct {
	Product        *entity.Product        `json:"product"`
	ShippingMethod enum.ShippingMethod    `json:"shipping_method"`
	Shipping       *pricing.ShippingQuote `json:"shipping"`
	DistanceKm     *float64               `json:"distance_km,omitempty"`
	Totals         *pricing.Totals        `json:"totals"`
	LoyaltyBalance int64                  `json:"loyalty_balance"`
}

// QuoteCheckout validates the request against the listing, quotes shipping
// by the seller's configured method and combines everything into order
// totals with the optional loyalty redemption applied.
func (s *CheckoutService) QuoteCheckout(ctx context.Context, input *QuoteInput) (*Quote, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.QuantityKg < product.MinOrderQuantityKg {
		return nil, apperror.NewBadRequestError("Quantity is below the minimum order quantity")
	}
	if input.QuantityKg > product.StockKg {
		return nil, apperror.NewBadRequestError("Quantity exceeds available stock")
	}
	if input.DeliveryAddress == "" {
		return nil, apperror.NewBadRequestError("Delivery address is required")
	}

	quote := &Quote{
		Product:        product,
		ShippingMethod: product.ShippingMethod,
	}

	switch product.ShippingMethod {
	case enum.ShippingMethodDirect:
		shipping, err := s.shippingService.ComputeDirectShippingCost(&DirectShippingInput{
			Cost:          product.GetDirectShippingCostDecimal(),
			EstimatedDays: product.DirectShippingDays,
		})
		if err != nil {
			return nil, err
		}
		quote.Shipping = shipping

	case enum.ShippingMethodThirdParty:
		if input.LogisticsProviderID == nil {
			return nil, apperror.NewBadRequestError("Logistics provider is required for third-party shipping")
		}
		shipping, distanceKm, err := s.shippingService.ComputeThirdPartyShippingCost(ctx, &ThirdPartyShippingInput{
			ProviderID:  *input.LogisticsProviderID,
			Origin:      product.Location,
			Destination: input.DeliveryAddress,
			WeightKg:    float64(input.QuantityKg),
		})
		if err != nil {
			return nil, err
		}
		quote.Shipping = shipping
		quote.DistanceKm = &distanceKm

	default:
		return nil, apperror.NewBadRequestError("Unknown shipping method")
	}

	balance, err := s.loyaltyBalance(ctx, input.BuyerID)
	if err != nil {
		return nil, err
	}
	quote.LoyaltyBalance = balance

	var loyalty *pricing.LoyaltyRedemption
	if input.RedeemPoints > 0 {
		loyalty = &pricing.LoyaltyRedemption{
			Balance:         balance,
			RequestedPoints: input.RedeemPoints,
			PointValueRM:    s.pointValueRM,
		}
	}

	totals, err := pricing.ComputeTotals(
		product.GetUnitPriceDecimal(),
		input.QuantityKg,
		quote.Shipping.Cost,
		loyalty,
	)
	if err != nil {
		return nil, err
	}
	quote.Totals = totals

	return quote, nil
}

// PointValueRM exposes the configured point conversion constant
func (s *CheckoutService) PointValueRM() float64 {
	return s.pointValueRM
}

func (s *CheckoutService) loyaltyBalance(ctx context.Context, buyerID uuid.UUID) (int64, error) {
	account, err := s.loyaltyRepo.GetAccount(ctx, buyerID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}
