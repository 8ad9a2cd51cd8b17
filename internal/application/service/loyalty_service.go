package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/pricing"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

// LoyaltyService exposes a buyer's point balance and redemption previews
type LoyaltyService struct {
	loyaltyRepo  repository.LoyaltyRepository
	pointValueRM float64
}

// NewLoyaltyService creates a new loyalty service
func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, pointValueRM float64) *LoyaltyService {
	return &LoyaltyService{
		loyaltyRepo:  loyaltyRepo,
		pointValueRM: pointValueRM,
	}
}

// GetBalance returns the buyer's current point balance, zero when no account
// exists yet
func (s *LoyaltyService) GetBalance(ctx context.Context, buyerID uuid.UUID) (int64, error) {
	account, err := s.loyaltyRepo.GetAccount(ctx, buyerID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// ListTransactions returns the buyer's recent ledger entries
func (s *LoyaltyService) ListTransactions(ctx context.Context, buyerID uuid.UUID, limit int) ([]entity.LoyaltyTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.loyaltyRepo.ListTransactions(ctx, buyerID, limit)
}

// RedemptionPreview shows what a redemption request would actually apply
type RedemptionPreview struct {
	Balance        int64   `json:"balance"`
	RedeemedPoints int64   `json:"redeemed_points"`
	DiscountRM     float64 `json:"discount_rm"`
	AdjustedTotal  float64 `json:"adjusted_total"`
}

// PreviewRedemption computes the effective redemption for a given order
// total, clamped by both the buyer's balance and the order value
func (s *LoyaltyService) PreviewRedemption(ctx context.Context, buyerID uuid.UUID, requestedPoints int64, orderTotal float64) (*RedemptionPreview, error) {
	balance, err := s.GetBalance(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.ComputeTotals(orderTotal, 1, 0, &pricing.LoyaltyRedemption{
		Balance:         balance,
		RequestedPoints: requestedPoints,
		PointValueRM:    s.pointValueRM,
	})
	if err != nil {
		return nil, err
	}

	return &RedemptionPreview{
		Balance:        balance,
		RedeemedPoints: totals.RedeemedPoints,
		DiscountRM:     totals.DiscountRM,
		AdjustedTotal:  totals.AdjustedTotal,
	}, nil
}
