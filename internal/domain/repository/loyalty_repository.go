package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
)

// LoyaltyRepository defines the interface for the loyalty point ledger.
// Debit and Credit must be atomic; Debit fails when the balance is
// insufficient rather than going negative.
type LoyaltyRepository interface {
	GetAccount(ctx context.Context, buyerID uuid.UUID) (*entity.LoyaltyAccount, error)
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error
	Credit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) error
	Debit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) (bool, error)
	ListTransactions(ctx context.Context, buyerID uuid.UUID, limit int) ([]entity.LoyaltyTransaction, error)
}
