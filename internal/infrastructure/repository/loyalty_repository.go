package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository creates a new loyalty ledger repository
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// GetAccount retrieves a buyer's loyalty account
func (r *loyaltyRepository) GetAccount(ctx context.Context, buyerID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var account entity.LoyaltyAccount
	err := r.db.WithContext(ctx).Where("buyer_id = ?", buyerID).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// CreateAccount creates a new loyalty account
func (r *loyaltyRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// Credit adds points to a buyer's balance, creating the account on first earn
func (r *loyaltyRepository) Credit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := r.accountForUpdate(tx, buyerID)
		if err != nil {
			return err
		}
		if account == nil {
			account = &entity.LoyaltyAccount{BuyerID: buyerID}
			if err := tx.Create(account).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entity.LoyaltyAccount{}).
			Where("id = ?", account.ID).
			UpdateColumn("balance", gorm.Expr("balance + ?", points)).Error; err != nil {
			return err
		}

		return tx.Create(&entity.LoyaltyTransaction{
			AccountID: account.ID,
			OrderID:   orderID,
			Kind:      entity.LoyaltyTxnEarn,
			Points:    points,
		}).Error
	})
}

// Debit removes points from a buyer's balance. The conditional update keeps
// the balance from going negative under concurrent redemptions; returns
// false when the balance is insufficient.
func (r *loyaltyRepository) Debit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) (bool, error) {
	var debited bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := r.accountForUpdate(tx, buyerID)
		if err != nil {
			return err
		}
		if account == nil {
			return nil
		}

		result := tx.Model(&entity.LoyaltyAccount{}).
			Where("id = ? AND balance >= ?", account.ID, points).
			UpdateColumn("balance", gorm.Expr("balance - ?", points))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		debited = true
		return tx.Create(&entity.LoyaltyTransaction{
			AccountID: account.ID,
			OrderID:   orderID,
			Kind:      entity.LoyaltyTxnRedeem,
			Points:    -points,
		}).Error
	})
	return debited, err
}

// ListTransactions returns a buyer's most recent ledger entries
func (r *loyaltyRepository) ListTransactions(ctx context.Context, buyerID uuid.UUID, limit int) ([]entity.LoyaltyTransaction, error) {
	account, err := r.GetAccount(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return []entity.LoyaltyTransaction{}, nil
	}

	var txns []entity.LoyaltyTransaction
	err = r.db.WithContext(ctx).
		Where("account_id = ?", account.ID).
		Order("created_at desc").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *loyaltyRepository) accountForUpdate(tx *gorm.DB, buyerID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var account entity.LoyaltyAccount
	err := tx.Where("buyer_id = ?", buyerID).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
