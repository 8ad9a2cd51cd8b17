package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
)

// fakeDistanceProvider returns a canned distance and counts lookups so tests
// can assert the provider is never consulted on the direct path
type fakeDistanceProvider struct {
	km    float64
	err   error
	calls int
}

func (f *fakeDistanceProvider) LookupDistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.km, nil
}

type fakeLogisticsRepo struct {
	providers map[uuid.UUID]*entity.LogisticsProvider
}

func newFakeLogisticsRepo() *fakeLogisticsRepo {
	return &fakeLogisticsRepo{providers: make(map[uuid.UUID]*entity.LogisticsProvider)}
}

func (f *fakeLogisticsRepo) Create(ctx context.Context, provider *entity.LogisticsProvider) error {
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	f.providers[provider.ID] = provider
	return nil
}

func (f *fakeLogisticsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LogisticsProvider, error) {
	return f.providers[id], nil
}

func (f *fakeLogisticsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.LogisticsProvider, error) {
	for _, p := range f.providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeLogisticsRepo) Update(ctx context.Context, provider *entity.LogisticsProvider) error {
	f.providers[provider.ID] = provider
	return nil
}

func (f *fakeLogisticsRepo) ListActive(ctx context.Context) ([]entity.LogisticsProvider, error) {
	var out []entity.LogisticsProvider
	for _, p := range f.providers {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, quantityKg int) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.StockKg < quantityKg {
		return false, nil
	}
	p.StockKg -= quantityKg
	return true, nil
}

func (f *fakeProductRepo) AtomicIncrementStock(ctx context.Context, id uuid.UUID, quantityKg int) error {
	if p, ok := f.products[id]; ok {
		p.StockKg += quantityKg
	}
	return nil
}

type fakeOrderRepo struct {
	orders   map[uuid.UUID]*entity.Order
	products *fakeProductRepo
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), products: products}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	if product, ok := f.products.products[order.ProductID]; ok {
		order.Product = *product
	}
	return order, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if order, ok := f.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if product, ok := f.products.products[o.ProductID]; ok && product.SellerID == sellerID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

type fakeLoyaltyRepo struct {
	accounts    map[uuid.UUID]*entity.LoyaltyAccount
	txns        []entity.LoyaltyTransaction
	debitDenied bool  // force Debit to report a lost balance race
	creditErr   error // force Credit to fail
}

func newFakeLoyaltyRepo() *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{accounts: make(map[uuid.UUID]*entity.LoyaltyAccount)}
}

func (f *fakeLoyaltyRepo) GetAccount(ctx context.Context, buyerID uuid.UUID) (*entity.LoyaltyAccount, error) {
	return f.accounts[buyerID], nil
}

func (f *fakeLoyaltyRepo) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.BuyerID] = account
	return nil
}

func (f *fakeLoyaltyRepo) Credit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) error {
	if f.creditErr != nil {
		return f.creditErr
	}
	account, ok := f.accounts[buyerID]
	if !ok {
		account = &entity.LoyaltyAccount{ID: uuid.New(), BuyerID: buyerID}
		f.accounts[buyerID] = account
	}
	account.Balance += points
	f.txns = append(f.txns, entity.LoyaltyTransaction{
		AccountID: account.ID,
		OrderID:   orderID,
		Kind:      entity.LoyaltyTxnEarn,
		Points:    points,
	})
	return nil
}

func (f *fakeLoyaltyRepo) Debit(ctx context.Context, buyerID uuid.UUID, points int64, orderID *uuid.UUID) (bool, error) {
	if f.debitDenied {
		return false, nil
	}
	account, ok := f.accounts[buyerID]
	if !ok || account.Balance < points {
		return false, nil
	}
	account.Balance -= points
	f.txns = append(f.txns, entity.LoyaltyTransaction{
		AccountID: account.ID,
		OrderID:   orderID,
		Kind:      entity.LoyaltyTxnRedeem,
		Points:    -points,
	})
	return true, nil
}

func (f *fakeLoyaltyRepo) ListTransactions(ctx context.Context, buyerID uuid.UUID, limit int) ([]entity.LoyaltyTransaction, error) {
	account, ok := f.accounts[buyerID]
	if !ok {
		return []entity.LoyaltyTransaction{}, nil
	}
	var out []entity.LoyaltyTransaction
	for _, txn := range f.txns {
		if txn.AccountID == account.ID {
			out = append(out, txn)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
