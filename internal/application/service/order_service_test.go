package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/pkg/apperror"
)

type orderFixture struct {
	*checkoutFixture
	orderRepo *fakeOrderRepo
	svc       *OrderService
}

func newOrderFixture() *orderFixture {
	checkout := newCheckoutFixture(120)
	orderRepo := newFakeOrderRepo(checkout.productRepo)

	return &orderFixture{
		checkoutFixture: checkout,
		orderRepo:       orderRepo,
		svc:             NewOrderService(orderRepo, checkout.productRepo, checkout.loyaltyRepo, checkout.svc, 1),
	}
}

func TestCreateOrderDirectShipping(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, enum.ShippingMethodDirect, order.ShippingMethod)
	assert.Equal(t, int64(45000), order.Subtotal)
	assert.Equal(t, int64(2500), order.ShippingCost)
	assert.Equal(t, int64(47500), order.TotalAmount)
	assert.Nil(t, order.ShippingDistanceKm)
	assert.Equal(t, "MYR", order.Currency)

	// Stock reserved
	assert.Equal(t, 900, product.StockKg)

	// Earned points credited on the pre-discount total
	balance, err := fx.loyaltyRepo.GetAccount(context.Background(), buyerID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(475), balance.Balance)
}

func TestCreateOrderThirdPartySnapshotsDistance(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodThirdParty, 4.50)
	provider := seedProvider(fx.logisticsRepo, enum.PricingModelFlatRate, "0.05")

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:             uuid.New(),
		ProductID:           product.ID,
		QuantityKg:          500,
		DeliveryAddress:     "Petaling Jaya, Selangor",
		LogisticsProviderID: &provider.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, order.ShippingDistanceKm)
	assert.Equal(t, 120.0, *order.ShippingDistanceKm)
	assert.Equal(t, int64(300000), order.ShippingCost) // 120 x 500 x 0.05
	require.NotNil(t, order.LogisticsProviderID)
	assert.Equal(t, provider.ID, *order.LogisticsProviderID)
}

func TestCreateOrderWithRedemption(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	require.NoError(t, fx.loyaltyRepo.Credit(context.Background(), buyerID, 1000, nil))

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
		RedeemPoints:    5000, // clamps to the 1000 balance
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), order.RedeemedPoints)
	assert.Equal(t, int64(1000), order.DiscountRM) // RM10.00 in cents
	// TotalAmount keeps the pre-discount value
	assert.Equal(t, int64(47500), order.TotalAmount)
	assert.Equal(t, 465.00, order.GetAdjustedTotalDecimal())

	// Debited 1000, then earned 475 on the pre-discount total
	account, err := fx.loyaltyRepo.GetAccount(context.Background(), buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(475), account.Balance)
}

func TestCreateOrderDebitFailureLeavesNoOrderBehind(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	require.NoError(t, fx.loyaltyRepo.Credit(context.Background(), buyerID, 1000, nil))
	// The balance changes between quote and debit
	fx.loyaltyRepo.debitDenied = true

	_, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
		RedeemPoints:    1000,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Stock restored and the persisted snapshot removed; nothing pending survives
	assert.Equal(t, 1000, product.StockKg)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestCreateOrderSucceedsWhenEarnCreditFails(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	fx.loyaltyRepo.creditErr = errors.New("ledger unavailable")

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         uuid.New(),
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	// Earned points are best-effort; the order itself must stand
	require.NoError(t, err)
	assert.Equal(t, int64(47500), order.TotalAmount)
	assert.Equal(t, 900, product.StockKg)
}

func TestCreateOrderValidationFailureLeavesStockUntouched(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)

	_, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         uuid.New(),
		ProductID:       product.ID,
		QuantityKg:      5, // below MOQ
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.Error(t, err)

	assert.Equal(t, 1000, product.StockKg)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestCancelOrderRestoresStockAndPoints(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	require.NoError(t, fx.loyaltyRepo.Credit(context.Background(), buyerID, 1000, nil))

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
		RedeemPoints:    1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 900, product.StockKg)

	require.NoError(t, fx.svc.CancelOrder(context.Background(), buyerID, order.ID))

	assert.Equal(t, 1000, product.StockKg)
	assert.Equal(t, enum.OrderStatusCancelled, order.Status)

	// Redeemed points refunded on top of the earn from creation
	account, err := fx.loyaltyRepo.GetAccount(context.Background(), buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1475), account.Balance)
}

func TestCancelOrderOnlyWhenPending(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	require.NoError(t, fx.orderRepo.UpdateStatus(context.Background(), order.ID, enum.OrderStatusShipped))

	err = fx.svc.CancelOrder(context.Background(), buyerID, order.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCancelOrderForbiddenForOtherUsers(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         uuid.New(),
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	err = fx.svc.CancelOrder(context.Background(), uuid.New(), order.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestUpdateOrderStatusSellerOnly(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	order, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	// The buyer cannot move the order along
	err = fx.svc.UpdateOrderStatus(context.Background(), buyerID, order.ID, enum.OrderStatusShipped)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	require.NoError(t, fx.svc.UpdateOrderStatus(context.Background(), product.SellerID, order.ID, enum.OrderStatusShipped))
	assert.Equal(t, enum.OrderStatusShipped, order.Status)
}

func TestGetOrderAccessControl(t *testing.T) {
	fx := newOrderFixture()
	product := fx.seedProduct(enum.ShippingMethodDirect, 4.50)
	buyerID := uuid.New()

	created, err := fx.svc.CreateOrder(context.Background(), &CreateOrderInput{
		BuyerID:         buyerID,
		ProductID:       product.ID,
		QuantityKg:      100,
		DeliveryAddress: "Petaling Jaya, Selangor",
	})
	require.NoError(t, err)

	var order *entity.Order
	order, err = fx.svc.GetOrder(context.Background(), buyerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)

	order, err = fx.svc.GetOrder(context.Background(), product.SellerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)

	_, err = fx.svc.GetOrder(context.Background(), uuid.New(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}
