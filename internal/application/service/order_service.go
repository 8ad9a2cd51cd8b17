package service

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/farmgate/farmgate-api/internal/domain/entity"
	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/internal/domain/repository"
	"github.com/farmgate/farmgate-api/pkg/apperror"
	"github.com/farmgate/farmgate-api/pkg/money"
	"github.com/farmgate/farmgate-api/pkg/pagination"
	"github.com/farmgate/farmgate-api/pkg/utils"
)

// OrderService handles order creation and lifecycle. Order creation freezes
// the checkout quote into an immutable pricing snapshot and settles the
// loyalty ledger around it.
type OrderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	loyaltyRepo     repository.LoyaltyRepository
	checkoutService *CheckoutService
	earnRatePerRM   float64 // points earned per RM of pre-discount total
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	loyaltyRepo repository.LoyaltyRepository,
	checkoutService *CheckoutService,
	earnRatePerRM float64,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		loyaltyRepo:     loyaltyRepo,
		checkoutService: checkoutService,
		earnRatePerRM:   earnRatePerRM,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	BuyerID             uuid.UUID
	ProductID           uuid.UUID
	QuantityKg          int
	DeliveryAddress     string
	LogisticsProviderID *uuid.UUID
	RedeemPoints        int64
}

// CreateOrder re-quotes the checkout, atomically reserves stock, persists the
// pricing snapshot and debits redeemed loyalty points. The snapshot is
// immutable once written; cancellation restores stock and refunds points.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	quote, err := s.checkoutService.QuoteCheckout(ctx, &QuoteInput{
		BuyerID:             input.BuyerID,
		ProductID:           input.ProductID,
		QuantityKg:          input.QuantityKg,
		DeliveryAddress:     input.DeliveryAddress,
		LogisticsProviderID: input.LogisticsProviderID,
		RedeemPoints:        input.RedeemPoints,
	})
	if err != nil {
		return nil, err
	}

	// Atomically reserve stock; fails when another order got there first
	ok, err := s.productRepo.AtomicDecrementStock(ctx, input.ProductID, input.QuantityKg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflictError("Insufficient stock for " + quote.Product.Name)
	}

	order := &entity.Order{
		OrderNo:             utils.GenerateOrderNo(),
		BuyerID:             input.BuyerID,
		ProductID:           input.ProductID,
		LogisticsProviderID: input.LogisticsProviderID,
		Status:              enum.OrderStatusPending,
		ShippingMethod:      quote.ShippingMethod,
		QuantityKg:          input.QuantityKg,
		UnitPrice:           quote.Product.UnitPrice,
		Subtotal:            money.ToCents(quote.Totals.Subtotal),
		ShippingCost:        money.ToCents(quote.Shipping.Cost),
		TotalAmount:         money.ToCents(quote.Totals.TotalAmount),
		RedeemedPoints:      quote.Totals.RedeemedPoints,
		DiscountRM:          money.ToCents(quote.Totals.DiscountRM),
		Currency:            "MYR",
		ShippingDistanceKm:  quote.DistanceKm,
		EstimatedDays:       quote.Shipping.EstimatedDays,
		DeliveryAddress:     input.DeliveryAddress,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented - restore it
		_ = s.productRepo.AtomicIncrementStock(ctx, input.ProductID, input.QuantityKg)
		return nil, err
	}

	if order.RedeemedPoints > 0 {
		debited, err := s.loyaltyRepo.Debit(ctx, input.BuyerID, order.RedeemedPoints, &order.ID)
		if err != nil || !debited {
			// Unwind both the stock reservation and the persisted snapshot
			// so no pending order survives a failed debit
			_ = s.productRepo.AtomicIncrementStock(ctx, input.ProductID, input.QuantityKg)
			if delErr := s.orderRepo.Delete(ctx, order.ID); delErr != nil {
				log.Printf("order: failed to delete order %s after loyalty debit failure: %v", order.ID, delErr)
			}
			if err != nil {
				return nil, err
			}
			return nil, apperror.NewConflictError("Loyalty balance changed, please re-quote")
		}
	}

	// Award earned points on the pre-discount total
	if s.earnRatePerRM > 0 {
		earned := int64(math.Floor(quote.Totals.TotalAmount * s.earnRatePerRM))
		if earned > 0 {
			if err := s.loyaltyRepo.Credit(ctx, input.BuyerID, earned, &order.ID); err != nil {
				log.Printf("order: failed to credit %d earned points for order %s: %v", earned, order.ID, err)
			}
		}
	}

	return s.orderRepo.GetWithRelations(ctx, order.ID)
}

// GetOrder retrieves an order by ID, restricted to its buyer or the listing's seller
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithRelations(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.BuyerID != userID && order.Product.SellerID != userID {
		return nil, apperror.ErrForbidden
	}
	return order, nil
}

// ListBuyerOrders lists a buyer's orders with filtering
func (s *OrderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListByBuyer(ctx, buyerID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListSellerOrders lists orders against a seller's listings
func (s *OrderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListBySeller(ctx, sellerID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus updates the status of an order (seller/logistics side)
func (s *OrderService) UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetWithRelations(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.Product.SellerID != userID {
		return apperror.ErrForbidden
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels a pending order, restores stock and refunds redeemed points
func (s *OrderService) CancelOrder(ctx context.Context, buyerID, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.BuyerID != buyerID {
		return apperror.ErrForbidden
	}

	if order.Status == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Order is already cancelled")
	}
	if order.Status != enum.OrderStatusPending {
		return apperror.NewBadRequestError("Only pending orders can be cancelled")
	}

	if err := s.productRepo.AtomicIncrementStock(ctx, order.ProductID, order.QuantityKg); err != nil {
		return err
	}

	if order.RedeemedPoints > 0 {
		if err := s.loyaltyRepo.Credit(ctx, buyerID, order.RedeemedPoints, &order.ID); err != nil {
			log.Printf("order: failed to refund %d redeemed points for order %s: %v", order.RedeemedPoints, order.ID, err)
		}
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
}
