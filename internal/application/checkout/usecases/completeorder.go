package usecases

import (
	"context"
	"strconv"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/order"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type CompleteOrderCommand struct {
	Session *paymentgateway.CheckoutSession
}

type CompleteOrderResult struct {
	Order *order.Order
}

// CompleteOrderUseCase settles an order after the provider reports a paid
// checkout session. It is tolerant of webhook redelivery: completing an
// already paid order is a no-op.
type CompleteOrderUseCase struct {
	orderRepo      order.Repository
	cartRepo       cart.Repository
	variantRepo    catalog.VariantRepository
	entitlementSvc *entitlement.Service
	logger         logger.Interface
}

func NewCompleteOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	variantRepo catalog.VariantRepository,
	entitlementSvc *entitlement.Service,
	logger logger.Interface,
) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		variantRepo:    variantRepo,
		entitlementSvc: entitlementSvc,
		logger:         logger,
	}
}

func (uc *CompleteOrderUseCase) Execute(ctx context.Context, cmd CompleteOrderCommand) (*CompleteOrderResult, error) {
	if cmd.Session == nil {
		return nil, apperrors.NewValidationError("Checkout session is required")
	}

	orderID, err := parseUintMetadata(cmd.Session.Metadata, "order_id")
	if err != nil {
		return nil, apperrors.NewValidationError("Missing order_id in session metadata")
	}

	paidOrder, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Order")
		}
		uc.logger.Errorw("failed to get order", "error", err, "order_id", orderID)
		return nil, apperrors.NewDatabaseError("failed to get order", err)
	}

	alreadyPaid := paidOrder.IsPaid()
	if err := paidOrder.MarkPaid(
		cmd.Session.PaymentIntentID,
		cmd.Session.CustomerID,
		cmd.Session.BillingAddress,
		cmd.Session.ShippingAddress,
	); err != nil {
		return nil, apperrors.NewBusinessRuleError(err.Error())
	}
	if err := uc.orderRepo.Update(ctx, paidOrder); err != nil {
		uc.logger.Errorw("failed to update order", "error", err, "order_id", orderID)
		return nil, apperrors.NewDatabaseError("failed to update order", err)
	}

	if alreadyPaid {
		uc.logger.Infow("order already completed, skipping side effects", "order_id", orderID)
		return &CompleteOrderResult{Order: paidOrder}, nil
	}

	// Inventory decrements happen per line so one failing line never blocks
	// the rest of the fulfillment. Failures are logged for reconciliation.
	for _, item := range paidOrder.Items() {
		if err := uc.variantRepo.DecrementInventory(ctx, item.VariantID(), item.Quantity()); err != nil {
			uc.logger.Errorw("failed to decrement inventory",
				"error", err,
				"order_id", orderID,
				"variant_id", item.VariantID(),
				"quantity", item.Quantity())
		}
	}

	if cartID, err := parseUintMetadata(cmd.Session.Metadata, "cart_id"); err == nil {
		if err := uc.cartRepo.DeleteItemsByCartID(ctx, cartID); err != nil {
			uc.logger.Errorw("failed to clear cart after checkout",
				"error", err, "order_id", orderID, "cart_id", cartID)
		}
	}

	if err := uc.orderRepo.MarkItemsAccessGranted(ctx, orderID); err != nil {
		uc.logger.Errorw("failed to mark items access granted", "error", err, "order_id", orderID)
	}

	if userID := paidOrder.UserID(); userID != nil {
		productIDs := make([]uint, 0, len(paidOrder.Items()))
		for _, item := range paidOrder.Items() {
			productIDs = append(productIDs, item.ProductID())
		}
		if err := uc.entitlementSvc.GrantForOrder(ctx, *userID, orderID, productIDs); err != nil {
			uc.logger.Errorw("failed to grant order entitlements",
				"error", err, "order_id", orderID, "user_id", *userID)
		}
	}

	uc.logger.Infow("order completed",
		"order_id", orderID,
		"order_number", paidOrder.OrderNumber(),
		"payment_intent_id", cmd.Session.PaymentIntentID)

	return &CompleteOrderResult{Order: paidOrder}, nil
}

func parseUintMetadata(metadata map[string]string, key string) (uint, error) {
	raw, ok := metadata[key]
	if !ok || raw == "" {
		return 0, strconv.ErrSyntax
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
