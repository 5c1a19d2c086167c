package usecases

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/order"
	"github.com/inkpress-io/inkpress/internal/shared/constants"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type CreateCheckoutSessionCommand struct {
	UserID    *uint
	SessionID *string
	Email     string
}

type CreateCheckoutSessionResult struct {
	Order       *order.Order
	SessionID   string
	CheckoutURL string
}

// CheckoutConfig carries the storefront redirect targets for hosted
// checkout.
type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

type CreateCheckoutSessionUseCase struct {
	cartRepo    cart.Repository
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	gateway     paymentgateway.Gateway
	logger      logger.Interface
	config      CheckoutConfig
}

func NewCreateCheckoutSessionUseCase(
	cartRepo cart.Repository,
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	gateway paymentgateway.Gateway,
	logger logger.Interface,
	config CheckoutConfig,
) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
		gateway:     gateway,
		logger:      logger,
		config:      config,
	}
}

// checkoutLine pairs a cart line with the current catalog records backing it.
type checkoutLine struct {
	item    *cart.Item
	product *catalog.Product
	variant *catalog.Variant
}

func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*CreateCheckoutSessionResult, error) {
	owner, err := resolveOwner(cmd.UserID, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	activeCart, err := uc.cartRepo.GetActiveWithItems(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to get cart", "error", err)
		return nil, apperrors.NewDatabaseError("failed to get cart", err)
	}
	if activeCart == nil || activeCart.IsEmpty() {
		return nil, apperrors.NewBusinessRuleError("Cart is empty")
	}

	lines, err := uc.loadLines(ctx, activeCart)
	if err != nil {
		return nil, err
	}

	// Every unavailable line is reported at once so the shopper can fix the
	// whole cart in one pass.
	var problems []string
	for _, line := range lines {
		if !line.product.IsActive() || !line.variant.IsActive() {
			problems = append(problems, fmt.Sprintf("%s is no longer available", line.product.Name()))
			continue
		}
		if line.variant.BillingInterval() != nil {
			problems = append(problems, fmt.Sprintf("%s is a subscription and cannot be bought from the cart", line.product.Name()))
			continue
		}
		if !line.variant.HasStock(line.item.Quantity()) {
			problems = append(problems, fmt.Sprintf("%s: insufficient inventory. Available: %d, Requested: %d",
				line.product.Name(), line.variant.InventoryQuantity(), line.item.Quantity()))
		}
	}
	if len(problems) > 0 {
		return nil, apperrors.NewBusinessRuleError("Some items cannot be checked out", problems...)
	}

	currency := lines[0].variant.Currency()
	orderItems := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		if line.variant.Currency() != currency {
			return nil, apperrors.NewValidationError("Cart mixes currencies")
		}
		item, err := order.NewItem(
			line.product.ID(), line.variant.ID(),
			line.product.Name(), line.variant.Name(), line.variant.SKU(),
			line.item.Quantity(), line.variant.PriceAmount())
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		orderItems = append(orderItems, item)
	}

	newOrder, err := order.NewOrder(generateOrderNumber(), cmd.UserID, cmd.Email, currency, orderItems)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.orderRepo.Create(ctx, newOrder); err != nil {
		uc.logger.Errorw("failed to create order", "error", err)
		return nil, apperrors.NewDatabaseError("failed to create order", err)
	}

	session, err := uc.openSession(ctx, cmd, activeCart, newOrder, lines)
	if err != nil {
		// The pending order is useless without a session; roll it back.
		if delErr := uc.orderRepo.Delete(ctx, newOrder.ID()); delErr != nil {
			uc.logger.Errorw("failed to roll back order after session failure",
				"error", delErr, "order_id", newOrder.ID())
		}
		return nil, err
	}

	if err := newOrder.AttachCheckoutSession(session.ID); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}
	if err := uc.orderRepo.Update(ctx, newOrder); err != nil {
		uc.logger.Errorw("failed to persist checkout session on order",
			"error", err, "order_id", newOrder.ID(), "session_id", session.ID)
		return nil, apperrors.NewDatabaseError("failed to update order", err)
	}

	uc.logger.Infow("checkout session created",
		"order_id", newOrder.ID(),
		"order_number", newOrder.OrderNumber(),
		"session_id", session.ID,
		"amount", newOrder.TotalAmount())

	return &CreateCheckoutSessionResult{
		Order:       newOrder,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func (uc *CreateCheckoutSessionUseCase) loadLines(ctx context.Context, activeCart *cart.Cart) ([]checkoutLine, error) {
	lines := make([]checkoutLine, 0, len(activeCart.Items()))
	for _, item := range activeCart.Items() {
		variant, err := uc.variantRepo.GetByID(ctx, item.VariantID())
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewBusinessRuleError("A cart item no longer exists")
			}
			uc.logger.Errorw("failed to get variant", "error", err, "variant_id", item.VariantID())
			return nil, apperrors.NewDatabaseError("failed to get variant", err)
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID())
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewBusinessRuleError("A cart item no longer exists")
			}
			uc.logger.Errorw("failed to get product", "error", err, "product_id", item.ProductID())
			return nil, apperrors.NewDatabaseError("failed to get product", err)
		}
		lines = append(lines, checkoutLine{item: item, product: product, variant: variant})
	}
	return lines, nil
}

func (uc *CreateCheckoutSessionUseCase) openSession(
	ctx context.Context,
	cmd CreateCheckoutSessionCommand,
	activeCart *cart.Cart,
	newOrder *order.Order,
	lines []checkoutLine,
) (*paymentgateway.CheckoutSession, error) {
	lineItems := make([]paymentgateway.LineItem, 0, len(lines))
	for _, line := range lines {
		li := paymentgateway.LineItem{Quantity: int64(line.item.Quantity())}
		// Reuse the provider price when the variant is already synced;
		// otherwise describe the price inline.
		if priceID := line.variant.ProviderPriceID(); priceID != nil {
			li.PriceID = *priceID
		} else {
			li.PriceData = &paymentgateway.PriceData{
				Currency:    line.variant.Currency(),
				UnitAmount:  line.variant.PriceAmount(),
				ProductName: line.product.Name(),
				Description: line.product.Description(),
				Images:      line.product.ImageURLs(),
				Metadata: map[string]string{
					"product_id": strconv.FormatUint(uint64(line.product.ID()), 10),
					"variant_id": strconv.FormatUint(uint64(line.variant.ID()), 10),
				},
			}
		}
		lineItems = append(lineItems, li)
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, paymentgateway.CreateCheckoutSessionRequest{
		Mode:          paymentgateway.ModePayment,
		LineItems:     lineItems,
		SuccessURL:    uc.config.SuccessURL,
		CancelURL:     uc.config.CancelURL,
		CustomerEmail: cmd.Email,
		Metadata: map[string]string{
			"order_id":     strconv.FormatUint(uint64(newOrder.ID()), 10),
			"order_number": newOrder.OrderNumber(),
			"cart_id":      strconv.FormatUint(uint64(activeCart.ID()), 10),
		},
		ExpiresAt: time.Now().UTC().Add(constants.CheckoutSessionExpiryMinutes * time.Minute),
	})
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "error", err, "order_id", newOrder.ID())
		return nil, apperrors.NewDatabaseError("Failed to create checkout session", err)
	}
	return session, nil
}

// generateOrderNumber builds a unique human-readable order number.
func generateOrderNumber() string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	suffix := binary.BigEndian.Uint32(buf[:]) % 1000000
	return fmt.Sprintf("INK-%s-%06d", time.Now().UTC().Format("20060102"), suffix)
}
