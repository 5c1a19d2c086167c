package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
)

// StripeGateway implements the checkout gateway on Stripe hosted checkout.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutSessionRequest) (*paymentgateway.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItem := &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
		}

		if item.PriceID != "" {
			lineItem.Price = stripe.String(item.PriceID)
		} else if item.PriceData != nil {
			priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(item.PriceData.Currency),
				UnitAmount: stripe.Int64(item.PriceData.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(item.PriceData.ProductName),
					Metadata: item.PriceData.Metadata,
				},
			}
			if item.PriceData.Description != "" {
				priceData.ProductData.Description = stripe.String(item.PriceData.Description)
			}
			if len(item.PriceData.Images) > 0 {
				priceData.ProductData.Images = stripe.StringSlice(item.PriceData.Images)
			}
			if req.Mode == paymentgateway.ModeSubscription {
				priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				}
			}
			lineItem.PriceData = priceData
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(req.Mode),
		LineItems:  lineItems,
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return mapSession(session), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*paymentgateway.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}

	return mapSession(session), nil
}

func (g *StripeGateway) SyncProduct(ctx context.Context, req paymentgateway.SyncProductRequest) (string, error) {
	params := &stripe.ProductParams{
		Name: stripe.String(req.Name),
	}
	params.Context = ctx

	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if len(req.Images) > 0 {
		params.Images = stripe.StringSlice(req.Images)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	product, err := g.api.Products.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create provider product: %w", err)
	}

	return product.ID, nil
}

func (g *StripeGateway) SyncPrice(ctx context.Context, req paymentgateway.SyncPriceRequest) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(req.ProviderProductID),
		Currency:   stripe.String(req.Currency),
		UnitAmount: stripe.Int64(req.UnitAmount),
	}
	params.Context = ctx

	if req.BillingInterval != "" {
		params.Recurring = &stripe.PriceRecurringParams{
			Interval: stripe.String(req.BillingInterval),
		}
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	price, err := g.api.Prices.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create provider price: %w", err)
	}

	return price.ID, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	parsed := &paymentgateway.WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	switch parsed.Type {
	case paymentgateway.EventCheckoutCompleted, paymentgateway.EventCheckoutExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session event: %w", err)
		}
		parsed.Session = mapSession(&session)

	case paymentgateway.EventSubscriptionUpdated, paymentgateway.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to parse subscription event: %w", err)
		}
		parsed.Subscription = mapSubscription(&sub)

	case paymentgateway.EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("failed to parse payment intent event: %w", err)
		}
		parsed.Session = &paymentgateway.CheckoutSession{
			PaymentIntentID: intent.ID,
			Metadata:        intent.Metadata,
		}

	case paymentgateway.EventInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to parse invoice event: %w", err)
		}
		if invoice.Subscription != nil {
			parsed.Subscription = &paymentgateway.ProviderSubscription{
				ID:     invoice.Subscription.ID,
				Status: "past_due",
			}
		}
	}

	return parsed, nil
}

func mapSession(s *stripe.CheckoutSession) *paymentgateway.CheckoutSession {
	session := &paymentgateway.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}

	if s.PaymentIntent != nil {
		session.PaymentIntentID = s.PaymentIntent.ID
	}
	if s.Customer != nil {
		session.CustomerID = s.Customer.ID
	}
	if s.Subscription != nil {
		session.SubscriptionID = s.Subscription.ID
	}
	if s.CustomerDetails != nil {
		if s.CustomerDetails.Email != "" {
			session.CustomerEmail = s.CustomerDetails.Email
		}
		session.BillingAddress = mapAddress(s.CustomerDetails.Address)
	}
	if s.ShippingDetails != nil {
		session.ShippingAddress = mapAddress(s.ShippingDetails.Address)
	}

	return session
}

func mapSubscription(s *stripe.Subscription) *paymentgateway.ProviderSubscription {
	return &paymentgateway.ProviderSubscription{
		ID:                 s.ID,
		Status:             string(s.Status),
		CurrentPeriodStart: time.Unix(s.CurrentPeriodStart, 0).UTC(),
		CurrentPeriodEnd:   time.Unix(s.CurrentPeriodEnd, 0).UTC(),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		Metadata:           s.Metadata,
	}
}

func mapAddress(addr *stripe.Address) map[string]interface{} {
	if addr == nil {
		return nil
	}
	return map[string]interface{}{
		"line1":       addr.Line1,
		"line2":       addr.Line2,
		"city":        addr.City,
		"state":       addr.State,
		"postal_code": addr.PostalCode,
		"country":     addr.Country,
	}
}
