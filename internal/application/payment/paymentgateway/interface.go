package paymentgateway

import (
	"context"
	"time"
)

// Gateway defines the interface for hosted checkout providers. Amounts are
// always in the smallest currency unit.
type Gateway interface {
	// CreateCheckoutSession opens a hosted checkout session for the given
	// line items and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, req CreateCheckoutSessionRequest) (*CheckoutSession, error)

	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)

	// SyncProduct pushes a catalog product to the provider and returns the
	// provider's product ID.
	SyncProduct(ctx context.Context, req SyncProductRequest) (string, error)

	// SyncPrice creates a provider price for a variant and returns the
	// provider's price ID.
	SyncPrice(ctx context.Context, req SyncPriceRequest) (string, error)

	// VerifyWebhook checks the event signature and parses the payload.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// Checkout modes.
const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// PriceData describes an ad-hoc price for variants that have no provider
// price yet.
type PriceData struct {
	Currency    string
	UnitAmount  int64
	ProductName string
	Description string
	Images      []string
	Metadata    map[string]string
}

// LineItem is one checkout line. Either PriceID references an existing
// provider price, or PriceData describes one inline.
type LineItem struct {
	PriceID   string
	PriceData *PriceData
	Quantity  int64
}

// CreateCheckoutSessionRequest contains the data needed to open a session.
type CreateCheckoutSessionRequest struct {
	Mode          string
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
	ExpiresAt     time.Time
}

// CheckoutSession is the provider's view of a session, used both when
// creating one and when handling its webhooks.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
	CustomerID      string
	CustomerEmail   string
	SubscriptionID  string
	AmountTotal     int64
	Currency        string
	Metadata        map[string]string
	BillingAddress  map[string]interface{}
	ShippingAddress map[string]interface{}
}

// SyncProductRequest describes a catalog product to mirror at the provider.
type SyncProductRequest struct {
	Name        string
	Description string
	Images      []string
	Metadata    map[string]string
}

// SyncPriceRequest describes a variant price to mirror at the provider.
// BillingInterval is empty for one-time prices.
type SyncPriceRequest struct {
	ProviderProductID string
	Currency          string
	UnitAmount        int64
	BillingInterval   string
	Metadata          map[string]string
}

// Webhook event types the application reacts to.
const (
	EventCheckoutCompleted    = "checkout.session.completed"
	EventCheckoutExpired      = "checkout.session.expired"
	EventPaymentFailed        = "payment_intent.payment_failed"
	EventSubscriptionUpdated  = "customer.subscription.updated"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
	EventInvoicePaymentFailed = "invoice.payment_failed"
)

// ProviderSubscription is the provider's view of a recurring subscription.
type ProviderSubscription struct {
	ID                 string
	Status             string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	Metadata           map[string]string
}

// WebhookEvent is a verified, parsed provider event. Exactly one of Session
// and Subscription is set depending on the event type.
type WebhookEvent struct {
	ID           string
	Type         string
	Session      *CheckoutSession
	Subscription *ProviderSubscription
}
