package order

import (
	"fmt"
	"time"
)

// Order is the order aggregate root. Items carry price snapshots taken at
// checkout, so later catalog changes never alter a placed order.
type Order struct {
	id                 uint
	orderNumber        string
	userID             *uint
	email              string
	status             Status
	paymentStatus      PaymentStatus
	currency           string
	subtotal           int64
	totalAmount        int64
	billingAddress     map[string]interface{}
	shippingAddress    map[string]interface{}
	checkoutSessionID  *string
	paymentIntentID    *string
	providerCustomerID *string
	confirmedAt        *time.Time
	items              []*Item
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewOrder creates a pending, unpaid order from checkout line snapshots.
// Totals are computed from the items.
func NewOrder(orderNumber string, userID *uint, email, currency string, items []*Item) (*Order, error) {
	if orderNumber == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.TotalAmount()
	}

	now := time.Now().UTC()
	return &Order{
		orderNumber:   orderNumber,
		userID:        userID,
		email:         email,
		status:        StatusPending,
		paymentStatus: PaymentStatusUnpaid,
		currency:      currency,
		subtotal:      subtotal,
		totalAmount:   subtotal,
		items:         items,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructOrder reconstructs an order from persistence
func ReconstructOrder(
	id uint,
	orderNumber string,
	userID *uint,
	email string,
	status Status,
	paymentStatus PaymentStatus,
	currency string,
	subtotal, totalAmount int64,
	billingAddress, shippingAddress map[string]interface{},
	checkoutSessionID, paymentIntentID, providerCustomerID *string,
	confirmedAt *time.Time,
	items []*Item,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	return &Order{
		id:                 id,
		orderNumber:        orderNumber,
		userID:             userID,
		email:              email,
		status:             status,
		paymentStatus:      paymentStatus,
		currency:           currency,
		subtotal:           subtotal,
		totalAmount:        totalAmount,
		billingAddress:     billingAddress,
		shippingAddress:    shippingAddress,
		checkoutSessionID:  checkoutSessionID,
		paymentIntentID:    paymentIntentID,
		providerCustomerID: providerCustomerID,
		confirmedAt:        confirmedAt,
		items:              items,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (o *Order) ID() uint                     { return o.id }
func (o *Order) OrderNumber() string          { return o.orderNumber }
func (o *Order) UserID() *uint                { return o.userID }
func (o *Order) Email() string                { return o.email }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Currency() string             { return o.currency }
func (o *Order) Subtotal() int64              { return o.subtotal }
func (o *Order) TotalAmount() int64           { return o.totalAmount }
func (o *Order) BillingAddress() map[string]interface{} {
	return o.billingAddress
}
func (o *Order) ShippingAddress() map[string]interface{} {
	return o.shippingAddress
}
func (o *Order) CheckoutSessionID() *string  { return o.checkoutSessionID }
func (o *Order) PaymentIntentID() *string    { return o.paymentIntentID }
func (o *Order) ProviderCustomerID() *string { return o.providerCustomerID }
func (o *Order) ConfirmedAt() *time.Time     { return o.confirmedAt }
func (o *Order) Items() []*Item              { return o.items }
func (o *Order) Version() int                { return o.version }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }

// SetID sets the order ID (only for persistence layer use)
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// AttachCheckoutSession links the order to a hosted checkout session.
func (o *Order) AttachCheckoutSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("checkout session ID is required")
	}
	if o.status != StatusPending {
		return fmt.Errorf("cannot attach checkout session to %s order", o.status)
	}

	o.checkoutSessionID = &sessionID
	o.updatedAt = time.Now().UTC()
	o.version++
	return nil
}

// MarkPaid records a successful payment and confirms the order. Safe to call
// again on an already paid order.
func (o *Order) MarkPaid(paymentIntentID, customerID string, billing, shipping map[string]interface{}) error {
	if o.paymentStatus == PaymentStatusPaid {
		return nil
	}
	if o.status == StatusCancelled {
		return fmt.Errorf("cannot mark cancelled order as paid")
	}

	now := time.Now().UTC()
	o.paymentStatus = PaymentStatusPaid
	o.status = StatusConfirmed
	o.confirmedAt = &now
	if paymentIntentID != "" {
		o.paymentIntentID = &paymentIntentID
	}
	if customerID != "" {
		o.providerCustomerID = &customerID
	}
	if billing != nil {
		o.billingAddress = billing
	}
	if shipping != nil {
		o.shippingAddress = shipping
	}
	o.updatedAt = now
	o.version++
	return nil
}

// MarkPaymentFailed records a failed or expired payment attempt and cancels
// the order.
func (o *Order) MarkPaymentFailed() error {
	if o.paymentStatus == PaymentStatusPaid {
		return fmt.Errorf("cannot fail an already paid order")
	}
	if o.paymentStatus == PaymentStatusFailed {
		return nil
	}

	o.paymentStatus = PaymentStatusFailed
	o.status = StatusCancelled
	o.updatedAt = time.Now().UTC()
	o.version++
	return nil
}

// IsPaid reports whether payment has settled.
func (o *Order) IsPaid() bool {
	return o.paymentStatus == PaymentStatusPaid
}
