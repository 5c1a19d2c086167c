package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, quantity int, unitAmount int64) *Item {
	t.Helper()
	item, err := NewItem(10, 100, "Saga of Ash #1", "Digital", "SOA-001-D", quantity, unitAmount)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	userID := uint(7)
	o, err := NewOrder("INK-20260831-000042", &userID, "reader@example.com", "usd",
		[]*Item{testItem(t, 2, 499), testItem(t, 1, 1299)})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes totals from items", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, StatusPending, o.Status())
		assert.Equal(t, PaymentStatusUnpaid, o.PaymentStatus())
		assert.Equal(t, int64(2*499+1299), o.Subtotal())
		assert.Equal(t, o.Subtotal(), o.TotalAmount())
		assert.False(t, o.IsPaid())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejects missing order number", func(t *testing.T) {
		_, err := NewOrder("", nil, "reader@example.com", "usd", []*Item{testItem(t, 1, 499)})
		assert.Error(t, err)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewOrder("INK-20260831-000001", nil, "reader@example.com", "usd", nil)
		assert.Error(t, err)
	})

	t.Run("rejects bad currency code", func(t *testing.T) {
		_, err := NewOrder("INK-20260831-000001", nil, "reader@example.com", "dollars", []*Item{testItem(t, 1, 499)})
		assert.Error(t, err)
	})

	t.Run("allows guest orders without user", func(t *testing.T) {
		o, err := NewOrder("INK-20260831-000002", nil, "guest@example.com", "usd", []*Item{testItem(t, 1, 499)})
		require.NoError(t, err)
		assert.Nil(t, o.UserID())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("snapshots line total", func(t *testing.T) {
		item := testItem(t, 3, 499)
		assert.Equal(t, int64(1497), item.TotalAmount())
		assert.False(t, item.AccessGranted())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewItem(10, 100, "Saga of Ash #1", "Digital", "SOA-001-D", 0, 499)
		assert.Error(t, err)
	})

	t.Run("rejects negative unit amount", func(t *testing.T) {
		_, err := NewItem(10, 100, "Saga of Ash #1", "Digital", "SOA-001-D", 1, -1)
		assert.Error(t, err)
	})
}

func TestOrder_AttachCheckoutSession(t *testing.T) {
	t.Run("links pending order to session", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.AttachCheckoutSession("cs_test_123"))
		require.NotNil(t, o.CheckoutSessionID())
		assert.Equal(t, "cs_test_123", *o.CheckoutSessionID())
	})

	t.Run("rejects empty session ID", func(t *testing.T) {
		o := testOrder(t)
		assert.Error(t, o.AttachCheckoutSession(""))
	})

	t.Run("rejects non-pending order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaid("pi_1", "cus_1", nil, nil))

		assert.Error(t, o.AttachCheckoutSession("cs_test_456"))
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	billing := map[string]interface{}{"line1": "1 Ash Lane", "city": "Emberfall"}

	t.Run("confirms order and records payment details", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkPaid("pi_123", "cus_456", billing, nil))

		assert.True(t, o.IsPaid())
		assert.Equal(t, StatusConfirmed, o.Status())
		assert.Equal(t, PaymentStatusPaid, o.PaymentStatus())
		require.NotNil(t, o.PaymentIntentID())
		assert.Equal(t, "pi_123", *o.PaymentIntentID())
		require.NotNil(t, o.ProviderCustomerID())
		assert.Equal(t, "cus_456", *o.ProviderCustomerID())
		assert.Equal(t, billing, o.BillingAddress())
		require.NotNil(t, o.ConfirmedAt())
	})

	t.Run("redelivery is a no-op", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaid("pi_123", "cus_456", nil, nil))
		version := o.Version()

		require.NoError(t, o.MarkPaid("pi_999", "cus_999", nil, nil))

		assert.Equal(t, "pi_123", *o.PaymentIntentID())
		assert.Equal(t, version, o.Version())
	})

	t.Run("rejects cancelled order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentFailed())

		assert.Error(t, o.MarkPaid("pi_123", "", nil, nil))
	})

	t.Run("empty provider IDs stay unset", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkPaid("", "", nil, nil))
		assert.Nil(t, o.PaymentIntentID())
		assert.Nil(t, o.ProviderCustomerID())
	})
}

func TestOrder_MarkPaymentFailed(t *testing.T) {
	t.Run("cancels the order", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkPaymentFailed())

		assert.Equal(t, StatusCancelled, o.Status())
		assert.Equal(t, PaymentStatusFailed, o.PaymentStatus())
	})

	t.Run("repeat failure is a no-op", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentFailed())
		version := o.Version()

		require.NoError(t, o.MarkPaymentFailed())
		assert.Equal(t, version, o.Version())
	})

	t.Run("rejects already paid order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaid("pi_123", "", nil, nil))

		assert.Error(t, o.MarkPaymentFailed())
		assert.True(t, o.IsPaid())
	})
}

func TestItem_GrantAccess(t *testing.T) {
	item := testItem(t, 1, 499)
	first := time.Now().UTC()

	item.GrantAccess(first)
	require.True(t, item.AccessGranted())
	require.NotNil(t, item.AccessGrantedAt())
	assert.Equal(t, first, *item.AccessGrantedAt())

	// A second grant keeps the original timestamp.
	item.GrantAccess(first.Add(time.Hour))
	assert.Equal(t, first, *item.AccessGrantedAt())
}
