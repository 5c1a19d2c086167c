package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderStripeSignature = "Stripe-Signature"
	HeaderCartSession     = "X-Cart-Session"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableProducts         = "products"
	TableProductVariants  = "product_variants"
	TableShoppingCarts    = "shopping_carts"
	TableCartItems        = "cart_items"
	TableOrders           = "orders"
	TableOrderItems       = "order_items"
	TableSubscriptions    = "subscriptions"
	TableEntitlements     = "entitlements"
	TableProfiles         = "profiles"
	TableBetaApplications = "beta_applications"

	// Checkout session expiry enforced by the payment provider.
	CheckoutSessionExpiryMinutes = 30

	// Anonymous cart lifetime before it is considered abandoned.
	CartExpiryDays = 7

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
