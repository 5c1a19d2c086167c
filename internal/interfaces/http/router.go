package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartuc "github.com/inkpress-io/inkpress/internal/application/cart/usecases"
	cataloguc "github.com/inkpress-io/inkpress/internal/application/catalog/usecases"
	checkoutuc "github.com/inkpress-io/inkpress/internal/application/checkout/usecases"
	appentitlement "github.com/inkpress-io/inkpress/internal/application/entitlement"
	orderuc "github.com/inkpress-io/inkpress/internal/application/order/usecases"
	subscriptionuc "github.com/inkpress-io/inkpress/internal/application/subscription/usecases"
	useruc "github.com/inkpress-io/inkpress/internal/application/user/usecases"
	"github.com/inkpress-io/inkpress/internal/infrastructure/auth"
	"github.com/inkpress-io/inkpress/internal/infrastructure/config"
	"github.com/inkpress-io/inkpress/internal/infrastructure/email"
	"github.com/inkpress-io/inkpress/internal/infrastructure/payment"
	"github.com/inkpress-io/inkpress/internal/infrastructure/ratelimit"
	"github.com/inkpress-io/inkpress/internal/infrastructure/repository"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/routes"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/services/markdown"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	logger              logger.Interface
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	productHandler      *handlers.ProductHandler
	cartHandler         *handlers.CartHandler
	checkoutHandler     *handlers.CheckoutHandler
	webhookHandler      *handlers.WebhookHandler
	orderHandler        *handlers.OrderHandler
	subscriptionHandler *handlers.SubscriptionHandler
	profileHandler      *handlers.ProfileHandler
	entitlementHandler  *handlers.EntitlementHandler
}

// NewRouter builds the full dependency graph for the HTTP interface.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	productRepo := repository.NewProductRepository(db, log)
	variantRepo := repository.NewVariantRepository(db, log)
	cartRepo := repository.NewCartRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	entitlementRepo := repository.NewEntitlementRepository(db, log)
	profileRepo := repository.NewProfileRepository(db, log)
	applicationRepo := repository.NewBetaApplicationRepository(db, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	markdownSvc := markdown.NewService()
	entitlementSvc := appentitlement.NewService(entitlementRepo, productRepo, log)

	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Enabled:     cfg.Email.Enabled,
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	createProductUC := cataloguc.NewCreateProductUseCase(productRepo, markdownSvc, log)
	updateProductUC := cataloguc.NewUpdateProductUseCase(productRepo, markdownSvc, log)
	getProductUC := cataloguc.NewGetProductUseCase(productRepo, variantRepo, markdownSvc, log)
	listProductsUC := cataloguc.NewListProductsUseCase(productRepo, log)
	createVariantUC := cataloguc.NewCreateVariantUseCase(productRepo, variantRepo, log)
	updateVariantUC := cataloguc.NewUpdateVariantUseCase(productRepo, variantRepo, log)
	syncProductUC := cataloguc.NewSyncProductUseCase(productRepo, variantRepo, gateway, log)

	getCartUC := cartuc.NewGetCartUseCase(cartRepo, log)
	addToCartUC := cartuc.NewAddToCartUseCase(cartRepo, productRepo, variantRepo, log)
	updateCartItemUC := cartuc.NewUpdateCartItemUseCase(cartRepo, variantRepo, log)
	removeCartItemUC := cartuc.NewRemoveCartItemUseCase(cartRepo, variantRepo, log)
	clearCartUC := cartuc.NewClearCartUseCase(cartRepo, log)

	checkoutConfig := checkoutuc.CheckoutConfig{
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}
	createSessionUC := checkoutuc.NewCreateCheckoutSessionUseCase(
		cartRepo, orderRepo, productRepo, variantRepo, gateway, log, checkoutConfig)
	completeOrderUC := checkoutuc.NewCompleteOrderUseCase(orderRepo, cartRepo, variantRepo, entitlementSvc, log)
	paymentFailureUC := checkoutuc.NewHandlePaymentFailureUseCase(orderRepo, log)

	getOrderUC := orderuc.NewGetOrderUseCase(orderRepo, log)
	listOrdersUC := orderuc.NewListOrdersUseCase(orderRepo, log)

	createSubscriptionUC := subscriptionuc.NewCreateSubscriptionUseCase(
		subscriptionRepo, productRepo, variantRepo, profileRepo, entitlementSvc, log)
	getUserSubscriptionsUC := subscriptionuc.NewGetUserSubscriptionsUseCase(subscriptionRepo, log)
	cancelSubscriptionUC := subscriptionuc.NewCancelSubscriptionUseCase(
		subscriptionRepo, profileRepo, entitlementSvc, notifier, log)
	reactivateSubscriptionUC := subscriptionuc.NewReactivateSubscriptionUseCase(subscriptionRepo, entitlementSvc, log)
	updateSubscriptionUC := subscriptionuc.NewUpdateSubscriptionUseCase(
		subscriptionRepo, profileRepo, entitlementSvc, notifier, log)
	syncSubscriptionUC := subscriptionuc.NewSyncProviderSubscriptionUseCase(subscriptionRepo, updateSubscriptionUC, log)

	getProfileUC := useruc.NewGetProfileUseCase(profileRepo, applicationRepo, log)
	updateProfileUC := useruc.NewUpdateProfileUseCase(profileRepo, log)
	changeRoleUC := useruc.NewChangeRoleUseCase(profileRepo, log)
	deactivateUserUC := useruc.NewDeactivateUserUseCase(profileRepo, subscriptionRepo, entitlementSvc, log)
	submitBetaAppUC := useruc.NewSubmitBetaApplicationUseCase(profileRepo, applicationRepo, log)
	reviewBetaAppUC := useruc.NewReviewBetaApplicationUseCase(profileRepo, applicationRepo, log)
	listBetaAppsUC := useruc.NewListBetaApplicationsUseCase(applicationRepo, log)

	var rateLimiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = ratelimit.NewRedisRateLimiter(client)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		logger:         log,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:    rateLimiter,
		productHandler: handlers.NewProductHandler(
			createProductUC, updateProductUC, getProductUC, listProductsUC,
			createVariantUC, updateVariantUC, syncProductUC, log),
		cartHandler: handlers.NewCartHandler(
			getCartUC, addToCartUC, updateCartItemUC, removeCartItemUC, clearCartUC, log),
		checkoutHandler: handlers.NewCheckoutHandler(createSessionUC, log),
		webhookHandler:  handlers.NewWebhookHandler(gateway, completeOrderUC, paymentFailureUC, syncSubscriptionUC, log),
		orderHandler:    handlers.NewOrderHandler(getOrderUC, listOrdersUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			createSubscriptionUC, getUserSubscriptionsUC, cancelSubscriptionUC, reactivateSubscriptionUC, log),
		profileHandler: handlers.NewProfileHandler(
			getProfileUC, updateProfileUC, changeRoleUC, deactivateUserUC,
			submitBetaAppUC, reviewBetaAppUC, listBetaAppsUC, log),
		entitlementHandler: handlers.NewEntitlementHandler(entitlementSvc, log),
	}
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	if r.rateLimiter != nil {
		r.engine.Use(middleware.RateLimit(r.rateLimiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
		}, r.logger))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		ProductHandler: r.productHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCartRoutes(r.engine, &routes.CartRouteConfig{
		CartHandler:    r.cartHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCheckoutRoutes(r.engine, &routes.CheckoutRouteConfig{
		CheckoutHandler: r.checkoutHandler,
		WebhookHandler:  r.webhookHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler:   r.orderHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		ProfileHandler: r.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupEntitlementRoutes(r.engine, &routes.EntitlementRouteConfig{
		EntitlementHandler: r.entitlementHandler,
		AuthMiddleware:     r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
