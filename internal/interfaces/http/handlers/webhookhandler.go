package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutuc "github.com/inkpress-io/inkpress/internal/application/checkout/usecases"
	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	subscriptionuc "github.com/inkpress-io/inkpress/internal/application/subscription/usecases"
	"github.com/inkpress-io/inkpress/internal/shared/constants"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

// WebhookHandler receives payment provider events. The provider retries
// delivery on non-2xx responses, so events this service cannot act on are
// acknowledged rather than rejected.
type WebhookHandler struct {
	gateway          paymentgateway.Gateway
	completeOrderUC  *checkoutuc.CompleteOrderUseCase
	paymentFailureUC *checkoutuc.HandlePaymentFailureUseCase
	syncSubUC        *subscriptionuc.SyncProviderSubscriptionUseCase
	logger           logger.Interface
}

func NewWebhookHandler(
	gateway paymentgateway.Gateway,
	completeOrderUC *checkoutuc.CompleteOrderUseCase,
	paymentFailureUC *checkoutuc.HandlePaymentFailureUseCase,
	syncSubUC *subscriptionuc.SyncProviderSubscriptionUseCase,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		gateway:          gateway,
		completeOrderUC:  completeOrderUC,
		paymentFailureUC: paymentFailureUC,
		syncSubUC:        syncSubUC,
		logger:           logger,
	}
}

func (h *WebhookHandler) HandleProviderEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read webhook payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid payload")
		return
	}

	signature := c.GetHeader(constants.HeaderStripeSignature)
	event, err := h.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		h.logger.Warnw("webhook signature verification failed", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid signature")
		return
	}

	if err := h.dispatch(c, event); err != nil {
		h.logger.Errorw("webhook processing failed",
			"error", err,
			"event_id", event.ID,
			"event_type", event.Type)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"received": true})
}

func (h *WebhookHandler) dispatch(c *gin.Context, event *paymentgateway.WebhookEvent) error {
	ctx := c.Request.Context()

	switch event.Type {
	case paymentgateway.EventCheckoutCompleted:
		_, err := h.completeOrderUC.Execute(ctx, checkoutuc.CompleteOrderCommand{Session: event.Session})
		return err

	case paymentgateway.EventCheckoutExpired:
		if event.Session == nil {
			return nil
		}
		return h.paymentFailureUC.Execute(ctx, checkoutuc.HandlePaymentFailureCommand{SessionID: event.Session.ID})

	case paymentgateway.EventPaymentFailed:
		// Failed payment intents carry no session reference. The order stays
		// pending until the session itself expires.
		if event.Session == nil || event.Session.ID == "" {
			h.logger.Infow("payment failed without session reference",
				"event_id", event.ID,
				"payment_intent_id", paymentIntentID(event))
			return nil
		}
		return h.paymentFailureUC.Execute(ctx, checkoutuc.HandlePaymentFailureCommand{SessionID: event.Session.ID})

	case paymentgateway.EventSubscriptionUpdated:
		return h.syncSubUC.Execute(ctx, subscriptionuc.SyncProviderSubscriptionCommand{Provider: event.Subscription})

	case paymentgateway.EventSubscriptionDeleted:
		return h.syncSubUC.Execute(ctx, subscriptionuc.SyncProviderSubscriptionCommand{
			Provider: event.Subscription,
			Deleted:  true,
		})

	case paymentgateway.EventInvoicePaymentFailed:
		return h.syncSubUC.Execute(ctx, subscriptionuc.SyncProviderSubscriptionCommand{Provider: event.Subscription})

	default:
		h.logger.Debugw("ignoring webhook event", "event_id", event.ID, "event_type", event.Type)
		return nil
	}
}

func paymentIntentID(event *paymentgateway.WebhookEvent) string {
	if event.Session == nil {
		return ""
	}
	return event.Session.PaymentIntentID
}
