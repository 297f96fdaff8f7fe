package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/dto"
	"github.com/dmorgachev/ce-tracker/internal/service"
)

// WebhookHandler receives signed payment events. Signature verification is
// delegated to the Stripe SDK; a bad signature is a hard 400 with nothing
// processed and no retry semantics on our side.
type WebhookHandler struct {
	billingService service.BillingService
	webhookSecret  string
	logger         *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(billingService service.BillingService, webhookSecret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		billingService: billingService,
		webhookSecret:  webhookSecret,
		logger:         logger,
	}
}

// checkoutSession is the slice of the event payload this service reads.
type checkoutSession struct {
	CustomerEmail   string `json:"customer_email"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

// HandleStripeEvent verifies and applies a payment event. Only
// checkout.session.completed mutates anything; other event types are
// acknowledged and ignored.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Unreadable webhook payload",
		})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.logger.Warn("rejected webhook", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "Invalid signature",
		})
		return
	}

	if event.Type == "checkout.session.completed" {
		var session checkoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad request",
				Message: "Malformed event payload",
			})
			return
		}

		email := session.CustomerEmail
		if email == "" {
			email = session.CustomerDetails.Email
		}

		if err := h.billingService.HandleCheckoutCompleted(c.Request.Context(), email); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "success",
	})
}
