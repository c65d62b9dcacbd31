package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentry-app/mentry-server/internal/handler/http/dto"
	"github.com/mentry-app/mentry-server/internal/infrastructure/metrics"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

type BillingHandler struct {
	billingUsecase usecasecontract.IBillingUseCase
}

func NewBillingHandler(billingUsecase usecasecontract.IBillingUseCase) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
	}
}

// CreateCheckoutSessionHandler opens a hosted checkout session for the caller
// and returns its redirect URL.
func (h *BillingHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	uid, email, ok := CallerIdentity(c)
	if !ok {
		return
	}

	url, err := h.billingUsecase.CreateCheckoutSession(c.Request.Context(), uid, email)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutSessionResponse{URL: url})
}

// WebhookHandler receives payment provider events. The raw body is required
// for signature verification, so it is read before any JSON binding.
func (h *BillingHandler) WebhookHandler(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("read_error").Inc()
		ErrorHandler(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.billingUsecase.HandleProviderEvent(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, usecasecontract.ErrInvalidSignature) {
			metrics.WebhookEventsTotal.WithLabelValues("invalid_signature").Inc()
			ErrorHandler(c, http.StatusBadRequest, "Webhook signature verification failed")
			return
		}
		metrics.WebhookEventsTotal.WithLabelValues("error").Inc()
		ErrorHandler(c, http.StatusInternalServerError, "Failed to process webhook event")
		return
	}

	metrics.WebhookEventsTotal.WithLabelValues("ok").Inc()
	MessageHandler(c, http.StatusOK, "Event received")
}
