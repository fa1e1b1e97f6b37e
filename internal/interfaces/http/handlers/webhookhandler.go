package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"walletpay/internal/application/webhook"
	"walletpay/internal/shared/logger"
	"walletpay/internal/shared/utils"
)

const DetailPayloadTooLarge = "Payload too large"

// WebhookDispatcher runs a captured request through verification and dispatch.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, req webhook.IncomingRequest) (*webhook.Outcome, error)
}

type WebhookHandler struct {
	dispatcher   WebhookDispatcher
	maxBodyBytes int64
	logger       logger.Interface
}

func NewWebhookHandler(dispatcher WebhookDispatcher, maxBodyBytes int64, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		dispatcher:   dispatcher,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// @Summary		Receive WalletPay webhook
// @Description	Verifies origin IP and HMAC signature, then dispatches ORDER_PAID / ORDER_FAILED events to registered callbacks
// @Tags			webhook
// @Accept			json
// @Produce		json
// @Param			Walletpay-Signature	header		string						true	"Base64 HMAC-SHA256 of METHOD.PATH.TIMESTAMP.BASE64(BODY)"
// @Param			WalletPay-Timestamp	header		string						true	"Timestamp used in the signature"
// @Param			events				body		[]webhook.Event				true	"Webhook events"
// @Success		200					{object}	utils.MessageResponse		"Event processed or acknowledged"
// @Failure		400					{object}	utils.DetailResponse		"Invalid signature or malformed payload"
// @Failure		403					{object}	utils.DetailResponse		"IP not allowed"
// @Failure		413					{object}	utils.DetailResponse		"Payload too large"
// @Failure		500					{object}	utils.DetailResponse		"Callback execution failed"
// @Router			/wp_webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	// The body is kept verbatim: the signature covers the exact bytes.
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warnw("webhook body exceeds limit", "limit", h.maxBodyBytes, "remote_addr", c.Request.RemoteAddr)
			utils.DetailJSON(c, http.StatusRequestEntityTooLarge, DetailPayloadTooLarge)
			return
		}
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.DetailJSON(c, http.StatusBadRequest, webhook.DetailMalformedPayload)
		return
	}

	outcome, err := h.dispatcher.Dispatch(c.Request.Context(), webhook.IncomingRequest{
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		Body:       body,
		Headers:    c.Request.Header,
		RemoteAddr: c.Request.RemoteAddr,
	})
	if err != nil {
		_ = c.Error(err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageJSON(c, http.StatusOK, outcome.Message)
}
