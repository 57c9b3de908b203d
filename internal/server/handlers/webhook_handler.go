package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bmamadou/wacloud/events"
	"github.com/bmamadou/wacloud/internal/config"
	"github.com/bmamadou/wacloud/webhook"
)

// WebhookHandler handles inbound WhatsApp webhook HTTP traffic: the one-time
// verification challenge and the event deliveries themselves.
type WebhookHandler struct {
	cfg     config.WhatsAppConfig
	emitter events.Emitter
	logger  *zap.Logger
}

// NewWebhookHandler constructs the HTTP handler adapter.
func NewWebhookHandler(cfg config.WhatsAppConfig, emitter events.Emitter, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{cfg: cfg, emitter: emitter, logger: logger}
}

// Verify responds to Meta's webhook verification challenge.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if !strings.EqualFold(mode, "subscribe") || token != h.cfg.VerifyToken {
		h.logger.Warn("webhook verification failed", zap.String("mode", mode))
		c.String(http.StatusForbidden, "verification failed")
		return
	}

	c.String(http.StatusOK, challenge)
}

// Receive ingests webhook POST callbacks from Meta. The signature is checked
// against the raw body before any JSON parsing happens.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("failed reading webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	signature := c.GetHeader(webhook.SignatureHeader)
	if !webhook.VerifySignature([]byte(h.cfg.AppSecret), body, signature) {
		h.logger.Warn("webhook signature mismatch")
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
		return
	}

	normalized, err := webhook.Normalize(body)
	if err != nil {
		h.logger.Warn("invalid webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := events.Dispatch(c.Request.Context(), normalized, h.emitter); err != nil {
		h.logger.Error("failed dispatching webhook events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
		return
	}

	c.Status(http.StatusOK)
}
