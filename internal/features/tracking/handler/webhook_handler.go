package handler

import (
	"context"

	"rma-reconcile/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CacheInvalidator drops derived read-model state so the next aggregation
// recomputes from fresh records.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// WebhookHandler receives carrier webhook notifications. The engine holds no
// state of its own, so the only effect of a webhook here is invalidating the
// cached aggregation; record updates happen in the upstream CRUD system.
type WebhookHandler struct {
	invalidator CacheInvalidator
}

// NewWebhookHandler creates a new WebhookHandler. A nil invalidator is valid
// when the aggregation cache is disabled; the webhook then becomes a no-op ack.
func NewWebhookHandler(invalidator CacheInvalidator) *WebhookHandler {
	return &WebhookHandler{
		invalidator: invalidator,
	}
}

// CarrierWebhook godoc
// @Summary Receive a carrier tracking update
// @Description Acknowledges a carrier webhook and invalidates the cached active-shipments aggregation.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 202 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /webhooks/carrier [post]
func (h *WebhookHandler) CarrierWebhook(c *fiber.Ctx) error {
	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(c.Context()); err != nil {
			logger.Get().Error("Failed to invalidate aggregation cache", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Message: "failed to invalidate cache",
				RayID:   rayID(c),
			})
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"message": "webhook accepted",
	})
}
