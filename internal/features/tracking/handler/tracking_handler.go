package handler

import (
	"errors"

	"rma-reconcile/internal/core/logger"
	"rma-reconcile/internal/features/tracking/domain"
	"rma-reconcile/internal/features/tracking/ports"
	"rma-reconcile/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for the reconciliation read model.
type TrackingHandler struct {
	reader ports.ShipmentReader
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(reader ports.ShipmentReader) *TrackingHandler {
	return &TrackingHandler{
		reader: reader,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ActiveShipmentsResponse is the bulk aggregation payload. The shipments field
// is deliberately top-level: there is no data wrapper, and callers must not
// expect one.
type ActiveShipmentsResponse struct {
	Success   bool                         `json:"success"`
	Count     int                          `json:"count"`
	Shipments []domain.ActiveShipmentEntry `json:"shipments"`
}

// TrackingDetailResponse is the single-RMA drill-down payload.
type TrackingDetailResponse struct {
	Success  bool                  `json:"success"`
	Tracking domain.TrackingDetail `json:"tracking"`
}

// DeliveryProvidersResponse lists the recognized carrier vocabulary.
type DeliveryProvidersResponse struct {
	Success   bool     `json:"success"`
	Providers []string `json:"providers"`
}

// GetActiveShipments godoc
// @Summary List active shipments
// @Description Returns every RMA with at least one shipment leg carrying a tracking number, reconciled across the legacy and modern schemas.
// @Tags tracking
// @Produce json
// @Success 200 {object} ActiveShipmentsResponse
// @Failure 502 {object} ErrorResponse
// @Router /shipments/active [get]
func (h *TrackingHandler) GetActiveShipments(c *fiber.Ctx) error {
	shipments, err := h.reader.AggregateActive(c.Context())
	if err != nil {
		logger.Get().Error("Failed to aggregate active shipments", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: "failed to fetch rma records",
			RayID:   rayID(c),
		})
	}

	return c.JSON(ActiveShipmentsResponse{
		Success:   true,
		Count:     len(shipments),
		Shipments: shipments,
	})
}

// GetTrackingDetail godoc
// @Summary Get tracking detail for one RMA
// @Description Returns both normalized shipment legs (outbound and return) for the given RMA, each possibly null.
// @Tags tracking
// @Produce json
// @Param id path string true "RMA ID"
// @Success 200 {object} TrackingDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /rmas/{id}/tracking [get]
func (h *TrackingHandler) GetTrackingDetail(c *fiber.Ctx) error {
	rmaID := c.Params("id")

	detail, err := h.reader.ResolveDetail(c.Context(), rmaID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRmaID):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "rma id is required",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrRmaNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "rma not found",
				RayID:   rayID(c),
			})
		default:
			logger.Get().Error("Failed to resolve tracking detail",
				zap.String("rma_id", rmaID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Message: "failed to fetch rma record",
				RayID:   rayID(c),
			})
		}
	}

	return c.JSON(TrackingDetailResponse{
		Success:  true,
		Tracking: *detail,
	})
}

// GetDeliveryProviders godoc
// @Summary List recognized delivery providers
// @Description Returns the fixed carrier vocabulary used for display and filtering.
// @Tags tracking
// @Produce json
// @Success 200 {object} DeliveryProvidersResponse
// @Router /delivery-providers [get]
func (h *TrackingHandler) GetDeliveryProviders(c *fiber.Ctx) error {
	return c.JSON(DeliveryProvidersResponse{
		Success:   true,
		Providers: domain.DeliveryProviders(),
	})
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
