package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"rma-reconcile/internal/features/tracking/domain"
	"rma-reconcile/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockShipmentReader is a mock implementation of ShipmentReader for testing.
type mockShipmentReader struct {
	entries     []domain.ActiveShipmentEntry
	detail      *domain.TrackingDetail
	returnError error
}

// AggregateActive implements ShipmentReader.
func (m *mockShipmentReader) AggregateActive(ctx context.Context) ([]domain.ActiveShipmentEntry, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.entries, nil
}

// ResolveDetail implements ShipmentReader.
func (m *mockShipmentReader) ResolveDetail(ctx context.Context, rmaID string) (*domain.TrackingDetail, error) {
	if strings.TrimSpace(rmaID) == "" {
		return nil, service.ErrInvalidRmaID
	}
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.detail, nil
}

func newTestApp(reader *mockShipmentReader) *fiber.App {
	handler := NewTrackingHandler(reader)

	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/shipments/active", handler.GetActiveShipments)
	app.Get("/rmas/:id/tracking", handler.GetTrackingDetail)
	app.Get("/delivery-providers", handler.GetDeliveryProviders)

	return app
}

// TestTrackingHandler_GetActiveShipments_Success verifies the pinned response
// shape: shipments is a direct top-level field, not nested under data.
func TestTrackingHandler_GetActiveShipments_Success(t *testing.T) {
	reader := &mockShipmentReader{
		entries: []domain.ActiveShipmentEntry{
			{RmaID: "1", RmaNumber: "RMA-1", Return: &domain.ShipmentLeg{
				Direction:      domain.DirectionReturn,
				TrackingNumber: "D30048484",
				Carrier:        "DTDC",
				Status:         domain.TrackingStatusNotShipped,
				SourceFieldSet: domain.FieldSourceLegacy,
			}},
			{RmaID: "2", RmaNumber: "RMA-2", Outbound: &domain.ShipmentLeg{
				Direction:      domain.DirectionOutbound,
				TrackingNumber: "F123",
				Status:         domain.TrackingStatusInTransit,
				SourceFieldSet: domain.FieldSourceModern,
			}},
		},
	}

	app := newTestApp(reader)
	req := httptest.NewRequest("GET", "/shipments/active", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Contains(t, raw, "success")
	assert.Contains(t, raw, "count")
	assert.Contains(t, raw, "shipments")
	assert.NotContains(t, raw, "data")

	var result ActiveShipmentsResponse
	require.NoError(t, json.Unmarshal(mustMarshal(t, raw), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Shipments, 2)
	assert.Equal(t, "RMA-1", result.Shipments[0].RmaNumber)
	require.NotNil(t, result.Shipments[0].Return)
	assert.Equal(t, "D30048484", result.Shipments[0].Return.TrackingNumber)
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// TestTrackingHandler_GetActiveShipments_UpstreamFailure verifies the 502
// mapping for store failures.
func TestTrackingHandler_GetActiveShipments_UpstreamFailure(t *testing.T) {
	reader := &mockShipmentReader{returnError: errors.New("mongo timeout")}

	app := newTestApp(reader)
	req := httptest.NewRequest("GET", "/shipments/active", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var result ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "test-ray-id", result.RayID)
}

// TestTrackingHandler_GetTrackingDetail_Success verifies the detail payload.
func TestTrackingHandler_GetTrackingDetail_Success(t *testing.T) {
	reader := &mockShipmentReader{
		detail: &domain.TrackingDetail{
			Return: &domain.ShipmentLeg{
				Direction:      domain.DirectionReturn,
				TrackingNumber: "D999",
				Status:         domain.TrackingStatusInTransit,
				SourceFieldSet: domain.FieldSourceLegacy,
			},
		},
	}

	app := newTestApp(reader)
	req := httptest.NewRequest("GET", "/rmas/65f1a2b3c4d5e6f7a8b9c0d1/tracking", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result TrackingDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Nil(t, result.Tracking.Outbound)
	require.NotNil(t, result.Tracking.Return)
	assert.Equal(t, "D999", result.Tracking.Return.TrackingNumber)
}

// TestTrackingHandler_GetTrackingDetail_BlankID verifies the InvalidArgument
// mapping: a whitespace id is a 400, never a 404.
func TestTrackingHandler_GetTrackingDetail_BlankID(t *testing.T) {
	app := newTestApp(&mockShipmentReader{})

	req := httptest.NewRequest("GET", "/rmas/%20/tracking", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestTrackingHandler_GetTrackingDetail_NotFound verifies the 404 mapping.
func TestTrackingHandler_GetTrackingDetail_NotFound(t *testing.T) {
	reader := &mockShipmentReader{returnError: service.ErrRmaNotFound}

	app := newTestApp(reader)
	req := httptest.NewRequest("GET", "/rmas/65f1a2b3c4d5e6f7a8b9c0d1/tracking", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestTrackingHandler_GetTrackingDetail_UpstreamFailure verifies the 502 mapping.
func TestTrackingHandler_GetTrackingDetail_UpstreamFailure(t *testing.T) {
	reader := &mockShipmentReader{returnError: errors.New("connection reset")}

	app := newTestApp(reader)
	req := httptest.NewRequest("GET", "/rmas/65f1a2b3c4d5e6f7a8b9c0d1/tracking", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

// TestTrackingHandler_GetDeliveryProviders verifies the carrier vocabulary
// endpoint.
func TestTrackingHandler_GetDeliveryProviders(t *testing.T) {
	app := newTestApp(&mockShipmentReader{})

	req := httptest.NewRequest("GET", "/delivery-providers", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result DeliveryProvidersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Contains(t, result.Providers, "DTDC")
	assert.Contains(t, result.Providers, "Delhivery")
	assert.Len(t, result.Providers, 8)
}
