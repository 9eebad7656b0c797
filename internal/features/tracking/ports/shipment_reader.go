package ports

import (
	"context"

	"rma-reconcile/internal/features/tracking/domain"
)

// ShipmentReader defines the primary port for the reconciliation read model.
// The plain service and the caching decorator both implement it, so handlers
// never know whether a response was computed or served from cache.
type ShipmentReader interface {
	// AggregateActive scans the RMA corpus and returns one entry per RMA that
	// has at least one present shipment leg, in storage order.
	AggregateActive(ctx context.Context) ([]domain.ActiveShipmentEntry, error)
	// ResolveDetail returns the full normalized tracking detail for one RMA.
	ResolveDetail(ctx context.Context, rmaID string) (*domain.TrackingDetail, error)
}
