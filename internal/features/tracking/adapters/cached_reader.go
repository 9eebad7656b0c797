package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rma-reconcile/internal/core/cache"
	"rma-reconcile/internal/core/logger"
	"rma-reconcile/internal/features/tracking/domain"
	"rma-reconcile/internal/features/tracking/ports"

	"go.uber.org/zap"
)

const activeShipmentsKey = "active_shipments"

// CachedShipmentReader decorates a ShipmentReader with an explicit TTL cache
// for the bulk aggregation. Caching here is deliberate and visible: one key,
// one TTL, one invalidation method wired to the carrier webhook. The detail
// view is never cached.
type CachedShipmentReader struct {
	inner  ports.ShipmentReader
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedShipmentReader wraps inner with a cache of the given TTL.
func NewCachedShipmentReader(inner ports.ShipmentReader, c cache.Cache, ttl time.Duration) *CachedShipmentReader {
	return &CachedShipmentReader{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger.Get(),
	}
}

// AggregateActive serves the cached aggregation when present, otherwise
// recomputes and stores it. Cache failures degrade to a recompute; they never
// fail the request.
func (r *CachedShipmentReader) AggregateActive(ctx context.Context) ([]domain.ActiveShipmentEntry, error) {
	if data, err := r.cache.Get(ctx, activeShipmentsKey); err == nil {
		var entries []domain.ActiveShipmentEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		r.logger.Warn("Discarding undecodable cached aggregation", zap.String("key", activeShipmentsKey))
	}

	entries, err := r.inner.AggregateActive(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal active shipments: %w", err)
	}
	if err := r.cache.Set(ctx, activeShipmentsKey, data, r.ttl); err != nil {
		r.logger.Warn("Failed to cache active shipments", zap.Error(err))
	}

	return entries, nil
}

// ResolveDetail passes straight through to the inner reader.
func (r *CachedShipmentReader) ResolveDetail(ctx context.Context, rmaID string) (*domain.TrackingDetail, error) {
	return r.inner.ResolveDetail(ctx, rmaID)
}

// Invalidate drops the cached aggregation. Called when a carrier webhook
// signals that tracking data changed upstream.
func (r *CachedShipmentReader) Invalidate(ctx context.Context) error {
	if err := r.cache.Delete(ctx, activeShipmentsKey); err != nil {
		return fmt.Errorf("failed to invalidate active shipments cache: %w", err)
	}
	return nil
}
