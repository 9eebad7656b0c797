package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rma-reconcile/internal/core/logger"
	rmaports "rma-reconcile/internal/features/rma/ports"
	"rma-reconcile/internal/features/tracking/domain"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRmaID is returned when the caller passes a blank identifier.
	// Checked before any store access: a blank id is a caller bug, not stale data.
	ErrInvalidRmaID = errors.New("rma id is required")
	// ErrRmaNotFound is returned when a well-formed identifier matches no record.
	ErrRmaNotFound = errors.New("rma not found")
)

// ReconcileService computes the active-shipments read model and per-RMA
// tracking detail from the raw RMA corpus. Every call is a stateless
// transformation over the store's current snapshot; nothing is cached here and
// nothing is written back.
type ReconcileService struct {
	store      rmaports.RmaStore
	targetDays int
	now        func() time.Time
	logger     *zap.Logger
}

// NewReconcileService creates a ReconcileService. targetDays is the SLA
// delivery target applied to every emitted leg; 0 disables SLA annotation.
func NewReconcileService(store rmaports.RmaStore, targetDays int) *ReconcileService {
	return &ReconcileService{
		store:      store,
		targetDays: targetDays,
		now:        time.Now,
		logger:     logger.Get(),
	}
}

// AggregateActive scans every RMA record, reconciles its shipment legs and
// returns one entry per RMA with at least one present leg, preserving storage
// order. Records with malformed dates degrade to UNKNOWN status instead of
// aborting the scan; only a store failure aborts the call.
func (s *ReconcileService) AggregateActive(ctx context.Context) ([]domain.ActiveShipmentEntry, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch rma corpus: %w", err)
	}

	entries := make([]domain.ActiveShipmentEntry, 0, len(records))
	for i := range records {
		rec := &records[i]

		outbound, ret, warnings := domain.ExtractLegs(rec)
		s.logWarnings(rec.RmaNumber, warnings)

		if outbound == nil && ret == nil {
			continue
		}

		s.annotateSla(outbound)
		s.annotateSla(ret)

		entries = append(entries, domain.ActiveShipmentEntry{
			RmaID:       rec.ID.Hex(),
			RmaNumber:   rec.RmaNumber,
			SiteName:    rec.SiteName,
			ProductName: rec.ProductName,
			Outbound:    outbound,
			Return:      ret,
		})
	}

	return entries, nil
}

// ResolveDetail returns the normalized tracking detail for one RMA. A blank id
// fails with ErrInvalidRmaID before any fetch; an unknown id with ErrRmaNotFound.
// An RMA that simply has no tracking data returns two nil legs, not an error.
func (s *ReconcileService) ResolveDetail(ctx context.Context, rmaID string) (*domain.TrackingDetail, error) {
	if strings.TrimSpace(rmaID) == "" {
		return nil, ErrInvalidRmaID
	}

	rec, err := s.store.FindByID(ctx, rmaID)
	if err != nil {
		if errors.Is(err, rmaports.ErrRmaNotFound) {
			return nil, ErrRmaNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch rma %s: %w", rmaID, err)
	}

	outbound, ret, warnings := domain.ExtractLegs(rec)
	s.logWarnings(rec.RmaNumber, warnings)

	s.annotateSla(outbound)
	s.annotateSla(ret)

	return &domain.TrackingDetail{
		Outbound: outbound,
		Return:   ret,
	}, nil
}

// annotateSla attaches the breach evaluation to a present leg.
func (s *ReconcileService) annotateSla(leg *domain.ShipmentLeg) {
	if leg == nil || s.targetDays <= 0 {
		return
	}
	result := domain.EvaluateBreach(leg, s.targetDays, s.now())
	leg.Sla = &result
}

// logWarnings surfaces per-record data problems without failing the call.
func (s *ReconcileService) logWarnings(rmaNumber string, warnings []string) {
	for _, w := range warnings {
		s.logger.Warn("Partial RMA tracking data",
			zap.String("rma_number", rmaNumber),
			zap.String("problem", w),
		)
	}
}
