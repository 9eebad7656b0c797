package ports

import (
	"context"
	"errors"

	"rma-reconcile/internal/features/rma/domain"
)

// ErrRmaNotFound is returned by FindByID when no record matches the identifier.
var ErrRmaNotFound = errors.New("rma record not found")

// RmaStore defines the read-only access to RMA records.
// This is a Secondary Port (Driven Port); adapters exist for the Mongo
// collection and for the legacy CRUD HTTP API. The reconciliation engine never
// writes back through this port.
type RmaStore interface {
	// FindAll returns the full RMA corpus in storage order.
	FindAll(ctx context.Context) ([]domain.RmaRecord, error)
	// FindByID returns a single record, or ErrRmaNotFound.
	FindByID(ctx context.Context, id string) (*domain.RmaRecord, error)
}
