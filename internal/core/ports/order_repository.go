package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order records.
// Records are document-shaped and keyed by the caller-supplied external id.
type OrderRepository interface {
	// Add persists a new order record.
	// This is an insert, not an upsert: a second call with the same external
	// id creates a duplicate record. The store does not enforce uniqueness
	// of the natural key.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus unconditionally overwrites the status of the records with
	// the given external id. No existence check is performed; updating an
	// unknown id is a silent no-op.
	UpdateStatus(ctx context.Context, externalID string, status order.Status) error

	// Get retrieves the order with the given external id.
	// When duplicate records share the id, the oldest record wins.
	Get(ctx context.Context, externalID string) (*order.Order, error)

	// GetAllInStatuses retrieves all orders whose status is one of the
	// supplied values. Used by the status reconciliation job to find orders
	// awaiting a definitive provider status.
	GetAllInStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
