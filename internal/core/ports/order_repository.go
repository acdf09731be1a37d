package ports

import (
	"context"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads are tenant scoped; an order owned by another tenant is reported
// as not found.
type OrderRepository interface {
	// Add persists a new order aggregate, without its lines or events.
	// The orders table carries a unique constraint on offer_id, so a second
	// insert for the same offer fails and the original order stays intact.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddLines persists the aggregate's line snapshot.
	AddLines(ctx context.Context, aggregate *order.Order) error

	// AddEvent appends one audit event for an order of the given tenant.
	AddEvent(ctx context.Context, tenantID kernel.UUID, event order.Event) error

	// Get retrieves an order with its lines by identifier.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// GetByOfferID retrieves the order created from the given offer, if any.
	// Used as the duplicate guard before order creation.
	GetByOfferID(ctx context.Context, tenantID, offerID kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's status with an optimistic guard:
	// the row is updated only while it still holds the expected prior status.
	// A concurrent transition that won the race surfaces as ErrStaleStatus.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// LinkImportCase persists the aggregate's import case and delivery
	// location references. The row is updated only while import_case_id is
	// still unset, keeping the link write-once under concurrency.
	LinkImportCase(ctx context.Context, aggregate *order.Order) error
}
