package ports

import (
	"context"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate with its lines.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer with its lines by identifier within the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*offer.Offer, error)

	// UpdateStatus persists the aggregate's status with an optimistic guard:
	// the row is updated only while it still holds the expected prior status.
	// A concurrent transition that won the race surfaces as ErrStaleStatus.
	UpdateStatus(ctx context.Context, aggregate *offer.Offer, expected offer.Status) error

	// ListExpired retrieves offers across all tenants whose validity deadline
	// passed before now and whose status still allows expiry. Used by the
	// offer expiry job.
	ListExpired(ctx context.Context, now time.Time) ([]*offer.Offer, error)
}
