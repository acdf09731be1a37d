// Package ports defines the persistence and lookup contracts between the
// application core and infrastructure. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for purchase request
// aggregates.
type RequestRepository interface {
	// Add persists a new request aggregate.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by identifier within the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*request.Request, error)
}
