package ports

import (
	"context"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/location"
	"winetrade/internal/core/domain/model/supplier"
)

// SupplierProvider looks up supplier master data. Suppliers are maintained
// outside the orchestration core and consumed read-only here.
type SupplierProvider interface {
	// Get retrieves a supplier by identifier within the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (supplier.Supplier, error)
}

// DeliveryLocationProvider looks up customs delivery locations of a
// restaurant.
type DeliveryLocationProvider interface {
	// Get retrieves a location by identifier within the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (location.Location, error)

	// NewestApproved retrieves the most recently created location of the
	// restaurant with APPROVED customs status. Returns ErrObjectNotFound
	// when the restaurant has no approved location.
	NewestApproved(ctx context.Context, tenantID, restaurantID kernel.UUID) (location.Location, error)
}

// DocumentProvider looks up the tenant's customs document catalog and the
// verification records of a case.
type DocumentProvider interface {
	// Types retrieves the tenant's document type catalog.
	Types(ctx context.Context, tenantID kernel.UUID) ([]importcase.DocumentType, error)

	// Verifications retrieves the document verification records of a case.
	Verifications(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.DocumentVerification, error)
}
