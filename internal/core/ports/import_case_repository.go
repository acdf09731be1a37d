package ports

import (
	"context"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
)

// ImportCaseRepository defines the persistence contract for import case
// aggregates and their audit trail.
type ImportCaseRepository interface {
	// Add persists a new import case aggregate.
	Add(ctx context.Context, aggregate *importcase.ImportCase) error

	// Get retrieves an import case by identifier within the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*importcase.ImportCase, error)

	// UpdateStatus persists the aggregate's status and timestamps with an
	// optimistic guard: the row is updated only while it still holds the
	// expected prior status. A lost race surfaces as ErrStaleStatus.
	UpdateStatus(ctx context.Context, aggregate *importcase.ImportCase, expected importcase.Status) error

	// AddStatusEvent appends one audit event for a case of the given tenant.
	AddStatusEvent(ctx context.Context, tenantID kernel.UUID, event importcase.StatusEvent) error

	// LinkSupplierImport records that a supplier import batch feeds the case.
	// Linking the same batch to the same case twice is a no-op.
	LinkSupplierImport(ctx context.Context, tenantID, caseID, batchID kernel.UUID) error

	// GetLinkedSupplierImports retrieves the batches linked to a case.
	GetLinkedSupplierImports(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.SupplierImportBatch, error)
}

// SupplierImportRepository defines the persistence contract for supplier
// import batches.
type SupplierImportRepository interface {
	// Add persists a new batch record.
	Add(ctx context.Context, batch importcase.SupplierImportBatch) error

	// Get retrieves a batch by identifier without tenant scoping. Callers
	// compare the batch's tenant against their own to detect cross-tenant
	// attachment attempts.
	Get(ctx context.Context, id kernel.UUID) (importcase.SupplierImportBatch, error)
}
