package importcase

import (
	"time"

	"winetrade/internal/core/domain/model/kernel"
)

// SupplierImportBatch is an externally ingested supplier data batch
// (for example a product catalog upload) that operators attach to import
// cases as supporting material. The ingestion itself happens outside the
// orchestration core; only the attachment link is managed here, and the
// tenant of both sides must match before a link is created.
type SupplierImportBatch struct {
	ID         kernel.UUID
	TenantID   kernel.UUID
	SupplierID kernel.UUID
	Source     string
	RowCount   int
	CreatedAt  time.Time
}
