package queries

import (
	"context"
	"time"

	"winetrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLinkedSupplierImportsQueryHandler lists batch attachments of import cases.
type GetLinkedSupplierImportsQueryHandler struct {
	db *gorm.DB
}

// NewGetLinkedSupplierImportsQueryHandler creates a handler for attachment reads.
func NewGetLinkedSupplierImportsQueryHandler(db *gorm.DB) GetLinkedSupplierImportsQueryHandler {
	return GetLinkedSupplierImportsQueryHandler{db: db}
}

// Handle lists the batches attached to the case, newest link first. A case
// without attachments, an absent case and a case of another tenant all yield
// an empty listing.
func (h GetLinkedSupplierImportsQueryHandler) Handle(
	ctx context.Context,
	query GetLinkedSupplierImportsQuery,
) (GetLinkedSupplierImportsQueryResponse, error) {
	var response GetLinkedSupplierImportsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT si.id, si.supplier_id, si.source, si.row_count, si.created_at, l.created_at AS linked_at
		FROM import_case_supplier_imports l
		JOIN supplier_imports si ON si.id = l.supplier_import_id
		WHERE l.import_case_id = ? AND l.tenant_id = ?
		ORDER BY l.created_at DESC
	`, query.CaseID().Bytes(), query.TenantID().Bytes()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, supplierID      uuid.UUID
			source              string
			rowCount            int
			createdAt, linkedAt time.Time
		)
		if err = rows.Scan(&id, &supplierID, &source, &rowCount, &createdAt, &linkedAt); err != nil {
			return response, err
		}

		item := SupplierImportResponse{
			Source:    source,
			RowCount:  rowCount,
			CreatedAt: createdAt,
			LinkedAt:  linkedAt,
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return response, err
		}
		if item.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return response, err
		}
		response.Imports = append(response.Imports, item)
	}

	return response, rows.Err()
}
