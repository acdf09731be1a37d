package queries

import (
	"context"
	"database/sql"
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetImportCaseQueryHandler retrieves import cases from the database.
type GetImportCaseQueryHandler struct {
	db *gorm.DB
}

// NewGetImportCaseQueryHandler creates a handler for import case reads.
func NewGetImportCaseQueryHandler(db *gorm.DB) GetImportCaseQueryHandler {
	return GetImportCaseQueryHandler{db: db}
}

// Handle retrieves the case joined with the order linked to it. Returns nil
// without error when no case matches within the tenant; cases of other
// tenants are indistinguishable from absent ones.
func (h GetImportCaseQueryHandler) Handle(
	ctx context.Context,
	query GetImportCaseQuery,
) (*GetImportCaseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ic.id,
			ic.status,
			ic.restaurant_id,
			ic.importer_id,
			ic.delivery_location_id,
			ic.supplier_id,
			o.id AS order_id,
			ic.submitted_at,
			ic.approved_at,
			ic.rejected_at,
			ic.cleared_at,
			ic.closed_at
		FROM import_cases ic
		LEFT JOIN orders o ON o.import_case_id = ic.id AND o.tenant_id = ic.tenant_id
		WHERE ic.id = ? AND ic.tenant_id = ?
	`, query.CaseID().Bytes(), query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		id, restaurantID, importerID, locationID uuid.UUID
		status                                   string
		supplierID, orderID                      uuid.NullUUID
		submittedAt, approvedAt, rejectedAt      *time.Time
		clearedAt, closedAt                      *time.Time
	)
	if err = rows.Scan(
		&id, &status, &restaurantID, &importerID, &locationID, &supplierID, &orderID,
		&submittedAt, &approvedAt, &rejectedAt, &clearedAt, &closedAt,
	); err != nil {
		return nil, err
	}

	response := GetImportCaseQueryResponse{
		Status:      importcase.Status(status),
		SubmittedAt: submittedAt,
		ApprovedAt:  approvedAt,
		RejectedAt:  rejectedAt,
		ClearedAt:   clearedAt,
		ClosedAt:    closedAt,
	}
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return nil, err
	}
	if response.ImporterID, err = kernel.UUIDFromBytes(importerID[:]); err != nil {
		return nil, err
	}
	if response.DeliveryLocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
		return nil, err
	}
	if supplierID.Valid {
		sid, sidErr := kernel.UUIDFromBytes(supplierID.UUID[:])
		if sidErr != nil {
			return nil, sidErr
		}
		response.SupplierID = &sid
	}
	if orderID.Valid {
		oid, oidErr := kernel.UUIDFromBytes(orderID.UUID[:])
		if oidErr != nil {
			return nil, oidErr
		}
		response.OrderID = &oid
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}

	if response.Events, err = h.loadStatusEvents(ctx, query); err != nil {
		return nil, err
	}

	return &response, nil
}

func (h GetImportCaseQueryHandler) loadStatusEvents(
	ctx context.Context,
	query GetImportCaseQuery,
) ([]ImportCaseEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, from_status, to_status, note, changed_by, created_at
		FROM import_case_events
		WHERE import_case_id = ? AND tenant_id = ?
		ORDER BY created_at ASC, id ASC
	`, query.CaseID().Bytes(), query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ImportCaseEventResponse
	for rows.Next() {
		var (
			id, changedBy        string
			fromStatus, toStatus sql.NullString
			note                 sql.NullString
			createdAt            time.Time
		)
		if err = rows.Scan(&id, &fromStatus, &toStatus, &note, &changedBy, &createdAt); err != nil {
			return nil, err
		}

		event := ImportCaseEventResponse{
			ID:        id,
			Note:      note.String,
			ChangedBy: changedBy,
			CreatedAt: createdAt,
		}
		if fromStatus.Valid {
			from := importcase.Status(fromStatus.String)
			event.FromStatus = &from
		}
		if toStatus.Valid {
			to := importcase.Status(toStatus.String)
			event.ToStatus = &to
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
