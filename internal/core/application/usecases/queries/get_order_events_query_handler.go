package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"winetrade/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler retrieves order audit trails from the database.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for audit trail reads.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle lists the audit rows of the order in creation order. The event
// identifiers sort lexicographically by creation time, so they break ties
// between rows stamped within the same instant.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) (GetOrderEventsQueryResponse, error) {
	var response GetOrderEventsQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, event_type, from_status, to_status, note, metadata, actor, created_at
		FROM order_events
		WHERE order_id = ? AND tenant_id = ?
		ORDER BY created_at ASC, id ASC
	`, query.OrderID().Bytes(), query.TenantID().Bytes()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, eventType, actor string
			fromStatus, toStatus sql.NullString
			note                 sql.NullString
			metadata             []byte
			createdAt            time.Time
		)
		if err = rows.Scan(&id, &eventType, &fromStatus, &toStatus, &note, &metadata, &actor, &createdAt); err != nil {
			return response, err
		}

		event := OrderEventResponse{
			ID:        id,
			Type:      order.EventType(eventType),
			Note:      note.String,
			Actor:     actor,
			CreatedAt: createdAt,
		}
		if fromStatus.Valid {
			from := order.Status(fromStatus.String)
			event.FromStatus = &from
		}
		if toStatus.Valid {
			to := order.Status(toStatus.String)
			event.ToStatus = &to
		}
		if len(metadata) > 0 {
			if err = json.Unmarshal(metadata, &event.Metadata); err != nil {
				return response, fmt.Errorf("order event %s holds malformed metadata: %w", id, err)
			}
		}
		response.Events = append(response.Events, event)
	}

	return response, rows.Err()
}
