package order

import (
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/ids"
)

// EventType classifies the audit rows written against an order.
type EventType string

const (
	EventOrderCreated      EventType = "ORDER_CREATED"
	EventStatusChanged     EventType = "STATUS_CHANGED"
	EventImportCaseLinked  EventType = "IMPORT_CASE_LINKED"
	EventSupplierConfirmed EventType = "SUPPLIER_CONFIRMED"
	EventSupplierDeclined  EventType = "SUPPLIER_DECLINED"
)

// Event is one append-only audit row for an order. Events are advisory, not
// transactional: a failed event write is logged and counted but never rolls
// back the state change it describes. Rows are never updated or deleted.
//
// FromStatus and ToStatus are nil for non-status events such as
// IMPORT_CASE_LINKED.
type Event struct {
	ID         string
	OrderID    kernel.UUID
	Type       EventType
	FromStatus *Status
	ToStatus   *Status
	Note       string
	Metadata   map[string]any
	Actor      string
	CreatedAt  time.Time
}

// NewEvent creates an audit event with a sortable identifier and the
// current timestamp. Callers fill the optional fields directly.
func NewEvent(orderID kernel.UUID, eventType EventType, actor string) Event {
	return Event{
		ID:        ids.New(),
		OrderID:   orderID,
		Type:      eventType,
		Metadata:  map[string]any{},
		Actor:     actor,
		CreatedAt: time.Now().UTC(),
	}
}

// WithTransition records the status change the event describes.
func (e Event) WithTransition(from, to Status) Event {
	e.FromStatus = &from
	e.ToStatus = &to
	return e
}

// WithNote attaches a free-text note.
func (e Event) WithNote(note string) Event {
	e.Note = note
	return e
}

// WithMetadata attaches one structured metadata entry.
func (e Event) WithMetadata(key string, value any) Event {
	meta := make(map[string]any, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	e.Metadata = meta
	return e
}
