package importcase

import (
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/ids"
)

// StatusEvent is one append-only audit row for an import case status change.
// Like order events, these are advisory: a failed write is logged, never
// raised, and rows are never updated or deleted.
type StatusEvent struct {
	ID         string
	ImportID   kernel.UUID
	FromStatus *Status
	ToStatus   *Status
	Note       string
	ChangedBy  string
	CreatedAt  time.Time
}

// NewStatusEvent creates a status event with a sortable identifier and the
// current timestamp.
func NewStatusEvent(importID kernel.UUID, from, to Status, changedBy, note string) StatusEvent {
	return StatusEvent{
		ID:         ids.New(),
		ImportID:   importID,
		FromStatus: &from,
		ToStatus:   &to,
		Note:       note,
		ChangedBy:  changedBy,
		CreatedAt:  time.Now().UTC(),
	}
}
