package queries

import (
	"errors"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery lists the audit trail of one order.
type GetOrderEventsQuery struct {
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery creates an audit trail query.
func NewGetOrderEventsQuery(orderID, tenantID kernel.UUID) (GetOrderEventsQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return GetOrderEventsQuery{
		orderID:  orderID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the order whose trail is listed.
func (q GetOrderEventsQuery) OrderID() kernel.UUID { return q.orderID }

// TenantID returns the tenant performing the read.
func (q GetOrderEventsQuery) TenantID() kernel.UUID { return q.tenantID }

// OrderEventResponse is one audit row.
type OrderEventResponse struct {
	ID         string
	Type       order.EventType
	FromStatus *order.Status
	ToStatus   *order.Status
	Note       string
	Metadata   map[string]any
	Actor      string
	CreatedAt  time.Time
}

// GetOrderEventsQueryResponse is the audit trail of one order, oldest first.
type GetOrderEventsQueryResponse struct {
	Events []OrderEventResponse
}
