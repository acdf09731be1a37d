package order

import "winetrade/internal/core/domain/model/statuschart"

// Status is the lifecycle state of a confirmed trade.
//
// State transitions:
//
//	PENDING_SUPPLIER_CONFIRMATION ──> CONFIRMED ──> IN_FULFILLMENT ──> SHIPPED ──> DELIVERED
//	         │                            │               │               │
//	         └────────────────────> CANCELLED <───────────┴───────────────┘
//
// DELIVERED and CANCELLED are terminal; CANCELLED is reachable from every
// non-terminal state. There is one canonical table for all orders:
// PENDING_SUPPLIER_CONFIRMATION is a first-class state that only
// domestic-importer-sourced orders ever start in, while EU-sourced orders
// start at CONFIRMED and never visit it.
type Status string

const (
	// StatusPendingSupplierConfirmation means the originating supplier must
	// explicitly confirm it can fulfill the order. Initial status for orders
	// sourced from domestic importers.
	StatusPendingSupplierConfirmation Status = "PENDING_SUPPLIER_CONFIRMATION"

	// StatusConfirmed means fulfillment may begin. Initial status for
	// EU-sourced orders, where the importer-of-record drives fulfillment.
	StatusConfirmed Status = "CONFIRMED"

	// StatusInFulfillment means goods are being picked and prepared.
	StatusInFulfillment Status = "IN_FULFILLMENT"

	// StatusShipped means goods left the supplier. For orders with a linked
	// import case, shipment additionally requires the case to be APPROVED;
	// that cross-entity gate lives in the orchestrator, not in this table.
	StatusShipped Status = "SHIPPED"

	// StatusDelivered means goods arrived at the restaurant. Terminal.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled means the trade was abandoned. Terminal.
	StatusCancelled Status = "CANCELLED"
)

// Kind is the entity kind of orders in transition errors and audit rows.
const Kind = "order"

var chart = statuschart.New(Kind, map[Status][]Status{
	StatusPendingSupplierConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:                   {StatusInFulfillment, StatusCancelled},
	StatusInFulfillment:               {StatusShipped, StatusCancelled},
	StatusShipped:                     {StatusDelivered, StatusCancelled},
	StatusDelivered:                   {},
	StatusCancelled:                   {},
})

// Chart exposes the order transition table.
func Chart() statuschart.Chart[Status] {
	return chart
}

// AllowedNext returns the statuses reachable from s.
func (s Status) AllowedNext() []Status {
	return chart.AllowedNext(s)
}

// IsTerminal reports whether s allows no further transitions.
func (s Status) IsTerminal() bool {
	return chart.IsTerminal(s)
}

// Validate checks that s is a known order status.
func (s Status) Validate() error {
	if !chart.Contains(s) {
		return chart.Validate(s, s)
	}
	return nil
}

// ValidateTransition checks a prospective order status change against the table.
func ValidateTransition(from, to Status) error {
	return chart.Validate(from, to)
}
