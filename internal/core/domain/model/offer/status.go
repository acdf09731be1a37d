package offer

import "winetrade/internal/core/domain/model/statuschart"

// Status is the lifecycle state of a supplier offer.
//
// State transitions:
//
//	DRAFT ──> SENT ──> VIEWED ──┬──> ACCEPTED
//	             │        │     ├──> REJECTED
//	             │        │     └──> EXPIRED
//	             └── ACCEPTED / REJECTED / EXPIRED
//
// ACCEPTED, REJECTED and EXPIRED are terminal. An accepted offer is
// immutable: no status-changing call on it can ever succeed again.
type Status string

const (
	// StatusDraft is the initial status: the supplier is still pricing the offer.
	StatusDraft Status = "DRAFT"

	// StatusSent means the offer was delivered to the buyer.
	StatusSent Status = "SENT"

	// StatusViewed means the buyer opened the offer.
	StatusViewed Status = "VIEWED"

	// StatusAccepted means the buyer accepted the offer. Terminal; acceptance
	// is the trigger that spawns an order.
	StatusAccepted Status = "ACCEPTED"

	// StatusRejected means the buyer declined the offer. Terminal.
	StatusRejected Status = "REJECTED"

	// StatusExpired means the offer passed its validity window unanswered. Terminal.
	StatusExpired Status = "EXPIRED"
)

// Kind is the entity kind of offers in transition errors and audit rows.
const Kind = "offer"

var chart = statuschart.New(Kind, map[Status][]Status{
	StatusDraft:    {StatusSent},
	StatusSent:     {StatusViewed, StatusAccepted, StatusRejected, StatusExpired},
	StatusViewed:   {StatusAccepted, StatusRejected, StatusExpired},
	StatusAccepted: {},
	StatusRejected: {},
	StatusExpired:  {},
})

// Chart exposes the offer transition table.
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

// Validate checks that s is a known offer status.
func (s Status) Validate() error {
	if !chart.Contains(s) {
		return chart.Validate(s, s)
	}
	return nil
}

// ValidateTransition checks a prospective offer status change against the table.
func ValidateTransition(from, to Status) error {
	return chart.Validate(from, to)
}
