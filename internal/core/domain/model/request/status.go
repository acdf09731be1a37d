package request

import "winetrade/internal/core/domain/model/statuschart"

// Status is the lifecycle state of a purchase request.
//
// State transitions:
//
//	DRAFT ──> OPEN ──> ACCEPTED ──> CLOSED
//	  │         │ └──────> CLOSED
//	  │         └──> CANCELLED
//	  └──> CANCELLED
//
// CLOSED and CANCELLED are terminal.
type Status string

const (
	// StatusDraft is the initial status: the buyer is still composing the request.
	StatusDraft Status = "DRAFT"

	// StatusOpen means the request is published and suppliers may respond with offers.
	StatusOpen Status = "OPEN"

	// StatusAccepted means an offer against this request was accepted.
	// Set by offer acceptance, not by a direct buyer action.
	StatusAccepted Status = "ACCEPTED"

	// StatusClosed means the request ran its course. Terminal.
	StatusClosed Status = "CLOSED"

	// StatusCancelled means the buyer withdrew the request. Terminal.
	StatusCancelled Status = "CANCELLED"
)

// Kind is the entity kind of requests in transition errors and audit rows.
const Kind = "request"

var chart = statuschart.New(Kind, map[Status][]Status{
	StatusDraft:     {StatusOpen, StatusCancelled},
	StatusOpen:      {StatusAccepted, StatusClosed, StatusCancelled},
	StatusAccepted:  {StatusClosed},
	StatusClosed:    {},
	StatusCancelled: {},
})

// Chart exposes the request transition table.
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

// Validate checks that s is a known request status.
func (s Status) Validate() error {
	if !chart.Contains(s) {
		return chart.Validate(s, s)
	}
	return nil
}

// ValidateTransition checks a prospective request status change against the table.
func ValidateTransition(from, to Status) error {
	return chart.Validate(from, to)
}
