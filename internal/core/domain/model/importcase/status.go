package importcase

import "winetrade/internal/core/domain/model/statuschart"

// Status is the lifecycle state of a customs import case.
//
// State transitions:
//
//	NOT_REGISTERED ──> SUBMITTED ──┬──> DOCS_PENDING ──> IN_TRANSIT ──> CLEARED ──> APPROVED ──> CLOSED
//	                      ▲        ├──> APPROVED                                       ▲
//	                      │        └──> REJECTED ──┘ (resubmission)
//	                      └────────────────┘
//
// DOCS_PENDING may also move straight to APPROVED or REJECTED when the
// authorities decide without physical transit. CLOSED is terminal;
// REJECTED allows resubmission.
type Status string

const (
	// StatusNotRegistered is the initial status: the case exists but has not
	// been filed with the customs authorities.
	StatusNotRegistered Status = "NOT_REGISTERED"

	// StatusSubmitted means the case was filed and awaits a decision.
	StatusSubmitted Status = "SUBMITTED"

	// StatusDocsPending means the authorities requested additional documents.
	StatusDocsPending Status = "DOCS_PENDING"

	// StatusInTransit means goods are moving under the case.
	StatusInTransit Status = "IN_TRANSIT"

	// StatusCleared means goods passed the border.
	StatusCleared Status = "CLEARED"

	// StatusApproved means the case is approved; shipment of the linked
	// order is gated on this status.
	StatusApproved Status = "APPROVED"

	// StatusRejected means the authorities declined the case.
	// Resubmission is allowed.
	StatusRejected Status = "REJECTED"

	// StatusClosed means the case is archived. Terminal.
	StatusClosed Status = "CLOSED"
)

// Kind is the entity kind of import cases in transition errors and audit rows.
const Kind = "import_case"

var chart = statuschart.New(Kind, map[Status][]Status{
	StatusNotRegistered: {StatusSubmitted},
	StatusSubmitted:     {StatusDocsPending, StatusApproved, StatusRejected},
	StatusDocsPending:   {StatusInTransit, StatusApproved, StatusRejected},
	StatusInTransit:     {StatusCleared},
	StatusCleared:       {StatusApproved},
	StatusApproved:      {StatusClosed},
	StatusRejected:      {StatusSubmitted},
	StatusClosed:        {},
})

// Chart exposes the import case transition table.
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

// Validate checks that s is a known import case status.
func (s Status) Validate() error {
	if !chart.Contains(s) {
		return chart.Validate(s, s)
	}
	return nil
}

// ValidateTransition checks a prospective import case status change against the table.
func ValidateTransition(from, to Status) error {
	return chart.Validate(from, to)
}
