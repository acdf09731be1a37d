// Package docscheck provides the document requirement checker: a domain
// service that decides whether an import case holds the verified documents a
// target customs status demands.
//
// Requirement rules live on the document types themselves (each type names
// the statuses it is required for), so the checker carries no configuration.
// It coordinates the transition table of the import case with the tenant's
// document catalog, which spans two aggregates and therefore does not belong
// to either.
package docscheck

import (
	"sort"

	"winetrade/internal/core/domain/model/importcase"
)

// Report describes the document situation of an import case against one
// target status.
type Report struct {
	// All lists every document code in the tenant's catalog.
	All []string
	// Required lists the codes the target status demands.
	Required []string
	// Optional lists catalog codes the target status does not demand.
	Optional []string
	// Missing lists required codes with no verification record at all.
	Missing []string
	// Pending lists required codes whose verification is still PENDING.
	Pending []string
}

// AllRequiredSatisfied reports whether every required document is verified.
func (r Report) AllRequiredSatisfied() bool {
	return len(r.Missing) == 0 && len(r.Pending) == 0
}

// HasPendingDocuments reports whether any required document awaits verification.
func (r Report) HasPendingDocuments() bool {
	return len(r.Pending) > 0
}

// Decision is the outcome of a document-gated transition check.
type Decision struct {
	CanTransition bool
	// Reason explains a negative decision. Empty when CanTransition is true.
	Reason string
	// MissingDocs lists required document codes that block the transition,
	// both absent and pending ones.
	MissingDocs []string
}

// Checker evaluates document requirements for import case transitions.
type Checker struct{}

// NewChecker creates a document requirement checker.
func NewChecker() Checker {
	return Checker{}
}

// Requirements builds the document report for a target status given the
// tenant's document catalog and the case's verification records.
func (c Checker) Requirements(
	target importcase.Status,
	types []importcase.DocumentType,
	verifications []importcase.DocumentVerification,
) Report {
	verified := make(map[string]importcase.VerificationState, len(verifications))
	for _, v := range verifications {
		verified[v.DocumentCode] = v.State
	}

	var report Report
	for _, dt := range types {
		report.All = append(report.All, dt.Code)
		if !dt.RequiredFor(target) {
			report.Optional = append(report.Optional, dt.Code)
			continue
		}
		report.Required = append(report.Required, dt.Code)

		state, ok := verified[dt.Code]
		switch {
		case !ok:
			report.Missing = append(report.Missing, dt.Code)
		case state != importcase.VerificationVerified:
			report.Pending = append(report.Pending, dt.Code)
		}
	}

	sort.Strings(report.All)
	sort.Strings(report.Required)
	sort.Strings(report.Optional)
	sort.Strings(report.Missing)
	sort.Strings(report.Pending)
	return report
}

// CanTransition decides whether the case may move from current to target.
// The transition table is checked first; a chart-invalid move is rejected
// before any document is looked at. A chart-valid move is then gated on the
// documents the target status requires.
func (c Checker) CanTransition(
	current, target importcase.Status,
	types []importcase.DocumentType,
	verifications []importcase.DocumentVerification,
) Decision {
	if err := importcase.ValidateTransition(current, target); err != nil {
		return Decision{Reason: err.Error()}
	}

	report := c.Requirements(target, types, verifications)
	if report.AllRequiredSatisfied() {
		return Decision{CanTransition: true}
	}

	blocking := append(append([]string{}, report.Missing...), report.Pending...)
	sort.Strings(blocking)
	return Decision{
		Reason:      "required documents are not verified",
		MissingDocs: blocking,
	}
}
