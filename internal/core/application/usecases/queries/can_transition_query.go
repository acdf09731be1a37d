package queries

import (
	"errors"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrCanTransitionQueryIsNotConstructed = errors.New(
	"CanTransitionQuery must be created via NewCanTransitionQuery constructor",
)

// CanTransitionQuery asks whether an import case may move to a target status
// without attempting the move: the transition table and the document gate are
// both evaluated, exactly as the status command would.
type CanTransitionQuery struct {
	caseID   kernel.UUID
	tenantID kernel.UUID
	target   importcase.Status

	guard guard.ConstructorGuard
}

// NewCanTransitionQuery creates a transition feasibility query.
func NewCanTransitionQuery(caseID, tenantID kernel.UUID, target importcase.Status) (CanTransitionQuery, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
		target.Validate(),
	); err != nil {
		return CanTransitionQuery{}, err
	}

	return CanTransitionQuery{
		caseID:   caseID,
		tenantID: tenantID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanTransitionQuery) Validate() error {
	return q.guard.Validate(ErrCanTransitionQueryIsNotConstructed)
}

// CaseID returns the case whose transition is probed.
func (q CanTransitionQuery) CaseID() kernel.UUID { return q.caseID }

// TenantID returns the tenant performing the read.
func (q CanTransitionQuery) TenantID() kernel.UUID { return q.tenantID }

// Target returns the status probed for.
func (q CanTransitionQuery) Target() importcase.Status { return q.target }

// CanTransitionQueryResponse is the feasibility verdict for one probed move.
type CanTransitionQueryResponse struct {
	Current       importcase.Status
	Target        importcase.Status
	CanTransition bool
	// Reason explains a negative verdict. Empty when CanTransition is true.
	Reason string
	// MissingDocs lists required document codes blocking the move.
	MissingDocs []string
}
