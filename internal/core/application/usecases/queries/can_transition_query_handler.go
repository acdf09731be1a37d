package queries

import (
	"context"

	"winetrade/internal/core/domain/services/docscheck"

	"gorm.io/gorm"
)

// CanTransitionQueryHandler evaluates transition feasibility for import cases.
type CanTransitionQueryHandler struct {
	db      *gorm.DB
	checker docscheck.Checker
}

// NewCanTransitionQueryHandler creates a handler for transition probes.
func NewCanTransitionQueryHandler(db *gorm.DB, checker docscheck.Checker) CanTransitionQueryHandler {
	return CanTransitionQueryHandler{db: db, checker: checker}
}

// Handle probes whether the case may move to the target status. The verdict
// mirrors the status command: the transition table is consulted first, then
// the documents the target status requires. Returns nil without error when no
// case matches within the tenant.
func (h CanTransitionQueryHandler) Handle(
	ctx context.Context,
	query CanTransitionQuery,
) (*CanTransitionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	current, err := loadCaseStatus(ctx, h.db, query.TenantID(), query.CaseID())
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	types, err := loadDocumentTypes(ctx, h.db, query.TenantID())
	if err != nil {
		return nil, err
	}
	verifications, err := loadDocumentVerifications(ctx, h.db, query.TenantID(), query.CaseID())
	if err != nil {
		return nil, err
	}

	decision := h.checker.CanTransition(*current, query.Target(), types, verifications)
	return &CanTransitionQueryResponse{
		Current:       *current,
		Target:        query.Target(),
		CanTransition: decision.CanTransition,
		Reason:        decision.Reason,
		MissingDocs:   decision.MissingDocs,
	}, nil
}
