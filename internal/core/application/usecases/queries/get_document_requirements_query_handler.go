package queries

import (
	"context"

	"winetrade/internal/core/domain/services/docscheck"

	"gorm.io/gorm"
)

// GetDocumentRequirementsQueryHandler builds document reports for import cases.
type GetDocumentRequirementsQueryHandler struct {
	db      *gorm.DB
	checker docscheck.Checker
}

// NewGetDocumentRequirementsQueryHandler creates a handler for document
// requirement reads.
func NewGetDocumentRequirementsQueryHandler(db *gorm.DB, checker docscheck.Checker) GetDocumentRequirementsQueryHandler {
	return GetDocumentRequirementsQueryHandler{db: db, checker: checker}
}

// Handle reports the documents a status requires and how the case's
// verification records stand against them. Without an explicit target the
// case's current status is used. Returns nil without error when no case
// matches within the tenant. The catalog is read per tenant, so the report
// is empty for a tenant without document types.
func (h GetDocumentRequirementsQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentRequirementsQuery,
) (*GetDocumentRequirementsQueryResponse, error) {
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

	target := query.Target()
	if target == "" {
		target = *current
	}

	types, err := loadDocumentTypes(ctx, h.db, query.TenantID())
	if err != nil {
		return nil, err
	}
	verifications, err := loadDocumentVerifications(ctx, h.db, query.TenantID(), query.CaseID())
	if err != nil {
		return nil, err
	}

	report := h.checker.Requirements(target, types, verifications)
	return &GetDocumentRequirementsQueryResponse{
		Target:               target,
		All:                  report.All,
		Required:             report.Required,
		Optional:             report.Optional,
		Missing:              report.Missing,
		Pending:              report.Pending,
		AllRequiredSatisfied: report.AllRequiredSatisfied(),
		HasPendingDocuments:  report.HasPendingDocuments(),
	}, nil
}
