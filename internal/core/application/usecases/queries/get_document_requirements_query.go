package queries

import (
	"errors"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrGetDocumentRequirementsQueryIsNotConstructed = errors.New(
	"GetDocumentRequirementsQuery must be created via NewGetDocumentRequirementsQuery constructor",
)

// GetDocumentRequirementsQuery reports the document situation of an import
// case: which documents a status requires, which are verified, which are
// missing or still pending. The target status is optional; when absent the
// report is built against the case's current status.
type GetDocumentRequirementsQuery struct {
	caseID   kernel.UUID
	tenantID kernel.UUID
	target   importcase.Status

	guard guard.ConstructorGuard
}

// NewGetDocumentRequirementsQuery creates a document requirement query.
// An empty target means "the case's current status".
func NewGetDocumentRequirementsQuery(caseID, tenantID kernel.UUID, target importcase.Status) (GetDocumentRequirementsQuery, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetDocumentRequirementsQuery{}, err
	}
	if target != "" {
		if err := target.Validate(); err != nil {
			return GetDocumentRequirementsQuery{}, err
		}
	}

	return GetDocumentRequirementsQuery{
		caseID:   caseID,
		tenantID: tenantID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentRequirementsQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentRequirementsQueryIsNotConstructed)
}

// CaseID returns the case whose documents are inspected.
func (q GetDocumentRequirementsQuery) CaseID() kernel.UUID { return q.caseID }

// TenantID returns the tenant performing the read.
func (q GetDocumentRequirementsQuery) TenantID() kernel.UUID { return q.tenantID }

// Target returns the status the documents are checked against. Empty means
// the case's current status.
func (q GetDocumentRequirementsQuery) Target() importcase.Status { return q.target }

// GetDocumentRequirementsQueryResponse is the document report for one case
// and target status.
type GetDocumentRequirementsQueryResponse struct {
	Target               importcase.Status
	All                  []string
	Required             []string
	Optional             []string
	Missing              []string
	Pending              []string
	AllRequiredSatisfied bool
	HasPendingDocuments  bool
}
