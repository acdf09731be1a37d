package queries

import (
	"errors"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrGetLinkedSupplierImportsQueryIsNotConstructed = errors.New(
	"GetLinkedSupplierImportsQuery must be created via NewGetLinkedSupplierImportsQuery constructor",
)

// GetLinkedSupplierImportsQuery lists the supplier import batches attached to
// an import case.
type GetLinkedSupplierImportsQuery struct {
	caseID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLinkedSupplierImportsQuery creates a linked batch listing query.
func NewGetLinkedSupplierImportsQuery(caseID, tenantID kernel.UUID) (GetLinkedSupplierImportsQuery, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetLinkedSupplierImportsQuery{}, err
	}

	return GetLinkedSupplierImportsQuery{
		caseID:   caseID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLinkedSupplierImportsQuery) Validate() error {
	return q.guard.Validate(ErrGetLinkedSupplierImportsQueryIsNotConstructed)
}

// CaseID returns the case whose attachments are listed.
func (q GetLinkedSupplierImportsQuery) CaseID() kernel.UUID { return q.caseID }

// TenantID returns the tenant performing the read.
func (q GetLinkedSupplierImportsQuery) TenantID() kernel.UUID { return q.tenantID }

// SupplierImportResponse is one attached batch.
type SupplierImportResponse struct {
	ID         kernel.UUID
	SupplierID kernel.UUID
	Source     string
	RowCount   int
	CreatedAt  time.Time
	LinkedAt   time.Time
}

// GetLinkedSupplierImportsQueryResponse lists the batches attached to one case.
type GetLinkedSupplierImportsQueryResponse struct {
	Imports []SupplierImportResponse
}
