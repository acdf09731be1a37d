// Package queries contains read-only operations over the persisted workflow
// state. Query handlers run raw SQL against the database directly, bypassing
// the aggregates, and return flat response structs shaped for their callers.
package queries

import (
	"errors"
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrGetImportCaseQueryIsNotConstructed = errors.New(
	"GetImportCaseQuery must be created via NewGetImportCaseQuery constructor",
)

// GetImportCaseQuery retrieves one import case with its timestamps, its
// status event trail and the order linked to it, if any.
type GetImportCaseQuery struct {
	caseID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetImportCaseQuery creates a query for one import case.
func NewGetImportCaseQuery(caseID, tenantID kernel.UUID) (GetImportCaseQuery, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetImportCaseQuery{}, err
	}

	return GetImportCaseQuery{
		caseID:   caseID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetImportCaseQuery) Validate() error {
	return q.guard.Validate(ErrGetImportCaseQueryIsNotConstructed)
}

// CaseID returns the case to retrieve.
func (q GetImportCaseQuery) CaseID() kernel.UUID { return q.caseID }

// TenantID returns the tenant performing the read.
func (q GetImportCaseQuery) TenantID() kernel.UUID { return q.tenantID }

// ImportCaseEventResponse is one status audit row of a case.
type ImportCaseEventResponse struct {
	ID         string
	FromStatus *importcase.Status
	ToStatus   *importcase.Status
	Note       string
	ChangedBy  string
	CreatedAt  time.Time
}

// GetImportCaseQueryResponse is the flat view of one import case.
type GetImportCaseQueryResponse struct {
	ID                 kernel.UUID
	Status             importcase.Status
	RestaurantID       kernel.UUID
	ImporterID         kernel.UUID
	DeliveryLocationID kernel.UUID
	SupplierID         *kernel.UUID
	OrderID            *kernel.UUID
	SubmittedAt        *time.Time
	ApprovedAt         *time.Time
	RejectedAt         *time.Time
	ClearedAt          *time.Time
	ClosedAt           *time.Time
	Events             []ImportCaseEventResponse
}
