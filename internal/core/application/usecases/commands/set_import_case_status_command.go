package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrSetImportCaseStatusCommandIsNotConstructed = errors.New(
	"SetImportCaseStatusCommand must be created via NewSetImportCaseStatusCommand constructor",
)

// SetImportCaseStatusCommand moves an import case to a target lifecycle
// status. Besides the transition table, the move is gated on the documents
// the target status requires being verified.
type SetImportCaseStatusCommand struct { //nolint:recvcheck //using for validation
	caseID    kernel.UUID
	tenantID  kernel.UUID
	target    importcase.Status
	changedBy string
	note      string

	guard guard.ConstructorGuard
}

// NewSetImportCaseStatusCommand creates a command to change a case's status.
// The note is optional free text recorded on the audit event.
func NewSetImportCaseStatusCommand(
	caseID, tenantID kernel.UUID,
	target importcase.Status,
	changedBy, note string,
) (SetImportCaseStatusCommand, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
		target.Validate(),
	); err != nil {
		return SetImportCaseStatusCommand{}, err
	}

	return SetImportCaseStatusCommand{
		caseID:    caseID,
		tenantID:  tenantID,
		target:    target,
		changedBy: changedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetImportCaseStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetImportCaseStatusCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to change.
func (c SetImportCaseStatusCommand) CaseID() kernel.UUID { return c.caseID }

// TenantID returns the owning tenant.
func (c SetImportCaseStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// Target returns the requested lifecycle status.
func (c SetImportCaseStatusCommand) Target() importcase.Status { return c.target }

// ChangedBy returns who requested the change, for the audit trail.
func (c SetImportCaseStatusCommand) ChangedBy() string { return c.changedBy }

// Note returns the optional free-text note for the audit event.
func (c SetImportCaseStatusCommand) Note() string { return c.note }

// SetImportCaseStatusResult reports the committed transition, the moves open
// from the new status, and any follow-up steps that failed after the change
// committed.
type SetImportCaseStatusResult struct {
	From        importcase.Status
	To          importcase.Status
	AllowedNext []importcase.Status
	Degraded    []string
}
