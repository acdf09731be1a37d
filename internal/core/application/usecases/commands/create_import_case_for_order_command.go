package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrCreateImportCaseForOrderCommandIsNotConstructed = errors.New(
	"CreateImportCaseForOrderCommand must be created via NewCreateImportCaseForOrderCommand constructor",
)

// CreateImportCaseForOrderCommand creates the customs import case for an
// existing order and links the two. The delivery location is resolved
// automatically to the restaurant's newest approved location.
type CreateImportCaseForOrderCommand struct { //nolint:recvcheck //using for validation
	caseID   kernel.UUID
	orderID  kernel.UUID
	tenantID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewCreateImportCaseForOrderCommand creates a command to open an import
// case for an order. The actor is recorded on the order's audit event.
func NewCreateImportCaseForOrderCommand(caseID, orderID, tenantID kernel.UUID, actor string) (CreateImportCaseForOrderCommand, error) {
	if err := errors.Join(
		caseID.Validate(),
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return CreateImportCaseForOrderCommand{}, err
	}

	return CreateImportCaseForOrderCommand{
		caseID:   caseID,
		orderID:  orderID,
		tenantID: tenantID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateImportCaseForOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateImportCaseForOrderCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to create.
func (c CreateImportCaseForOrderCommand) CaseID() kernel.UUID { return c.caseID }

// OrderID returns the order the case is opened for.
func (c CreateImportCaseForOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant.
func (c CreateImportCaseForOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// Actor returns who requested the case, for the audit trail.
func (c CreateImportCaseForOrderCommand) Actor() string { return c.actor }

// CreateImportCaseForOrderResult reports what the workflow achieved.
type CreateImportCaseForOrderResult struct {
	ImportCaseID kernel.UUID

	// Degraded lists best-effort steps that failed after the case was
	// created and linked. The primary outcome stands regardless.
	Degraded []string
}
