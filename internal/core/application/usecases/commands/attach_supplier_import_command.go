package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrAttachSupplierImportCommandIsNotConstructed = errors.New(
	"AttachSupplierImportCommand must be created via NewAttachSupplierImportCommand constructor",
)

// AttachSupplierImportCommand links a supplier import batch to an import
// case, recording which delivery rows feed the customs filing.
type AttachSupplierImportCommand struct { //nolint:recvcheck //using for validation
	caseID   kernel.UUID
	batchID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachSupplierImportCommand creates a command to link a batch to a case.
func NewAttachSupplierImportCommand(caseID, batchID, tenantID kernel.UUID) (AttachSupplierImportCommand, error) {
	if err := errors.Join(
		caseID.Validate(),
		batchID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return AttachSupplierImportCommand{}, err
	}

	return AttachSupplierImportCommand{
		caseID:   caseID,
		batchID:  batchID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachSupplierImportCommand) Validate() error {
	return c.guard.Validate(ErrAttachSupplierImportCommandIsNotConstructed)
}

// CaseID returns the case the batch is linked to.
func (c AttachSupplierImportCommand) CaseID() kernel.UUID { return c.caseID }

// BatchID returns the supplier import batch to link.
func (c AttachSupplierImportCommand) BatchID() kernel.UUID { return c.batchID }

// TenantID returns the tenant performing the link.
func (c AttachSupplierImportCommand) TenantID() kernel.UUID { return c.tenantID }
