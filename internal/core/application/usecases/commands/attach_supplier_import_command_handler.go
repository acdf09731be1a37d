package commands

import (
	"context"

	"winetrade/internal/pkg/errs"
)

// AttachSupplierImportCommandHandler links supplier import batches to import
// cases.
//
// Unlike ordinary tenant-scoped reads, a batch owned by another tenant is
// reported as an explicit tenant mismatch rather than as not found: the
// batch identifier came from the caller's own upload flow, so a mismatch
// here points at a wiring bug worth surfacing, not at a probing request.
type AttachSupplierImportCommandHandler struct {
	uowFactory CaseLinkUoWFactory
}

// NewAttachSupplierImportCommandHandler creates a handler for linking
// batches to cases.
func NewAttachSupplierImportCommandHandler(uowFactory CaseLinkUoWFactory) AttachSupplierImportCommandHandler {
	return AttachSupplierImportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle links the batch to the case. Linking the same batch twice is a
// no-op.
func (h *AttachSupplierImportCommandHandler) Handle(ctx context.Context, cmd AttachSupplierImportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if _, err := uow.ImportCaseRepository().Get(ctx, cmd.TenantID(), cmd.CaseID()); err != nil {
		return err
	}

	batch, err := uow.SupplierImportRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	if !batch.TenantID.IsEqual(cmd.TenantID()) {
		return errs.NewTenantMismatchError("supplier_import_batch", cmd.BatchID().String())
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportCaseRepository().LinkSupplierImport(ctx, cmd.TenantID(), cmd.CaseID(), cmd.BatchID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
