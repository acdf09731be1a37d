package commands

import (
	"context"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/ports"
)

// CreateImportCaseCommandHandler handles manual import case registration.
type CreateImportCaseCommandHandler struct {
	uowFactory ImportCaseUoWFactory
	locations  ports.DeliveryLocationProvider
}

// NewCreateImportCaseCommandHandler creates a handler for manual import case
// registration.
func NewCreateImportCaseCommandHandler(
	uowFactory ImportCaseUoWFactory,
	locations ports.DeliveryLocationProvider,
) CreateImportCaseCommandHandler {
	return CreateImportCaseCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle persists a new import case in NOT_REGISTERED status. The chosen
// delivery location must exist in the tenant and hold APPROVED customs
// status.
func (h *CreateImportCaseCommandHandler) Handle(ctx context.Context, cmd CreateImportCaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loc, err := h.locations.Get(ctx, cmd.TenantID(), cmd.DeliveryLocationID())
	if err != nil {
		return err
	}
	if !loc.IsApproved() {
		return notApprovedLocationError(cmd.DeliveryLocationID())
	}

	aggregate, err := importcase.NewImportCase(
		cmd.CaseID(), cmd.TenantID(), cmd.RestaurantID(), cmd.ImporterID(),
		cmd.DeliveryLocationID(), cmd.SupplierID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportCaseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
