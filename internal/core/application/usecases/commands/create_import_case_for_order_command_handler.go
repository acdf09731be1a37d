package commands

import (
	"context"
	"errors"
	"fmt"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/ports"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// CreateImportCaseForOrderCommandHandler opens a customs import case for an
// order and links the two atomically.
//
// Workflow:
//   - the order's restaurant must have a delivery location with APPROVED
//     customs status; the newest one is chosen
//   - the supplier's importer-of-record must still match the one snapshotted
//     on the order
//   - the case insert and the order link commit in one transaction; the
//     order-side link column is guarded so a case is linked at most once
//   - the audit event is best-effort and reported via Degraded on failure
type CreateImportCaseForOrderCommandHandler struct {
	uowFactory CaseLinkUoWFactory
	locations  ports.DeliveryLocationProvider
	suppliers  ports.SupplierProvider
}

// NewCreateImportCaseForOrderCommandHandler creates a handler for opening
// import cases from orders.
func NewCreateImportCaseForOrderCommandHandler(
	uowFactory CaseLinkUoWFactory,
	locations ports.DeliveryLocationProvider,
	suppliers ports.SupplierProvider,
) CreateImportCaseForOrderCommandHandler {
	return CreateImportCaseForOrderCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
		suppliers:  suppliers,
	}
}

// Handle opens the case and links it to the order.
func (h *CreateImportCaseForOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateImportCaseForOrderCommand,
) (CreateImportCaseForOrderResult, error) {
	var result CreateImportCaseForOrderResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return result, err
	}

	sup, err := h.suppliers.Get(ctx, cmd.TenantID(), orderAggregate.SellerSupplierID())
	if err != nil {
		return result, err
	}
	importer, err := sup.ImporterOfRecord()
	if err != nil {
		return result, err
	}
	if !importer.IsEqual(orderAggregate.ImporterOfRecordID()) {
		return result, errs.NewIntegrityMismatchError("importer_of_record_id",
			orderAggregate.ImporterOfRecordID().String(), importer.String())
	}

	loc, err := h.locations.NewestApproved(ctx, cmd.TenantID(), orderAggregate.RestaurantID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return result, errs.NewMissingDependencyError("approved delivery location",
				fmt.Sprintf("restaurant %s has no approved delivery location", orderAggregate.RestaurantID()))
		}
		return result, err
	}

	supplierID := orderAggregate.SellerSupplierID()
	caseAggregate, err := importcase.NewImportCase(
		cmd.CaseID(), cmd.TenantID(), orderAggregate.RestaurantID(), importer, loc.ID, &supplierID,
	)
	if err != nil {
		return result, err
	}

	if err = orderAggregate.SetDeliveryLocation(loc.ID); err != nil {
		return result, err
	}
	if err = orderAggregate.LinkImportCase(cmd.CaseID()); err != nil {
		return result, err
	}

	if err = uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportCaseRepository().Add(ctx, caseAggregate); err != nil {
		return result, err
	}
	if err = uow.OrderRepository().LinkImportCase(ctx, orderAggregate); err != nil {
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	result.ImportCaseID = cmd.CaseID()

	event := order.NewEvent(cmd.OrderID(), order.EventImportCaseLinked, cmd.Actor()).
		WithMetadata("import_case_id", cmd.CaseID().String()).
		WithMetadata("delivery_location_id", loc.ID.String())
	if err = uow.OrderRepository().AddEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "order_event")
		obs.RecordDegraded("create_import_case_for_order", "order_event", err)
	}

	return result, nil
}
