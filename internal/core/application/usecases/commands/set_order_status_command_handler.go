package commands

import (
	"context"
	"fmt"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/ports"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// SetOrderStatusCommandHandler handles lifecycle changes of orders.
//
// Moving to SHIPPED is gated on customs clearance: an order with a linked
// import case ships only once the case is APPROVED, and an EU-sourced order
// must have a case at all. The status write is guarded by the order's prior
// status, so two racing changes resolve to one winner and one
// ErrStaleStatus. The audit event is best-effort.
type SetOrderStatusCommandHandler struct {
	uowFactory CaseLinkUoWFactory
	suppliers  ports.SupplierProvider
}

// NewSetOrderStatusCommandHandler creates a handler for order status changes.
func NewSetOrderStatusCommandHandler(
	uowFactory CaseLinkUoWFactory,
	suppliers ports.SupplierProvider,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		suppliers:  suppliers,
	}
}

// Handle moves the order to the target status.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (SetOrderStatusResult, error) {
	var result SetOrderStatusResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return result, err
	}

	if cmd.Target() == order.StatusShipped {
		if err = h.validateForShipment(ctx, uow, cmd.TenantID(), aggregate); err != nil {
			return result, err
		}
	}

	from := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return result, err
	}

	if err = uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().UpdateStatus(ctx, aggregate, from); err != nil {
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	obs.RecordTransition(order.Kind, string(from), string(cmd.Target()))

	result.From = from
	result.To = cmd.Target()

	event := order.NewEvent(cmd.OrderID(), order.EventStatusChanged, cmd.Actor()).
		WithTransition(from, cmd.Target())
	if cmd.Note() != "" {
		event = event.WithNote(cmd.Note())
	}
	if err = uow.OrderRepository().AddEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "status_event")
		obs.RecordDegraded("set_order_status", "status_event", err)
	}

	return result, nil
}

// validateForShipment enforces the customs gate before an order ships.
func (h *SetOrderStatusCommandHandler) validateForShipment(
	ctx context.Context,
	uow CaseLinkUoW,
	tenantID kernel.UUID,
	aggregate *order.Order,
) error {
	caseID := aggregate.ImportCaseID()
	if caseID == nil {
		sup, err := h.suppliers.Get(ctx, tenantID, aggregate.SellerSupplierID())
		if err != nil {
			return err
		}
		if sup.Type.IsEUOrigin() {
			return errs.NewMissingDependencyError("import case",
				fmt.Sprintf("order %s has no customs import case", aggregate.ID()))
		}
		return nil
	}

	caseAggregate, err := uow.ImportCaseRepository().Get(ctx, tenantID, *caseID)
	if err != nil {
		return err
	}
	if caseAggregate.Status() != importcase.StatusApproved {
		return errs.NewMissingDependencyError("approved import case",
			fmt.Sprintf("import case %s holds status %s", caseID, caseAggregate.Status()))
	}
	return nil
}
