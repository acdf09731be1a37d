package commands

import (
	"context"

	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles supplier confirmations.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for supplier
// confirmations.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to CONFIRMED and records a SUPPLIER_CONFIRMED
// audit event. The event is best-effort.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (SetOrderStatusResult, error) {
	var result SetOrderStatusResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return result, err
	}
	if !aggregate.SellerSupplierID().IsEqual(cmd.SupplierID()) {
		return result, errs.NewOwnershipViolationError(cmd.SupplierID().String(), "order", cmd.OrderID())
	}

	from := aggregate.Status()
	if err = aggregate.TransitionTo(order.StatusConfirmed); err != nil {
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
	obs.RecordTransition(order.Kind, string(from), string(order.StatusConfirmed))

	result.From = from
	result.To = order.StatusConfirmed

	event := order.NewEvent(cmd.OrderID(), order.EventSupplierConfirmed, cmd.Actor()).
		WithTransition(from, order.StatusConfirmed)
	if err = uow.OrderRepository().AddEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "status_event")
		obs.RecordDegraded("confirm_order", "status_event", err)
	}

	return result, nil
}
