package commands

import (
	"context"
	"fmt"

	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// DeclineOrderCommandHandler handles supplier refusals. Declining is only
// possible while the order still awaits the supplier's confirmation; later
// cancellations go through SetOrderStatusCommand.
type DeclineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeclineOrderCommandHandler creates a handler for supplier refusals.
func NewDeclineOrderCommandHandler(uowFactory OrderUoWFactory) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order and records a SUPPLIER_DECLINED audit event
// carrying the refusal reason. The event is best-effort.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) (SetOrderStatusResult, error) {
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
	if from != order.StatusPendingSupplierConfirmation {
		return result, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("only orders awaiting supplier confirmation can be declined, got %s", from))
	}
	if err = aggregate.TransitionTo(order.StatusCancelled); err != nil {
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
	obs.RecordTransition(order.Kind, string(from), string(order.StatusCancelled))

	result.From = from
	result.To = order.StatusCancelled

	event := order.NewEvent(cmd.OrderID(), order.EventSupplierDeclined, cmd.Actor()).
		WithTransition(from, order.StatusCancelled).
		WithNote(cmd.Reason()).
		WithMetadata("reason", cmd.Reason())
	if err = uow.OrderRepository().AddEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "status_event")
		obs.RecordDegraded("decline_order", "status_event", err)
	}

	return result, nil
}
