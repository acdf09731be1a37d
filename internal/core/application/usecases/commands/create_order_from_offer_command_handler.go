package commands

import (
	"context"
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/ports"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// CreateOrderFromOfferCommandHandler runs the order fulfillment workflow.
//
// Only the order row itself is the primary write; it commits alone, guarded
// by a unique constraint on offer_id so the workflow creates at most one
// order per offer even under concurrent calls. Everything after that commit
// is best-effort: line snapshot, creation audit event and, for EU-sourced
// orders, the automatic customs import case. Failed steps are reported in
// the result's Degraded list and counted, never bubbled up, so a flaky
// follow-up write cannot lose an already created order.
type CreateOrderFromOfferCommandHandler struct {
	uowFactory  FulfillmentUoWFactory
	suppliers   ports.SupplierProvider
	caseHandler CreateImportCaseForOrderCommandHandler
}

// NewCreateOrderFromOfferCommandHandler creates the fulfillment workflow
// handler.
func NewCreateOrderFromOfferCommandHandler(
	uowFactory FulfillmentUoWFactory,
	suppliers ports.SupplierProvider,
	caseHandler CreateImportCaseForOrderCommandHandler,
) CreateOrderFromOfferCommandHandler {
	return CreateOrderFromOfferCommandHandler{
		uowFactory:  uowFactory,
		suppliers:   suppliers,
		caseHandler: caseHandler,
	}
}

// Handle creates the order for an accepted offer.
func (h *CreateOrderFromOfferCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderFromOfferCommand,
) (CreateOrderFromOfferResult, error) {
	var result CreateOrderFromOfferResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()

	if existing, err := uow.OrderRepository().GetByOfferID(ctx, cmd.TenantID(), cmd.OfferID()); err == nil {
		result.OrderID = existing.ID()
		result.AlreadyExisted = true
		return result, nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return result, err
	}

	offerAggregate, err := uow.OfferRepository().Get(ctx, cmd.TenantID(), cmd.OfferID())
	if err != nil {
		return result, err
	}

	sup, err := h.suppliers.Get(ctx, cmd.TenantID(), offerAggregate.SupplierID())
	if err != nil {
		return result, err
	}

	delivery, addressErr := h.resolveDeliveryAddress(ctx, uow, cmd.TenantID(), offerAggregate.RequestID())

	orderAggregate, err := order.NewFromAcceptedOffer(cmd.OrderID(), offerAggregate, sup, delivery)
	if err != nil {
		return result, err
	}

	if err = uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, orderAggregate); err != nil {
		// A concurrent call may have won the unique offer_id race.
		if existing, getErr := h.uowFactory.Create().OrderRepository().GetByOfferID(ctx, cmd.TenantID(), cmd.OfferID()); getErr == nil {
			result.OrderID = existing.ID()
			result.AlreadyExisted = true
			return result, nil
		}
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	result.OrderID = cmd.OrderID()
	if addressErr != nil {
		result.Degraded = append(result.Degraded, "request_address")
		obs.RecordDegraded("create_order_from_offer", "request_address", addressErr)
	}

	repo := uow.OrderRepository()
	if err = repo.AddLines(ctx, orderAggregate); err != nil {
		result.Degraded = append(result.Degraded, "order_lines")
		obs.RecordDegraded("create_order_from_offer", "order_lines", err)
	}

	event := order.NewEvent(cmd.OrderID(), order.EventOrderCreated, cmd.Actor()).
		WithTransition(orderAggregate.Status(), orderAggregate.Status()).
		WithMetadata("offer_id", cmd.OfferID().String()).
		WithMetadata("total_order_value", orderAggregate.TotalOrderValue())
	if err = repo.AddEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "order_created_event")
		obs.RecordDegraded("create_order_from_offer", "order_created_event", err)
	}

	if sup.Type.IsEUOrigin() {
		h.openImportCase(ctx, cmd, &result)
	}

	return result, nil
}

// resolveDeliveryAddress copies the delivery details from the originating
// request. The address is informational on the order, so a failed lookup
// degrades instead of failing the workflow.
func (h *CreateOrderFromOfferCommandHandler) resolveDeliveryAddress(
	ctx context.Context,
	uow FulfillmentUoW,
	tenantID, requestID kernel.UUID,
) (order.DeliveryAddress, error) {
	req, err := uow.RequestRepository().Get(ctx, tenantID, requestID)
	if err != nil {
		return order.DeliveryAddress{}, err
	}

	details := req.Delivery()
	return order.DeliveryAddress{
		Street:     details.Street,
		PostalCode: details.PostalCode,
		City:       details.City,
		Country:    details.Country,
	}, nil
}

func (h *CreateOrderFromOfferCommandHandler) openImportCase(
	ctx context.Context,
	cmd CreateOrderFromOfferCommand,
	result *CreateOrderFromOfferResult,
) {
	caseCmd, err := NewCreateImportCaseForOrderCommand(kernel.NewUUID(), cmd.OrderID(), cmd.TenantID(), cmd.Actor())
	if err == nil {
		var caseResult CreateImportCaseForOrderResult
		if caseResult, err = h.caseHandler.Handle(ctx, caseCmd); err == nil {
			caseID := caseResult.ImportCaseID
			result.ImportCaseID = &caseID
			result.Degraded = append(result.Degraded, caseResult.Degraded...)
			return
		}
	}

	result.Degraded = append(result.Degraded, "import_case")
	obs.RecordDegraded("create_order_from_offer", "import_case", err)
}
