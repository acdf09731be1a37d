package commands

import (
	"context"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/obs"
)

// AcceptOfferCommandHandler handles the acceptance workflow.
//
// The acceptance itself is the primary write: the offer status commits
// first, alone. Marking the originating request as accepted is best-effort,
// and order creation runs afterwards through the fulfillment handler. An
// order creation failure surfaces to the caller while the offer stays
// ACCEPTED, so the order can be created later without re-accepting.
type AcceptOfferCommandHandler struct {
	uowFactory   FulfillmentUoWFactory
	orderHandler CreateOrderFromOfferCommandHandler
	newOrderID   NewID
}

// NewID mints identifiers for aggregates created inside a workflow.
type NewID = func() kernel.UUID

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(
	uowFactory FulfillmentUoWFactory,
	orderHandler CreateOrderFromOfferCommandHandler,
	newOrderID NewID,
) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory:   uowFactory,
		orderHandler: orderHandler,
		newOrderID:   newOrderID,
	}
}

// Handle accepts the offer and creates the order.
func (h *AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) (AcceptOfferResult, error) {
	var result AcceptOfferResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()
	offerAggregate, err := offerRepo.Get(ctx, cmd.TenantID(), cmd.OfferID())
	if err != nil {
		return result, err
	}

	from := offerAggregate.Status()
	if err = offerAggregate.Accept(); err != nil {
		return result, err
	}
	if err = offerRepo.UpdateStatus(ctx, offerAggregate, from); err != nil {
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	obs.RecordTransition(offer.Kind, string(from), string(offer.StatusAccepted))

	if acceptErr := h.acceptRequest(ctx, uow, cmd, offerAggregate); acceptErr != nil {
		result.Degraded = append(result.Degraded, "request_status")
		obs.RecordDegraded("accept_offer", "request_status", acceptErr)
	}

	orderCmd, err := NewCreateOrderFromOfferCommand(h.newOrderID(), cmd.OfferID(), cmd.TenantID(), cmd.Actor())
	if err != nil {
		return result, err
	}
	orderResult, err := h.orderHandler.Handle(ctx, orderCmd)
	if err != nil {
		return result, err
	}

	result.OrderID = orderResult.OrderID
	result.ImportCaseID = orderResult.ImportCaseID
	result.Degraded = append(result.Degraded, orderResult.Degraded...)
	return result, nil
}

// acceptRequest marks the originating request as accepted. Runs against the
// base connection after the acceptance committed.
func (h *AcceptOfferCommandHandler) acceptRequest(
	ctx context.Context,
	uow FulfillmentUoW,
	cmd AcceptOfferCommand,
	offerAggregate *offer.Offer,
) error {
	repo := uow.RequestRepository()
	req, err := repo.Get(ctx, cmd.TenantID(), offerAggregate.RequestID())
	if err != nil {
		return err
	}

	from := req.Status()
	if from == request.StatusAccepted {
		return nil
	}
	if err = req.Accept(); err != nil {
		return err
	}
	if err = repo.Update(ctx, req); err != nil {
		return err
	}

	obs.RecordTransition(request.Kind, string(from), string(request.StatusAccepted))
	return nil
}
