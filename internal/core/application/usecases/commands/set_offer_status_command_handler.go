package commands

import (
	"context"

	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/obs"
)

// SetOfferStatusCommandHandler handles send, view and reject moves of an
// offer.
type SetOfferStatusCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewSetOfferStatusCommandHandler creates a handler for offer status changes.
func NewSetOfferStatusCommandHandler(uowFactory OfferUoWFactory) SetOfferStatusCommandHandler {
	return SetOfferStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the offer to the target status. The persisted row is updated
// with an optimistic guard on its prior status, so two racing moves resolve
// to one winner and one ErrStaleStatus.
func (h *SetOfferStatusCommandHandler) Handle(ctx context.Context, cmd SetOfferStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferRepository()
	aggregate, err := repo.Get(ctx, cmd.TenantID(), cmd.OfferID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	switch cmd.Target() {
	case offer.StatusSent:
		err = aggregate.Send()
	case offer.StatusViewed:
		err = aggregate.MarkViewed()
	case offer.StatusRejected:
		err = aggregate.Reject()
	default:
		err = offer.ValidateTransition(from, cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, aggregate, from); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	obs.RecordTransition(offer.Kind, string(from), string(aggregate.Status()))
	return nil
}
