package commands

import (
	"context"

	"winetrade/internal/core/domain/model/offer"
)

// CreateOfferCommandHandler handles the business logic for offer creation.
type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewCreateOfferCommandHandler creates a handler for offer creation.
func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new offer aggregate in DRAFT status.
func (h *CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := offer.NewOffer(
		cmd.OfferID(), cmd.TenantID(), cmd.RequestID(), cmd.RestaurantID(), cmd.SupplierID(),
		cmd.Currency(), cmd.IsFranco(), cmd.ShippingCost(), cmd.ValidUntil(), cmd.Lines(),
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

	if err = uow.OfferRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
