package commands

import (
	"context"

	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/obs"
)

// ExpireOffersCommandHandler sweeps overdue offers into EXPIRED status.
type ExpireOffersCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewExpireOffersCommandHandler creates a handler for the expiry sweep.
func NewExpireOffersCommandHandler(uowFactory OfferUoWFactory) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every overdue offer individually. Each update is guarded by
// the offer's prior status, so an offer accepted between the sweep's read
// and its write is left alone and counted as failed.
func (h *ExpireOffersCommandHandler) Handle(ctx context.Context, cmd ExpireOffersCommand) (ExpireOffersResult, error) {
	var result ExpireOffersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	repo := uow.OfferRepository()

	overdue, err := repo.ListExpired(ctx, cmd.Now())
	if err != nil {
		return result, err
	}

	for _, aggregate := range overdue {
		from := aggregate.Status()
		if err := aggregate.Expire(); err != nil {
			result.Failed++
			continue
		}
		if err := repo.UpdateStatus(ctx, aggregate, from); err != nil {
			result.Failed++
			continue
		}

		result.Expired++
		obs.RecordTransition(offer.Kind, string(from), string(offer.StatusExpired))
	}

	return result, nil
}
