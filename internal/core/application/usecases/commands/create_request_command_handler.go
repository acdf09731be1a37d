package commands

import (
	"context"

	"winetrade/internal/core/domain/model/request"
)

// CreateRequestCommandHandler handles the business logic for request creation.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request creation.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new request aggregate in DRAFT status.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := request.NewRequest(
		cmd.RequestID(), cmd.TenantID(), cmd.RestaurantID(), cmd.QuantityBottles(), cmd.Delivery(),
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

	if err = uow.RequestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
