package commands

import (
	"context"

	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/obs"
)

// SetRequestStatusCommandHandler handles lifecycle changes of purchase
// requests.
type SetRequestStatusCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSetRequestStatusCommandHandler creates a handler for request status changes.
func NewSetRequestStatusCommandHandler(uowFactory RequestUoWFactory) SetRequestStatusCommandHandler {
	return SetRequestStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the request to the target status and persists the change.
func (h *SetRequestStatusCommandHandler) Handle(ctx context.Context, cmd SetRequestStatusCommand) error {
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

	repo := uow.RequestRepository()
	aggregate, err := repo.Get(ctx, cmd.TenantID(), cmd.RequestID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	switch cmd.Target() {
	case request.StatusOpen:
		err = aggregate.Open()
	case request.StatusAccepted:
		err = aggregate.Accept()
	case request.StatusClosed:
		err = aggregate.Close()
	case request.StatusCancelled:
		err = aggregate.Cancel()
	default:
		err = request.ValidateTransition(from, cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	obs.RecordTransition(request.Kind, string(from), string(aggregate.Status()))
	return nil
}
