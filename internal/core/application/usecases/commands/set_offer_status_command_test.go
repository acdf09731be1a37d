package commands_test

import (
	"testing"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetOfferStatusCommand_TargetRestrictions(t *testing.T) {
	offerID := kernel.NewUUID()
	tenant := kernel.NewUUID()

	for _, target := range []offer.Status{offer.StatusSent, offer.StatusViewed, offer.StatusRejected} {
		_, err := commands.NewSetOfferStatusCommand(offerID, tenant, target)
		assert.NoError(t, err, "target %s", target)
	}

	// Acceptance and expiry have dedicated entry points.
	for _, target := range []offer.Status{offer.StatusAccepted, offer.StatusExpired, offer.StatusDraft} {
		_, err := commands.NewSetOfferStatusCommand(offerID, tenant, target)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "target %s", target)
	}
}

func TestSetOfferStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := euSupplier(tenant)
	off := offerInStatus(t, tenant, sup.ID, offer.StatusDraft)
	cmd, err := commands.NewSetOfferStatusCommand(off.ID(), tenant, offer.StatusSent)
	require.NoError(t, err)

	repo := new(MockOfferRepository)
	uow := new(MockOfferUoW)
	uow.On("OfferRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	repo.On("Get", ctx, tenant, off.ID()).Return(off, nil).Once()
	repo.On("UpdateStatus", ctx, off, offer.StatusDraft).Return(nil).Once()

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOfferStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, offer.StatusSent, off.Status())
	repo.AssertExpectations(t)
}

func TestSetOfferStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := euSupplier(tenant)
	off := offerInStatus(t, tenant, sup.ID, offer.StatusDraft)
	cmd, err := commands.NewSetOfferStatusCommand(off.ID(), tenant, offer.StatusRejected)
	require.NoError(t, err)

	repo := new(MockOfferRepository)
	repo.On("Get", ctx, tenant, off.ID()).Return(off, nil).Once()
	uow := new(MockOfferUoW)
	uow.On("OfferRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOfferStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, offer.StatusDraft, off.Status())
}
