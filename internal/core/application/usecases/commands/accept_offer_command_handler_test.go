package commands_test

import (
	"errors"
	"testing"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := domesticSupplier(tenant)
	off := offerInStatus(t, tenant, sup.ID, offer.StatusViewed)
	cmd, err := commands.NewAcceptOfferCommand(off.ID(), tenant, "buyer:anna")
	require.NoError(t, err)

	req, err := request.RestoreRequest(off.RequestID(), tenant, off.RestaurantID(), request.StatusOpen, 18,
		request.DeliveryDetails{Street: "Vasagatan 7", City: "Stockholm", Country: "SE"})
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockFulfillmentUoW)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	offerRepo.On("Get", ctx, tenant, off.ID()).Return(off, nil).Once()
	offerRepo.On("UpdateStatus", ctx, off, offer.StatusViewed).Return(nil).Once()
	requestRepo.On("Get", ctx, tenant, off.RequestID()).Return(req, nil).Once()
	requestRepo.On("Update", ctx, req).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	// The fulfillment handler finds an order already created for the offer.
	existing, err := order.NewFromAcceptedOffer(kernel.NewUUID(), off, sup, order.DeliveryAddress{})
	require.NoError(t, err)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOfferID", ctx, tenant, off.ID()).Return(existing, nil).Once()
	orderUow := new(MockFulfillmentUoW)
	orderUow.On("OrderRepository").Return(orderRepo)
	orderFactory := new(MockFulfillmentUoWFactory)
	orderFactory.On("Create").Return(orderUow).Once()
	orderHandler := commands.NewCreateOrderFromOfferCommandHandler(
		orderFactory, new(MockSupplierProvider), unusedCaseHandler(),
	)

	h := commands.NewAcceptOfferCommandHandler(factory, orderHandler, kernel.NewUUID)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, existing.ID(), result.OrderID)
	assert.Equal(t, offer.StatusAccepted, off.Status())
	assert.Equal(t, request.StatusAccepted, req.Status())
	assert.Empty(t, result.Degraded)
	offerRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_RequestUpdateDegrades(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := domesticSupplier(tenant)
	off := offerInStatus(t, tenant, sup.ID, offer.StatusSent)
	cmd, err := commands.NewAcceptOfferCommand(off.ID(), tenant, "buyer:anna")
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockFulfillmentUoW)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	offerRepo.On("Get", ctx, tenant, off.ID()).Return(off, nil).Once()
	offerRepo.On("UpdateStatus", ctx, off, offer.StatusSent).Return(nil).Once()
	requestRepo.On("Get", ctx, tenant, off.RequestID()).
		Return(nil, errors.New("request store down")).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	existing, err := order.NewFromAcceptedOffer(kernel.NewUUID(), off, sup, order.DeliveryAddress{})
	require.NoError(t, err)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByOfferID", ctx, tenant, off.ID()).Return(existing, nil).Once()
	orderUow := new(MockFulfillmentUoW)
	orderUow.On("OrderRepository").Return(orderRepo)
	orderFactory := new(MockFulfillmentUoWFactory)
	orderFactory.On("Create").Return(orderUow).Once()
	orderHandler := commands.NewCreateOrderFromOfferCommandHandler(
		orderFactory, new(MockSupplierProvider), unusedCaseHandler(),
	)

	h := commands.NewAcceptOfferCommandHandler(factory, orderHandler, kernel.NewUUID)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Contains(t, result.Degraded, "request_status")
}

func TestAcceptOfferCommandHandler_Handle_RejectsTerminalOffer(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := domesticSupplier(tenant)
	off := offerInStatus(t, tenant, sup.ID, offer.StatusRejected)
	cmd, err := commands.NewAcceptOfferCommand(off.ID(), tenant, "buyer:anna")
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	offerRepo.On("Get", ctx, tenant, off.ID()).Return(off, nil).Once()
	uow := new(MockFulfillmentUoW)
	uow.On("OfferRepository").Return(offerRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory, commands.CreateOrderFromOfferCommandHandler{}, kernel.NewUUID)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}
