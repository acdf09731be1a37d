package commands_test

import (
	"testing"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/location"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateImportCaseForOrderCommandHandler_Handle_NoApprovedLocation(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := euSupplier(tenant)
	aggregate := orderInStatus(t, tenant, sup, order.StatusConfirmed)
	cmd, err := commands.NewCreateImportCaseForOrderCommand(kernel.NewUUID(), aggregate.ID(), tenant, "ops:erik")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, tenant, aggregate.ID()).Return(aggregate, nil).Once()
	uow := new(MockCaseLinkUoW)
	uow.On("OrderRepository").Return(orderRepo)

	suppliers := new(MockSupplierProvider)
	suppliers.On("Get", ctx, tenant, sup.ID).Return(sup, nil).Once()

	locations := new(MockDeliveryLocationProvider)
	locations.On("NewestApproved", ctx, tenant, aggregate.RestaurantID()).
		Return(location.Location{}, errs.NewObjectNotFoundError("restaurant_id", aggregate.RestaurantID())).Once()

	factory := new(MockCaseLinkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateImportCaseForOrderCommandHandler(factory, locations, suppliers)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrMissingDependency)
	assert.Contains(t, err.Error(), "no approved delivery location")
	uow.AssertNotCalled(t, "Begin", ctx)
}

func TestCreateImportCaseForOrderCommandHandler_Handle_ImporterDrift(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := euSupplier(tenant)
	aggregate := orderInStatus(t, tenant, sup, order.StatusConfirmed)
	cmd, err := commands.NewCreateImportCaseForOrderCommand(kernel.NewUUID(), aggregate.ID(), tenant, "ops:erik")
	require.NoError(t, err)

	// The supplier switched importers after the order snapshotted its IOR.
	drifted := sup
	otherImporter := kernel.NewUUID()
	drifted.DefaultImporterID = &otherImporter

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, tenant, aggregate.ID()).Return(aggregate, nil).Once()
	uow := new(MockCaseLinkUoW)
	uow.On("OrderRepository").Return(orderRepo)

	suppliers := new(MockSupplierProvider)
	suppliers.On("Get", ctx, tenant, sup.ID).Return(drifted, nil).Once()

	factory := new(MockCaseLinkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateImportCaseForOrderCommandHandler(factory, new(MockDeliveryLocationProvider), suppliers)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIntegrityMismatch)
}

func TestCreateImportCaseForOrderCommandHandler_Handle_SecondCaseRejected(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	sup := euSupplier(tenant)
	aggregate := orderInStatus(t, tenant, sup, order.StatusConfirmed)
	require.NoError(t, aggregate.LinkImportCase(kernel.NewUUID()))
	cmd, err := commands.NewCreateImportCaseForOrderCommand(kernel.NewUUID(), aggregate.ID(), tenant, "ops:erik")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, tenant, aggregate.ID()).Return(aggregate, nil).Once()
	uow := new(MockCaseLinkUoW)
	uow.On("OrderRepository").Return(orderRepo)

	suppliers := new(MockSupplierProvider)
	suppliers.On("Get", ctx, tenant, sup.ID).Return(sup, nil).Once()

	locations := new(MockDeliveryLocationProvider)
	locations.On("NewestApproved", ctx, tenant, aggregate.RestaurantID()).
		Return(location.Location{ID: kernel.NewUUID(), TenantID: tenant,
			RestaurantID: aggregate.RestaurantID(), CustomsStatus: location.CustomsApproved}, nil).Once()

	factory := new(MockCaseLinkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateImportCaseForOrderCommandHandler(factory, locations, suppliers)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Begin", ctx)
}
