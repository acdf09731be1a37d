package commands_test

import (
	"testing"
	"time"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func testBatch(tenant kernel.UUID) importcase.SupplierImportBatch {
	return importcase.SupplierImportBatch{
		ID:        kernel.NewUUID(),
		TenantID:  tenant,
		SupplierID: kernel.NewUUID(),
		Source:    "vinimport-w34.xlsx",
		RowCount:  120,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAttachSupplierImportCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	aggregate := submittedCase(t, tenant)
	batch := testBatch(tenant)
	cmd, err := commands.NewAttachSupplierImportCommand(aggregate.ID(), batch.ID, tenant)
	require.NoError(t, err)

	caseRepo := new(MockImportCaseRepository)
	batchRepo := new(MockSupplierImportRepository)
	uow := new(MockCaseLinkUoW)
	uow.On("ImportCaseRepository").Return(caseRepo)
	uow.On("SupplierImportRepository").Return(batchRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	caseRepo.On("Get", ctx, tenant, aggregate.ID()).Return(aggregate, nil).Once()
	batchRepo.On("Get", ctx, batch.ID).Return(batch, nil).Once()
	caseRepo.On("LinkSupplierImport", ctx, tenant, aggregate.ID(), batch.ID).Return(nil).Once()

	factory := new(MockCaseLinkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachSupplierImportCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	caseRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachSupplierImportCommandHandler_Handle_TenantMismatch(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewUUID()
	aggregate := submittedCase(t, tenant)
	batch := testBatch(kernel.NewUUID()) // owned by another tenant
	cmd, err := commands.NewAttachSupplierImportCommand(aggregate.ID(), batch.ID, tenant)
	require.NoError(t, err)

	caseRepo := new(MockImportCaseRepository)
	batchRepo := new(MockSupplierImportRepository)
	uow := new(MockCaseLinkUoW)
	uow.On("ImportCaseRepository").Return(caseRepo)
	uow.On("SupplierImportRepository").Return(batchRepo)

	caseRepo.On("Get", ctx, tenant, aggregate.ID()).Return(aggregate, nil).Once()
	batchRepo.On("Get", ctx, batch.ID).Return(batch, nil).Once()

	factory := new(MockCaseLinkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachSupplierImportCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTenantMismatch)
	uow.AssertNotCalled(t, "Begin", ctx)
	caseRepo.AssertNotCalled(t, "LinkSupplierImport", ctx, tenant, aggregate.ID(), batch.ID)
}
