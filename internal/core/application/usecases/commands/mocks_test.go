package commands_test

import (
	"context"
	"time"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/location"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/core/domain/model/supplier"
	"winetrade/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRequestRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOfferRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}
func (m *MockOfferRepository) UpdateStatus(ctx context.Context, aggregate *offer.Offer, expected offer.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}
func (m *MockOfferRepository) ListExpired(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) AddLines(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) AddEvent(ctx context.Context, tenantID kernel.UUID, event order.Event) error {
	args := m.Called(ctx, tenantID, event)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByOfferID(ctx context.Context, tenantID, offerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}
func (m *MockOrderRepository) LinkImportCase(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockImportCaseRepository struct{ mock.Mock }

func (m *MockImportCaseRepository) Add(ctx context.Context, aggregate *importcase.ImportCase) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockImportCaseRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*importcase.ImportCase, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importcase.ImportCase), args.Error(1)
}
func (m *MockImportCaseRepository) UpdateStatus(ctx context.Context, aggregate *importcase.ImportCase, expected importcase.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}
func (m *MockImportCaseRepository) AddStatusEvent(ctx context.Context, tenantID kernel.UUID, event importcase.StatusEvent) error {
	args := m.Called(ctx, tenantID, event)
	return args.Error(0)
}
func (m *MockImportCaseRepository) LinkSupplierImport(ctx context.Context, tenantID, caseID, batchID kernel.UUID) error {
	args := m.Called(ctx, tenantID, caseID, batchID)
	return args.Error(0)
}
func (m *MockImportCaseRepository) GetLinkedSupplierImports(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.SupplierImportBatch, error) {
	args := m.Called(ctx, tenantID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]importcase.SupplierImportBatch), args.Error(1)
}

type MockSupplierImportRepository struct{ mock.Mock }

func (m *MockSupplierImportRepository) Add(ctx context.Context, batch importcase.SupplierImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
func (m *MockSupplierImportRepository) Get(ctx context.Context, id kernel.UUID) (importcase.SupplierImportBatch, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(importcase.SupplierImportBatch), args.Error(1)
}

type MockSupplierProvider struct{ mock.Mock }

func (m *MockSupplierProvider) Get(ctx context.Context, tenantID, id kernel.UUID) (supplier.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Get(0).(supplier.Supplier), args.Error(1)
}

type MockDeliveryLocationProvider struct{ mock.Mock }

func (m *MockDeliveryLocationProvider) Get(ctx context.Context, tenantID, id kernel.UUID) (location.Location, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Get(0).(location.Location), args.Error(1)
}
func (m *MockDeliveryLocationProvider) NewestApproved(ctx context.Context, tenantID, restaurantID kernel.UUID) (location.Location, error) {
	args := m.Called(ctx, tenantID, restaurantID)
	return args.Get(0).(location.Location), args.Error(1)
}

type MockDocumentProvider struct{ mock.Mock }

func (m *MockDocumentProvider) Types(ctx context.Context, tenantID kernel.UUID) ([]importcase.DocumentType, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]importcase.DocumentType), args.Error(1)
}
func (m *MockDocumentProvider) Verifications(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.DocumentVerification, error) {
	args := m.Called(ctx, tenantID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]importcase.DocumentVerification), args.Error(1)
}

// txMock implements Begin, Commit and Rollback for the UoW mocks below.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRequestUoW struct{ txMock }

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockOfferUoW struct{ txMock }

func (m *MockOfferUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockImportCaseUoW struct{ txMock }

func (m *MockImportCaseUoW) ImportCaseRepository() ports.ImportCaseRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportCaseRepository)
}

type MockImportCaseUoWFactory struct{ mock.Mock }

func (m *MockImportCaseUoWFactory) Create() commands.ImportCaseUoW {
	args := m.Called()
	return args.Get(0).(commands.ImportCaseUoW)
}

type MockCaseLinkUoW struct{ txMock }

func (m *MockCaseLinkUoW) ImportCaseRepository() ports.ImportCaseRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportCaseRepository)
}
func (m *MockCaseLinkUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCaseLinkUoW) SupplierImportRepository() ports.SupplierImportRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierImportRepository)
}

type MockCaseLinkUoWFactory struct{ mock.Mock }

func (m *MockCaseLinkUoWFactory) Create() commands.CaseLinkUoW {
	args := m.Called()
	return args.Get(0).(commands.CaseLinkUoW)
}

type MockFulfillmentUoW struct{ txMock }

func (m *MockFulfillmentUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}
func (m *MockFulfillmentUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}
func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockFulfillmentUoW) ImportCaseRepository() ports.ImportCaseRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportCaseRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}
