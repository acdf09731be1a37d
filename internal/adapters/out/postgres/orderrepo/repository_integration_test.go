package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"winetrade/internal/adapters/out/postgres/orderrepo"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/domain/model/supplier"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	tenantID  kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}, &orderrepo.OrderEventDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &noopTracker{})
	suite.tenantID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, order_events").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	importerID := kernel.NewUUID()
	sup := supplier.Supplier{
		ID:                kernel.NewUUID(),
		TenantID:          suite.tenantID,
		Name:              "Cantina Rossi",
		Type:              supplier.TypeDomesticImporter,
		DefaultImporterID: &importerID,
	}

	off, err := offer.RestoreOffer(
		kernel.NewUUID(), suite.tenantID, kernel.NewUUID(), kernel.NewUUID(), sup.ID,
		offer.StatusAccepted,
		"EUR", false, 25.0, nil,
		[]offer.Line{
			{WineName: "Barolo Riserva", Producer: "Cantina Rossi", Vintage: 2018, Quantity: 12, Unit: "bottle", UnitPrice: 42.50},
			{WineName: "Chablis Premier Cru", Producer: "Domaine Petit", Vintage: 2021, Quantity: 6, Unit: "bottle", UnitPrice: 31.00},
		},
	)
	suite.Require().NoError(err)

	o, err := order.NewFromAcceptedOffer(kernel.NewUUID(), off, sup, order.DeliveryAddress{
		Street:     "Vasagatan 7",
		PostalCode: "11120",
		City:       "Stockholm",
		Country:    "SE",
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repo.Add(ctx, o))
	suite.Require().NoError(suite.repo.AddLines(ctx, o))

	loaded, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Status(), loaded.Status())
	suite.Equal(o.TotalOrderValue(), loaded.TotalOrderValue())
	suite.Equal(o.Delivery(), loaded.Delivery())
	suite.Require().Len(loaded.Lines(), 2)
	suite.Equal("Barolo Riserva", loaded.Lines()[0].WineName)
	suite.Equal(1, loaded.Lines()[0].LineNumber)
	suite.Equal(2, loaded.Lines()[1].LineNumber)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_OtherTenant_NotFound() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	_, err := suite.repo.Get(ctx, kernel.NewUUID(), o.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondOrderForSameOffer_Fails() {
	ctx := context.Background()
	first := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, first))

	importerID := kernel.NewUUID()
	sup := supplier.Supplier{
		ID:                kernel.NewUUID(),
		TenantID:          suite.tenantID,
		Name:              "Cantina Rossi",
		Type:              supplier.TypeDomesticImporter,
		DefaultImporterID: &importerID,
	}
	off, err := offer.RestoreOffer(
		first.OfferID(), suite.tenantID, kernel.NewUUID(), kernel.NewUUID(), sup.ID,
		offer.StatusAccepted,
		"EUR", false, 0,
		nil,
		[]offer.Line{{WineName: "Barolo Riserva", Quantity: 12, UnitPrice: 42.50}},
	)
	suite.Require().NoError(err)
	second, err := order.NewFromAcceptedOffer(kernel.NewUUID(), off, sup, order.DeliveryAddress{})
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, second)
	suite.Require().Error(err)

	existing, err := suite.repo.GetByOfferID(ctx, suite.tenantID, first.OfferID())
	suite.Require().NoError(err)
	suite.True(existing.ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_OneWinnerUnderRace() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	winner, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	loser, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)

	from := winner.Status()
	suite.Require().NoError(winner.TransitionTo(order.StatusConfirmed))
	suite.Require().NoError(suite.repo.UpdateStatus(ctx, winner, from))

	suite.Require().NoError(loser.TransitionTo(order.StatusCancelled))
	err = suite.repo.UpdateStatus(ctx, loser, from)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrStaleStatus)

	current, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, current.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLinkImportCase_WriteOnce() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.SetDeliveryLocation(kernel.NewUUID()))
	suite.Require().NoError(o.LinkImportCase(kernel.NewUUID()))
	suite.Require().NoError(suite.repo.LinkImportCase(ctx, o))

	rival, err := order.RestoreOrder(order.RestoreParams{
		ID:                 o.ID(),
		TenantID:           o.TenantID(),
		RestaurantID:       o.RestaurantID(),
		OfferID:            o.OfferID(),
		RequestID:          o.RequestID(),
		SellerSupplierID:   o.SellerSupplierID(),
		ImporterOfRecordID: o.ImporterOfRecordID(),
		Status:             o.Status(),
		Currency:           o.Currency(),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(rival.LinkImportCase(kernel.NewUUID()))

	err = suite.repo.LinkImportCase(ctx, rival)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrStaleStatus)

	current, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(current.ImportCaseID())
	suite.True(current.ImportCaseID().IsEqual(*o.ImportCaseID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddEvent_Persisted() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, o))

	event := order.NewEvent(o.ID(), order.EventOrderCreated, "system").
		WithTransition(o.Status(), o.Status()).
		WithMetadata("offer_id", o.OfferID().String())
	suite.Require().NoError(suite.repo.AddEvent(ctx, suite.tenantID, event))

	var rows []orderrepo.OrderEventDTO
	err := suite.db.Find(&rows, "order_id = ?", o.ID().Bytes()).Error
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(string(order.EventOrderCreated), rows[0].EventType)
	suite.Equal(o.OfferID().String(), rows[0].Metadata["offer_id"])
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

// noopTracker satisfies the repository's tracker dependency in tests.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
