package offerrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"winetrade/internal/adapters/out/postgres/offerrepo"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OfferRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *offerrepo.GormOfferRepository
	tenantID  kernel.UUID
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&offerrepo.OfferDTO{},
		&offerrepo.OfferLineDTO{},
	)
	suite.Require().NoError(err)

	suite.repo = offerrepo.NewGormOfferRepository(db, &noopTracker{})
	suite.tenantID = kernel.NewUUID()
}

func (suite *OfferRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OfferRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE offers, offer_lines").Error
	suite.Require().NoError(err)
}

func (suite *OfferRepositoryIntegrationTestSuite) newSentOffer(validUntil *time.Time) *offer.Offer {
	o, err := offer.RestoreOffer(
		kernel.NewUUID(), suite.tenantID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		offer.StatusSent,
		"EUR", false, 25.0, validUntil,
		[]offer.Line{
			{WineName: "Barolo Riserva", Producer: "Cascina Rossa", Vintage: 2018, Quantity: 12, Unit: "bottle", UnitPrice: 42.5},
			{WineName: "Chablis", Producer: "Domaine Picq", Vintage: 2021, Quantity: 6, Unit: "bottle", UnitPrice: 19.8},
		},
	)
	suite.Require().NoError(err)
	return o
}

// restore reloads the same offer row into a fresh aggregate, standing in for
// a second process holding its own copy.
func (suite *OfferRepositoryIntegrationTestSuite) restore(o *offer.Offer) *offer.Offer {
	clone, err := offer.RestoreOffer(
		o.ID(), o.TenantID(), o.RequestID(), o.RestaurantID(), o.SupplierID(),
		o.Status(), o.Currency(), o.IsFranco(), o.ShippingCost(), o.ValidUntil(), o.Lines(),
	)
	suite.Require().NoError(err)
	return clone
}

func (suite *OfferRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	validUntil := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	o := suite.newSentOffer(&validUntil)

	suite.Require().NoError(suite.repo.Add(ctx, o))

	loaded, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.StatusSent, loaded.Status())
	suite.Equal("EUR", loaded.Currency())
	suite.Equal(25.0, loaded.ShippingCost())
	suite.Require().Len(loaded.Lines(), 2)
	suite.Equal("Barolo Riserva", loaded.Lines()[0].WineName)
	suite.Equal(19.8, loaded.Lines()[1].UnitPrice)
}

func (suite *OfferRepositoryIntegrationTestSuite) TestGet_OtherTenant_NotFound() {
	ctx := context.Background()
	o := suite.newSentOffer(nil)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	_, err := suite.repo.Get(ctx, kernel.NewUUID(), o.ID())
	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *OfferRepositoryIntegrationTestSuite) TestUpdateStatus_Persists() {
	ctx := context.Background()
	o := suite.newSentOffer(nil)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.Accept())
	suite.Require().NoError(suite.repo.UpdateStatus(ctx, o, offer.StatusSent))

	loaded, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.StatusAccepted, loaded.Status())
}

// Acceptance and the expiry sweep may race for the same SENT offer. The
// conditional status write lets exactly one of them through.
func (suite *OfferRepositoryIntegrationTestSuite) TestUpdateStatus_ConcurrentWriters_OneWins() {
	ctx := context.Background()
	o := suite.newSentOffer(nil)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	accepting := suite.restore(o)
	expiring := suite.restore(o)
	suite.Require().NoError(accepting.Accept())
	suite.Require().NoError(expiring.Expire())

	suite.Require().NoError(suite.repo.UpdateStatus(ctx, accepting, offer.StatusSent))

	err := suite.repo.UpdateStatus(ctx, expiring, offer.StatusSent)
	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrStaleStatus))

	loaded, err := suite.repo.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.StatusAccepted, loaded.Status())
}

func (suite *OfferRepositoryIntegrationTestSuite) TestListExpired_OnlyExpirableStatusesPastDeadline() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	sentPast := suite.newSentOffer(&past)
	suite.Require().NoError(suite.repo.Add(ctx, sentPast))

	viewedPast := suite.newSentOffer(&past)
	suite.Require().NoError(viewedPast.MarkViewed())
	suite.Require().NoError(suite.repo.Add(ctx, viewedPast))

	acceptedPast := suite.newSentOffer(&past)
	suite.Require().NoError(acceptedPast.Accept())
	suite.Require().NoError(suite.repo.Add(ctx, acceptedPast))

	sentFuture := suite.newSentOffer(&future)
	suite.Require().NoError(suite.repo.Add(ctx, sentFuture))

	openEnded := suite.newSentOffer(nil)
	suite.Require().NoError(suite.repo.Add(ctx, openEnded))

	expired, err := suite.repo.ListExpired(ctx, now)
	suite.Require().NoError(err)

	ids := make([]string, 0, len(expired))
	for _, o := range expired {
		ids = append(ids, o.ID().String())
	}
	suite.ElementsMatch([]string{sentPast.ID().String(), viewedPast.ID().String()}, ids)
}

func TestOfferRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfferRepositoryIntegrationTestSuite))
}

type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
