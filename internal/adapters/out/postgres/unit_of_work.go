// Package postgres provides the GORM-based Unit of Work implementation that
// groups repository writes into one database transaction.
//
// Repositories obtained while a transaction is active run inside it.
// Repositories obtained before Begin or after Commit/Rollback run against the
// base connection; command handlers rely on this for the best-effort
// follow-up writes (audit events, line snapshots) they perform after the
// primary transaction committed.
package postgres

import (
	"context"

	"winetrade/internal/adapters/out/postgres/importcaserepo"
	"winetrade/internal/adapters/out/postgres/offerrepo"
	"winetrade/internal/adapters/out/postgres/orderrepo"
	"winetrade/internal/adapters/out/postgres/requestrepo"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate touched during the unit of work, kept for
// post-commit processing such as event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out, and tracks the aggregates written through them.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin while a transaction is
// already active is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. After commit the unit of work
// hands out base-connection repositories again.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RequestRepository returns a request repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	return requestrepo.NewGormRequestRepository(uow.conn(), uow)
}

// OfferRepository returns an offer repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ImportCaseRepository returns an import case repository bound to the
// current transaction, if one is active.
func (uow *GormUnitOfWork) ImportCaseRepository() ports.ImportCaseRepository {
	return importcaserepo.NewGormImportCaseRepository(uow.conn(), uow)
}

// SupplierImportRepository returns a batch repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) SupplierImportRepository() ports.SupplierImportRepository {
	return importcaserepo.NewGormSupplierImportRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers an aggregate as written within this unit of work.
// Called by the repositories the unit of work hands out.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
