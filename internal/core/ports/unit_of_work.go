package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access. Repositories
// obtained before Begin (or after Commit/Rollback) run against the base
// connection, which is how command handlers perform their best-effort
// follow-up writes after the primary transaction committed.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current
	// transaction, if one is active.
	RequestRepository() RequestRepository

	// OfferRepository returns an OfferRepository bound to the current
	// transaction, if one is active.
	OfferRepository() OfferRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, if one is active.
	OrderRepository() OrderRepository

	// ImportCaseRepository returns an ImportCaseRepository bound to the
	// current transaction, if one is active.
	ImportCaseRepository() ImportCaseRepository

	// SupplierImportRepository returns a SupplierImportRepository bound to
	// the current transaction, if one is active.
	SupplierImportRepository() SupplierImportRepository
}
