// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Handlers that fan out into best-effort follow-up steps
// report the steps that failed in their result's Degraded list instead of
// failing the whole operation.
package commands

import (
	"context"

	"winetrade/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ImportCaseRepoFactory provides access to the import case repository within a transaction.
	ImportCaseRepoFactory interface {
		ImportCaseRepository() ports.ImportCaseRepository
	}

	// SupplierImportRepoFactory provides access to the supplier import repository within a transaction.
	SupplierImportRepoFactory interface {
		SupplierImportRepository() ports.SupplierImportRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// OfferUoW manages transactions for offer-only operations.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ImportCaseUoW manages transactions for import-case-only operations.
	ImportCaseUoW interface {
		TxManager
		ImportCaseRepoFactory
	}

	// ImportCaseUoWFactory creates new import case unit of work instances.
	ImportCaseUoWFactory interface {
		Create() ImportCaseUoW
	}

	// CaseLinkUoW manages transactions for operations that link import cases
	// to orders or supplier imports.
	CaseLinkUoW interface {
		TxManager
		ImportCaseRepoFactory
		OrderRepoFactory
		SupplierImportRepoFactory
	}

	// CaseLinkUoWFactory creates new case link unit of work instances.
	CaseLinkUoWFactory interface {
		Create() CaseLinkUoW
	}

	// FulfillmentUoW manages transactions for the order creation workflow,
	// which spans requests, offers, orders and import cases.
	FulfillmentUoW interface {
		TxManager
		RequestRepoFactory
		OfferRepoFactory
		OrderRepoFactory
		ImportCaseRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
