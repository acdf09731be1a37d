package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand records a domestic importer's confirmation of an order
// awaiting it, moving the order from PENDING_SUPPLIER_CONFIRMATION to
// CONFIRMED.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	tenantID   kernel.UUID
	supplierID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command for a supplier's confirmation.
// The supplier must be the one selling the order.
func NewConfirmOrderCommand(orderID, tenantID, supplierID kernel.UUID, actor string) (ConfirmOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		supplierID.Validate(),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID:    orderID,
		tenantID:   tenantID,
		supplierID: supplierID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant.
func (c ConfirmOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// SupplierID returns the supplier issuing the confirmation.
func (c ConfirmOrderCommand) SupplierID() kernel.UUID { return c.supplierID }

// Actor returns who confirmed, for the audit trail.
func (c ConfirmOrderCommand) Actor() string { return c.actor }
