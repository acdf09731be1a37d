package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"
	"winetrade/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand records a domestic importer's refusal of an order
// awaiting confirmation, cancelling it. A reason is mandatory: the refusal
// ends the trade and the restaurant is owed an explanation.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	tenantID   kernel.UUID
	supplierID kernel.UUID
	actor      string
	reason     string

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command for a supplier's refusal. The
// supplier must be the one selling the order.
func NewDeclineOrderCommand(orderID, tenantID, supplierID kernel.UUID, actor, reason string) (DeclineOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		supplierID.Validate(),
	); err != nil {
		return DeclineOrderCommand{}, err
	}
	if reason == "" {
		return DeclineOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return DeclineOrderCommand{
		orderID:    orderID,
		tenantID:   tenantID,
		supplierID: supplierID,
		actor:      actor,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c DeclineOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant.
func (c DeclineOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// SupplierID returns the supplier issuing the refusal.
func (c DeclineOrderCommand) SupplierID() kernel.UUID { return c.supplierID }

// Actor returns who declined, for the audit trail.
func (c DeclineOrderCommand) Actor() string { return c.actor }

// Reason returns the mandatory refusal reason.
func (c DeclineOrderCommand) Reason() string { return c.reason }
