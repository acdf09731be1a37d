package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand moves an order to a target lifecycle status. The
// transition table decides whether the move is allowed; moving to SHIPPED is
// additionally gated on customs clearance.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	target   order.Status
	actor    string
	note     string

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to change an order's status.
// The note is optional free text recorded on the audit event.
func NewSetOrderStatusCommand(orderID, tenantID kernel.UUID, target order.Status, actor, note string) (SetOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		target.Validate(),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID:  orderID,
		tenantID: tenantID,
		target:   target,
		actor:    actor,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c SetOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant.
func (c SetOrderStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// Target returns the requested lifecycle status.
func (c SetOrderStatusCommand) Target() order.Status { return c.target }

// Actor returns who requested the change, for the audit trail.
func (c SetOrderStatusCommand) Actor() string { return c.actor }

// Note returns the optional free-text note for the audit event.
func (c SetOrderStatusCommand) Note() string { return c.note }

// SetOrderStatusResult reports the committed transition and any follow-up
// steps that failed after the change committed.
type SetOrderStatusResult struct {
	From     order.Status
	To       order.Status
	Degraded []string
}
