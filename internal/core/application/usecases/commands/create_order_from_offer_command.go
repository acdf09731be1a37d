package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrCreateOrderFromOfferCommandIsNotConstructed = errors.New(
	"CreateOrderFromOfferCommand must be created via NewCreateOrderFromOfferCommand constructor",
)

// CreateOrderFromOfferCommand turns an accepted offer into an order. This is
// the entry point of the fulfillment workflow; the heavy lifting lives in
// the handler.
type CreateOrderFromOfferCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	offerID  kernel.UUID
	tenantID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewCreateOrderFromOfferCommand creates a command to build an order from an
// accepted offer. The actor is recorded on the order's audit events.
func NewCreateOrderFromOfferCommand(orderID, offerID, tenantID kernel.UUID, actor string) (CreateOrderFromOfferCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		offerID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return CreateOrderFromOfferCommand{}, err
	}

	return CreateOrderFromOfferCommand{
		orderID:  orderID,
		offerID:  offerID,
		tenantID: tenantID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderFromOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromOfferCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to create.
func (c CreateOrderFromOfferCommand) OrderID() kernel.UUID { return c.orderID }

// OfferID returns the accepted offer the order is built from.
func (c CreateOrderFromOfferCommand) OfferID() kernel.UUID { return c.offerID }

// TenantID returns the owning tenant.
func (c CreateOrderFromOfferCommand) TenantID() kernel.UUID { return c.tenantID }

// Actor returns who triggered the workflow, for the audit trail.
func (c CreateOrderFromOfferCommand) Actor() string { return c.actor }

// CreateOrderFromOfferResult reports what the fulfillment workflow achieved.
type CreateOrderFromOfferResult struct {
	// OrderID identifies the order for the offer. When AlreadyExisted is
	// true this is the previously created order, not a new one.
	OrderID kernel.UUID

	// ImportCaseID is set when the workflow auto-opened a customs case.
	ImportCaseID *kernel.UUID

	// AlreadyExisted reports that an order for the offer existed before the
	// call and no new writes happened.
	AlreadyExisted bool

	// Degraded lists best-effort steps that failed after the order row
	// committed. The order itself stands regardless.
	Degraded []string
}
