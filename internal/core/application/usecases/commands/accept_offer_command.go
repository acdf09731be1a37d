package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand accepts a supplier's offer on behalf of the restaurant
// and kicks off order creation.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	tenantID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept an offer.
func NewAcceptOfferCommand(offerID, tenantID kernel.UUID, actor string) (AcceptOfferCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		offerID:  offerID,
		tenantID: tenantID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OfferID returns the offer to accept.
func (c AcceptOfferCommand) OfferID() kernel.UUID { return c.offerID }

// TenantID returns the owning tenant.
func (c AcceptOfferCommand) TenantID() kernel.UUID { return c.tenantID }

// Actor returns who accepted the offer, for the audit trail.
func (c AcceptOfferCommand) Actor() string { return c.actor }

// AcceptOfferResult reports what the acceptance workflow achieved.
type AcceptOfferResult struct {
	// OrderID identifies the order created from the offer. Zero when order
	// creation failed; the offer stays ACCEPTED in that case and order
	// creation can be retried through CreateOrderFromOfferCommand.
	OrderID kernel.UUID

	// ImportCaseID is set when the workflow auto-opened a customs case.
	ImportCaseID *kernel.UUID

	// Degraded lists best-effort steps that failed after the acceptance
	// committed.
	Degraded []string
}
