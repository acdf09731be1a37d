package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/errs"
	"winetrade/internal/pkg/guard"
)

var ErrSetOfferStatusCommandIsNotConstructed = errors.New(
	"SetOfferStatusCommand must be created via NewSetOfferStatusCommand constructor",
)

// SetOfferStatusCommand moves an offer along its lifecycle: SENT, VIEWED or
// REJECTED. Acceptance is excluded on purpose, because accepting an offer
// triggers the order creation workflow and goes through AcceptOfferCommand.
// Expiry is excluded too; it belongs to the expiry job.
type SetOfferStatusCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	tenantID kernel.UUID
	target   offer.Status

	guard guard.ConstructorGuard
}

// NewSetOfferStatusCommand creates a command to change an offer's status.
// Only SENT, VIEWED and REJECTED are accepted as targets.
func NewSetOfferStatusCommand(offerID, tenantID kernel.UUID, target offer.Status) (SetOfferStatusCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		tenantID.Validate(),
		target.Validate(),
	); err != nil {
		return SetOfferStatusCommand{}, err
	}

	switch target {
	case offer.StatusSent, offer.StatusViewed, offer.StatusRejected:
	default:
		return SetOfferStatusCommand{}, errs.NewValueIsInvalidError("target")
	}

	return SetOfferStatusCommand{
		offerID:  offerID,
		tenantID: tenantID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOfferStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferStatusCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer to change.
func (c SetOfferStatusCommand) OfferID() kernel.UUID { return c.offerID }

// TenantID returns the owning tenant.
func (c SetOfferStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// Target returns the requested lifecycle status.
func (c SetOfferStatusCommand) Target() offer.Status { return c.target }
