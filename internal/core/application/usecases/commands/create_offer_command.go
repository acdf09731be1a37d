package commands

import (
	"errors"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand registers a supplier's offer against a purchase request.
// The offer starts in DRAFT status; line and pricing validation happens in
// the aggregate constructor.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID      kernel.UUID
	tenantID     kernel.UUID
	requestID    kernel.UUID
	restaurantID kernel.UUID
	supplierID   kernel.UUID
	currency     string
	isFranco     bool
	shippingCost float64
	validUntil   *time.Time
	lines        []offer.Line

	guard guard.ConstructorGuard
}

// NewCreateOfferCommand creates a command to register a supplier offer.
func NewCreateOfferCommand(
	offerID, tenantID, requestID, restaurantID, supplierID kernel.UUID,
	currency string,
	isFranco bool,
	shippingCost float64,
	validUntil *time.Time,
	lines []offer.Line,
) (CreateOfferCommand, error) {
	if err := errors.Join(
		offerID.Validate(),
		tenantID.Validate(),
		requestID.Validate(),
		restaurantID.Validate(),
		supplierID.Validate(),
	); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{
		offerID:      offerID,
		tenantID:     tenantID,
		requestID:    requestID,
		restaurantID: restaurantID,
		supplierID:   supplierID,
		currency:     currency,
		isFranco:     isFranco,
		shippingCost: shippingCost,
		validUntil:   validUntil,
		lines:        append([]offer.Line(nil), lines...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer to create.
func (c CreateOfferCommand) OfferID() kernel.UUID { return c.offerID }

// TenantID returns the owning tenant.
func (c CreateOfferCommand) TenantID() kernel.UUID { return c.tenantID }

// RequestID returns the purchase request the offer answers.
func (c CreateOfferCommand) RequestID() kernel.UUID { return c.requestID }

// RestaurantID returns the restaurant the offer is addressed to.
func (c CreateOfferCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// SupplierID returns the offering supplier.
func (c CreateOfferCommand) SupplierID() kernel.UUID { return c.supplierID }

// Currency returns the three-letter offer currency.
func (c CreateOfferCommand) Currency() string { return c.currency }

// IsFranco reports whether shipping is included in the goods price.
func (c CreateOfferCommand) IsFranco() bool { return c.isFranco }

// ShippingCost returns the separate shipping cost, zero for franco offers.
func (c CreateOfferCommand) ShippingCost() float64 { return c.shippingCost }

// ValidUntil returns the offer's validity deadline, if any.
func (c CreateOfferCommand) ValidUntil() *time.Time { return c.validUntil }

// Lines returns the offered wine lines.
func (c CreateOfferCommand) Lines() []offer.Line {
	return append([]offer.Line(nil), c.lines...)
}
