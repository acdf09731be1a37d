// Package offer implements the supplier offer aggregate: a priced response
// to a purchase request, carrying the line items that an accepted trade
// snapshots into an order.
package offer

import (
	"errors"
	"fmt"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not
// created through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// Line is one priced position of an offer: a wine, a quantity and a unit price.
type Line struct {
	WineName  string
	Producer  string
	Vintage   int
	Quantity  int
	Unit      string
	UnitPrice float64
}

// Validate checks the business rules for a single offer line.
func (l Line) Validate() error {
	if l.WineName == "" {
		return errs.NewValueIsRequiredError("wineName")
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	if l.UnitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", l.UnitPrice))
	}
	return nil
}

// Total returns the line amount (unit price times quantity).
func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Offer is a supplier's priced response to a purchase request.
// Once accepted it is immutable; the accepted snapshot feeds order creation.
type Offer struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	requestID    kernel.UUID
	restaurantID kernel.UUID
	supplierID   kernel.UUID
	status       Status
	currency     string
	isFranco     bool
	shippingCost float64
	validUntil   *time.Time
	lines        []Line

	isConstructed bool
}

// NewOffer creates an offer in DRAFT status. Lines may still be empty at this
// point; the no-lines rule is enforced at order creation, not here, so that
// suppliers can draft incrementally.
func NewOffer(
	id, tenantID, requestID, restaurantID, supplierID kernel.UUID,
	currency string,
	isFranco bool,
	shippingCost float64,
	validUntil *time.Time,
	lines []Line,
) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		requestID.Validate(),
		restaurantID.Validate(),
		supplierID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(currency) != 3 {
		return nil, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter ISO code", currency))
	}
	if shippingCost < 0 {
		return nil, errs.NewValueIsInvalidError("shippingCost")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Offer{
		id:            id,
		tenantID:      tenantID,
		requestID:     requestID,
		restaurantID:  restaurantID,
		supplierID:    supplierID,
		status:        StatusDraft,
		currency:      currency,
		isFranco:      isFranco,
		shippingCost:  shippingCost,
		validUntil:    validUntil,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// RestoreOffer reconstructs an offer from persistence.
func RestoreOffer(
	id, tenantID, requestID, restaurantID, supplierID kernel.UUID,
	status Status,
	currency string,
	isFranco bool,
	shippingCost float64,
	validUntil *time.Time,
	lines []Line,
) (*Offer, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOffer(id, tenantID, requestID, restaurantID, supplierID, currency, isFranco, shippingCost, validUntil, lines)
	if err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Offer was built through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer identifier.
func (o *Offer) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant.
func (o *Offer) TenantID() kernel.UUID { return o.tenantID }

// RequestID returns the purchase request this offer answers.
func (o *Offer) RequestID() kernel.UUID { return o.requestID }

// RestaurantID returns the buyer the offer is addressed to.
func (o *Offer) RestaurantID() kernel.UUID { return o.restaurantID }

// SupplierID returns the supplier that priced the offer.
func (o *Offer) SupplierID() kernel.UUID { return o.supplierID }

// Status returns the current lifecycle state.
func (o *Offer) Status() Status { return o.status }

// Currency returns the three-letter ISO currency of all amounts on the offer.
func (o *Offer) Currency() string { return o.currency }

// IsFranco reports whether the supplier delivers free of shipping charges.
func (o *Offer) IsFranco() bool { return o.isFranco }

// ShippingCost returns the quoted shipping cost.
func (o *Offer) ShippingCost() float64 { return o.shippingCost }

// ValidUntil returns the end of the offer's validity window, if any.
func (o *Offer) ValidUntil() *time.Time { return o.validUntil }

// Lines returns a copy of the offer's line items.
func (o *Offer) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// GoodsAmount returns the sum of all line totals.
func (o *Offer) GoodsAmount() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Total()
	}
	return total
}

// Send delivers a draft offer to the buyer.
func (o *Offer) Send() error { return o.transitionTo(StatusSent) }

// MarkViewed records that the buyer opened the offer.
func (o *Offer) MarkViewed() error { return o.transitionTo(StatusViewed) }

// Accept marks the offer as accepted by the buyer. After this the offer is
// immutable; every further transition fails against the table.
func (o *Offer) Accept() error { return o.transitionTo(StatusAccepted) }

// Reject marks the offer as declined by the buyer.
func (o *Offer) Reject() error { return o.transitionTo(StatusRejected) }

// Expire marks the offer as having passed its validity window.
func (o *Offer) Expire() error { return o.transitionTo(StatusExpired) }

// IsExpiredAt reports whether the offer's validity window lies before now.
func (o *Offer) IsExpiredAt(now time.Time) bool {
	return o.validUntil != nil && o.validUntil.Before(now)
}

func (o *Offer) transitionTo(to Status) error {
	if err := ValidateTransition(o.status, to); err != nil {
		return err
	}
	o.status = to
	return nil
}
