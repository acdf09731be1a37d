// Package request implements the purchase request aggregate: a buyer's
// sourcing ask that suppliers answer with offers.
package request

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// DeliveryDetails carries the address a buyer wants the goods delivered to.
// Copied onto orders at creation; all fields may be empty.
type DeliveryDetails struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// Request is a buyer's sourcing ask, owned by the restaurant that raised it.
// It is mutated only by buyer actions and by offer acceptance (OPEN to ACCEPTED).
type Request struct {
	id              kernel.UUID
	tenantID        kernel.UUID
	restaurantID    kernel.UUID
	status          Status
	quantityBottles int
	delivery        DeliveryDetails

	isConstructed bool
}

// NewRequest creates a request in DRAFT status.
func NewRequest(id, tenantID, restaurantID kernel.UUID, quantityBottles int, delivery DeliveryDetails) (*Request, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if quantityBottles <= 0 {
		return nil, errs.NewValueIsInvalidError("quantityBottles")
	}

	return &Request{
		id:              id,
		tenantID:        tenantID,
		restaurantID:    restaurantID,
		status:          StatusDraft,
		quantityBottles: quantityBottles,
		delivery:        delivery,
		isConstructed:   true,
	}, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(id, tenantID, restaurantID kernel.UUID, status Status, quantityBottles int, delivery DeliveryDetails) (*Request, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Request{
		id:              id,
		tenantID:        tenantID,
		restaurantID:    restaurantID,
		status:          status,
		quantityBottles: quantityBottles,
		delivery:        delivery,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Request was built through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// TenantID returns the owning tenant.
func (r *Request) TenantID() kernel.UUID { return r.tenantID }

// RestaurantID returns the buyer that raised the request.
func (r *Request) RestaurantID() kernel.UUID { return r.restaurantID }

// Status returns the current lifecycle state.
func (r *Request) Status() Status { return r.status }

// QuantityBottles returns the requested volume.
func (r *Request) QuantityBottles() int { return r.quantityBottles }

// Delivery returns the requested delivery details.
func (r *Request) Delivery() DeliveryDetails { return r.delivery }

// Open publishes a draft request to suppliers.
func (r *Request) Open() error { return r.transitionTo(StatusOpen) }

// Accept marks the request as satisfied by an accepted offer.
func (r *Request) Accept() error { return r.transitionTo(StatusAccepted) }

// Close ends the request's lifecycle.
func (r *Request) Close() error { return r.transitionTo(StatusClosed) }

// Cancel withdraws the request.
func (r *Request) Cancel() error { return r.transitionTo(StatusCancelled) }

func (r *Request) transitionTo(to Status) error {
	if err := ValidateTransition(r.status, to); err != nil {
		return err
	}
	r.status = to
	return nil
}
