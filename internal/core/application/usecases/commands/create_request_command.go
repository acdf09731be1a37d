package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/pkg/errs"
	"winetrade/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand registers a restaurant's purchase request in DRAFT
// status.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	tenantID        kernel.UUID
	restaurantID    kernel.UUID
	quantityBottles int
	delivery        request.DeliveryDetails

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to register a purchase request.
// Validates identifiers and requires a positive bottle quantity.
func NewCreateRequestCommand(
	requestID, tenantID, restaurantID kernel.UUID,
	quantityBottles int,
	delivery request.DeliveryDetails,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTenantID(tenantID),
		cmd.setRestaurantID(restaurantID),
		cmd.setQuantityBottles(quantityBottles),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	cmd.delivery = delivery
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to create.
func (c CreateRequestCommand) RequestID() kernel.UUID { return c.requestID }

// TenantID returns the owning tenant.
func (c CreateRequestCommand) TenantID() kernel.UUID { return c.tenantID }

// RestaurantID returns the requesting restaurant.
func (c CreateRequestCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// QuantityBottles returns the requested bottle count.
func (c CreateRequestCommand) QuantityBottles() int { return c.quantityBottles }

// Delivery returns the requested delivery details.
func (c CreateRequestCommand) Delivery() request.DeliveryDetails { return c.delivery }

func (c *CreateRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *CreateRequestCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tenantID = id
	return nil
}

func (c *CreateRequestCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateRequestCommand) setQuantityBottles(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantityBottles")
	}
	c.quantityBottles = quantity
	return nil
}
