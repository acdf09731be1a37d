package commands

import (
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/pkg/guard"
)

var ErrSetRequestStatusCommandIsNotConstructed = errors.New(
	"SetRequestStatusCommand must be created via NewSetRequestStatusCommand constructor",
)

// SetRequestStatusCommand moves a purchase request to a target lifecycle
// status. The transition table of the request decides whether the move is
// allowed.
type SetRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	tenantID  kernel.UUID
	target    request.Status

	guard guard.ConstructorGuard
}

// NewSetRequestStatusCommand creates a command to change a request's status.
func NewSetRequestStatusCommand(requestID, tenantID kernel.UUID, target request.Status) (SetRequestStatusCommand, error) {
	cmd := SetRequestStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		tenantID.Validate(),
		target.Validate(),
	); err != nil {
		return SetRequestStatusCommand{}, err
	}

	cmd.requestID = requestID
	cmd.tenantID = tenantID
	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRequestStatusCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to change.
func (c SetRequestStatusCommand) RequestID() kernel.UUID { return c.requestID }

// TenantID returns the owning tenant.
func (c SetRequestStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// Target returns the requested lifecycle status.
func (c SetRequestStatusCommand) Target() request.Status { return c.target }
