package commands

import (
	"errors"
	"time"

	"winetrade/internal/pkg/guard"
)

var ErrExpireOffersCommandIsNotConstructed = errors.New(
	"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
)

// ExpireOffersCommand expires every open offer whose validity deadline
// passed. Issued periodically by the offer expiry job.
type ExpireOffersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to expire overdue offers as of
// the given instant.
func NewExpireOffersCommand(now time.Time) (ExpireOffersCommand, error) {
	if now.IsZero() {
		return ExpireOffersCommand{}, errors.New("now is required")
	}

	return ExpireOffersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}

// Now returns the instant offers are compared against.
func (c ExpireOffersCommand) Now() time.Time { return c.now }

// ExpireOffersResult reports how the sweep went.
type ExpireOffersResult struct {
	Expired int
	Failed  int
}
