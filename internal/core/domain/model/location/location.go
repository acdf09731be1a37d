// Package location holds the value types returned by the delivery-location
// lookup. A delivery location is a restaurant address pre-approved by customs
// authorities to receive duty-deferred goods; only an APPROVED location may
// anchor an import case.
package location

import (
	"time"

	"winetrade/internal/core/domain/model/kernel"
)

// CustomsStatus is the registration state of a delivery location with the
// customs authorities.
type CustomsStatus string

const (
	CustomsApproved CustomsStatus = "APPROVED"
	CustomsPending  CustomsStatus = "PENDING"
	CustomsRejected CustomsStatus = "REJECTED"
)

// Location is the lookup view of a restaurant delivery location.
type Location struct {
	ID            kernel.UUID
	TenantID      kernel.UUID
	RestaurantID  kernel.UUID
	CustomsStatus CustomsStatus
	CreatedAt     time.Time
}

// IsApproved reports whether the location may anchor an import case.
func (l Location) IsApproved() bool {
	return l.CustomsStatus == CustomsApproved
}
