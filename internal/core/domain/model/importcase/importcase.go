// Package importcase implements the customs import case aggregate: the
// compliance record for one order's cross-border goods, linked to exactly one
// delivery location and one importer-of-record.
package importcase

import (
	"errors"
	"time"

	"winetrade/internal/core/domain/model/kernel"
)

// ErrImportCaseIsNotConstructed is returned when an ImportCase instance was
// not created through NewImportCase or RestoreImportCase.
var ErrImportCaseIsNotConstructed = errors.New("ImportCase must be created via NewImportCase constructor")

// Stamps carries the status-specific timestamps of an import case. Each is
// set when the case first reaches the matching status and never cleared.
type Stamps struct {
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	ClearedAt   *time.Time
	ClosedAt    *time.Time
}

// ImportCase is the customs compliance case for one order's goods.
//
// Creation carries no precondition checks: the caller (the order orchestrator,
// or an operator taking responsibility for a manually created case) must have
// already verified that an approved delivery location exists.
type ImportCase struct {
	id                 kernel.UUID
	tenantID           kernel.UUID
	restaurantID       kernel.UUID
	importerID         kernel.UUID
	deliveryLocationID kernel.UUID
	supplierID         *kernel.UUID
	status             Status
	stamps             Stamps

	isConstructed bool
}

// NewImportCase creates a case in NOT_REGISTERED status.
func NewImportCase(id, tenantID, restaurantID, importerID, deliveryLocationID kernel.UUID, supplierID *kernel.UUID) (*ImportCase, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		restaurantID.Validate(),
		importerID.Validate(),
		deliveryLocationID.Validate(),
	); err != nil {
		return nil, err
	}
	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &ImportCase{
		id:                 id,
		tenantID:           tenantID,
		restaurantID:       restaurantID,
		importerID:         importerID,
		deliveryLocationID: deliveryLocationID,
		supplierID:         supplierID,
		status:             StatusNotRegistered,
		isConstructed:      true,
	}, nil
}

// RestoreImportCase reconstructs a case from persistence.
func RestoreImportCase(
	id, tenantID, restaurantID, importerID, deliveryLocationID kernel.UUID,
	supplierID *kernel.UUID,
	status Status,
	stamps Stamps,
) (*ImportCase, error) {
	c, err := NewImportCase(id, tenantID, restaurantID, importerID, deliveryLocationID, supplierID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	c.status = status
	c.stamps = stamps
	return c, nil
}

// Validate ensures the ImportCase was built through a constructor.
func (c *ImportCase) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrImportCaseIsNotConstructed
	}
	return nil
}

// ID returns the case identifier.
func (c *ImportCase) ID() kernel.UUID { return c.id }

// TenantID returns the owning tenant.
func (c *ImportCase) TenantID() kernel.UUID { return c.tenantID }

// RestaurantID returns the receiving restaurant.
func (c *ImportCase) RestaurantID() kernel.UUID { return c.restaurantID }

// ImporterID returns the importer-of-record responsible for the case.
func (c *ImportCase) ImporterID() kernel.UUID { return c.importerID }

// DeliveryLocationID returns the approved customs delivery location.
func (c *ImportCase) DeliveryLocationID() kernel.UUID { return c.deliveryLocationID }

// SupplierID returns the supplier whose goods the case covers, if recorded.
func (c *ImportCase) SupplierID() *kernel.UUID { return c.supplierID }

// Status returns the current lifecycle state.
func (c *ImportCase) Status() Status { return c.status }

// Stamps returns the status-specific timestamps.
func (c *ImportCase) Stamps() Stamps { return c.stamps }

// TransitionTo moves the case to a new status after validating against the
// table, setting the status-specific timestamp that matches the target.
func (c *ImportCase) TransitionTo(to Status, at time.Time) error {
	if err := ValidateTransition(c.status, to); err != nil {
		return err
	}
	c.status = to
	c.stamp(to, at)
	return nil
}

func (c *ImportCase) stamp(to Status, at time.Time) {
	at = at.UTC()
	switch to {
	case StatusSubmitted:
		c.stamps.SubmittedAt = &at
	case StatusApproved:
		c.stamps.ApprovedAt = &at
	case StatusRejected:
		c.stamps.RejectedAt = &at
	case StatusCleared:
		c.stamps.ClearedAt = &at
	case StatusClosed:
		c.stamps.ClosedAt = &at
	case StatusNotRegistered, StatusDocsPending, StatusInTransit:
		// no dedicated timestamp column for these states
	}
}
