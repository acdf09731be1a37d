package commands

import (
	"errors"
	"fmt"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"
	"winetrade/internal/pkg/guard"
)

var ErrCreateImportCaseCommandIsNotConstructed = errors.New(
	"CreateImportCaseCommand must be created via NewCreateImportCaseCommand constructor",
)

// CreateImportCaseCommand registers a customs import case manually, with an
// explicitly chosen delivery location. Cases tied to an order are normally
// created through CreateImportCaseForOrderCommand instead.
type CreateImportCaseCommand struct { //nolint:recvcheck //using for validation
	caseID             kernel.UUID
	tenantID           kernel.UUID
	restaurantID       kernel.UUID
	importerID         kernel.UUID
	deliveryLocationID kernel.UUID
	supplierID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateImportCaseCommand creates a command to register an import case.
func NewCreateImportCaseCommand(
	caseID, tenantID, restaurantID, importerID, deliveryLocationID kernel.UUID,
	supplierID *kernel.UUID,
) (CreateImportCaseCommand, error) {
	if err := errors.Join(
		caseID.Validate(),
		tenantID.Validate(),
		restaurantID.Validate(),
		importerID.Validate(),
		deliveryLocationID.Validate(),
	); err != nil {
		return CreateImportCaseCommand{}, err
	}
	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return CreateImportCaseCommand{}, err
		}
	}

	return CreateImportCaseCommand{
		caseID:             caseID,
		tenantID:           tenantID,
		restaurantID:       restaurantID,
		importerID:         importerID,
		deliveryLocationID: deliveryLocationID,
		supplierID:         supplierID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateImportCaseCommand) Validate() error {
	return c.guard.Validate(ErrCreateImportCaseCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to create.
func (c CreateImportCaseCommand) CaseID() kernel.UUID { return c.caseID }

// TenantID returns the owning tenant.
func (c CreateImportCaseCommand) TenantID() kernel.UUID { return c.tenantID }

// RestaurantID returns the receiving restaurant.
func (c CreateImportCaseCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// ImporterID returns the importer-of-record responsible for the case.
func (c CreateImportCaseCommand) ImporterID() kernel.UUID { return c.importerID }

// DeliveryLocationID returns the chosen customs delivery location.
func (c CreateImportCaseCommand) DeliveryLocationID() kernel.UUID { return c.deliveryLocationID }

// SupplierID returns the supplier whose goods the case covers, if recorded.
func (c CreateImportCaseCommand) SupplierID() *kernel.UUID { return c.supplierID }

func notApprovedLocationError(locationID kernel.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause("deliveryLocationID",
		fmt.Errorf("location %s does not hold APPROVED customs status", locationID))
}
