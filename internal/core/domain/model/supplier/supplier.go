// Package supplier holds the value types returned by the supplier registry.
// Suppliers are an external collaborator of the orchestration core; only the
// fields the orchestrator needs (type and default importer-of-record) are
// modeled here.
package supplier

import (
	"fmt"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"
)

// Type classifies a supplier by customs origin.
type Type string

const (
	// TypeDomesticImporter is a supplier already established in the buyer's
	// market. It still needs an importer-of-record identity of its own to act
	// as IOR on orders it fulfills.
	TypeDomesticImporter Type = "DOMESTIC_IMPORTER"

	// TypeEUSupplier is an EU-origin supplier whose orders cross a customs
	// border and therefore require an import case.
	TypeEUSupplier Type = "EU_SUPPLIER"
)

// Validate checks that the type is one of the known supplier types.
func (t Type) Validate() error {
	switch t {
	case TypeDomesticImporter, TypeEUSupplier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("supplier type",
			fmt.Errorf("%s is not a known supplier type", string(t)))
	}
}

// IsEUOrigin reports whether orders from this supplier type cross a
// customs border and need an import case.
func (t Type) IsEUOrigin() bool {
	return t == TypeEUSupplier
}

// Supplier is the registry view of a wine supplier.
type Supplier struct {
	ID                kernel.UUID
	TenantID          kernel.UUID
	Name              string
	Type              Type
	DefaultImporterID *kernel.UUID
}

// ImporterOfRecord resolves the importer-of-record for orders sourced from
// this supplier. Both supplier types must carry a default importer reference;
// its absence is a hard failure, never a silent default.
func (s Supplier) ImporterOfRecord() (kernel.UUID, error) {
	if s.DefaultImporterID == nil {
		return kernel.UUID{}, errs.NewMissingDependencyError(
			"default importer-of-record",
			fmt.Sprintf("supplier %s of type %s has no importer reference", s.ID, s.Type),
		)
	}
	return *s.DefaultImporterID, nil
}
