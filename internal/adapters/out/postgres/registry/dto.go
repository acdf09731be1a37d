// Package registry provides read-only lookups over master data maintained
// outside the orchestration core: suppliers, customs delivery locations and
// the document catalog with its per-case verification records.
package registry

import (
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/location"
	"winetrade/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure of the supplier registry.
type SupplierDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID          uuid.UUID `gorm:"type:uuid;index"`
	Name              string
	Type              string     `gorm:"type:varchar(32)"`
	DefaultImporterID *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "suppliers".
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// DeliveryLocationDTO represents a customs delivery location of a restaurant.
type DeliveryLocationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index"`
	CustomsStatus string    `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "delivery_locations".
func (DeliveryLocationDTO) TableName() string {
	return "delivery_locations"
}

// DocumentTypeDTO is one entry of the tenant's document catalog. The
// required_for column holds the case statuses the document must be verified
// for, as a JSON array.
type DocumentTypeDTO struct {
	TenantID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(64);primaryKey"`
	Name        string
	RequiredFor []importcase.Status `gorm:"serializer:json;column:required_for"`
}

// TableName overrides GORM's default naming to use "document_types".
func (DocumentTypeDTO) TableName() string {
	return "document_types"
}

// DocumentVerificationDTO is the review state of one document of one case.
type DocumentVerificationDTO struct {
	TenantID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImportCaseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentCode string    `gorm:"type:varchar(64);primaryKey"`
	State        string    `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming to use "document_verifications".
func (DocumentVerificationDTO) TableName() string {
	return "document_verifications"
}

func supplierToDomain(dto SupplierDTO) (supplier.Supplier, error) {
	var sup supplier.Supplier
	var err error

	if sup.ID, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return supplier.Supplier{}, err
	}
	if sup.TenantID, err = kernel.UUIDFromBytes(dto.TenantID[:]); err != nil {
		return supplier.Supplier{}, err
	}
	sup.Name = dto.Name
	sup.Type = supplier.Type(dto.Type)
	if err = sup.Type.Validate(); err != nil {
		return supplier.Supplier{}, err
	}
	if dto.DefaultImporterID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.DefaultImporterID)[:])
		if idErr != nil {
			return supplier.Supplier{}, idErr
		}
		sup.DefaultImporterID = &id
	}
	return sup, nil
}

func locationToDomain(dto DeliveryLocationDTO) (location.Location, error) {
	var loc location.Location
	var err error

	if loc.ID, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return location.Location{}, err
	}
	if loc.TenantID, err = kernel.UUIDFromBytes(dto.TenantID[:]); err != nil {
		return location.Location{}, err
	}
	if loc.RestaurantID, err = kernel.UUIDFromBytes(dto.RestaurantID[:]); err != nil {
		return location.Location{}, err
	}
	loc.CustomsStatus = location.CustomsStatus(dto.CustomsStatus)
	loc.CreatedAt = dto.CreatedAt
	return loc, nil
}
