package registry

import (
	"context"
	"errors"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/location"
	"winetrade/internal/core/domain/model/supplier"
	"winetrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierProvider implements ports.SupplierProvider using GORM.
type GormSupplierProvider struct {
	db *gorm.DB
}

// NewGormSupplierProvider creates a supplier lookup over the database.
func NewGormSupplierProvider(db *gorm.DB) *GormSupplierProvider {
	return &GormSupplierProvider{db: db}
}

// Get retrieves a supplier by ID within the tenant.
func (p *GormSupplierProvider) Get(ctx context.Context, tenantID, id kernel.UUID) (supplier.Supplier, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return supplier.Supplier{}, err
	}

	var dto SupplierDTO
	err := p.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return supplier.Supplier{}, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return supplier.Supplier{}, err
	}

	return supplierToDomain(dto)
}

// GormDeliveryLocationProvider implements ports.DeliveryLocationProvider
// using GORM.
type GormDeliveryLocationProvider struct {
	db *gorm.DB
}

// NewGormDeliveryLocationProvider creates a location lookup over the database.
func NewGormDeliveryLocationProvider(db *gorm.DB) *GormDeliveryLocationProvider {
	return &GormDeliveryLocationProvider{db: db}
}

// Get retrieves a location by ID within the tenant.
func (p *GormDeliveryLocationProvider) Get(ctx context.Context, tenantID, id kernel.UUID) (location.Location, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return location.Location{}, err
	}

	var dto DeliveryLocationDTO
	err := p.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("delivery location", id.String())
		}
		return location.Location{}, err
	}

	return locationToDomain(dto)
}

// NewestApproved retrieves the most recently created APPROVED location of
// the restaurant. ErrObjectNotFound when the restaurant has none.
func (p *GormDeliveryLocationProvider) NewestApproved(ctx context.Context, tenantID, restaurantID kernel.UUID) (location.Location, error) {
	if err := errors.Join(tenantID.Validate(), restaurantID.Validate()); err != nil {
		return location.Location{}, err
	}

	var dto DeliveryLocationDTO
	err := p.db.WithContext(ctx).
		Where("restaurant_id = ? AND tenant_id = ? AND customs_status = ?",
			restaurantID.Bytes(), tenantID.Bytes(), string(location.CustomsApproved)).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("approved delivery location", restaurantID.String())
		}
		return location.Location{}, err
	}

	return locationToDomain(dto)
}

// GormDocumentProvider implements ports.DocumentProvider using GORM.
type GormDocumentProvider struct {
	db *gorm.DB
}

// NewGormDocumentProvider creates a document catalog lookup over the database.
func NewGormDocumentProvider(db *gorm.DB) *GormDocumentProvider {
	return &GormDocumentProvider{db: db}
}

// Types retrieves the tenant's document type catalog.
func (p *GormDocumentProvider) Types(ctx context.Context, tenantID kernel.UUID) ([]importcase.DocumentType, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentTypeDTO
	err := p.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "tenant_id = ?", tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	types := make([]importcase.DocumentType, 0, len(dtos))
	for _, dto := range dtos {
		types = append(types, importcase.DocumentType{
			Code:                dto.Code,
			Name:                dto.Name,
			RequiredForStatuses: dto.RequiredFor,
		})
	}
	return types, nil
}

// Verifications retrieves the document verification records of a case.
func (p *GormDocumentProvider) Verifications(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.DocumentVerification, error) {
	if err := errors.Join(tenantID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}

	var dtos []DocumentVerificationDTO
	err := p.db.WithContext(ctx).
		Order("document_code").
		Find(&dtos, "tenant_id = ? AND import_case_id = ?", tenantID.Bytes(), caseID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	verifications := make([]importcase.DocumentVerification, 0, len(dtos))
	for _, dto := range dtos {
		verifications = append(verifications, importcase.DocumentVerification{
			DocumentCode: dto.DocumentCode,
			State:        importcase.VerificationState(dto.State),
		})
	}
	return verifications, nil
}
