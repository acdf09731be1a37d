// Package importcaserepo persists import case aggregates, their status
// events and the supplier import batches attached to them.
package importcaserepo

import (
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ImportCaseDTO represents the database structure for persisting cases.
// The status stamps are write-once columns set alongside the transition that
// first reaches the matching status.
type ImportCaseDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID       uuid.UUID  `gorm:"type:uuid;index"`
	ImporterID         uuid.UUID  `gorm:"type:uuid"`
	DeliveryLocationID uuid.UUID  `gorm:"type:uuid"`
	SupplierID         *uuid.UUID `gorm:"type:uuid"`
	Status             string     `gorm:"type:varchar(32);index"`
	SubmittedAt        *time.Time
	ApprovedAt         *time.Time
	RejectedAt         *time.Time
	ClearedAt          *time.Time
	ClosedAt           *time.Time
}

// TableName overrides GORM's default naming to use "import_cases".
func (ImportCaseDTO) TableName() string {
	return "import_cases"
}

// ImportCaseEventDTO is one append-only status audit row of a case.
type ImportCaseEventDTO struct {
	ID           string    `gorm:"type:varchar(26);primaryKey"`
	ImportCaseID uuid.UUID `gorm:"type:uuid;index"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	FromStatus   *string   `gorm:"type:varchar(32)"`
	ToStatus     *string   `gorm:"type:varchar(32)"`
	Note         string
	ChangedBy    string
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "import_case_events".
func (ImportCaseEventDTO) TableName() string {
	return "import_case_events"
}

// SupplierImportDTO is one ingested supplier data batch.
type SupplierImportDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	SupplierID uuid.UUID `gorm:"type:uuid;index"`
	Source     string
	RowCount   int
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "supplier_imports".
func (SupplierImportDTO) TableName() string {
	return "supplier_imports"
}

// CaseSupplierImportDTO links a batch to a case. The composite key makes a
// repeated attachment a conflict, which the repository treats as a no-op.
type CaseSupplierImportDTO struct {
	ImportCaseID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierImportID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
}

// TableName overrides GORM's default naming to use "import_case_supplier_imports".
func (CaseSupplierImportDTO) TableName() string {
	return "import_case_supplier_imports"
}

func fromDomain(aggregate *importcase.ImportCase) ImportCaseDTO {
	stamps := aggregate.Stamps()
	dto := ImportCaseDTO{
		ID:                 aggregate.ID().Bytes(),
		TenantID:           aggregate.TenantID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		ImporterID:         aggregate.ImporterID().Bytes(),
		DeliveryLocationID: aggregate.DeliveryLocationID().Bytes(),
		Status:             string(aggregate.Status()),
		SubmittedAt:        stamps.SubmittedAt,
		ApprovedAt:         stamps.ApprovedAt,
		RejectedAt:         stamps.RejectedAt,
		ClearedAt:          stamps.ClearedAt,
		ClosedAt:           stamps.ClosedAt,
	}
	if id := aggregate.SupplierID(); id != nil {
		raw := id.Bytes()
		dto.SupplierID = &raw
	}
	return dto
}

func eventFromDomain(tenantID kernel.UUID, event importcase.StatusEvent) ImportCaseEventDTO {
	dto := ImportCaseEventDTO{
		ID:           event.ID,
		ImportCaseID: event.ImportID.Bytes(),
		TenantID:     tenantID.Bytes(),
		Note:         event.Note,
		ChangedBy:    event.ChangedBy,
		CreatedAt:    event.CreatedAt,
	}
	if event.FromStatus != nil {
		from := string(*event.FromStatus)
		dto.FromStatus = &from
	}
	if event.ToStatus != nil {
		to := string(*event.ToStatus)
		dto.ToStatus = &to
	}
	return dto
}

func batchFromDomain(batch importcase.SupplierImportBatch) SupplierImportDTO {
	return SupplierImportDTO{
		ID:         batch.ID.Bytes(),
		TenantID:   batch.TenantID.Bytes(),
		SupplierID: batch.SupplierID.Bytes(),
		Source:     batch.Source,
		RowCount:   batch.RowCount,
		CreatedAt:  batch.CreatedAt,
	}
}

func toDomain(dto ImportCaseDTO) (*importcase.ImportCase, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	importerID, err := kernel.UUIDFromBytes(dto.ImporterID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.DeliveryLocationID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sid, sidErr := kernel.UUIDFromBytes((*dto.SupplierID)[:])
		if sidErr != nil {
			return nil, sidErr
		}
		supplierID = &sid
	}

	return importcase.RestoreImportCase(
		id, tenantID, restaurantID, importerID, locationID,
		supplierID,
		importcase.Status(dto.Status),
		importcase.Stamps{
			SubmittedAt: dto.SubmittedAt,
			ApprovedAt:  dto.ApprovedAt,
			RejectedAt:  dto.RejectedAt,
			ClearedAt:   dto.ClearedAt,
			ClosedAt:    dto.ClosedAt,
		},
	)
}

func batchToDomain(dto SupplierImportDTO) (importcase.SupplierImportBatch, error) {
	var batch importcase.SupplierImportBatch
	var err error

	if batch.ID, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return importcase.SupplierImportBatch{}, err
	}
	if batch.TenantID, err = kernel.UUIDFromBytes(dto.TenantID[:]); err != nil {
		return importcase.SupplierImportBatch{}, err
	}
	if batch.SupplierID, err = kernel.UUIDFromBytes(dto.SupplierID[:]); err != nil {
		return importcase.SupplierImportBatch{}, err
	}
	batch.Source = dto.Source
	batch.RowCount = dto.RowCount
	batch.CreatedAt = dto.CreatedAt
	return batch, nil
}
