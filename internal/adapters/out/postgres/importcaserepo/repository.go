package importcaserepo

import (
	"context"
	"errors"
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormImportCaseRepository implements ports.ImportCaseRepository using GORM.
type GormImportCaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormImportCaseRepository creates a new GORM import case repository.
func NewGormImportCaseRepository(db *gorm.DB, tracker aggregateTracker) *GormImportCaseRepository {
	return &GormImportCaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new import case to the database.
func (r *GormImportCaseRepository) Add(ctx context.Context, aggregate *importcase.ImportCase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an import case by ID within the tenant.
func (r *GormImportCaseRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*importcase.ImportCase, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ImportCaseDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("import case", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists the aggregate's status and stamps while the row still
// holds the expected prior status. A lost race surfaces as ErrStaleStatus.
// Stamps are written together with the status so the timestamp and the
// transition it records cannot drift apart.
func (r *GormImportCaseRepository) UpdateStatus(ctx context.Context, aggregate *importcase.ImportCase, expected importcase.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	updates := map[string]any{
		"status": string(aggregate.Status()),
	}
	stamps := aggregate.Stamps()
	applyStamp(updates, "submitted_at", stamps.SubmittedAt)
	applyStamp(updates, "approved_at", stamps.ApprovedAt)
	applyStamp(updates, "rejected_at", stamps.RejectedAt)
	applyStamp(updates, "cleared_at", stamps.ClearedAt)
	applyStamp(updates, "closed_at", stamps.ClosedAt)

	result := r.db.WithContext(ctx).
		Model(&ImportCaseDTO{}).
		Where("id = ? AND tenant_id = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.TenantID().Bytes(), string(expected)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStatusError("import case", aggregate.ID().String(), string(expected))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func applyStamp(updates map[string]any, column string, value *time.Time) {
	if value != nil {
		updates[column] = *value
	}
}

// AddStatusEvent appends one audit row for a case of the tenant.
func (r *GormImportCaseRepository) AddStatusEvent(ctx context.Context, tenantID kernel.UUID, event importcase.StatusEvent) error {
	if err := errors.Join(tenantID.Validate(), event.ImportID.Validate()); err != nil {
		return err
	}

	dto := eventFromDomain(tenantID, event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// LinkSupplierImport records that a batch feeds the case. A repeated link of
// the same pair conflicts on the composite key and is ignored.
func (r *GormImportCaseRepository) LinkSupplierImport(ctx context.Context, tenantID, caseID, batchID kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), caseID.Validate(), batchID.Validate()); err != nil {
		return err
	}

	dto := CaseSupplierImportDTO{
		ImportCaseID:     caseID.Bytes(),
		SupplierImportID: batchID.Bytes(),
		TenantID:         tenantID.Bytes(),
		CreatedAt:        time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// GetLinkedSupplierImports retrieves the batches linked to a case, newest
// link first.
func (r *GormImportCaseRepository) GetLinkedSupplierImports(ctx context.Context, tenantID, caseID kernel.UUID) ([]importcase.SupplierImportBatch, error) {
	if err := errors.Join(tenantID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}

	var dtos []SupplierImportDTO
	err := r.db.WithContext(ctx).
		Model(&SupplierImportDTO{}).
		Joins("JOIN import_case_supplier_imports l ON l.supplier_import_id = supplier_imports.id").
		Where("l.import_case_id = ? AND l.tenant_id = ?", caseID.Bytes(), tenantID.Bytes()).
		Order("l.created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]importcase.SupplierImportBatch, 0, len(dtos))
	for _, dto := range dtos {
		batch, err := batchToDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// GormSupplierImportRepository implements ports.SupplierImportRepository
// using GORM.
type GormSupplierImportRepository struct {
	db *gorm.DB
}

// NewGormSupplierImportRepository creates a new GORM batch repository.
func NewGormSupplierImportRepository(db *gorm.DB) *GormSupplierImportRepository {
	return &GormSupplierImportRepository{db: db}
}

// Add saves a new batch record to the database.
func (r *GormSupplierImportRepository) Add(ctx context.Context, batch importcase.SupplierImportBatch) error {
	if err := errors.Join(batch.ID.Validate(), batch.TenantID.Validate(), batch.SupplierID.Validate()); err != nil {
		return err
	}

	dto := batchFromDomain(batch)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a batch by ID without tenant scoping. Callers compare the
// batch's tenant against their own to detect cross-tenant attachments.
func (r *GormSupplierImportRepository) Get(ctx context.Context, id kernel.UUID) (importcase.SupplierImportBatch, error) {
	if err := id.Validate(); err != nil {
		return importcase.SupplierImportBatch{}, err
	}

	var dto SupplierImportDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return importcase.SupplierImportBatch{}, errs.NewObjectNotFoundError("supplier import batch", id.String())
		}
		return importcase.SupplierImportBatch{}, err
	}

	return batchToDomain(dto)
}
