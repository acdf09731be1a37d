package orderrepo

import (
	"context"
	"errors"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order row. Lines and events are written separately so the
// primary insert can commit on its own.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// AddLines saves the aggregate's line snapshot.
func (r *GormOrderRepository) AddLines(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	lines := linesFromDomain(aggregate)
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// AddEvent appends one audit row for an order of the tenant.
func (r *GormOrderRepository) AddEvent(ctx context.Context, tenantID kernel.UUID, event order.Event) error {
	if err := errors.Join(tenantID.Validate(), event.OrderID.Validate()); err != nil {
		return err
	}

	dto := eventFromDomain(tenantID, event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order with its lines by ID within the tenant.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByOfferID retrieves the order created from the given offer, if any.
func (r *GormOrderRepository) GetByOfferID(ctx context.Context, tenantID, offerID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), offerID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "offer_id = ? AND tenant_id = ?", offerID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order for offer", offerID.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// UpdateStatus persists the aggregate's status while the row still holds the
// expected prior status. A lost race surfaces as ErrStaleStatus.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.TenantID().Bytes(), string(expected)).
		Update("status", string(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStatusError("order", aggregate.ID().String(), string(expected))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// LinkImportCase persists the aggregate's import case and delivery location
// references. The conditional on import_case_id IS NULL keeps the link
// write-once even when two creations race.
func (r *GormOrderRepository) LinkImportCase(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ImportCaseID() == nil {
		return errs.NewValueIsRequiredError("importCaseID")
	}

	updates := map[string]any{
		"import_case_id": aggregate.ImportCaseID().Bytes(),
	}
	if id := aggregate.DeliveryLocationID(); id != nil {
		updates["delivery_location_id"] = id.Bytes()
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ? AND import_case_id IS NULL",
			aggregate.ID().Bytes(), aggregate.TenantID().Bytes()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStatusError("order", aggregate.ID().String(), "unlinked")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) load(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var lines []OrderLineDTO
	if err := r.db.WithContext(ctx).Find(&lines, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}
	return toDomain(dto, lines)
}
