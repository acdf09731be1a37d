package offerrepo

import (
	"context"
	"errors"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements ports.OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer and its lines to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer with its lines by ID within the tenant.
func (r *GormOfferRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*offer.Offer, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	var lines []OfferLineDTO
	if err = r.db.WithContext(ctx).Find(&lines, "offer_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lines)
}

// UpdateStatus persists the aggregate's status while the row still holds the
// expected prior status. A lost race surfaces as ErrStaleStatus.
func (r *GormOfferRepository) UpdateStatus(ctx context.Context, aggregate *offer.Offer, expected offer.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ? AND tenant_id = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.TenantID().Bytes(), string(expected)).
		Update("status", string(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStatusError("offer", aggregate.ID().String(), string(expected))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListExpired retrieves offers past their validity deadline that still hold
// an expirable status. The sweep crosses tenants; each returned aggregate
// carries its own tenant for the follow-up write.
func (r *GormOfferRepository) ListExpired(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "valid_until IS NOT NULL AND valid_until < ? AND status IN ?",
			now, []string{string(offer.StatusSent), string(offer.StatusViewed)}).Error
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		var lines []OfferLineDTO
		if err = r.db.WithContext(ctx).Find(&lines, "offer_id = ?", dto.ID).Error; err != nil {
			return nil, err
		}
		o, err := toDomain(dto, lines)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
