// Package offerrepo persists offer aggregates and their priced lines.
package offerrepo

import (
	"sort"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers. Lines
// live in their own table keyed by offer and line number.
type OfferDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	RequestID    uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid"`
	SupplierID   uuid.UUID `gorm:"type:uuid;index"`
	Status       string    `gorm:"type:varchar(32);index"`
	Currency     string    `gorm:"type:varchar(3)"`
	IsFranco     bool
	ShippingCost float64
	ValidUntil   *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

// OfferLineDTO is one priced position of an offer.
type OfferLineDTO struct {
	OfferID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNumber int       `gorm:"primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	WineName   string
	Producer   string
	Vintage    int
	Quantity   int
	Unit       string
	UnitPrice  float64
}

// TableName overrides GORM's default naming to use "offer_lines".
func (OfferLineDTO) TableName() string {
	return "offer_lines"
}

func fromDomain(aggregate *offer.Offer) (OfferDTO, []OfferLineDTO) {
	dto := OfferDTO{
		ID:           aggregate.ID().Bytes(),
		TenantID:     aggregate.TenantID().Bytes(),
		RequestID:    aggregate.RequestID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		SupplierID:   aggregate.SupplierID().Bytes(),
		Status:       string(aggregate.Status()),
		Currency:     aggregate.Currency(),
		IsFranco:     aggregate.IsFranco(),
		ShippingCost: aggregate.ShippingCost(),
		ValidUntil:   aggregate.ValidUntil(),
	}

	lines := make([]OfferLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OfferLineDTO{
			OfferID:    dto.ID,
			LineNumber: i + 1,
			TenantID:   dto.TenantID,
			WineName:   line.WineName,
			Producer:   line.Producer,
			Vintage:    line.Vintage,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			UnitPrice:  line.UnitPrice,
		})
	}

	return dto, lines
}

func toDomain(dto OfferDTO, lineDTOs []OfferLineDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(lineDTOs, func(i, j int) bool { return lineDTOs[i].LineNumber < lineDTOs[j].LineNumber })
	lines := make([]offer.Line, 0, len(lineDTOs))
	for _, line := range lineDTOs {
		lines = append(lines, offer.Line{
			WineName:  line.WineName,
			Producer:  line.Producer,
			Vintage:   line.Vintage,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
			UnitPrice: line.UnitPrice,
		})
	}

	return offer.RestoreOffer(
		id, tenantID, requestID, restaurantID, supplierID,
		offer.Status(dto.Status),
		dto.Currency,
		dto.IsFranco,
		dto.ShippingCost,
		dto.ValidUntil,
		lines,
	)
}
