// Package requestrepo persists purchase request aggregates, mapping between
// the domain model and its relational representation.
package requestrepo

import (
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting requests.
type RequestDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID          `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID          `gorm:"type:uuid;index"`
	Status          string             `gorm:"type:varchar(32);index"`
	QuantityBottles int
	Delivery        DeliveryDetailsDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

// TableName overrides GORM's default naming to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

// DeliveryDetailsDTO is the embedded delivery address of a request.
type DeliveryDetailsDTO struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:              aggregate.ID().Bytes(),
		TenantID:        aggregate.TenantID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		Status:          string(aggregate.Status()),
		QuantityBottles: aggregate.QuantityBottles(),
		Delivery: DeliveryDetailsDTO{
			Street:     aggregate.Delivery().Street,
			PostalCode: aggregate.Delivery().PostalCode,
			City:       aggregate.Delivery().City,
			Country:    aggregate.Delivery().Country,
		},
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
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

	return request.RestoreRequest(id, tenantID, restaurantID, request.Status(dto.Status), dto.QuantityBottles, request.DeliveryDetails{
		Street:     dto.Delivery.Street,
		PostalCode: dto.Delivery.PostalCode,
		City:       dto.Delivery.City,
		Country:    dto.Delivery.Country,
	})
}
