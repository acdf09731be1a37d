// Package orderrepo persists order aggregates, their immutable line
// snapshots and their append-only audit events.
package orderrepo

import (
	"sort"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// The unique index on offer_id backstops the one-order-per-accepted-offer
// rule under concurrent creation.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID       uuid.UUID  `gorm:"type:uuid;index"`
	OfferID            uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RequestID          uuid.UUID  `gorm:"type:uuid"`
	SellerSupplierID   uuid.UUID  `gorm:"type:uuid;index"`
	ImporterOfRecordID uuid.UUID  `gorm:"type:uuid"`
	DeliveryLocationID *uuid.UUID `gorm:"type:uuid"`
	ImportCaseID       *uuid.UUID `gorm:"type:uuid;index"`
	Status             string     `gorm:"type:varchar(32);index"`
	TotalLines         int
	TotalQuantity      int
	Currency           string `gorm:"type:varchar(3)"`
	TotalGoodsAmount   float64
	ShippingCost       float64
	TotalOrderValue    float64
	IsFranco           bool
	Delivery           DeliveryAddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryAddressDTO is the embedded delivery address of an order.
type DeliveryAddressDTO struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// OrderLineDTO is one immutable line snapshot of an order.
type OrderLineDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNumber int       `gorm:"primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	WineName   string
	Producer   string
	Vintage    int
	Quantity   int
	Unit       string
	UnitPrice  float64
	TotalPrice float64
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// OrderEventDTO is one append-only audit row of an order. Rows are inserted
// and read, never updated or deleted.
type OrderEventDTO struct {
	ID         string    `gorm:"type:varchar(26);primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	EventType  string    `gorm:"type:varchar(32)"`
	FromStatus *string   `gorm:"type:varchar(32)"`
	ToStatus   *string   `gorm:"type:varchar(32)"`
	Note       string
	Metadata   map[string]any `gorm:"serializer:json"`
	Actor      string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "order_events".
func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		TenantID:           aggregate.TenantID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		OfferID:            aggregate.OfferID().Bytes(),
		RequestID:          aggregate.RequestID().Bytes(),
		SellerSupplierID:   aggregate.SellerSupplierID().Bytes(),
		ImporterOfRecordID: aggregate.ImporterOfRecordID().Bytes(),
		Status:             string(aggregate.Status()),
		TotalLines:         aggregate.TotalLines(),
		TotalQuantity:      aggregate.TotalQuantity(),
		Currency:           aggregate.Currency(),
		TotalGoodsAmount:   aggregate.TotalGoodsAmount(),
		ShippingCost:       aggregate.ShippingCost(),
		TotalOrderValue:    aggregate.TotalOrderValue(),
		IsFranco:           aggregate.IsFranco(),
		Delivery: DeliveryAddressDTO{
			Street:     aggregate.Delivery().Street,
			PostalCode: aggregate.Delivery().PostalCode,
			City:       aggregate.Delivery().City,
			Country:    aggregate.Delivery().Country,
		},
	}
	if id := aggregate.DeliveryLocationID(); id != nil {
		raw := id.Bytes()
		dto.DeliveryLocationID = &raw
	}
	if id := aggregate.ImportCaseID(); id != nil {
		raw := id.Bytes()
		dto.ImportCaseID = &raw
	}
	return dto
}

func linesFromDomain(aggregate *order.Order) []OrderLineDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    aggregate.ID().Bytes(),
			LineNumber: line.LineNumber,
			TenantID:   aggregate.TenantID().Bytes(),
			WineName:   line.WineName,
			Producer:   line.Producer,
			Vintage:    line.Vintage,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}
	return lines
}

func eventFromDomain(tenantID kernel.UUID, event order.Event) OrderEventDTO {
	dto := OrderEventDTO{
		ID:        event.ID,
		OrderID:   event.OrderID.Bytes(),
		TenantID:  tenantID.Bytes(),
		EventType: string(event.Type),
		Note:      event.Note,
		Metadata:  event.Metadata,
		Actor:     event.Actor,
		CreatedAt: event.CreatedAt,
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

func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	params := order.RestoreParams{
		Status:           order.Status(dto.Status),
		TotalLines:       dto.TotalLines,
		TotalQuantity:    dto.TotalQuantity,
		Currency:         dto.Currency,
		TotalGoodsAmount: dto.TotalGoodsAmount,
		ShippingCost:     dto.ShippingCost,
		TotalOrderValue:  dto.TotalOrderValue,
		IsFranco:         dto.IsFranco,
		Delivery: order.DeliveryAddress{
			Street:     dto.Delivery.Street,
			PostalCode: dto.Delivery.PostalCode,
			City:       dto.Delivery.City,
			Country:    dto.Delivery.Country,
		},
	}

	var err error
	if params.ID, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return nil, err
	}
	if params.TenantID, err = kernel.UUIDFromBytes(dto.TenantID[:]); err != nil {
		return nil, err
	}
	if params.RestaurantID, err = kernel.UUIDFromBytes(dto.RestaurantID[:]); err != nil {
		return nil, err
	}
	if params.OfferID, err = kernel.UUIDFromBytes(dto.OfferID[:]); err != nil {
		return nil, err
	}
	if params.RequestID, err = kernel.UUIDFromBytes(dto.RequestID[:]); err != nil {
		return nil, err
	}
	if params.SellerSupplierID, err = kernel.UUIDFromBytes(dto.SellerSupplierID[:]); err != nil {
		return nil, err
	}
	if params.ImporterOfRecordID, err = kernel.UUIDFromBytes(dto.ImporterOfRecordID[:]); err != nil {
		return nil, err
	}
	if dto.DeliveryLocationID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.DeliveryLocationID)[:])
		if idErr != nil {
			return nil, idErr
		}
		params.DeliveryLocationID = &id
	}
	if dto.ImportCaseID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.ImportCaseID)[:])
		if idErr != nil {
			return nil, idErr
		}
		params.ImportCaseID = &id
	}

	sort.Slice(lineDTOs, func(i, j int) bool { return lineDTOs[i].LineNumber < lineDTOs[j].LineNumber })
	params.Lines = make([]order.Line, 0, len(lineDTOs))
	for _, line := range lineDTOs {
		params.Lines = append(params.Lines, order.Line{
			WineName:   line.WineName,
			Producer:   line.Producer,
			Vintage:    line.Vintage,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
			LineNumber: line.LineNumber,
		})
	}

	return order.RestoreOrder(params)
}
