// Package order implements the order aggregate: a confirmed trade created
// exactly once from an accepted offer, carrying a denormalized line snapshot,
// monetary totals computed once at creation, and an immutable
// importer-of-record reference.
package order

import (
	"errors"
	"fmt"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/supplier"
	"winetrade/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewFromAcceptedOffer or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewFromAcceptedOffer constructor")

// DeliveryAddress carries the address fields copied from the originating
// request at order creation. All fields may be empty: resolution is
// best-effort and absence is not an error.
type DeliveryAddress struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// Order is the aggregate root of a confirmed trade.
//
// Invariants:
//   - created exactly once per accepted offer (1:1)
//   - importer-of-record is computed at creation and never changes
//   - monetary totals are computed at creation and never re-derived
//   - at most one import case may ever be linked
//   - status transitions follow the canonical order table
type Order struct {
	id                 kernel.UUID
	tenantID           kernel.UUID
	restaurantID       kernel.UUID
	offerID            kernel.UUID
	requestID          kernel.UUID
	sellerSupplierID   kernel.UUID
	importerOfRecordID kernel.UUID
	deliveryLocationID *kernel.UUID
	importCaseID       *kernel.UUID
	status             Status
	lines              []Line
	totalLines         int
	totalQuantity      int
	currency           string
	totalGoodsAmount   float64
	shippingCost       float64
	totalOrderValue    float64
	isFranco           bool
	delivery           DeliveryAddress

	isConstructed bool
}

// NewFromAcceptedOffer creates an order from an accepted offer.
//
// The supplier determines both the importer-of-record (its default importer
// reference, mandatory for both supplier types) and the initial status:
// domestic-importer-sourced orders start at PENDING_SUPPLIER_CONFIRMATION,
// EU-sourced orders start at CONFIRMED because the importer-of-record, not
// the originating supplier, drives their fulfillment.
//
// Monetary totals are computed here, once, and stored: they feed external
// invoicing and must stay stable even if catalog prices later change.
func NewFromAcceptedOffer(id kernel.UUID, off *offer.Offer, sup supplier.Supplier, delivery DeliveryAddress) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := off.Validate(); err != nil {
		return nil, err
	}
	if off.Status() != offer.StatusAccepted {
		return nil, errs.NewValueIsInvalidErrorWithCause("offer status",
			fmt.Errorf("cannot create order from offer with status %s", off.Status()))
	}
	if !sup.ID.IsEqual(off.SupplierID()) {
		return nil, errs.NewIntegrityMismatchError("supplier_id", off.SupplierID().String(), sup.ID.String())
	}

	importer, err := sup.ImporterOfRecord()
	if err != nil {
		return nil, err
	}

	offerLines := off.Lines()
	if len(offerLines) == 0 {
		return nil, errs.NewMissingDependencyError("offer lines", "cannot create order with no lines")
	}
	lines := snapshotLines(offerLines)

	totalQuantity := 0
	for _, line := range lines {
		totalQuantity += line.Quantity
	}
	goods := off.GoodsAmount()
	shipping := off.ShippingCost()

	initialStatus := StatusConfirmed
	if sup.Type == supplier.TypeDomesticImporter {
		initialStatus = StatusPendingSupplierConfirmation
	}

	return &Order{
		id:                 id,
		tenantID:           off.TenantID(),
		restaurantID:       off.RestaurantID(),
		offerID:            off.ID(),
		requestID:          off.RequestID(),
		sellerSupplierID:   sup.ID,
		importerOfRecordID: importer,
		status:             initialStatus,
		lines:              lines,
		totalLines:         len(lines),
		totalQuantity:      totalQuantity,
		currency:           off.Currency(),
		totalGoodsAmount:   goods,
		shippingCost:       shipping,
		totalOrderValue:    goods + shipping,
		isFranco:           off.IsFranco(),
		delivery:           delivery,
		isConstructed:      true,
	}, nil
}

// RestoreParams carries the persisted state of an order for reconstruction.
type RestoreParams struct {
	ID                 kernel.UUID
	TenantID           kernel.UUID
	RestaurantID       kernel.UUID
	OfferID            kernel.UUID
	RequestID          kernel.UUID
	SellerSupplierID   kernel.UUID
	ImporterOfRecordID kernel.UUID
	DeliveryLocationID *kernel.UUID
	ImportCaseID       *kernel.UUID
	Status             Status
	Lines              []Line
	TotalLines         int
	TotalQuantity      int
	Currency           string
	TotalGoodsAmount   float64
	ShippingCost       float64
	TotalOrderValue    float64
	IsFranco           bool
	Delivery           DeliveryAddress
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(p RestoreParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.RestaurantID.Validate(),
		p.OfferID.Validate(),
		p.SellerSupplierID.Validate(),
		p.ImporterOfRecordID.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                 p.ID,
		tenantID:           p.TenantID,
		restaurantID:       p.RestaurantID,
		offerID:            p.OfferID,
		requestID:          p.RequestID,
		sellerSupplierID:   p.SellerSupplierID,
		importerOfRecordID: p.ImporterOfRecordID,
		deliveryLocationID: p.DeliveryLocationID,
		importCaseID:       p.ImportCaseID,
		status:             p.Status,
		lines:              append([]Line(nil), p.Lines...),
		totalLines:         p.TotalLines,
		totalQuantity:      p.TotalQuantity,
		currency:           p.Currency,
		totalGoodsAmount:   p.TotalGoodsAmount,
		shippingCost:       p.ShippingCost,
		totalOrderValue:    p.TotalOrderValue,
		isFranco:           p.IsFranco,
		delivery:           p.Delivery,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant.
func (o *Order) TenantID() kernel.UUID { return o.tenantID }

// RestaurantID returns the buying restaurant.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// OfferID returns the accepted offer this order was created from.
func (o *Order) OfferID() kernel.UUID { return o.offerID }

// RequestID returns the originating purchase request.
func (o *Order) RequestID() kernel.UUID { return o.requestID }

// SellerSupplierID returns the supplier fulfilling the order.
func (o *Order) SellerSupplierID() kernel.UUID { return o.sellerSupplierID }

// ImporterOfRecordID returns the importer-of-record, fixed at creation.
func (o *Order) ImporterOfRecordID() kernel.UUID { return o.importerOfRecordID }

// DeliveryLocationID returns the customs delivery location, if one is set.
func (o *Order) DeliveryLocationID() *kernel.UUID { return o.deliveryLocationID }

// ImportCaseID returns the linked import case, if any.
func (o *Order) ImportCaseID() *kernel.UUID { return o.importCaseID }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Lines returns a copy of the immutable line snapshot.
func (o *Order) Lines() []Line { return append([]Line(nil), o.lines...) }

// TotalLines returns the number of snapshot lines.
func (o *Order) TotalLines() int { return o.totalLines }

// TotalQuantity returns the summed quantity across all lines.
func (o *Order) TotalQuantity() int { return o.totalQuantity }

// Currency returns the ISO currency of all amounts on the order.
func (o *Order) Currency() string { return o.currency }

// TotalGoodsAmount returns the goods amount computed at creation.
func (o *Order) TotalGoodsAmount() float64 { return o.totalGoodsAmount }

// ShippingCost returns the shipping cost computed at creation.
func (o *Order) ShippingCost() float64 { return o.shippingCost }

// TotalOrderValue returns goods plus shipping, computed at creation.
func (o *Order) TotalOrderValue() float64 { return o.totalOrderValue }

// IsFranco reports whether the supplier delivers free of shipping charges.
func (o *Order) IsFranco() bool { return o.isFranco }

// Delivery returns the delivery address copied from the request.
func (o *Order) Delivery() DeliveryAddress { return o.delivery }

// TransitionTo moves the order to a new status after validating against the
// canonical table. Cross-entity gates (import case approval before shipment)
// are the orchestrator's responsibility.
func (o *Order) TransitionTo(to Status) error {
	if err := ValidateTransition(o.status, to); err != nil {
		return err
	}
	o.status = to
	return nil
}

// SetDeliveryLocation records the customs delivery location the import case
// was anchored to.
func (o *Order) SetDeliveryLocation(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	o.deliveryLocationID = &locationID
	return nil
}

// LinkImportCase links the customs case for this order's goods. An order can
// carry at most one import case; the reference is never overwritten.
func (o *Order) LinkImportCase(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	if o.importCaseID != nil {
		return errs.NewValueIsInvalidErrorWithCause("importCaseId",
			fmt.Errorf("order %s already has import case %s", o.id, o.importCaseID))
	}
	o.importCaseID = &caseID
	return nil
}
