package commands_test

import (
	"testing"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/domain/model/supplier"

	"github.com/stretchr/testify/require"
)

func testLines() []offer.Line {
	return []offer.Line{
		{WineName: "Barolo Riserva", Producer: "Cantina Rossi", Vintage: 2018, Quantity: 12, Unit: "bottle", UnitPrice: 42.50},
		{WineName: "Chablis Premier Cru", Producer: "Domaine Petit", Vintage: 2021, Quantity: 6, Unit: "bottle", UnitPrice: 31.00},
	}
}

func euSupplier(tenantID kernel.UUID) supplier.Supplier {
	importerID := kernel.NewUUID()
	return supplier.Supplier{
		ID:                kernel.NewUUID(),
		TenantID:          tenantID,
		Name:              "Cantina Rossi Export",
		Type:              supplier.TypeEUSupplier,
		DefaultImporterID: &importerID,
	}
}

func domesticSupplier(tenantID kernel.UUID) supplier.Supplier {
	importerID := kernel.NewUUID()
	return supplier.Supplier{
		ID:                kernel.NewUUID(),
		TenantID:          tenantID,
		Name:              "Vinimport Stockholm AB",
		Type:              supplier.TypeDomesticImporter,
		DefaultImporterID: &importerID,
	}
}

func offerInStatus(t *testing.T, tenantID, supplierID kernel.UUID, status offer.Status) *offer.Offer {
	t.Helper()
	o, err := offer.RestoreOffer(
		kernel.NewUUID(), tenantID, kernel.NewUUID(), kernel.NewUUID(), supplierID,
		status, "EUR", false, 25.0, nil, testLines(),
	)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, tenantID kernel.UUID, sup supplier.Supplier, status order.Status) *order.Order {
	t.Helper()
	accepted := offerInStatus(t, tenantID, sup.ID, offer.StatusAccepted)
	o, err := order.NewFromAcceptedOffer(kernel.NewUUID(), accepted, sup, order.DeliveryAddress{
		Street: "Vasagatan 7", PostalCode: "111 20", City: "Stockholm", Country: "SE",
	})
	require.NoError(t, err)
	if o.Status() != status {
		walkOrderTo(t, o, status)
	}
	return o
}

// walkOrderTo advances an order along the happy path until it reaches the
// wanted status.
func walkOrderTo(t *testing.T, o *order.Order, want order.Status) {
	t.Helper()
	path := []order.Status{
		order.StatusConfirmed, order.StatusInFulfillment, order.StatusShipped, order.StatusDelivered,
	}
	for _, next := range path {
		if o.Status() == want {
			return
		}
		require.NoError(t, o.TransitionTo(next))
	}
	require.Equal(t, want, o.Status())
}
