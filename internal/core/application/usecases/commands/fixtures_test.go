package commands_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

// testService covers Ho Chi Minh provincial, Ho Chi Minh-Dong Nai short
// haul and Ho Chi Minh-Ha Noi long haul.
func testService(t *testing.T) *delivery.Service {
	t.Helper()

	record := func(from, to string, zone kernel.Zone) delivery.DistanceRecord {
		r, err := delivery.NewDistanceRecord(from, to, zone)
		require.NoError(t, err)
		return r
	}

	service, err := delivery.NewService(kernel.NewUUID(), "Standard Freight",
		[]delivery.DistanceRecord{
			record("Ho Chi Minh", "Ho Chi Minh", kernel.ZoneProvincial),
			record("Ho Chi Minh", "Dong Nai", kernel.ZoneShortHaul),
			record("Ho Chi Minh", "Ha Noi", kernel.ZoneLongHaul),
		}, kernel.NewUUID())
	require.NoError(t, err)
	return service
}

// testPriceTable prices every unit with a single continuing tier of step 1
// and per-zone prices 100/200/300/400.
func testPriceTable(t *testing.T, id kernel.UUID) *pricing.Price {
	t.Helper()

	tier, err := pricing.NewTier(true, 1, []float64{100, 200, 300, 400})
	require.NoError(t, err)
	tiers := []pricing.Tier{tier}

	price, err := pricing.NewPrice(id, tiers, tiers, tiers)
	require.NoError(t, err)
	return price
}

func testWarehouse(t *testing.T, name, province string, lat, lon float64) *warehouse.Warehouse {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	wh, err := warehouse.NewWarehouse(kernel.NewUUID(), name, province, point)
	require.NoError(t, err)
	return wh
}

func testContact(t *testing.T) order.Contact {
	t.Helper()

	contact, err := order.NewContact("Nguyen Van A", "+84901234567")
	require.NoError(t, err)
	return contact
}

// testWaitingOrder runs on-site from the given warehouse to a ship address
// in Ha Noi.
func testWaitingOrder(t *testing.T, serviceID kernel.UUID, originWarehouse *warehouse.Warehouse) *order.Order {
	t.Helper()

	origin, err := order.NewOnSiteEndpoint(originWarehouse.ID(), originWarehouse.Province())
	require.NoError(t, err)

	address, err := order.NewAddress("12 Trang Thi", "", "Hoan Kiem", "Ha Noi")
	require.NoError(t, err)
	destination, err := order.NewShipEndpoint(address)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), serviceID,
		testContact(t), testContact(t), origin, destination)
	require.NoError(t, err)
	return ord
}

func testSplitProduct(t *testing.T, orderID kernel.UUID, quantity float64) *product.Product {
	t.Helper()

	prod, err := product.NewProduct(kernel.NewUUID(), orderID,
		"Rice bags", quantity, kernel.UnitKilogram, "")
	require.NoError(t, err)
	require.NoError(t, prod.Split([]float64{quantity}, func(float64) (int64, error) {
		return 5000, nil
	}))
	return prod
}
