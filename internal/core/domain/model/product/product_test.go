package product_test

import (
	"errors"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPrice(value int64) product.PriceFunc {
	return func(float64) (int64, error) {
		return value, nil
	}
}

func testProduct(t *testing.T, quantity float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		"Rice bags", quantity, kernel.UnitKilogram, "keep dry")
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create pending product", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		p, err := product.NewProduct(id, orderID, "Rice bags", 120, kernel.UnitKilogram, "keep dry")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, product.StatusPending, p.Status())
		assert.False(t, p.IsSplit())
		assert.Nil(t, p.Shipments())
		assert.Equal(t, "keep dry", p.Note())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Rice bags", 0, kernel.UnitKilogram, "")
		require.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Rice bags", -3, kernel.UnitKilogram, "")
		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", 10, kernel.UnitKilogram, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unknown unit", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Rice bags", 10, kernel.UnitUnknown, "")

		require.Error(t, err)
	})

	t.Run("nil product fails validation", func(t *testing.T) {
		var p *product.Product

		assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	})
}

func TestProduct_Split(t *testing.T) {
	t.Run("partitions quantity into priced shipments", func(t *testing.T) {
		p := testProduct(t, 100)

		require.NoError(t, p.Split([]float64{60, 30, 10}, flatPrice(5000)))

		assert.True(t, p.IsSplit())
		assert.Equal(t, product.StatusAlreadySplit, p.Status())
		require.Len(t, p.Shipments(), 3)
		assert.InDelta(t, 60, p.Shipments()[0].Quantity(), 1e-12)
		assert.Equal(t, int64(15000), p.ShipmentsValue())
	})

	t.Run("single part covering the whole quantity", func(t *testing.T) {
		p := testProduct(t, 42.5)

		require.NoError(t, p.Split([]float64{42.5}, flatPrice(1000)))

		require.Len(t, p.Shipments(), 1)
	})

	t.Run("re-split replaces the previous shipment set", func(t *testing.T) {
		p := testProduct(t, 100)
		require.NoError(t, p.Split([]float64{50, 50}, flatPrice(2000)))

		require.NoError(t, p.Split([]float64{100}, flatPrice(9000)))

		require.Len(t, p.Shipments(), 1)
		assert.Equal(t, int64(9000), p.ShipmentsValue())
	})

	t.Run("rejects parts that do not sum to the quantity", func(t *testing.T) {
		p := testProduct(t, 100)

		err := p.Split([]float64{60, 30}, flatPrice(1000))

		require.ErrorIs(t, err, product.ErrQuantityMismatch)
		assert.False(t, p.IsSplit())
		assert.Nil(t, p.Shipments())
	})

	t.Run("rejects parts summing above the quantity", func(t *testing.T) {
		p := testProduct(t, 100)

		require.ErrorIs(t, p.Split([]float64{60, 50}, flatPrice(1000)), product.ErrQuantityMismatch)
	})

	t.Run("rejects non-positive parts", func(t *testing.T) {
		p := testProduct(t, 100)

		require.ErrorIs(t, p.Split([]float64{100, 0}, flatPrice(1000)), product.ErrQuantityMismatch)
		require.ErrorIs(t, p.Split([]float64{110, -10}, flatPrice(1000)), product.ErrQuantityMismatch)
	})

	t.Run("rejects empty part list", func(t *testing.T) {
		p := testProduct(t, 100)

		require.Error(t, p.Split(nil, flatPrice(1000)))
	})

	t.Run("pricing failure leaves the product unchanged", func(t *testing.T) {
		p := testProduct(t, 100)
		require.NoError(t, p.Split([]float64{100}, flatPrice(3000)))

		priceErr := errors.New("price table unavailable")
		err := p.Split([]float64{50, 50}, func(float64) (int64, error) { return 0, priceErr })

		require.ErrorIs(t, err, priceErr)
		require.Len(t, p.Shipments(), 1)
		assert.Equal(t, int64(3000), p.ShipmentsValue())
	})
}

func TestRestoreProduct(t *testing.T) {
	shipment := func(t *testing.T, quantity float64, value int64) product.Shipment {
		t.Helper()
		s, err := product.NewShipment(kernel.NewUUID(), quantity, value)
		require.NoError(t, err)
		return s
	}

	t.Run("restores split product with shipments", func(t *testing.T) {
		shipments := []product.Shipment{shipment(t, 70, 4000), shipment(t, 30, 2000)}

		p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"Rice bags", 100, kernel.UnitKilogram, "",
			product.StatusAlreadySplit, shipments)

		require.NoError(t, err)
		assert.True(t, p.IsSplit())
		assert.Equal(t, int64(6000), p.ShipmentsValue())
	})

	t.Run("rejects split product whose shipments do not sum", func(t *testing.T) {
		shipments := []product.Shipment{shipment(t, 70, 4000)}

		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"Rice bags", 100, kernel.UnitKilogram, "",
			product.StatusAlreadySplit, shipments)

		require.ErrorIs(t, err, product.ErrQuantityMismatch)
	})

	t.Run("rejects pending product carrying shipments", func(t *testing.T) {
		shipments := []product.Shipment{shipment(t, 100, 4000)}

		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"Rice bags", 100, kernel.UnitKilogram, "",
			product.StatusPending, shipments)

		require.Error(t, err)
	})

	t.Run("rejects split product without shipments", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
			"Rice bags", 100, kernel.UnitKilogram, "",
			product.StatusAlreadySplit, nil)

		require.Error(t, err)
	})
}

func TestNewShipment(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := product.NewShipment(kernel.NewUUID(), 0, 100)
		require.Error(t, err)
	})

	t.Run("rejects negative value", func(t *testing.T) {
		_, err := product.NewShipment(kernel.NewUUID(), 10, -1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s product.Shipment
		assert.Equal(t, product.ErrShipmentIsNotConstructed, s.Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	pending, err := product.StatusFromString("pending")
	require.NoError(t, err)
	assert.Equal(t, product.StatusPending, pending)

	already, err := product.StatusFromString("already")
	require.NoError(t, err)
	assert.Equal(t, product.StatusAlreadySplit, already)
	assert.Equal(t, "already", already.String())

	_, err = product.StatusFromString("split")
	require.Error(t, err)
}
