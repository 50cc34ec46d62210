package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact(t *testing.T) order.Contact {
	t.Helper()
	contact, err := order.NewContact("Nguyen Van A", "+84901234567")
	require.NoError(t, err)
	return contact
}

func testOnSite(t *testing.T) order.Endpoint {
	t.Helper()
	endpoint, err := order.NewOnSiteEndpoint(kernel.NewUUID(), "Ho Chi Minh")
	require.NoError(t, err)
	return endpoint
}

func testShip(t *testing.T) order.Endpoint {
	t.Helper()
	address, err := order.NewAddress("12 Trang Thi", "", "Hoan Kiem", "Ha Noi")
	require.NoError(t, err)
	endpoint, err := order.NewShipEndpoint(address)
	require.NoError(t, err)
	return endpoint
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		testContact(t), testContact(t), testOnSite(t), testShip(t))
	require.NoError(t, err)
	return ord
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in waiting status", func(t *testing.T) {
		id := kernel.NewUUID()
		serviceID := kernel.NewUUID()

		ord, err := order.NewOrder(id, serviceID, testContact(t), testContact(t), testOnSite(t), testShip(t))

		require.NoError(t, err)
		require.NoError(t, ord.Validate())
		assert.True(t, ord.ID().IsEqual(id))
		assert.True(t, ord.ServiceID().IsEqual(serviceID))
		assert.Equal(t, order.Waiting, ord.Status())
		assert.Nil(t, ord.Route())
		assert.Zero(t, ord.TotalPrice())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, kernel.NewUUID(), testContact(t), testContact(t), testOnSite(t), testShip(t))

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed contact", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Contact{}, testContact(t), testOnSite(t), testShip(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrContactIsNotConstructed)
	})

	t.Run("should fail with unconstructed endpoint", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testContact(t), testContact(t), order.Endpoint{}, testShip(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrEndpointIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var ord *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, ord.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		route := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		ord, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			testContact(t), testContact(t), testOnSite(t), testShip(t),
			order.Accepted, route, 125000)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, ord.Status())
		assert.Equal(t, int64(125000), ord.TotalPrice())
		require.Len(t, ord.Route(), 2)
		assert.True(t, ord.Route()[0].IsEqual(route[0]))
	})

	t.Run("restores without route", func(t *testing.T) {
		ord, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			testContact(t), testContact(t), testOnSite(t), testShip(t),
			order.Waiting, nil, 0)

		require.NoError(t, err)
		assert.Nil(t, ord.Route())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			testContact(t), testContact(t), testOnSite(t), testShip(t),
			order.Unknown, nil, 0)

		require.Error(t, err)
	})

	t.Run("rejects negative total price", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			testContact(t), testContact(t), testOnSite(t), testShip(t),
			order.Waiting, nil, -1)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	allowed := []struct {
		from order.Status
		to   order.Status
	}{
		{order.Waiting, order.Accepted},
		{order.Waiting, order.Refused},
		{order.Unpaid, order.Paid},
		{order.Unpaid, order.Cancelled},
		{order.Paid, order.Completed},
	}

	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			ord, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
				testContact(t), testContact(t), testOnSite(t), testShip(t),
				tc.from, nil, 0)
			require.NoError(t, err)

			require.NoError(t, ord.ChangeStatus(tc.to))
			assert.Equal(t, tc.to, ord.Status())
		})
	}

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		ord := testOrder(t)

		err := ord.ChangeStatus(order.Completed)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Waiting, ord.Status())
	})

	t.Run("final states allow no transitions", func(t *testing.T) {
		assert.False(t, order.Waiting.IsFinal())
		assert.False(t, order.Unpaid.IsFinal())
		assert.False(t, order.Paid.IsFinal())

		for _, final := range []order.Status{order.Completed, order.Refused, order.Cancelled} {
			require.True(t, final.IsFinal(), "%s is a final state", final)

			ord, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
				testContact(t), testContact(t), testOnSite(t), testShip(t),
				final, nil, 0)
			require.NoError(t, err)

			for _, next := range []order.Status{
				order.Waiting, order.Accepted, order.ProbablyProceed, order.Processing,
				order.Completed, order.Refused, order.Cancelled, order.Paid, order.Unpaid,
			} {
				assert.ErrorIs(t, ord.ChangeStatus(next), order.ErrIllegalTransition,
					"%s to %s must be rejected", final, next)
			}
		}
	})

	t.Run("rejects unknown target status", func(t *testing.T) {
		ord := testOrder(t)

		require.Error(t, ord.ChangeStatus(order.Unknown))
	})
}

func TestOrder_AssignRoute(t *testing.T) {
	t.Run("records a copy of the route", func(t *testing.T) {
		ord := testOrder(t)
		route := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}

		require.NoError(t, ord.AssignRoute(route))

		route[0] = kernel.NewUUID()
		assert.False(t, ord.Route()[0].IsEqual(route[0]))
		assert.Len(t, ord.Route(), 3)
	})

	t.Run("rejects empty route", func(t *testing.T) {
		ord := testOrder(t)

		require.Error(t, ord.AssignRoute(nil))
	})

	t.Run("rejects invalid warehouse id", func(t *testing.T) {
		ord := testOrder(t)

		require.Error(t, ord.AssignRoute([]kernel.UUID{{}}))
	})
}

func TestOrder_SetTotalPrice(t *testing.T) {
	ord := testOrder(t)

	require.NoError(t, ord.SetTotalPrice(45000))
	assert.Equal(t, int64(45000), ord.TotalPrice())

	require.Error(t, ord.SetTotalPrice(-45000))
	assert.Equal(t, int64(45000), ord.TotalPrice())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all wire representations", func(t *testing.T) {
		cases := map[string]order.Status{
			"waiting":         order.Waiting,
			"accepted":        order.Accepted,
			"probablyProceed": order.ProbablyProceed,
			"processing":      order.Processing,
			"completed":       order.Completed,
			"refused":         order.Refused,
			"cancel":          order.Cancelled,
			"pay":             order.Paid,
			"unpay":           order.Unpaid,
		}

		for wire, want := range cases {
			got, err := order.StatusFromString(wire)
			require.NoError(t, err, wire)
			assert.Equal(t, want, got)
			assert.Equal(t, wire, got.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)

		_, err = order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestEndpoint(t *testing.T) {
	t.Run("on-site endpoint exposes warehouse and province", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		endpoint, err := order.NewOnSiteEndpoint(warehouseID, "Ho Chi Minh")
		require.NoError(t, err)

		assert.Equal(t, order.EndpointOnSite, endpoint.Kind())
		assert.Equal(t, "Ho Chi Minh", endpoint.Province())

		got, err := endpoint.WarehouseID()
		require.NoError(t, err)
		assert.True(t, got.IsEqual(warehouseID))

		_, err = endpoint.Address()
		require.Error(t, err)
	})

	t.Run("ship endpoint exposes address and its province", func(t *testing.T) {
		endpoint := testShip(t)

		assert.Equal(t, order.EndpointShip, endpoint.Kind())
		assert.Equal(t, "Ha Noi", endpoint.Province())

		address, err := endpoint.Address()
		require.NoError(t, err)
		assert.Equal(t, "12 Trang Thi, Hoan Kiem, Ha Noi", address.String())

		_, err = endpoint.WarehouseID()
		require.Error(t, err)
	})

	t.Run("address requires street and province", func(t *testing.T) {
		_, err := order.NewAddress("", "", "", "Ha Noi")
		require.Error(t, err)

		_, err = order.NewAddress("12 Trang Thi", "", "", "")
		require.Error(t, err)
	})
}
