package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shipInput(province string) commands.EndpointInput {
	return commands.EndpointInput{
		Street:   "12 Trang Thi",
		District: "Hoan Kiem",
		Province: province,
	}
}

func newCreateOrderCommand(t *testing.T, serviceID kernel.UUID, origin, destination commands.EndpointInput) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), serviceID,
		"Nguyen Van A", "+84901234567",
		"Tran Thi B", "+84907654321",
		origin, destination,
		[]commands.ProductInput{{Name: "Rice bags", Quantity: 100, Unit: "kg"}},
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	serviceID := kernel.NewUUID()

	t.Run("should fail without products", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), serviceID,
			"Nguyen Van A", "+84901234567",
			"Tran Thi B", "+84907654321",
			shipInput("Ho Chi Minh"), shipInput("Ha Noi"), nil)

		require.Error(t, err)
	})

	t.Run("should fail with unknown unit", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), serviceID,
			"Nguyen Van A", "+84901234567",
			"Tran Thi B", "+84907654321",
			shipInput("Ho Chi Minh"), shipInput("Ha Noi"),
			[]commands.ProductInput{{Name: "Rice bags", Quantity: 100, Unit: "lb"}})

		require.Error(t, err)
	})

	t.Run("should fail with incomplete ship endpoint", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), serviceID,
			"Nguyen Van A", "+84901234567",
			"Tran Thi B", "+84907654321",
			commands.EndpointInput{Province: "Ho Chi Minh"}, shipInput("Ha Noi"),
			[]commands.ProductInput{{Name: "Rice bags", Quantity: 100, Unit: "kg"}})

		require.Error(t, err)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("creates order and products for covered ship endpoints", func(t *testing.T) {
		ctx := t.Context()
		service := testService(t)
		cmd := newCreateOrderCommand(t, service.ID(), shipInput("Ho Chi Minh"), shipInput("Ha Noi"))

		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("Get", ctx, service.ID()).Return(service, nil).Once()

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		productRepo := new(MockProductRepository)
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ServiceRepository").Return(serviceRepo)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("ProductRepository").Return(productRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		created := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		require.Equal(t, order.Waiting, created.Status())
		require.Equal(t, "Ho Chi Minh", created.Origin().Province())

		line := productRepo.Calls[0].Arguments.Get(1).(*product.Product)
		require.True(t, line.OrderID().IsEqual(created.ID()))
		require.Equal(t, product.StatusPending, line.Status())

		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("resolves on-site endpoint through the warehouse", func(t *testing.T) {
		ctx := t.Context()
		service := testService(t)
		wh := testWarehouse(t, "District 1 Hub", "Ho Chi Minh", 10.77, 106.70)
		whID := wh.ID()
		cmd := newCreateOrderCommand(t, service.ID(),
			commands.EndpointInput{WarehouseID: &whID}, shipInput("Ha Noi"))

		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("Get", ctx, service.ID()).Return(service, nil).Once()

		warehouseRepo := new(MockWarehouseRepository)
		warehouseRepo.On("Get", ctx, whID).Return(wh, nil).Once()

		orderRepo := new(MockOrderRepository)
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		productRepo := new(MockProductRepository)
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ServiceRepository").Return(serviceRepo)
		uow.On("WarehouseRepository").Return(warehouseRepo)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("ProductRepository").Return(productRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		created := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		require.Equal(t, order.EndpointOnSite, created.Origin().Kind())
		gotID, err := created.Origin().WarehouseID()
		require.NoError(t, err)
		require.True(t, gotID.IsEqual(whID))

		warehouseRepo.AssertExpectations(t)
	})

	t.Run("rejects endpoint outside coverage", func(t *testing.T) {
		ctx := t.Context()
		service := testService(t)
		cmd := newCreateOrderCommand(t, service.ID(), shipInput("Ho Chi Minh"), shipInput("Can Tho"))

		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("Get", ctx, service.ID()).Return(service, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ServiceRepository").Return(serviceRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrProvinceNotCovered)
	})

	t.Run("rejects unconstructed command", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockUoWFactory))

		err := h.Handle(t.Context(), commands.CreateOrderCommand{})

		require.Error(t, err)
	})
}
