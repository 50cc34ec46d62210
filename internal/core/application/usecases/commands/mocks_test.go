package commands_test

import (
	"context"
	"errors"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(_ context.Context, _ *warehouse.Warehouse) error {
	return errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Update(_ context.Context, _ *warehouse.Warehouse) error {
	return errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) AddRoad(_ context.Context, _ *warehouse.Road) error {
	return errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) GetAllRoads(ctx context.Context) ([]*warehouse.Road, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Road), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(_ context.Context, _ *delivery.Service) error {
	return errors.New("not implemented in mock")
}

func (m *MockServiceRepository) Update(_ context.Context, _ *delivery.Service) error {
	return errors.New("not implemented in mock")
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Service), args.Error(1)
}

func (m *MockServiceRepository) GetAll(_ context.Context) ([]*delivery.Service, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockServiceRepository) GetPrice(ctx context.Context, id kernel.UUID) (*pricing.Price, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Price), args.Error(1)
}

func (m *MockServiceRepository) AddPrice(_ context.Context, _ *pricing.Price) error {
	return errors.New("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderProductUoWFactory struct{ mock.Mock }

func (m *MockOrderProductUoWFactory) Create() commands.OrderProductUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderProductUoW)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
