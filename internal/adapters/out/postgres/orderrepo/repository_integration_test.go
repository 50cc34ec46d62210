package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.RoutePointDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_route_points").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ServiceID(), retrieved.ServiceID())
	suite.Equal(testOrder.Sender().Name(), retrieved.Sender().Name())
	suite.Equal(testOrder.Sender().Phone(), retrieved.Sender().Phone())
	suite.Equal(testOrder.Receiver().Name(), retrieved.Receiver().Name())
	suite.Equal(order.Waiting, retrieved.Status())
	suite.Equal(int64(0), retrieved.TotalPrice())
	suite.Nil(retrieved.Route())

	suite.Equal(order.EndpointOnSite, retrieved.Origin().Kind())
	suite.Equal("Ho Chi Minh", retrieved.Origin().Province())
	originWarehouse, err := retrieved.Origin().WarehouseID()
	suite.Require().NoError(err)
	expectedWarehouse, err := testOrder.Origin().WarehouseID()
	suite.Require().NoError(err)
	suite.Equal(expectedWarehouse, originWarehouse)

	suite.Equal(order.EndpointShip, retrieved.Destination().Kind())
	address, err := retrieved.Destination().Address()
	suite.Require().NoError(err)
	suite.Equal("12 Trang Thi", address.Street())
	suite.Equal("Hoan Kiem", address.District())
	suite.Equal("Ha Noi", address.Province())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignedRoute_PersistsRoutePointsInOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	route := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	suite.Require().NoError(testOrder.AssignRoute(route))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(route, retrieved.Route())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RecomputedRoute_ReplacesRoutePoints() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	long := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	suite.Require().NoError(testOrder.AssignRoute(long))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// A recomputation may shorten the route; stale points must not survive.
	short := []kernel.UUID{long[0], long[2]}
	suite.Require().NoError(testOrder.AssignRoute(short))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(short, retrieved.Route())

	var pointCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.RoutePointDTO{}).Count(&pointCount).Error)
	suite.Equal(int64(2), pointCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndTotalPrice_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Accepted))
	suite.Require().NoError(testOrder.SetTotalPrice(25000))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Equal(int64(25000), retrieved.TotalPrice())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	waiting1 := suite.createTestOrder()
	waiting2 := suite.createTestOrder()
	refused := suite.createTestOrder()
	suite.Require().NoError(refused.ChangeStatus(order.Refused))

	suite.Require().NoError(suite.repository.Add(ctx, waiting1))
	suite.Require().NoError(suite.repository.Add(ctx, waiting2))
	suite.Require().NoError(suite.repository.Add(ctx, refused))

	waitingOrders, err := suite.repository.GetAllInStatus(ctx, order.Waiting)
	suite.Require().NoError(err)
	suite.Len(waitingOrders, 2)
	for _, o := range waitingOrders {
		suite.Equal(order.Waiting, o.Status())
	}

	refusedOrders, err := suite.repository.GetAllInStatus(ctx, order.Refused)
	suite.Require().NoError(err)
	suite.Len(refusedOrders, 1)
	suite.Equal(refused.ID(), refusedOrders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates an order with an on-site origin and a ship destination.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	sender, err := order.NewContact("Nguyen Van A", "+84901234567")
	suite.Require().NoError(err)
	receiver, err := order.NewContact("Tran Thi B", "+84907654321")
	suite.Require().NoError(err)

	origin, err := order.NewOnSiteEndpoint(kernel.NewUUID(), "Ho Chi Minh")
	suite.Require().NoError(err)

	address, err := order.NewAddress("12 Trang Thi", "", "Hoan Kiem", "Ha Noi")
	suite.Require().NoError(err)
	destination, err := order.NewShipEndpoint(address)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), sender, receiver, origin, destination)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
