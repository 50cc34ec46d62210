package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "logistics/internal/adapters/in/http"
	kafkain "logistics/internal/adapters/in/kafka"
	"logistics/internal/adapters/out/geo"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	dispatcher *notify.Dispatcher
	geocoder   *geo.OpenCageGeocoder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	mailSender := notify.NewBrevoMailSender(
		config.BrevoAPIKey, config.BrevoSenderName, config.BrevoSenderEmail)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(config.KafkaHost, config.KafkaOrderChangedTopic),
		dispatcher: notify.NewDispatcher(mailSender, 256, 15*time.Second, logger),
		geocoder:   geo.NewOpenCageGeocoder(config.GeocoderAPIKey),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateComputeRouteCommandHandler() commands.ComputeRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewComputeRouteCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateSplitProductCommandHandler() commands.SplitProductCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSplitProductCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehousesQueryHandler() queries.GetWarehousesQueryHandler {
	return queries.NewGetWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateComputeRouteCommandHandler(),
		c.CreateSplitProductCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetWarehousesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateStatusConsumer() *kafkain.StatusConsumer {
	return kafkain.NewStatusConsumer(
		c.config.KafkaHost,
		c.config.KafkaOrderChangedTopic,
		c.config.KafkaConsumerGroup,
		c.dispatcher,
		c.config.OpsName,
		c.config.OpsEmail,
		c.logger,
	)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close flushes the notification queue and closes the Kafka writer.
func (c *CompositionRoot) Close() error {
	c.dispatcher.Close()
	return c.publisher.Close()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}
