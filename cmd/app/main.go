package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	validateAPISpec("api/openapi.yml")

	root := cmd.NewCompositionRoot(configs, gormDB)
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	consumer := root.CreateStatusConsumer()
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(consumerCtx); err != nil {
			root.Logger().Error("Status consumer stopped", "error", err)
		}
	}()
	// Deferred calls run last registered first: cancel the fetch loop
	// before closing the reader so shutdown does not spin on fetch errors.
	defer consumer.Close()
	defer stopConsumer()

	startWebServer(root.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		GeocoderAPIKey:         goDotEnvVariable("GEOCODER_API_KEY"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		BrevoAPIKey:            goDotEnvVariable("BREVO_API_KEY"),
		BrevoSenderName:        goDotEnvVariable("BREVO_SENDER_NAME"),
		BrevoSenderEmail:       goDotEnvVariable("BREVO_SENDER_EMAIL"),
		OpsName:                goDotEnvVariable("OPS_NAME"),
		OpsEmail:               goDotEnvVariable("OPS_EMAIL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func validateAPISpec(path string) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		log.Fatalf("Invalid OpenAPI spec: %v", err)
	}
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
