package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GeocoderAPIKey string

	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaOrderChangedTopic string

	BrevoAPIKey      string
	BrevoSenderName  string
	BrevoSenderEmail string

	OpsName  string
	OpsEmail string
}
