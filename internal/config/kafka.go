package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

func getKafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	return strings.Split(brokers, ",")
}

// NewKafkaWriter builds a writer for the given topic using the configured
// brokers.
func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(getKafkaBrokerURLs()...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
