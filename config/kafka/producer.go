package kafka

import (
	"fmt"
	"sync"

	"dashboard-srv/config"
	"dashboard-srv/pkg/kafka"
)

var (
	producer   kafka.IProducer
	producerMu sync.RWMutex
)

// ConnectProducer creates the shared producer, or returns it when already connected.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producer = p
	return producer, nil
}

// ProducerHealthCheck reports whether the shared producer is usable.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producer == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return producer.HealthCheck()
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
