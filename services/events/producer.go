package events

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"student-portal/config"
	"student-portal/logger"
)

var (
	producer      *kafka.Writer
	producerMutex sync.Mutex
	isConnected   bool
)

// InitProducer initializes a Kafka writer using brokers from the config.
// With no brokers configured (the default) publishing is disabled and every
// Publish call is a no-op, so the portal works fully offline.
func InitProducer() {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if config.AppConfig.KafkaBrokers == "" {
		logger.Info("Kafka is disabled (KAFKA_BROKERS is empty)")
		return
	}

	brokers := strings.Split(config.AppConfig.KafkaBrokers, ",")

	var validBrokers []string
	for _, b := range brokers {
		if b := strings.TrimSpace(b); b != "" {
			validBrokers = append(validBrokers, b)
		}
	}

	if len(validBrokers) == 0 {
		logger.Warn("No valid Kafka brokers configured")
		return
	}

	ensureTopicExists(validBrokers, config.AppConfig.KafkaTopic)

	producer = &kafka.Writer{
		Addr:         kafka.TCP(validBrokers...),
		Balancer:     &kafka.LeastBytes{},
		Async:        false,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("Kafka producer initialized. Brokers=%v, Topic=%s", validBrokers, config.AppConfig.KafkaTopic)
	isConnected = true
}

// ensureTopicExists creates the events topic if missing. Runs in the
// background so startup never blocks on a slow broker.
func ensureTopicExists(brokers []string, topic string) {
	go func() {
		conn, err := kafka.Dial("tcp", brokers[0])
		if err != nil {
			logger.Warn("Could not connect to Kafka broker for topic creation: %v (topic may need manual creation)", err)
			return
		}
		defer conn.Close()

		err = conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			logger.Warn("Could not create Kafka topic %q: %v", topic, err)
		}
	}()
}

// Publish marshals value to JSON and publishes to the given topic with key,
// retrying with exponential backoff (3 attempts). If Kafka is disabled it
// returns nil; if all attempts fail the message lands in the dead-letter
// list for inspection.
func Publish(topic, key string, value interface{}) error {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	// Publishing disabled, skip silently (best-effort)
	if producer == nil || config.AppConfig.KafkaBrokers == "" {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Error("Error marshaling Kafka message: %v", err)
		return err
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := producer.WriteMessages(ctx, msg)
		cancel()

		if err == nil {
			isConnected = true
			return nil
		}

		lastErr = err
		logger.Warn("Kafka publish attempt %d failed: %v", attempt+1, err)
		isConnected = false

		if attempt < 2 {
			time.Sleep(time.Duration(math.Pow(2, float64(attempt))) * time.Second)
		}
	}

	logger.Info("Storing failed message in dead-letter list. Topic: %s, Key: %s", topic, key)
	storeDeadLetter(topic, key, payload, lastErr.Error())

	return lastErr
}

// IsConnected returns true if the Kafka producer is connected and ready.
func IsConnected() bool {
	producerMutex.Lock()
	defer producerMutex.Unlock()
	return isConnected && producer != nil
}

// Close gracefully closes the Kafka producer.
func Close() error {
	producerMutex.Lock()
	defer producerMutex.Unlock()

	if producer != nil {
		return producer.Close()
	}
	return nil
}
