package services

import (
	"student-portal/config"
	"student-portal/services/events"
)

// PublishEvent publishes a portal event to the configured topic. Best-effort:
// with Kafka disabled it returns nil immediately.
func PublishEvent(key string, value interface{}) error {
	return events.Publish(config.AppConfig.KafkaTopic, key, value)
}
