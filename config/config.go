package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string
	JWTSecret string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string
}

var AppConfig Config

func LoadConfig() {
	// Try loading .env from different locations
	envLocations := []string{
		".env",              // project root
		"config/.env",       // config subdirectory
		"../config/.env",    // one level up
		"../../config/.env", // two levels up
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		HTTPAddr:  getEnvWithDefault("HTTP_ADDR", ":8080"),
		JWTSecret: getEnvWithDefault("JWT_SECRET", "student-portal-dev-secret"),

		SMTPHost:  getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),

		// Kafka settings (comma-separated brokers, empty disables publishing)
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnvWithDefault("KAFKA_TOPIC", "portal.payments"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
