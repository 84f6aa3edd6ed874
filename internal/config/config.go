package config

import (
	"log"
	"os"
)

type Config struct {
	DB_USERNAME string
	DB_PASSWORD string
	DB_HOST     string
	DB_PORT     string
	DB_NAME     string
	DISABLE_TLS string

	// Signing secret for session tokens. The server refuses to start
	// without it, there is no insecure fallback.
	JWT_SECRET string

	// ENV toggles production behaviour (secure cookies).
	ENV string

	HTTP_ADDR string

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
}

func ReadConfig() *Config {
	conf := &Config{
		DB_USERNAME: os.Getenv("DB_USERNAME"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     GetEnvOrDefault("DB_HOST", "localhost"),
		DB_PORT:     GetEnvOrDefault("DB_PORT", "5432"),
		DB_NAME:     GetEnvOrDefault("DB_NAME", "taskmanager"),
		DISABLE_TLS: os.Getenv("DISABLE_TLS"),

		JWT_SECRET: os.Getenv("JWT_SECRET"),

		ENV: GetEnvOrDefault("ENV", "development"),

		HTTP_ADDR: GetEnvOrDefault("HTTP_ADDR", "0.0.0.0:6060"),

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if conf.JWT_SECRET == "" {
		log.Fatalln("JWT_SECRET is required and has no default, refusing to start")
	}

	return conf
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.ENV == "production"
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
