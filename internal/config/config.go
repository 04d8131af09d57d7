// Package config provides configuration structures and validation for the inquiry front.
// Values come from defaults, an optional .env file and the environment, covering the HTTP
// server, the inquiry backend, the rendering layer and the optional event stream.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration.
// Each field represents one subsystem and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Backend     BackendConfig
	UI          UIConfig
	CORS        CORSConfig
	Kafka       KafkaConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// BackendConfig describes the balance inquiry backend the client talks to
type BackendConfig struct {
	BaseURL string        // Scheme and host of the backend, without the /api/v1 prefix
	Timeout time.Duration // Ceiling for one round trip
}

// UIConfig contains rendering defaults
type UIConfig struct {
	Theme           string // cards, cyberpunk or soft
	DefaultCurrency string // Used when a payload carries no currency code
}

// CORSConfig lists origins allowed to call the JSON API
type CORSConfig struct {
	AllowedOrigins []string
}

// KafkaConfig contains settings for the inquiry outcome stream
type KafkaConfig struct {
	Enabled           bool
	Brokers           string
	InquiryTopic      string
	ConsumerGroup     string // Used by the CLI event watcher
	NumPartitions     int
	ReplicationFactor int
	WriteTimeout      time.Duration
}

// WorkerPoolConfig contains worker pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of concurrent inquiries in batch mode
}

// validate checks every configuration value and reports all violations at once
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Backend config
	if c.Backend.BaseURL == "" {
		validationErrors = append(validationErrors, "BACKEND_BASE_URL is required")
	}
	if c.Backend.Timeout <= 0 {
		validationErrors = append(validationErrors, "BACKEND_TIMEOUT must be greater than 0")
	}

	// Validate UI config
	if c.UI.DefaultCurrency != "" && len(c.UI.DefaultCurrency) != 3 {
		validationErrors = append(validationErrors, "UI_DEFAULT_CURRENCY must be a 3-letter code")
	}

	// Validate CORS config; the middleware rejects an empty or malformed origin list
	if len(c.CORS.AllowedOrigins) == 0 {
		validationErrors = append(validationErrors, "CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			validationErrors = append(validationErrors, "CORS_ALLOWED_ORIGINS entries must start with http:// or https://")
			break
		}
	}

	// Kafka is optional; only check it when turned on
	if c.Kafka.Enabled {
		if c.Kafka.Brokers == "" {
			validationErrors = append(validationErrors, "KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if c.Kafka.InquiryTopic == "" {
			validationErrors = append(validationErrors, "KAFKA_INQUIRY_TOPIC is required when KAFKA_ENABLED is true")
		}
		if c.Kafka.WriteTimeout <= 0 {
			validationErrors = append(validationErrors, "KAFKA_WRITE_TIMEOUT must be greater than 0")
		}
	}

	// Validate WorkerPool config
	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
