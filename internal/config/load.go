package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from <configName>.env, falling back to environment variables.
// Notices about the config file go to stderr.
func LoadConfig(configName string) (*Config, error) {
	return LoadConfigWithOutput(configName, os.Stderr)
}

// LoadConfigWithOutput is LoadConfig with notices written to w, which must not be the
// stream that carries program output
func LoadConfigWithOutput(configName string, w io.Writer) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env", w)
}

// loadConfig layers configuration sources:
// 1. Load defaults
// 2. Override with config file values (if found)
// 3. Override with environment variables
// 4. Validate the final configuration
func loadConfig(configName, configType string, notices io.Writer) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintf(notices, "INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Fprintf(notices, "WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Fprintf(notices, "INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		UI: UIConfig{
			Theme:           strings.ToLower(v.GetString("UI_THEME")),
			DefaultCurrency: strings.ToUpper(v.GetString("UI_DEFAULT_CURRENCY")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Kafka: KafkaConfig{
			Enabled:           v.GetBool("KAFKA_ENABLED"),
			Brokers:           v.GetString("KAFKA_BROKERS"),
			InquiryTopic:      v.GetString("KAFKA_INQUIRY_TOPIC"),
			ConsumerGroup:     v.GetString("KAFKA_CONSUMER_GROUP"),
			NumPartitions:     v.GetInt("KAFKA_NUM_PARTITIONS"),
			ReplicationFactor: v.GetInt("KAFKA_REPLICATION_FACTOR"),
			WriteTimeout:      v.GetDuration("KAFKA_WRITE_TIMEOUT"),
		},
		WorkerPool: WorkerPoolConfig{
			Size: v.GetInt("WORKER_POOL_SIZE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// splitList turns a comma separated value into a trimmed slice, dropping empty items
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// setDefaults initializes configuration with values suited to local development.
func setDefaults(v *viper.Viper) {
	// HTTP Server defaults
	v.SetDefault("SERVER_PORT", 2116)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 45*time.Second) // must outlive one backend round trip
	v.SetDefault("SERVER_IDLE_TIMEOUT", 120*time.Second)

	// Inquiry backend
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:2115")
	v.SetDefault("BACKEND_TIMEOUT", 30*time.Second)

	// Rendering
	v.SetDefault("UI_THEME", "cards")
	v.SetDefault("UI_DEFAULT_CURRENCY", "IDR")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:2116")

	// Kafka outcome stream is off unless explicitly enabled
	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_INQUIRY_TOPIC", "balance_inquiries")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "inquiry-event-watch")
	v.SetDefault("KAFKA_NUM_PARTITIONS", 1)
	v.SetDefault("KAFKA_REPLICATION_FACTOR", 1)
	v.SetDefault("KAFKA_WRITE_TIMEOUT", 5*time.Second)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "inquiry-balance-web")

	v.SetDefault("WORKER_POOL_SIZE", 4)
}
