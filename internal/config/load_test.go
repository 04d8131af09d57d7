package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_HappyPath(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	tempConfigsSubDir := filepath.Join(tempDir, "configs")
	err = os.Mkdir(tempConfigsSubDir, 0755)
	require.NoError(t, err)

	testAppName := "TestInquiry"
	testPort := 9090
	testLogLevel := "debug"
	testBaseURL := "http://inquiry-backend:2115/"

	envContent := fmt.Sprintf(
		"APP_NAME=%s\nSERVER_PORT=%d\nLOG_LEVEL=%s\nBACKEND_BASE_URL=%s\nUI_THEME=Cyberpunk\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test,\n",
		testAppName, testPort, testLogLevel, testBaseURL,
	)
	envFilePath := filepath.Join(tempConfigsSubDir, "test_happy.env")
	err = os.WriteFile(envFilePath, []byte(envContent), 0644)
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalWD)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	var notices bytes.Buffer
	cfg, err := LoadConfigWithOutput("test_happy", &notices)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Contains(t, notices.String(), "INFO: Config loaded from file:")

	assert.Equal(t, testAppName, cfg.Application.Name)
	assert.Equal(t, testPort, cfg.Server.Port)
	assert.Equal(t, testLogLevel, cfg.Logging.Level)
	assert.Equal(t, "http://inquiry-backend:2115", cfg.Backend.BaseURL, "trailing slash should be trimmed")
	assert.Equal(t, "cyberpunk", cfg.UI.Theme)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)

	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "IDR", cfg.UI.DefaultCurrency)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 4, cfg.WorkerPool.Size)
}

func TestLoadConfigWithOutput_MissingFileNotice(t *testing.T) {
	var notices bytes.Buffer
	cfg, err := LoadConfigWithOutput("does_not_exist", &notices)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t,
		"INFO: No config file 'does_not_exist.env' found, relying on environment variables and defaults.\n",
		notices.String())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://from-env:8080")
	t.Setenv("BACKEND_TIMEOUT", "5s")

	cfg, err := LoadConfig("does_not_exist")
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "0s")
	t.Setenv("WORKER_POOL_SIZE", "0")

	cfg, err := LoadConfig("does_not_exist")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BACKEND_TIMEOUT must be greater than 0")
	assert.Contains(t, err.Error(), "WORKER_POOL_SIZE must be greater than 0")
}

func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{
		Application: ApplicationConfig{Env: v.GetString("APP_ENV"), Name: v.GetString("APP_NAME")},
		Logging:     LoggingConfig{Level: v.GetString("LOG_LEVEL")},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Backend: BackendConfig{
			BaseURL: v.GetString("BACKEND_BASE_URL"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		UI: UIConfig{
			Theme:           v.GetString("UI_THEME"),
			DefaultCurrency: v.GetString("UI_DEFAULT_CURRENCY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Kafka: KafkaConfig{
			Enabled:      v.GetBool("KAFKA_ENABLED"),
			Brokers:      v.GetString("KAFKA_BROKERS"),
			InquiryTopic: v.GetString("KAFKA_INQUIRY_TOPIC"),
			WriteTimeout: v.GetDuration("KAFKA_WRITE_TIMEOUT"),
		},
		WorkerPool: WorkerPoolConfig{
			Size: v.GetInt("WORKER_POOL_SIZE"),
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("DefaultsAreValid", func(t *testing.T) {
		assert.NoError(t, defaultConfig().validate(), "Default config should be valid")
	})

	t.Run("KafkaCheckedOnlyWhenEnabled", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Kafka.Brokers = ""
		assert.NoError(t, cfg.validate())

		cfg.Kafka.Enabled = true
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KAFKA_BROKERS is required")
	})

	t.Run("RejectsBadCurrency", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.UI.DefaultCurrency = "RUPIAH"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UI_DEFAULT_CURRENCY")
	})

	t.Run("RejectsBadOrigins", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.CORS.AllowedOrigins = nil
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one origin")

		cfg.CORS.AllowedOrigins = []string{"localhost:3000"}
		err = cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http:// or https://")

		cfg.CORS.AllowedOrigins = []string{"*"}
		assert.NoError(t, cfg.validate())
	})

	t.Run("RequiresBaseURL", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Backend.BaseURL = ""
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BACKEND_BASE_URL is required")
	})
}
