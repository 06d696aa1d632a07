package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Vision   VisionConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// StorageConfig holds object-storage (S3-compatible) configuration
type StorageConfig struct {
	Endpoint   string
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	PathPrefix string
	Timeout    time.Duration
}

// VisionConfig holds vision-model configuration
type VisionConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// IngestConfig holds pipeline-level configuration
type IngestConfig struct {
	// DefaultParticipantID receives slips whose person could not be resolved.
	DefaultParticipantID string
	DefaultCurrency      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Endpoint:   getEnv("STORAGE_ENDPOINT", ""),
			Region:     getEnv("STORAGE_REGION", "us-east-1"),
			Bucket:     getEnv("STORAGE_BUCKET", "payment-slips"),
			AccessKey:  getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:  getEnv("STORAGE_SECRET_KEY", ""),
			PathPrefix: getEnv("STORAGE_PATH_PREFIX", "slips"),
			Timeout:    getEnvAsDuration("STORAGE_TIMEOUT", 30*time.Second),
		},
		Vision: VisionConfig{
			BaseURL:     getEnv("VISION_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("VISION_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("VISION_API_KEY", ""),
			Temperature: getEnvAsFloat32("VISION_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
		},
		Ingest: IngestConfig{
			DefaultParticipantID: getEnv("DEFAULT_PARTICIPANT_ID", ""),
			DefaultCurrency:      getEnv("DEFAULT_CURRENCY", "฿"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator()
	v.Field("DB_URL", c.Database.DSN, Required)
	v.Field("VISION_API_KEY", c.Vision.APIKey, Required)
	v.Field("STORAGE_ENDPOINT", c.Storage.Endpoint, Required)
	v.Field("HTTP_ADDR", c.Server.Addr, Required)
	v.Field("DEFAULT_PARTICIPANT_ID", c.Ingest.DefaultParticipantID, UUIDFormat)
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.Error().Error(), ErrInvalidInput)
	}
	return nil
}
