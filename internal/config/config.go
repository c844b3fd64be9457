package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/tair/price-list/pkg/database"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// KafkaConfig holds broker settings. Kafka is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RedisConfig holds view cache settings. The cache is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RateLimitConfig bounds mutating requests per client. It needs redis and is off when Writes is 0.
type RateLimitConfig struct {
	Writes int
	Window time.Duration
}

// Config holds the catalog service configuration
type Config struct {
	ServiceName     string
	ServiceVersion  string
	Environment     string
	LogLevel        string
	HTTPPort        string
	ShutdownTimeout time.Duration

	Storage  string
	Database database.Config
	Redis    RedisConfig
	Kafka    KafkaConfig
	Limit    RateLimitConfig

	JaegerEndpoint string
	Locale         string
	CORSOrigins    []string
	InstanceID     string
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads .env when present, then the environment
func LoadConfig() *Config {
	_ = godotenv.Load()

	instanceID := getEnv("INSTANCE_ID", uuid.New().String())

	return &Config{
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "catalog-service"),
		ServiceVersion:  getEnv("SERVICE_VERSION", "1.0.0"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getEnv("HTTP_PORT", "8081"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		Storage: getEnv("STORAGE", StoragePostgres),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "catalogdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
			TTL:      getDuration("CACHE_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "catalog-changed"),
			// every replica needs its own group to see every change
			GroupID: getEnv("KAFKA_GROUP_ID", "catalog-"+instanceID),
		},
		Limit: RateLimitConfig{
			Writes: getInt("RATE_LIMIT_WRITES", 60),
			Window: getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},

		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		Locale:         getEnv("CATALOG_LOCALE", "id"),
		CORSOrigins:    getList("CORS_ALLOWED_ORIGINS"),
		InstanceID:     instanceID,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

// getDuration accepts Go duration strings such as "30s"
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
