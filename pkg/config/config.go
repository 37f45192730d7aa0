package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/storefront/pkg/database"
)

// Config holds the storefront service configuration
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	JaegerEndpoint string

	HTTPPort string
	GRPCPort string

	Database database.Config

	RedisAddr     string
	RedisPassword string

	KafkaBrokers []string

	CatalogUpstreamURL string
	CatalogCacheTTL    time.Duration
	CatalogTimeout     time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load loads the configuration from environment variables
func Load() Config {
	return Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "storefront"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GRPCPort:       getEnv("GRPC_PORT", "9090"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:       splitList(getEnv("KAFKA_BROKERS", "")),
		CatalogUpstreamURL: getEnv("CATALOG_UPSTREAM_URL", "https://fakestoreapi.com"),
		CatalogCacheTTL:    getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		CatalogTimeout:     getDuration("CATALOG_TIMEOUT", 10*time.Second),
		JWTSecret:          getEnv("JWT_SECRET", "change-me-in-production"),
		JWTTTL:             getDuration("JWT_TTL", 24*time.Hour),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 100),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
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

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
