package middleware

import (
	"github.com/gorilla/mux"
)

// Config holds router-wide middleware configuration
type Config struct {
	EnableLogging bool
	EnableTracing bool
	RateLimiter   *RateLimiter
}

// DefaultConfig returns default middleware configuration
func DefaultConfig(limiter *RateLimiter) Config {
	return Config{
		EnableLogging: true,
		EnableTracing: true,
		RateLimiter:   limiter,
	}
}

// Register registers all router-wide middlewares
func Register(router *mux.Router, config Config) {
	// Tracing first so the logger sees the span
	if config.EnableTracing {
		router.Use(Tracing("http-request"))
	}

	if config.EnableLogging {
		router.Use(Logging)
	}

	if config.RateLimiter != nil {
		router.Use(config.RateLimiter.Middleware)
	}
}
