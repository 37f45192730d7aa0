package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/storefront/docs"
	"github.com/tair/storefront/internal/app"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/health"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	logger.Logger.Info().Msg("Database initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis backs the catalog cache and the rate limiter; both are optional
	var cache catalogrepo.Cache
	var limiter *middleware.RateLimiter
	if redisClient := connectRedis(ctx, cfg); redisClient != nil {
		defer redisClient.Close()
		cache = catalogrepo.NewRedisCache(redisClient, "storefront:catalog:")
		limiter = middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute, app.ProvideJWTManager(cfg))
	}

	// Kafka carries order.placed; without it checkout clears the cart inline
	var events *orderEvents
	if len(cfg.KafkaBrokers) > 0 {
		events = connectOrderEvents(
			func() (orderConsumer, error) {
				return kafka.NewConsumer(cfg.KafkaBrokers, cfg.ServiceName+"-cart", []string{kafka.TopicOrderPlaced})
			},
			func() (orderPublisher, error) {
				return kafka.NewPublisher(cfg.KafkaBrokers)
			},
		)
		defer events.Close()
	}

	application, err := app.InitializeApplication(cfg, db, cache, events.Publisher(), prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	// A publisher without a running consumer would leave carts uncleared
	if err := events.Start(ctx, application.ClearCart); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start order consumer")
	}

	// gRPC health server for orchestrators
	healthServer := health.NewServer(cfg.ServiceName)
	go healthServer.Watch(ctx, sqlDB, 10*time.Second)
	go func() {
		if err := healthServer.Serve(cfg.GRPCPort); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC health server stopped")
		}
	}()

	server := newHTTPServer(cfg, application, sqlDB, limiter)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	healthServer.Stop()
}

func newHTTPServer(cfg config.Config, application *app.Application, db *sql.DB, limiter *middleware.RateLimiter) *http.Server {
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	middleware.Register(router, middleware.DefaultConfig(limiter))

	application.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheck(db)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTPPort
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func healthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Health check failed")
			response.JSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "down",
			})
			return
		}

		response.JSON(w, http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "up",
		})
	}
}

func connectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", cfg.RedisAddr).
			Msg("Redis unavailable, catalog cache and rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis connected")
	return client
}
