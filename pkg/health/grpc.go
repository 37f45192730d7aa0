package health

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/storefront/pkg/logger"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

var _ Pinger = (*sql.DB)(nil)

// Server exposes the standard gRPC health protocol for orchestrators
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	service    string
}

// NewServer creates a gRPC server with health and reflection registered
func NewServer(service string) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		service:    service,
	}
}

// Serve listens on the given port and blocks until the server stops
func (s *Server) Serve(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", port, err)
	}

	logger.Logger.Info().
		Str("port", port).
		Msg("gRPC health server started")

	return s.grpcServer.Serve(lis)
}

// Watch periodically pings the dependency and flips the serving status
func (s *Server) Watch(ctx context.Context, dep Pinger, interval time.Duration) {
	s.update(ctx, dep)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.update(ctx, dep)
		}
	}
}

func (s *Server) update(ctx context.Context, dep Pinger) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := dep.PingContext(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		logger.Warn(ctx).Err(err).Msg("Health dependency unavailable")
	}

	s.health.SetServingStatus(s.service, status)
	s.health.SetServingStatus("", status)
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
