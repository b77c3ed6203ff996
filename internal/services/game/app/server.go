package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	gamev1 "github.com/fridge-dev/frj-game-ngn-sub000/api/gen/go/game/v1"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/timeouts"
	gamegrpc "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/api/grpc/game"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/api/grpc/interceptors"
	grpcmeta "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/api/grpc/metadata"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/observability"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/registry"
)

// ErrRegistryStopped reports that the registry actor exited while the
// server was still meant to be running.
var ErrRegistryStopped = errors.New("registry actor stopped unexpectedly")

// Config configures a Server. Zero values pick the component defaults.
type Config struct {
	Port int
	// Addr overrides Port when set.
	Addr string
	// MetricsAddr enables the admin HTTP listener when set.
	MetricsAddr string

	MailboxSize      int
	PushBuffer       int
	SessionExpiry    time.Duration
	SweepMinInterval time.Duration
	SweepMaxInterval time.Duration
	ActionRate       float64
	ActionBurst      int

	Logger *zap.Logger
	// Registry receives the server's metrics. Defaults to a fresh registry.
	Registry *prometheus.Registry
}

// Server hosts the game session server.
type Server struct {
	listener      net.Listener
	adminListener net.Listener
	grpcServer    *grpc.Server
	health        *health.Server
	adminServer   *http.Server
	registry      *registry.Registry
	sweeper       *registry.Sweeper
	logger        *zap.Logger
}

// New creates a configured server with its listeners bound.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	promRegistry := cfg.Registry
	if promRegistry == nil {
		promRegistry = prometheus.NewRegistry()
	}
	metrics := observability.NewMetrics(promRegistry)

	addr := cfg.Addr
	if addr == "" {
		addr = net.JoinHostPort("", strconv.Itoa(cfg.Port))
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	reg := registry.New(registry.Config{
		MailboxSize:   cfg.MailboxSize,
		SessionExpiry: cfg.SessionExpiry,
		Logger:        logger,
		Metrics:       metrics,
	})
	sweeper := registry.NewSweeper(reg, cfg.SweepMinInterval, cfg.SweepMaxInterval, logger)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.AccessLogUnaryInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpcmeta.StreamServerInterceptor(nil),
			interceptors.AccessLogStreamInterceptor(logger),
		),
	)
	gameService := gamegrpc.NewService(reg, gamegrpc.Config{
		PushBuffer:  cfg.PushBuffer,
		ActionRate:  cfg.ActionRate,
		ActionBurst: cfg.ActionBurst,
		Logger:      logger,
		Metrics:     metrics,
	})
	healthServer := health.NewServer()
	gamev1.RegisterGameServiceServer(grpcServer, gameService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(gamev1.GameService_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	s := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		registry:   reg,
		sweeper:    sweeper,
		logger:     logger,
	}

	if cfg.MetricsAddr != "" {
		adminListener, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on %s: %w", cfg.MetricsAddr, err)
		}
		s.adminListener = adminListener
		s.adminServer = &http.Server{
			Handler:           newAdminRouter(promRegistry, reg, logger),
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return s, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// AdminAddr returns the admin HTTP listener address, or "" when disabled.
func (s *Server) AdminAddr() string {
	if s == nil || s.adminListener == nil {
		return ""
	}
	return s.adminListener.Addr().String()
}

// Run creates and serves a server until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve runs every component until ctx ends or one of them fails.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.registry.Run(gctx); err != nil {
			return err
		}
		if gctx.Err() == nil {
			return ErrRegistryStopped
		}
		return nil
	})
	g.Go(func() error {
		return s.sweeper.Run(gctx)
	})
	g.Go(func() error {
		s.logger.Info("game server listening", zap.String("addr", s.Addr()))
		if err := s.grpcServer.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})
	if s.adminServer != nil {
		g.Go(func() error {
			s.logger.Info("admin server listening", zap.String("addr", s.AdminAddr()))
			if err := s.adminServer.Serve(s.adminListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve admin HTTP: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info("game server stopped", zap.Error(err))
	return err
}

func (s *Server) shutdown() {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	timer := time.NewTimer(timeouts.Shutdown)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn("graceful stop timed out; closing open streams")
		s.grpcServer.Stop()
		<-stopped
	}

	if s.adminServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.adminServer.Shutdown(ctx); err != nil {
			s.logger.Warn("admin shutdown", zap.Error(err))
		}
	}
}
