package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"parcel-service/pkg/logger"
)

// ServiceName имя сервиса в grpc.health.v1, пустое имя отражает сервер целиком.
const ServiceName = "parcel-service"

const (
	KeepaliveTime        = 5 * time.Minute
	KeepaliveTimeout     = 3 * time.Second
	KeepaliveMinInterval = time.Minute

	probeTimeout = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime: KeepaliveMinInterval,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	s := &Server{
		log: log.With(
			logger.NewField("component", "grpc-health"),
		),
		server: grpcServer,
		health: healthServer,
	}
	s.SetServing(true)

	return s
}

func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("listen grpc health: %w", err)
	}

	s.log.Info("grpc health server starting", logger.NewField("port", port))
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc health: %w", err)
	}
	return nil
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// RunProbe периодически пингует БД и переключает статус до отмены ctx.
func (s *Server) RunProbe(ctx context.Context, db Pinger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	serving := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := db.Ping(pingCtx)
		cancel()

		if ctx.Err() != nil {
			return
		}

		if (err == nil) == serving {
			continue
		}
		serving = err == nil
		s.SetServing(serving)

		if err != nil {
			s.log.With(logger.NewField("error", err)).Warn("database probe failed, NOT_SERVING")
		} else {
			s.log.Info("database probe recovered, SERVING")
		}
	}
}

// Shutdown переводит статус в NOT_SERVING и ждёт активные RPC, по истечении ctx рвёт соединения.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		<-done
	}
}
