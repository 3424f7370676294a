package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airticket/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	swaggerSpec = "airticket.swagger.json"
	serviceName = "airticket"
)

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

// Run serves router on cfg.HTTP.Address and, when cfg.GRPC.Address is set,
// a gRPC health and reflection listener next to it. It blocks until ctx is
// canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, router *gin.Engine) error {
	MountDocs(router, cfg.HTTP.SwaggerDir)
	s := newServers(cfg, router)

	errCh := make(chan error, 2)

	if s.grpcServer != nil {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		go func() {
			log.Info().Str("addr", lis.Addr().String()).Msg("grpc server listening")
			errCh <- s.grpcServer.Serve(lis)
		}()
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Address).Msg("http server listening")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.stop()
		if errors.Is(err, http.ErrServerClosed) || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if s.grpcServer != nil {
			s.health.Shutdown()
			s.grpcServer.GracefulStop()
		}
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, router *gin.Engine) *Servers {
	s := &Servers{
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	if cfg.GRPC.Address != "" {
		s.grpcServer, s.health = newGRPCServer()
	}
	return s
}

// newGRPCServer registers the standard health service, reporting SERVING for
// both the overall server and serviceName, plus server reflection.
func newGRPCServer() (*grpc.Server, *health.Server) {
	grpcSrv := grpc.NewServer()

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)

	return grpcSrv, healthSrv
}

// stop tears down whatever is still running after one server failed.
func (s *Servers) stop() {
	if s.grpcServer != nil {
		s.health.Shutdown()
		s.grpcServer.Stop()
	}
	_ = s.httpServer.Close()
}

// MountDocs serves the OpenAPI document from dir under /swagger/ and the
// Swagger UI under /docs/. It does nothing when dir is empty.
func MountDocs(router *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	router.Static("/swagger", dir)
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/"+swaggerSpec),
	)))
}
