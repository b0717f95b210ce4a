package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
)

// Handler is the root gRPC transport handler. It serves the standard gRPC
// health protocol backed by the storage pinger, so load balancers can probe
// the API over gRPC while the board endpoints stay HTTP-only.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check implements grpc_health_v1.HealthServer.
func (h *Handler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if pinger := h.services.Pinger; pinger != nil {
		if err := pinger.Ping(ctx); err != nil {
			h.logger.Err(err).Str("func", "*Handler.Check").Msg("storage ping failed")
			return &grpc_health_v1.HealthCheckResponse{
				Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
			}, nil
		}
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}

// Watch implements grpc_health_v1.HealthServer. Streaming health is not
// supported; clients should poll Check.
func (h *Handler) Watch(_ *grpc_health_v1.HealthCheckRequest, _ grpc_health_v1.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "health watch is not supported")
}
