package handler

import (
	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/handler/grpc"
	"github.com/aixmultimodal/msgboard/internal/handler/http"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
