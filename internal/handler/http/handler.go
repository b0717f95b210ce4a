package http

import (
	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
)

type Handler struct {
	services *service.Services
	version  string
	origins  []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.App.Version,
		origins:  cfg.Server.CORSOrigins,
		logger:   logger,
	}
}
