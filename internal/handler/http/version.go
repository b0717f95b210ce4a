package http

import (
	"net/http"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/utils"
	"github.com/aixmultimodal/msgboard/models"
)

const serviceName = "AIxMultimodal API"

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.WelcomeResponse{
		Message: "Welcome to AIxMultimodal API",
		Version: h.version,
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if pinger := h.services.Pinger; pinger != nil {
		if err := pinger.Ping(r.Context()); err != nil {
			log.Err(err).Str("func", "*Handler.health").Msg("storage ping failed")
			utils.WriteJSON(w, models.HealthResponse{
				Status:  "unhealthy",
				Service: serviceName,
			}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	}, http.StatusOK)
}
