package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/internal/utils"
	"github.com/aixmultimodal/msgboard/models"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	messages, err := h.services.MessageService.ListMessages(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMessages").Msg("error listing messages")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Str("func", "*Handler.createMessage").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.MessageService.CreateMessage(r.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			log.Err(err).Str("func", "*Handler.createMessage").Msg("empty message content")
			writeError(w, "Message content must not be empty", http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.createMessage").Msg("error creating message")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.CreateMessageResponse{
		Message: "Message created successfully",
		Data:    stored,
	}, http.StatusCreated)
}
