package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/internal/utils"
	"github.com/aixmultimodal/msgboard/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUserFields):
			log.Err(err).Str("func", "*Handler.createUser").Msg("empty user fields")
			writeError(w, "Username and email must not be empty", http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailAlreadyTaken):
			log.Err(err).Str("func", "*Handler.createUser").Msg("email already taken")
			writeError(w, "User with this email already exists", http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.CreateUserResponse{
		Message: "User created successfully",
		Data:    stored,
	}, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("invalid user id")
		writeError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Str("func", "*Handler.getUser").Int64("id", id).Msg("user not found")
			writeError(w, "User not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.getUser").Msg("error getting user")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}
