package service

import (
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/store"
)

// Services is the server-side service container handed to the transport
// layer.
type Services struct {
	MessageService MessageService
	UserService    UserService
	Pinger         store.Pinger
}

// NewServices wires the services to the configured storage backend.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		MessageService: NewMessageService(storages.MessageRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		Pinger:         storages.Pinger,
	}
}
