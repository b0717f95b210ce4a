package store

import (
	"context"

	"github.com/aixmultimodal/msgboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository persists and lists board messages.
type MessageRepository interface {
	// ListMessages returns every stored message in insertion order.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// CreateMessage stores a new message and returns it with the
	// server-assigned ID filled in.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
}

// UserRepository persists and lists registered users.
type UserRepository interface {
	// ListUsers returns every stored user in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser stores a new user and returns it with the server-assigned
	// ID filled in. Returns [ErrEmailAlreadyExists] when the email is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given ID, or
	// [ErrNoUserWasFound] when no such record exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// Pinger reports backend liveness; used by the health endpoints.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConflictClassifier recognises driver-specific unique-constraint errors so
// repositories can map them to [ErrEmailAlreadyExists] without leaking
// driver error types upward.
type ConflictClassifier interface {
	IsUniqueViolation(err error) bool
}
