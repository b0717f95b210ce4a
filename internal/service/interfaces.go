package service

import (
	"context"

	"github.com/aixmultimodal/msgboard/models"
)

// MessageService exposes the board's message operations to the transport
// layer.
type MessageService interface {
	// ListMessages returns every stored message, oldest first. The result
	// is never nil.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// CreateMessage validates and stores a new message, returning the
	// record with its server-assigned ID. A blank (whitespace-only)
	// content yields [ErrEmptyContent]. A missing timestamp is filled with
	// the current time in RFC 3339 form.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
}

// UserService exposes the user registry operations to the transport layer.
type UserService interface {
	// ListUsers returns every registered user, oldest first. The result is
	// never nil.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser validates and stores a new user. Blank username or email
	// yields [ErrEmptyUserFields]; a taken email yields
	// [ErrEmailAlreadyTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser returns the user with the given ID, or [ErrUserNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)
}
