package adapter

import (
	"context"

	"github.com/aixmultimodal/msgboard/models"
)

// BackendAdapter is the client-side view of the msgboard API. It hides the
// transport behind the operations the sync layer needs; every method honours
// ctx cancellation and deadlines.
//
// Errors fall into two categories the caller can distinguish with
// [errors.Is]: responses with a non-2xx status wrap [ErrBadStatus], while
// transport-level failures (connection refused, DNS, timeout) do not.
type BackendAdapter interface {
	// ListMessages fetches every message on the board. The returned slice
	// may be nil when the server's list field was absent or empty.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// ListUsers fetches every registered user.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateMessage posts a new message. Success is determined purely by
	// the HTTP status; the response body is not inspected.
	CreateMessage(ctx context.Context, message models.Message) error

	// CreateUser posts a new user. Status-only, like CreateMessage.
	CreateUser(ctx context.Context, user models.User) error

	// GetUser fetches a single user by server-assigned ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// Health probes the server's health endpoint.
	Health(ctx context.Context) error
}
