package models

// MessagesResponse is the body of GET /api/messages.
//
// Messages may be absent or null in a response produced by other
// implementations of the contract; consumers must treat a missing list as an
// empty collection, not as an error.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// UsersResponse is the body of GET /api/users.
type UsersResponse struct {
	Users []User `json:"users"`
}

// UserResponse is the body of GET /api/users/{id}.
type UserResponse struct {
	User User `json:"user"`
}

// CreateMessageResponse is the body returned by POST /api/messages on
// success. The client determines success purely by the HTTP status and never
// inspects this body.
type CreateMessageResponse struct {
	// Message is a human-readable confirmation string.
	Message string `json:"message"`

	// Data is the stored record with its server-assigned ID.
	Data Message `json:"data"`
}

// CreateUserResponse is the body returned by POST /api/users on success.
type CreateUserResponse struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// ErrorResponse is the error body shape used by every non-2xx API response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
