package service

import "errors"

// Sentinel errors returned by the server-side services. Handlers map them to
// HTTP statuses with [errors.Is].
var (
	// ErrEmptyContent is returned when a message's content is empty or
	// whitespace-only after trimming.
	ErrEmptyContent = errors.New("message content must not be empty")

	// ErrEmptyUserFields is returned when a user's username or email is
	// empty or whitespace-only after trimming.
	ErrEmptyUserFields = errors.New("username and email must not be empty")

	// ErrEmailAlreadyTaken is returned when a user with the requested email
	// already exists.
	ErrEmailAlreadyTaken = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when no user matches the requested ID.
	ErrUserNotFound = errors.New("user not found")
)
