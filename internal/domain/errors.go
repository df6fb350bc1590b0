package domain

import "errors"

// Domain errors. The message text is part of the API contract: business
// failures surface these strings verbatim in the response envelope.
var (
	ErrEmailTaken       = errors.New("Email already registered")
	ErrUsernameRequired = errors.New("Username is required")
	ErrBadCredentials   = errors.New("Invalid email or password")
	ErrNotAuthenticated = errors.New("Not authenticated")
	ErrLoginRequired    = errors.New("Must be logged in to submit score")
	ErrPlayerNotFound   = errors.New("Player not found")
	ErrInvalidMode      = errors.New("invalid game mode")
	ErrInvalidRequest   = errors.New("invalid request")
)

// IsBusinessError checks if an error belongs to the class that is reported
// inside the envelope with HTTP 200 rather than a 4xx status.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrBadCredentials) ||
		errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrLoginRequired) ||
		errors.Is(err, ErrPlayerNotFound)
}
