package services

import "errors"

// Failure taxonomy shared by every account operation. The transport layer
// maps these to HTTP statuses; anything the store returns that is not a
// mapped sentinel surfaces as ErrStoreUnavailable.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
