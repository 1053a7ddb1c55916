package repository

import (
	"context"
	"errors"

	"account-service/internal/models"
)

// ErrNotFound indicates the requested user record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUsernameTaken indicates a unique-username conflict at insert or rename.
var ErrUsernameTaken = errors.New("username already taken")

// ProfileFields is the full mutable field set of a user record. UpdateProfile
// overwrites all of them; a nil Age clears the column.
type ProfileFields struct {
	Username string
	Age      *int
	Phone    string
	Email    string
}

type Users interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Insert(ctx context.Context, username, passwordHash string) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, f ProfileFields) (models.User, error)
}
