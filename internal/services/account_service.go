package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"account-service/internal/auth"
	"account-service/internal/models"
	repo "account-service/internal/repository"
)

// AccountService orchestrates registration, login, and profile read/update.
// It holds no mutable state; uniqueness and read-then-write consistency come
// from the store.
type AccountService struct {
	r       repo.Users
	timeout time.Duration
}

func NewAccountService(r repo.Users, storeTimeout time.Duration) *AccountService {
	if storeTimeout <= 0 {
		storeTimeout = 3 * time.Second
	}
	return &AccountService{r: r, timeout: storeTimeout}
}

// ProfileUpdate carries the mutable profile fields of a request. An empty
// Username keeps the current one; age/phone/email always overwrite, so an
// omitted value clears the stored field.
type ProfileUpdate struct {
	Username string
	Age      *int
	Phone    string
	Email    string
}

// Register creates a new user. A username conflict is reported as
// ErrUsernameTaken whether it is seen at the lookup or at the insert; the
// insert path covers the race between two concurrent registrations.
func (s *AccountService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := s.r.FindByUsername(lookupCtx, username)
	switch {
	case err == nil:
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, repo.ErrNotFound):
		return models.User{}, storeErr(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	u, err := s.r.Insert(insertCtx, username, hash)
	if err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, storeErr(err)
	}
	u.PasswordHash = ""
	return u, nil
}

// Login verifies credentials and returns the record with the hash stripped.
// No session token is issued; profile calls re-authenticate instead.
func (s *AccountService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	u, err := s.r.FindByUsername(cctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, storeErr(err)
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return u, nil
}

// GetProfile re-authenticates and returns the restricted profile view.
func (s *AccountService) GetProfile(ctx context.Context, username, password string) (models.Profile, error) {
	u, err := s.authenticate(ctx, username, password)
	if err != nil {
		return models.Profile{}, err
	}
	return u.Profile(), nil
}

// UpdateProfile re-authenticates, then overwrites the profile fields. An
// empty new username falls back to the current one; a rename onto an existing
// username fails with ErrUsernameTaken.
func (s *AccountService) UpdateProfile(ctx context.Context, username, password string, upd ProfileUpdate) (models.Profile, error) {
	u, err := s.authenticate(ctx, username, password)
	if err != nil {
		return models.Profile{}, err
	}

	newName := strings.TrimSpace(upd.Username)
	if newName == "" {
		newName = u.Username
	}
	fields := repo.ProfileFields{
		Username: newName,
		Age:      upd.Age,
		Phone:    strings.TrimSpace(upd.Phone),
		Email:    strings.TrimSpace(upd.Email),
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	updated, err := s.r.UpdateProfile(cctx, u.ID, fields)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUsernameTaken):
			return models.Profile{}, ErrUsernameTaken
		case errors.Is(err, repo.ErrNotFound):
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, storeErr(err)
	}
	return updated.Profile(), nil
}

// authenticate collapses a missing user and a wrong password into the same
// ErrInvalidCredentials so profile endpoints never reveal which field was
// wrong.
func (s *AccountService) authenticate(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	u, err := s.r.FindByUsername(cctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, storeErr(err)
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
