package services

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/repositories"
)

// IUserService is the admin-only account surface. Admin gating happens at
// the boundary via the guard; the service assumes an authorized caller.
type IUserService interface {
	Create(ctx context.Context, username, password string, isAdmin bool) (domain.User, error)
	Update(ctx context.Context, id int64, username, password string, isAdmin bool) (domain.User, error)
}

type UserService struct {
	users repositories.IUserRepository
}

func NewUserService(users repositories.IUserRepository) IUserService {
	return &UserService{users: users}
}

// Create registers a new account. Only a salted one-way hash of the password
// is ever stored.
func (s *UserService) Create(ctx context.Context, username, password string, isAdmin bool) (domain.User, error) {
	if err := auth.ValidateCredentials(auth.CredentialsRequest{Username: username, Password: password}); err != nil {
		return domain.User{}, err
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return domain.User{}, fmt.Errorf("%w: username already registered", errors.ErrConflict)
	}
	if !goerrors.Is(err, errors.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	return s.users.Insert(ctx, username, hash, isAdmin)
}

// Update replaces the account's username, password, and admin flag. The
// password is re-hashed unconditionally; every update carries one.
func (s *UserService) Update(ctx context.Context, id int64, username, password string, isAdmin bool) (domain.User, error) {
	if err := auth.ValidateCredentials(auth.CredentialsRequest{Username: username, Password: password}); err != nil {
		return domain.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	return s.users.Update(ctx, id, username, hash, isAdmin)
}
