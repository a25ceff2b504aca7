package services

import (
	"context"
	"fmt"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/repositories"
)

type IAuthService interface {
	Login(ctx context.Context, username, password string) (Token, error)
	Logout(token string) error
}

// Token is an opaque signed bearer credential.
type Token string

type AuthService struct {
	users  repositories.IUserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repositories.IUserRepository, tokens *auth.TokenManager) IAuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and issues a token carrying the username
// and the admin flag. An unknown username and a wrong password produce the
// same failure, so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (Token, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("%w: incorrect username or password", errors.ErrUnauthenticated)
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", fmt.Errorf("%w: incorrect username or password", errors.ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(user.Username, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return Token(token), nil
}

// Logout revokes the exact token value. Revoking twice is a no-op.
func (s *AuthService) Logout(token string) error {
	return s.tokens.Revoke(token)
}
