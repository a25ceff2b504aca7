package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/mocks"
	"github.com/RrD-111/chat-api/repositories"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("unit_test_secret_key_long_enough", "chat-api-test", time.Hour, auth.NewBlacklist())
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockIUserRepository(ctrl)
	tokens := newTestTokenManager()
	svc := NewAuthService(userRepo, tokens)
	ctx := context.Background()

	t.Run("should return a token that round-trips username and admin flag", func(t *testing.T) {
		req := require.New(t)

		hash, err := auth.HashPassword("Secret123456")
		req.NoError(err)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{ID: 1, Username: "alice", PasswordHash: hash, IsAdmin: true}, nil).
			Times(1)

		token, err := svc.Login(ctx, "alice", "Secret123456")
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := tokens.Validate(string(token))
		req.NoError(err)
		req.Equal("alice", claims.Username())
		req.True(claims.IsAdmin)
	})

	t.Run("should fail with unauthenticated on a wrong password", func(t *testing.T) {
		req := require.New(t)

		hash, err := auth.HashPassword("Secret123456")
		req.NoError(err)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{ID: 1, Username: "alice", PasswordHash: hash}, nil).
			Times(1)

		_, err = svc.Login(ctx, "alice", "not-the-password")
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should fail with unauthenticated on an unknown username", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			FindByUsername(ctx, "nobody").
			Return(repositories.User{}, errors.ErrNotFound).
			Times(1)

		// Same failure as a wrong password, so accounts cannot be enumerated.
		_, err := svc.Login(ctx, "nobody", "whatever-123")
		req.ErrorIs(err, errors.ErrUnauthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockIUserRepository(ctrl)
	tokens := newTestTokenManager()
	svc := NewAuthService(userRepo, tokens)
	ctx := context.Background()

	t.Run("should invalidate the token permanently", func(t *testing.T) {
		req := require.New(t)

		hash, err := auth.HashPassword("Secret123456")
		req.NoError(err)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{ID: 1, Username: "alice", PasswordHash: hash}, nil).
			Times(1)

		token, err := svc.Login(ctx, "alice", "Secret123456")
		req.NoError(err)

		req.NoError(svc.Logout(string(token)))

		_, err = tokens.Validate(string(token))
		req.ErrorIs(err, errors.ErrUnauthenticated)

		// Logging out twice is a no-op.
		req.NoError(svc.Logout(string(token)))
	})
}
