package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/mocks"
	"github.com/RrD-111/chat-api/repositories"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewUserService(userRepo)
	ctx := context.Background()

	t.Run("should store a hash and never the plaintext", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{}, errors.ErrNotFound).
			Times(1)

		userRepo.EXPECT().
			Insert(ctx, "alice", gomock.Cond(func(hash string) bool {
				if hash == "Secret123456" {
					return false
				}
				match, err := auth.ComparePassword("Secret123456", hash)
				return err == nil && match
			}), false).
			Return(domain.User{ID: 1, Username: "alice"}, nil).
			Times(1)

		user, err := svc.Create(ctx, "alice", "Secret123456", false)
		req.NoError(err)
		req.Equal(int64(1), user.ID)
		req.Equal("alice", user.Username)
		req.False(user.IsAdmin)
	})

	t.Run("should fail with conflict when the username is taken", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{ID: 1, Username: "alice"}, nil).
			Times(1)
		userRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, "alice", "Secret123456", false)
		req.ErrorIs(err, errors.ErrConflict)
	})

	t.Run("should reject invalid credentials before touching storage", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().FindByUsername(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, "al", "short", false)
		req.Error(err)
	})

	t.Run("should surface a storage failure from the lookup verbatim", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			FindByUsername(ctx, "alice").
			Return(repositories.User{}, errors.ErrStorage).
			Times(1)

		_, err := svc.Create(ctx, "alice", "Secret123456", false)
		req.ErrorIs(err, errors.ErrStorage)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewUserService(userRepo)
	ctx := context.Background()

	t.Run("should re-hash the password unconditionally", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			Update(ctx, int64(1), "alice2", gomock.Cond(func(hash string) bool {
				match, err := auth.ComparePassword("NewSecret9876", hash)
				return err == nil && match
			}), true).
			Return(domain.User{ID: 1, Username: "alice2", IsAdmin: true}, nil).
			Times(1)

		user, err := svc.Update(ctx, 1, "alice2", "NewSecret9876", true)
		req.NoError(err)
		req.True(user.IsAdmin)
	})

	t.Run("should fail with not found for an unknown id", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().
			Update(ctx, int64(404), "ghost", gomock.Any(), false).
			Return(domain.User{}, errors.ErrNotFound).
			Times(1)

		_, err := svc.Update(ctx, 404, "ghost", "Secret123456", false)
		req.ErrorIs(err, errors.ErrNotFound)
	})
}
