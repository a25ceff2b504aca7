package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/mocks"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockIMessageRepository(ctrl)
	guard := mocks.NewMockIGuard(ctrl)
	svc := NewMessageService(messageRepo, guard)
	ctx := context.Background()
	sender := domain.User{ID: 2, Username: "bob"}

	t.Run("should create a message with zero likes", func(t *testing.T) {
		req := require.New(t)

		guard.EXPECT().RequireMembership(ctx, int64(10), int64(2)).Return(nil).Times(1)
		messageRepo.EXPECT().
			Insert(ctx, int64(10), int64(2), "hello").
			Return(domain.Message{ID: 100, GroupID: 10, Content: "hello", Likes: 0}, nil).
			Times(1)

		message, err := svc.Send(ctx, 10, "hello", sender)
		req.NoError(err)
		req.Zero(message.Likes)
		req.Equal("hello", message.Content)
	})

	t.Run("should fail with forbidden for a non-member without inserting", func(t *testing.T) {
		req := require.New(t)

		guard.EXPECT().RequireMembership(ctx, int64(10), int64(2)).Return(errors.ErrForbidden).Times(1)
		messageRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Send(ctx, 10, "hello", sender)
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should surface an insert failure as storage error", func(t *testing.T) {
		req := require.New(t)

		guard.EXPECT().RequireMembership(ctx, int64(10), int64(2)).Return(nil).Times(1)
		messageRepo.EXPECT().
			Insert(ctx, int64(10), int64(2), "hello").
			Return(domain.Message{}, errors.ErrStorage).
			Times(1)

		_, err := svc.Send(ctx, 10, "hello", sender)
		req.ErrorIs(err, errors.ErrStorage)
	})
}

func TestMessageService_Like(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockIMessageRepository(ctrl)
	guard := mocks.NewMockIGuard(ctrl)
	svc := NewMessageService(messageRepo, guard)
	ctx := context.Background()
	requester := domain.User{ID: 1, Username: "alice"}

	t.Run("should increment and return the new like count", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindGroupID(ctx, int64(100)).Return(int64(10), nil).Times(1)
		guard.EXPECT().RequireMembership(ctx, int64(10), int64(1)).Return(nil).Times(1)
		messageRepo.EXPECT().IncrementLikes(ctx, int64(100)).Return(1, nil).Times(1)

		likes, err := svc.Like(ctx, 100, requester)
		req.NoError(err)
		req.Equal(1, likes)
	})

	t.Run("should fail with not found before any membership check", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindGroupID(ctx, int64(404)).Return(int64(0), errors.ErrNotFound).Times(1)
		guard.EXPECT().RequireMembership(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Like(ctx, 404, requester)
		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should fail with forbidden for a non-member of the owning group", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindGroupID(ctx, int64(100)).Return(int64(10), nil).Times(1)
		guard.EXPECT().RequireMembership(ctx, int64(10), int64(1)).Return(errors.ErrForbidden).Times(1)
		messageRepo.EXPECT().IncrementLikes(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Like(ctx, 100, requester)
		req.ErrorIs(err, errors.ErrForbidden)
	})

	t.Run("should reflect every concurrent like exactly once", func(t *testing.T) {
		req := require.New(t)
		const likers = 32

		// The increment is atomic at the storage layer; the counter here
		// stands in for the database's serialized UPDATE.
		var counter int64
		messageRepo.EXPECT().FindGroupID(gomock.Any(), int64(100)).Return(int64(10), nil).Times(likers)
		guard.EXPECT().RequireMembership(gomock.Any(), int64(10), gomock.Any()).Return(nil).Times(likers)
		messageRepo.EXPECT().
			IncrementLikes(gomock.Any(), int64(100)).
			DoAndReturn(func(context.Context, int64) (int, error) {
				return int(atomic.AddInt64(&counter, 1)), nil
			}).
			Times(likers)

		var wg sync.WaitGroup
		for i := 0; i < likers; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				_, err := svc.Like(context.Background(), 100, domain.User{ID: id})
				req.NoError(err)
			}(int64(i + 1))
		}
		wg.Wait()

		req.EqualValues(likers, atomic.LoadInt64(&counter))
	})
}
