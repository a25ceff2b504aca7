package services

import (
	"context"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/repositories"
)

type IMessageService interface {
	Send(ctx context.Context, groupID int64, content string, sender domain.User) (domain.Message, error)
	Like(ctx context.Context, messageID int64, requester domain.User) (int, error)
}

type MessageService struct {
	messages repositories.IMessageRepository
	guard    auth.IGuard
}

func NewMessageService(messages repositories.IMessageRepository, guard auth.IGuard) IMessageService {
	return &MessageService{messages: messages, guard: guard}
}

// Send posts a message to the group on behalf of a member. The new message
// starts with zero likes.
func (s *MessageService) Send(ctx context.Context, groupID int64, content string, sender domain.User) (domain.Message, error) {
	if err := s.guard.RequireMembership(ctx, groupID, sender.ID); err != nil {
		return domain.Message{}, err
	}
	return s.messages.Insert(ctx, groupID, sender.ID, content)
}

// Like increments the message's like counter by exactly one and returns the
// new value. Membership is checked against the message's owning group, so a
// missing message surfaces as NotFound before any permission error.
func (s *MessageService) Like(ctx context.Context, messageID int64, requester domain.User) (int, error) {
	groupID, err := s.messages.FindGroupID(ctx, messageID)
	if err != nil {
		return 0, err
	}
	if err := s.guard.RequireMembership(ctx, groupID, requester.ID); err != nil {
		return 0, err
	}
	return s.messages.IncrementLikes(ctx, messageID)
}
