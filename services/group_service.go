package services

import (
	"context"
	"fmt"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/repositories"
)

type IGroupService interface {
	Create(ctx context.Context, name string, creator domain.User) (domain.Group, error)
	Delete(ctx context.Context, groupID int64, requester domain.User) error
	List(ctx context.Context) ([]domain.Group, error)
	AddMembers(ctx context.Context, groupID int64, memberIDs []int64, requester domain.User) error
}

type GroupService struct {
	groups repositories.IGroupRepository
	guard  auth.IGuard
}

func NewGroupService(groups repositories.IGroupRepository, guard auth.IGuard) IGroupService {
	return &GroupService{groups: groups, guard: guard}
}

// Create inserts the group and the creator's membership in one transaction.
// The creator comes back as the sole initial member.
func (s *GroupService) Create(ctx context.Context, name string, creator domain.User) (domain.Group, error) {
	group, err := s.groups.InsertWithCreator(ctx, name, creator.ID)
	if err != nil {
		return domain.Group{}, err
	}
	group.Members = []domain.User{creator}
	return group, nil
}

// Delete removes the group, provided the requester is currently a member.
// The membership check and the delete are separate statements: a group
// deleted concurrently between the two surfaces as NotFound, not Forbidden.
func (s *GroupService) Delete(ctx context.Context, groupID int64, requester domain.User) error {
	if err := s.guard.RequireMembership(ctx, groupID, requester.ID); err != nil {
		return err
	}

	affected, err := s.groups.Delete(ctx, groupID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: group not found", errors.ErrNotFound)
	}
	return nil
}

// List returns every group that has at least one member.
func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	return s.groups.ListWithMembers(ctx)
}

// AddMembers grows the group's member set, in the order given, all-or-
// nothing. Re-adding an existing member fails the whole batch under the
// uniqueness constraint.
func (s *GroupService) AddMembers(ctx context.Context, groupID int64, memberIDs []int64, requester domain.User) error {
	if err := s.guard.RequireMembership(ctx, groupID, requester.ID); err != nil {
		return err
	}
	return s.groups.AddMembers(ctx, groupID, memberIDs)
}
