//go:generate go run go.uber.org/mock/mockgen -source=guard.go -destination=../mocks/mock_guard.go -package=mocks
package auth

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/repositories"
)

// IGuard enforces the access rules that gate every protected operation:
// who the caller is, whether they are an admin, and whether they belong to
// the group they are acting on.
type IGuard interface {
	ResolveCurrentUser(ctx context.Context, token string) (domain.User, error)
	RequireAdmin(user domain.User) error
	RequireMembership(ctx context.Context, groupID, userID int64) error
}

type Guard struct {
	tokens *TokenManager
	users  repositories.IUserRepository
	groups repositories.IGroupRepository
}

func NewGuard(tokens *TokenManager, users repositories.IUserRepository, groups repositories.IGroupRepository) IGuard {
	return &Guard{tokens: tokens, users: users, groups: groups}
}

// ResolveCurrentUser validates the token and re-fetches the user's current
// record by the claimed identity. The re-fetch makes an admin-flag change
// after issuance visible immediately, and turns a deleted identity into an
// authentication failure rather than a stale success.
func (g *Guard) ResolveCurrentUser(ctx context.Context, token string) (domain.User, error) {
	claims, err := g.tokens.Validate(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := g.users.FindByUsername(ctx, claims.Username())
	if goerrors.Is(err, errors.ErrNotFound) {
		return domain.User{}, fmt.Errorf("%w: could not validate credentials", errors.ErrUnauthenticated)
	}
	if err != nil {
		// A storage failure is not an authentication verdict; the kind must
		// reach the boundary verbatim.
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (g *Guard) RequireAdmin(user domain.User) error {
	if !user.IsAdmin {
		return fmt.Errorf("%w: not authorized", errors.ErrForbidden)
	}
	return nil
}

func (g *Guard) RequireMembership(ctx context.Context, groupID, userID int64) error {
	member, err := g.groups.HasMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("%w: you are not a member of this group", errors.ErrForbidden)
	}
	return nil
}
