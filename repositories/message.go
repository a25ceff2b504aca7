//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"

	"github.com/RrD-111/chat-api/domain"
)

type IMessageRepository interface {
	Insert(ctx context.Context, groupID, senderID int64, content string) (domain.Message, error)
	// FindGroupID resolves a message to its owning group. A missing message
	// surfaces as ErrNotFound.
	FindGroupID(ctx context.Context, messageID int64) (int64, error)
	// IncrementLikes bumps the like counter by exactly one and returns the
	// new value. The increment is a single atomic UPDATE so concurrent
	// likers never lose an increment.
	IncrementLikes(ctx context.Context, messageID int64) (int, error)
}

type MessageRepository struct {
	pg *Postgres
}

func NewMessageRepository(pg *Postgres) IMessageRepository {
	return &MessageRepository{pg: pg}
}

func (r *MessageRepository) Insert(ctx context.Context, groupID, senderID int64, content string) (domain.Message, error) {
	var m domain.Message
	err := r.pg.pool.QueryRow(ctx,
		`INSERT INTO messages (group_id, user_id, content) VALUES ($1, $2, $3)
		 RETURNING id, group_id, content, likes`,
		groupID, senderID, content,
	).Scan(&m.ID, &m.GroupID, &m.Content, &m.Likes)
	if err != nil {
		return domain.Message{}, storageErr("insert message", err)
	}
	return m, nil
}

func (r *MessageRepository) FindGroupID(ctx context.Context, messageID int64) (int64, error) {
	var groupID int64
	err := r.pg.pool.QueryRow(ctx,
		`SELECT group_id FROM messages WHERE id = $1`,
		messageID,
	).Scan(&groupID)
	if err != nil {
		return 0, notFoundOr("find message group", err)
	}
	return groupID, nil
}

func (r *MessageRepository) IncrementLikes(ctx context.Context, messageID int64) (int, error) {
	var likes int
	err := r.pg.pool.QueryRow(ctx,
		`UPDATE messages SET likes = likes + 1 WHERE id = $1 RETURNING likes`,
		messageID,
	).Scan(&likes)
	if err != nil {
		return 0, notFoundOr("increment likes", err)
	}
	return likes, nil
}
