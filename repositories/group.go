//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"context"

	"github.com/RrD-111/chat-api/domain"
)

type IGroupRepository interface {
	// InsertWithCreator inserts the group and the creator's membership row
	// in one transaction. The returned group has no member list; the service
	// layer fills in the creator.
	InsertWithCreator(ctx context.Context, name string, creatorID int64) (domain.Group, error)
	// Delete removes the group row and reports how many rows were affected.
	Delete(ctx context.Context, groupID int64) (int64, error)
	// ListWithMembers returns every group that has at least one member,
	// each with its full member list. Zero-member groups are invisible by
	// construction of the join.
	ListWithMembers(ctx context.Context) ([]domain.Group, error)
	// AddMembers inserts one membership row per id, in the order given, in
	// one transaction. Any failure (including a duplicate membership) aborts
	// the whole batch.
	AddMembers(ctx context.Context, groupID int64, memberIDs []int64) error
	HasMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type GroupRepository struct {
	pg *Postgres
}

func NewGroupRepository(pg *Postgres) IGroupRepository {
	return &GroupRepository{pg: pg}
}

func (r *GroupRepository) InsertWithCreator(ctx context.Context, name string, creatorID int64) (domain.Group, error) {
	tx, err := r.pg.pool.Begin(ctx)
	if err != nil {
		return domain.Group{}, storageErr("begin create group", err)
	}
	defer tx.Rollback(ctx)

	var g domain.Group
	err = tx.QueryRow(ctx,
		`INSERT INTO groups (name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		return domain.Group{}, storageErr("insert group", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
		g.ID, creatorID,
	); err != nil {
		return domain.Group{}, storageErr("insert creator membership", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Group{}, storageErr("commit create group", err)
	}
	return g, nil
}

func (r *GroupRepository) Delete(ctx context.Context, groupID int64) (int64, error) {
	tag, err := r.pg.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, groupID)
	if err != nil {
		return 0, storageErr("delete group", err)
	}
	return tag.RowsAffected(), nil
}

func (r *GroupRepository) ListWithMembers(ctx context.Context) ([]domain.Group, error) {
	rows, err := r.pg.pool.Query(ctx, `
		SELECT g.id, g.name, array_agg(u.id), array_agg(u.username), array_agg(u.is_admin)
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		JOIN users u ON gm.user_id = u.id
		GROUP BY g.id, g.name
		ORDER BY g.id`)
	if err != nil {
		return nil, storageErr("list groups", err)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		var ids []int64
		var usernames []string
		var admins []bool
		if err := rows.Scan(&g.ID, &g.Name, &ids, &usernames, &admins); err != nil {
			return nil, storageErr("scan group", err)
		}
		g.Members = make([]domain.User, len(ids))
		for i := range ids {
			g.Members[i] = domain.User{ID: ids[i], Username: usernames[i], IsAdmin: admins[i]}
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list groups", err)
	}
	return groups, nil
}

func (r *GroupRepository) AddMembers(ctx context.Context, groupID int64, memberIDs []int64) error {
	tx, err := r.pg.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin add members", err)
	}
	defer tx.Rollback(ctx)

	for _, memberID := range memberIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
			groupID, memberID,
		); err != nil {
			// A duplicate membership deliberately fails the whole batch;
			// callers pre-filter or accept the failure.
			return storageErr("insert membership", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storageErr("commit add members", err)
	}
	return nil
}

func (r *GroupRepository) HasMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	err := r.pg.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID,
	).Scan(&exists)
	if err != nil {
		return false, storageErr("find membership", err)
	}
	return exists, nil
}
