//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
)

type IUserRepository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	Insert(ctx context.Context, username, passwordHash string, isAdmin bool) (domain.User, error)
	Update(ctx context.Context, id int64, username, passwordHash string, isAdmin bool) (domain.User, error)
}

// User is the repository-level record: the domain entity plus the stored
// password hash, which must never travel further up than the auth service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// ToDomain strips the credential off the record.
func (u User) ToDomain() domain.User {
	return domain.User{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

type UserRepository struct {
	pg *Postgres
}

func NewUserRepository(pg *Postgres) IUserRepository {
	return &UserRepository{pg: pg}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.pg.pool.QueryRow(ctx,
		`SELECT id, username, password, is_admin FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		return User{}, notFoundOr("find user by username", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := r.pg.pool.QueryRow(ctx,
		`SELECT id, username, password, is_admin FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		return User{}, notFoundOr("find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) Insert(ctx context.Context, username, passwordHash string, isAdmin bool) (domain.User, error) {
	var u domain.User
	err := r.pg.pool.QueryRow(ctx,
		`INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3)
		 RETURNING id, username, is_admin`,
		username, passwordHash, isAdmin,
	).Scan(&u.ID, &u.Username, &u.IsAdmin)
	if err != nil {
		// The service checks for an existing username first, but a
		// concurrent insert can still trip the unique constraint.
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("%w: username already registered", errors.ErrConflict)
		}
		return domain.User{}, storageErr("insert user", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, username, passwordHash string, isAdmin bool) (domain.User, error) {
	var u domain.User
	err := r.pg.pool.QueryRow(ctx,
		`UPDATE users SET username = $1, password = $2, is_admin = $3 WHERE id = $4
		 RETURNING id, username, is_admin`,
		username, passwordHash, isAdmin, id,
	).Scan(&u.ID, &u.Username, &u.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("%w: username already registered", errors.ErrConflict)
		}
		return domain.User{}, notFoundOr("update user", err)
	}
	return u, nil
}
