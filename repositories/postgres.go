package repositories

import (
	"context"
	"database/sql"
	"embed"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/RrD-111/chat-api/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Postgres owns the connection pool shared by the concrete repositories.
type Postgres struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgres runs pending migrations and opens the pgx pool.
func NewPostgres(ctx context.Context, dsn string, log *slog.Logger) (*Postgres, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Info("postgres pool initialized")
	return &Postgres{pool: pool, log: log}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
	p.log.Info("postgres pool closed")
}

// runMigrations applies the embedded schema migrations through a separate
// database/sql connection (golang-migrate does not speak pgxpool).
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !goerrors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// uniqueViolationCode is the Postgres SQLSTATE for a uniqueness-constraint
// failure.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return goerrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// storageErr wraps a driver failure in the stable ErrStorage kind, keeping
// the underlying cause in the message.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errors.ErrStorage, op, err)
}

// notFoundOr translates pgx's no-rows sentinel to ErrNotFound and anything
// else to ErrStorage.
func notFoundOr(op string, err error) error {
	if goerrors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, op)
	}
	return storageErr(op, err)
}
