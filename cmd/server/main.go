package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/RrD-111/chat-api/auth"
	apperrors "github.com/RrD-111/chat-api/errors"
	"github.com/RrD-111/chat-api/repositories"
	"github.com/RrD-111/chat-api/services"
	"github.com/RrD-111/chat-api/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before the process
// exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Credential store (Postgres)
	pg, err := repositories.NewPostgres(ctx, config.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer pg.Close()

	userRepo := repositories.NewUserRepository(pg)
	groupRepo := repositories.NewGroupRepository(pg)
	messageRepo := repositories.NewMessageRepository(pg)

	// 3. Token service & guard
	revoked, closeRevoked, err := newRevocationSet(config)
	if err != nil {
		return fmt.Errorf("revocation set: %w", err)
	}
	defer closeRevoked()

	tokens := auth.NewTokenManager(config.TokenSecret, config.TokenIssuer, config.TokenTTL, revoked)
	guard := auth.NewGuard(tokens, userRepo, groupRepo)

	// 4. Services & router
	userService := services.NewUserService(userRepo)
	if err := bootstrapAdmin(ctx, config, userRepo, userService, log); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	router := transport.NewRouter(transport.Deps{
		Guard:    guard,
		Auth:     services.NewAuthService(userRepo, tokens),
		Users:    userService,
		Groups:   services.NewGroupService(groupRepo, guard),
		Messages: services.NewMessageService(messageRepo, guard),
		Log:      log,
	})

	// 5. HTTP server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// bootstrapAdmin creates the configured admin account when it does not exist
// yet. A no-op when the credentials are unset or the account is present.
func bootstrapAdmin(ctx context.Context, config Config, users repositories.IUserRepository, service services.IUserService, log *slog.Logger) error {
	if config.BootstrapAdminUsername == "" || config.BootstrapAdminPassword == "" {
		return nil
	}

	if _, err := users.FindByUsername(ctx, config.BootstrapAdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if _, err := service.Create(ctx, config.BootstrapAdminUsername, config.BootstrapAdminPassword, true); err != nil {
		return err
	}
	log.Info("bootstrap admin created", "username", config.BootstrapAdminUsername)
	return nil
}

// newRevocationSet picks the in-memory set by default, or a Badger-backed
// one when a filepath is configured so logouts survive restarts.
func newRevocationSet(config Config) (auth.RevocationSet, func(), error) {
	if config.RevocationFilepath == "" {
		return auth.NewBlacklist(), func() {}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.RevocationFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, nil, err
	}
	return auth.NewBadgerBlacklist(db), func() { _ = db.Close() }, nil
}
