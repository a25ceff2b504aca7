package main

import "time"

type Config struct {
	Host        string        `env:"HOST,default=localhost"`
	Port        int           `env:"PORT,default=8080"`
	DatabaseURL string        `env:"DATABASE_URL,required=true"`
	TokenSecret string        `env:"TOKEN_SECRET,required=true"`
	TokenIssuer string        `env:"TOKEN_ISSUER,default=chat-api"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,default=30m"`
	LogLevel    string        `env:"LOG_LEVEL,default=INFO"`

	// When set, revoked tokens are persisted in a BadgerDB at this path and
	// survive restarts. Empty means the in-memory revocation set, which is
	// cleared on restart.
	RevocationFilepath string `env:"REVOCATION_FILEPATH"`

	// When both are set and the account does not exist yet, an admin with
	// these credentials is created at startup. User creation is admin-gated,
	// so a fresh database needs this once to get its first admin.
	BootstrapAdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}
