package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RrD-111/chat-api/errors"
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Username is the identity the token was issued for.
func (c Claims) Username() string { return c.Subject }

// TokenManager issues, validates, and revokes bearer tokens. It never
// consults storage: validation only decodes the claims embedded at issuance,
// plus a revocation-set lookup.
type TokenManager struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	revoked RevocationSet
}

// NewTokenManager builds a manager signing with the given process-wide
// secret. ttl is the lifetime of every issued token.
func NewTokenManager(secret, issuer string, ttl time.Duration, revoked RevocationSet) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl, revoked: revoked}
}

// Issue produces a signed HS256 token carrying the username, the admin flag,
// and an absolute expiry of now + ttl.
func (m *TokenManager) Issue(username string, isAdmin bool) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks the signature, the expiry, and the revocation set, and
// returns the embedded claims. Every failure mode collapses to
// ErrUnauthenticated; the caller cannot distinguish a forged token from an
// expired or revoked one.
func (m *TokenManager) Validate(tokenStr string) (Claims, error) {
	revoked, err := m.revoked.Contains(tokenStr)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if revoked {
		return Claims{}, fmt.Errorf("%w: token has been revoked", errors.ErrUnauthenticated)
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: invalid token", errors.ErrUnauthenticated)
	}

	return claims, nil
}

// Revoke adds the exact token string to the revocation set. Revoking an
// already-revoked token is a no-op; subsequent Validate calls fail for this
// token regardless of its embedded expiry.
func (m *TokenManager) Revoke(tokenStr string) error {
	// Decode the expiry without verifying, so the set can expire the entry
	// once the token would have died anyway. A token that does not even
	// parse still gets revoked with an unbounded lifetime.
	var expiresAt time.Time
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := m.revoked.Add(tokenStr, expiresAt); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}
