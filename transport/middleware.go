package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/domain"
	"github.com/RrD-111/chat-api/errors"
)

type contextKey string

const (
	currentUserKey contextKey = "current_user"
	rawTokenKey    contextKey = "raw_token"
)

// authenticate resolves the bearer token to the caller's current user record
// and injects both the user and the raw token into the request context for
// downstream handlers.
func authenticate(guard auth.IGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, fmt.Errorf("%w: authorization token is missing", errors.ErrUnauthenticated))
				return
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")

			user, err := guard.ResolveCurrentUser(r.Context(), tokenStr)
			if err != nil {
				respondError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			ctx = context.WithValue(ctx, rawTokenKey, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireAdmin gates a handler behind the admin flag. Must run after
// authenticate.
func requireAdmin(guard auth.IGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := currentUser(r)
			if err := guard.RequireAdmin(user); err != nil {
				respondError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func currentUser(r *http.Request) domain.User {
	user, _ := r.Context().Value(currentUserKey).(domain.User)
	return user
}

func rawToken(r *http.Request) string {
	token, _ := r.Context().Value(rawTokenKey).(string)
	return token
}
